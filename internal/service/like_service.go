package service

import (
	"context"

	"loopline/internal/models"
	"loopline/internal/observability"
	"loopline/internal/repository"

	"gorm.io/gorm"
)

// LikeService toggles a viewer's like on a post. The read-check-mutate
// sequence runs in a single store transaction per call, and the composite
// primary key on likes guarantees that two racing toggles for the same
// (viewer, post) pair cannot both insert.
type LikeService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

// ToggleResult reports the post's like count after the toggle and whether the
// viewer now likes the post.
type ToggleResult struct {
	LikeCount      int64 `json:"like_count"`
	ViewerNowLikes bool  `json:"viewer_now_likes"`
}

// NewLikeService creates a LikeService.
func NewLikeService(db *gorm.DB, userRepo repository.UserRepository, postRepo repository.PostRepository, likeRepo repository.LikeRepository) *LikeService {
	return &LikeService{
		db:       db,
		userRepo: userRepo,
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// Toggle flips the like state for (viewerID, postID). If the like exists it
// is removed; otherwise one is inserted. The returned count is re-read from
// the store rather than adjusted in memory, so it reflects committed state
// even under concurrent toggles by other viewers.
func (s *LikeService) Toggle(ctx context.Context, viewerID, postID uint) (*ToggleResult, error) {
	span, ctx := observability.NewSpan(ctx, "like.toggle")
	defer span.End()

	if viewerID == 0 {
		return nil, models.NewUnauthenticatedError("login required to like a post")
	}
	if _, err := s.userRepo.GetByID(ctx, viewerID); err != nil {
		if models.HasCode(err, models.CodeNotFound) {
			return nil, models.NewUnauthenticatedError("login required to like a post")
		}
		return nil, err
	}
	if _, err := s.postRepo.GetByID(ctx, postID, viewerID); err != nil {
		return nil, err
	}

	key := models.LikeKey{UserID: viewerID, PostID: postID}
	var viewerNowLikes bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		likes := repository.NewLikeRepository(tx)

		existing, err := likes.GetByKey(ctx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			viewerNowLikes = false
			return likes.DeleteByKey(ctx, key)
		}

		viewerNowLikes = true
		// A concurrent toggle for the same key may insert first; the conflict
		// clause absorbs that and the count below reads whatever state won.
		return likes.InsertIgnoreConflict(ctx, &models.Like{UserID: viewerID, PostID: postID})
	})
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	count, err := s.likeRepo.CountForPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if viewerNowLikes {
		observability.LikeToggles.WithLabelValues("liked").Inc()
	} else {
		observability.LikeToggles.WithLabelValues("unliked").Inc()
	}

	return &ToggleResult{LikeCount: count, ViewerNowLikes: viewerNowLikes}, nil
}
