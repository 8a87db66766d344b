package repository

import (
	"context"
	"errors"
	"time"

	"loopline/internal/cache"
	"loopline/internal/models"
	"loopline/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error)
	// PageIDs runs the id-only phase of feed pagination: one query for the ids
	// of the requested page ordered by creation time descending, plus the
	// total row count for page arithmetic.
	PageIDs(ctx context.Context, pageIndex, pageSize int) (ids []uint, total int64, err error)
	// HydrateByIDs bulk-loads the posts for an id set with owner, comments,
	// and like state attached. Result order follows the store, not ids;
	// callers re-sort.
	HydrateByIDs(ctx context.Context, ids []uint, viewerID uint) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Omit("User", "Comments", "Likes").Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return models.NewConstraintViolationError("post owner does not exist", err)
		}
		return err
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	var post models.Post

	fetch := func() error {
		return r.applyPostDetails(r.db.WithContext(ctx), viewerID).
			Preload("User").
			Preload("Comments", orderCommentsAscending).
			Preload("Comments.User").
			First(&post, id).Error
	}

	var err error
	if viewerID == 0 {
		err = cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, fetch)
	} else {
		err = fetch()
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) PageIDs(ctx context.Context, pageIndex, pageSize int) ([]uint, int64, error) {
	defer observability.ObserveQuery("page_ids", "posts", time.Now())

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Order("created_at DESC").
		Limit(pageSize).
		Offset(pageIndex * pageSize).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

func (r *postRepository) HydrateByIDs(ctx context.Context, ids []uint, viewerID uint) ([]*models.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	defer observability.ObserveQuery("hydrate_by_ids", "posts", time.Now())

	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), viewerID).
		Preload("User").
		Preload("Comments", orderCommentsAscending).
		Preload("Comments.User").
		Where("posts.id IN ?", ids).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
// Preload handles the one-to-many associations with separate IN queries, so
// joining likes and comments simultaneously (and the row fan-out that brings)
// never happens.
func (r *postRepository) applyPostDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if viewerID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", viewerID)
	}

	return db.Select(selectQuery + ", false as liked")
}

// orderCommentsAscending keeps a post's comments in creation order.
func orderCommentsAscending(db *gorm.DB) *gorm.DB {
	return db.Order("comments.created_at ASC")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Omit("User", "Comments", "Likes").Save(post).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, post.ID)
	cache.InvalidateFeed(ctx)
	return nil
}

// Delete removes a post together with its likes and comments in one
// transaction, so no orphan rows survive even without FK cascade enforcement.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.NewNotFoundError("Post", id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id)
	cache.InvalidateFeed(ctx)
	return nil
}
