package repository

import (
	"context"
	"errors"

	"loopline/internal/cache"
	"loopline/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations. Likes are
// addressed by their composite (user, post) key; there is no surrogate id.
type LikeRepository interface {
	// GetByKey returns the like for the key, or (nil, nil) when absent.
	GetByKey(ctx context.Context, key models.LikeKey) (*models.Like, error)
	// InsertIgnoreConflict inserts a like; a concurrent insert for the same
	// key is absorbed by the store's conflict clause instead of failing.
	InsertIgnoreConflict(ctx context.Context, like *models.Like) error
	DeleteByKey(ctx context.Context, key models.LikeKey) error
	CountForPost(ctx context.Context, postID uint) (int64, error)
	// LikedPostIDs returns every post id the user has liked.
	LikedPostIDs(ctx context.Context, userID uint) ([]uint, error)
	// LikedPostIDsIn restricts the lookup to a candidate id set.
	LikedPostIDsIn(ctx context.Context, userID uint, postIDs []uint) ([]uint, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) GetByKey(ctx context.Context, key models.LikeKey) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", key.UserID, key.PostID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) InsertIgnoreConflict(ctx context.Context, like *models.Like) error {
	err := r.db.WithContext(ctx).
		Omit("User", "Post").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(like).Error
	if err != nil {
		// A duplicate slipping past the conflict clause still means the other
		// toggle won; callers re-read final state either way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			err = nil
		}
	}
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, like.PostID)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *likeRepository) DeleteByKey(ctx context.Context, key models.LikeKey) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", key.UserID, key.PostID).
		Delete(&models.Like{}).Error
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, key.PostID)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *likeRepository) CountForPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) LikedPostIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error
	return ids, err
}

func (r *likeRepository) LikedPostIDsIn(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	return ids, err
}
