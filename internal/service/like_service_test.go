package service

import (
	"context"
	"testing"
	"time"

	"loopline/internal/models"
	"loopline/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestLikeService(db *gorm.DB) *LikeService {
	return NewLikeService(db,
		repository.NewUserRepository(db),
		repository.NewPostRepository(db),
		repository.NewLikeRepository(db))
}

func TestToggleAddsAndRemovesLike(t *testing.T) {
	db := setupTestDB(t)
	author := createTestUser(t, db, "author")
	viewer := createTestUser(t, db, "viewer")
	post := createTestPost(t, db, author.ID, "hello", time.Now().UTC())

	svc := newTestLikeService(db)
	ctx := context.Background()

	// First toggle likes the post.
	res, err := svc.Toggle(ctx, viewer.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, res.ViewerNowLikes)
	assert.Equal(t, int64(1), res.LikeCount)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Second toggle removes it.
	res, err = svc.Toggle(ctx, viewer.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, res.ViewerNowLikes)
	assert.Equal(t, int64(0), res.LikeCount)

	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestToggleCountsOtherViewers(t *testing.T) {
	db := setupTestDB(t)
	author := createTestUser(t, db, "author")
	first := createTestUser(t, db, "first")
	second := createTestUser(t, db, "second")
	post := createTestPost(t, db, author.ID, "popular", time.Now().UTC())

	svc := newTestLikeService(db)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, first.ID, post.ID)
	require.NoError(t, err)

	res, err := svc.Toggle(ctx, second.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, res.ViewerNowLikes)
	assert.Equal(t, int64(2), res.LikeCount)

	// The first viewer unliking leaves the second viewer's like in place.
	res, err = svc.Toggle(ctx, first.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, res.ViewerNowLikes)
	assert.Equal(t, int64(1), res.LikeCount)
}

func TestToggleRequiresAuthentication(t *testing.T) {
	db := setupTestDB(t)
	author := createTestUser(t, db, "author")
	post := createTestPost(t, db, author.ID, "hello", time.Now().UTC())

	svc := newTestLikeService(db)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, 0, post.ID)
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeUnauthenticated))

	// A viewer id with no matching user row is the same failure.
	_, err = svc.Toggle(ctx, 9999, post.ID)
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeUnauthenticated))
}

func TestToggleMissingPost(t *testing.T) {
	db := setupTestDB(t)
	viewer := createTestUser(t, db, "viewer")

	svc := newTestLikeService(db)
	_, err := svc.Toggle(context.Background(), viewer.ID, 404)
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestInsertIgnoreConflictKeepsSingleRow(t *testing.T) {
	db := setupTestDB(t)
	author := createTestUser(t, db, "author")
	viewer := createTestUser(t, db, "viewer")
	post := createTestPost(t, db, author.ID, "raced", time.Now().UTC())

	likes := repository.NewLikeRepository(db)
	ctx := context.Background()
	key := models.LikeKey{UserID: viewer.ID, PostID: post.ID}

	// Two inserts for the same key model the losing half of a toggle race.
	require.NoError(t, likes.InsertIgnoreConflict(ctx, &models.Like{UserID: key.UserID, PostID: key.PostID}))
	require.NoError(t, likes.InsertIgnoreConflict(ctx, &models.Like{UserID: key.UserID, PostID: key.PostID}))

	var count int64
	require.NoError(t, db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", key.UserID, key.PostID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
