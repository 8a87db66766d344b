package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"loopline/internal/models"
	"loopline/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestFeedService(db *gorm.DB, pageSize int) *FeedService {
	return NewFeedService(
		repository.NewPostRepository(db),
		repository.NewLikeRepository(db),
		pageSize,
	)
}

// seedFeedPosts creates n posts with strictly increasing creation times, so
// the last one created is the newest. Returns posts in creation order.
func seedFeedPosts(t *testing.T, db *gorm.DB, userID uint, n int) []*models.Post {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		post := createTestPost(t, db, userID,
			fmt.Sprintf("post %d", i+1),
			base.Add(time.Duration(i)*time.Minute))
		posts = append(posts, post)
	}
	return posts
}

func TestGetFeedPagePagination(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "author")
	seedFeedPosts(t, db, user.ID, 7)

	svc := newTestFeedService(db, 5)
	ctx := context.Background()

	t.Run("first page has five newest posts", func(t *testing.T) {
		page, err := svc.GetFeedPage(ctx, 0, 0)
		require.NoError(t, err)

		assert.Len(t, page.Items, 5)
		assert.Equal(t, int64(7), page.TotalItems)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, 0, page.PageIndex)
		assert.Equal(t, 5, page.PageSize)

		assert.Equal(t, "post 7", page.Items[0].Title)
		assert.Equal(t, "post 3", page.Items[4].Title)
	})

	t.Run("second page has the remaining two", func(t *testing.T) {
		page, err := svc.GetFeedPage(ctx, 1, 0)
		require.NoError(t, err)

		assert.Len(t, page.Items, 2)
		assert.Equal(t, "post 2", page.Items[0].Title)
		assert.Equal(t, "post 1", page.Items[1].Title)
		assert.Equal(t, int64(7), page.TotalItems)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("page past the end is empty with correct totals", func(t *testing.T) {
		page, err := svc.GetFeedPage(ctx, 2, 0)
		require.NoError(t, err)

		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
		assert.Equal(t, int64(7), page.TotalItems)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("negative page index is treated as the first page", func(t *testing.T) {
		page, err := svc.GetFeedPage(ctx, -3, 0)
		require.NoError(t, err)
		assert.Len(t, page.Items, 5)
		assert.Equal(t, 0, page.PageIndex)
	})
}

func TestGetFeedPageOrdering(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "author")
	seedFeedPosts(t, db, user.ID, 5)

	svc := newTestFeedService(db, 5)
	page, err := svc.GetFeedPage(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 5)

	for i := 1; i < len(page.Items); i++ {
		prev, cur := page.Items[i-1], page.Items[i]
		assert.True(t, !prev.CreatedAt.Before(cur.CreatedAt),
			"feed must be ordered newest first: %q before %q", prev.Title, cur.Title)
	}
}

func TestGetFeedPageEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestFeedService(db, 5)

	page, err := svc.GetFeedPage(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)
}

func TestGetFeedPageHydration(t *testing.T) {
	db := setupTestDB(t)
	author := createTestUser(t, db, "author")
	viewer := createTestUser(t, db, "viewer")
	posts := seedFeedPosts(t, db, author.ID, 2)

	liked := posts[1] // newest
	require.NoError(t, db.Create(&models.Like{UserID: viewer.ID, PostID: liked.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{
		Content: "nice one",
		UserID:  viewer.ID,
		PostID:  liked.ID,
	}).Error)

	svc := newTestFeedService(db, 5)
	page, err := svc.GetFeedPage(context.Background(), 0, viewer.ID)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	newest := page.Items[0]
	assert.Equal(t, liked.ID, newest.ID)
	assert.Equal(t, "author", newest.User.Username)
	assert.True(t, newest.Liked)
	assert.Equal(t, int64(1), newest.LikesCount)
	assert.Equal(t, int64(1), newest.CommentsCount)
	require.Len(t, newest.Comments, 1)
	assert.Equal(t, "viewer", newest.Comments[0].User.Username)

	older := page.Items[1]
	assert.False(t, older.Liked)
	assert.Equal(t, int64(0), older.LikesCount)
	assert.NotEmpty(t, newest.DisplayCreatedAt)
}

func TestGetLikedPostIDs(t *testing.T) {
	db := setupTestDB(t)
	author := createTestUser(t, db, "author")
	viewer := createTestUser(t, db, "viewer")
	posts := seedFeedPosts(t, db, author.ID, 3)

	require.NoError(t, db.Create(&models.Like{UserID: viewer.ID, PostID: posts[0].ID}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: viewer.ID, PostID: posts[2].ID}).Error)

	svc := newTestFeedService(db, 5)
	ctx := context.Background()

	liked, err := svc.GetLikedPostIDs(ctx, viewer.ID)
	require.NoError(t, err)
	assert.Len(t, liked, 2)
	assert.Contains(t, liked, posts[0].ID)
	assert.Contains(t, liked, posts[2].ID)

	anonymous, err := svc.GetLikedPostIDs(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, anonymous)
}
