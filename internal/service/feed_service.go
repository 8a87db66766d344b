package service

import (
	"context"
	"sort"

	"loopline/internal/cache"
	"loopline/internal/models"
	"loopline/internal/observability"
	"loopline/internal/repository"
)

// DefaultFeedPageSize is the number of posts per feed page unless configured otherwise.
const DefaultFeedPageSize = 5

// FeedService assembles paginated feed pages. It issues exactly two store
// round-trips per page regardless of page size: one id-only page query (with
// its count), then one bulk hydrate over the id set.
type FeedService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
	pageSize int
}

// NewFeedService creates a FeedService. pageSize <= 0 selects the default.
func NewFeedService(postRepo repository.PostRepository, likeRepo repository.LikeRepository, pageSize int) *FeedService {
	if pageSize <= 0 {
		pageSize = DefaultFeedPageSize
	}
	return &FeedService{
		postRepo: postRepo,
		likeRepo: likeRepo,
		pageSize: pageSize,
	}
}

// PageSize returns the configured page size.
func (s *FeedService) PageSize() int {
	return s.pageSize
}

// GetFeedPage returns one page of posts ordered by creation time descending,
// with owner, comments, and like state fully populated. A page index past the
// end yields an empty item list with correct totals.
func (s *FeedService) GetFeedPage(ctx context.Context, pageIndex int, viewerID uint) (*models.Page[*models.Post], error) {
	if pageIndex < 0 {
		pageIndex = 0
	}

	if viewerID == 0 {
		observability.FeedPagesServed.WithLabelValues("anonymous").Inc()
		var page models.Page[*models.Post]
		err := cache.Aside(ctx, cache.FeedPageKey(pageIndex), &page, cache.FeedPageTTL, func() error {
			built, buildErr := s.buildFeedPage(ctx, pageIndex, 0)
			if buildErr != nil {
				return buildErr
			}
			page = *built
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &page, nil
	}

	observability.FeedPagesServed.WithLabelValues("authenticated").Inc()
	return s.buildFeedPage(ctx, pageIndex, viewerID)
}

func (s *FeedService) buildFeedPage(ctx context.Context, pageIndex int, viewerID uint) (*models.Page[*models.Post], error) {
	span, ctx := observability.NewSpan(ctx, "feed.page")
	defer span.End()

	ids, total, err := s.postRepo.PageIDs(ctx, pageIndex, s.pageSize)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	// Empty page: skip the hydrate round-trip entirely.
	if len(ids) == 0 {
		return models.NewPage([]*models.Post{}, pageIndex, s.pageSize, total), nil
	}

	posts, err := s.postRepo.HydrateByIDs(ctx, ids, viewerID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	// The hydrate query returns rows in store order (typically primary key),
	// not the created_at order of the id page. Re-sort by index-of-id.
	rank := make(map[uint]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return rank[posts[i].ID] < rank[posts[j].ID]
	})

	return models.NewPage(posts, pageIndex, s.pageSize, total), nil
}

// GetLikedPostIDs returns the set of post ids the viewer has liked, for
// rendering like state without per-post queries. Anonymous viewers get an
// empty set.
func (s *FeedService) GetLikedPostIDs(ctx context.Context, viewerID uint) (map[uint]struct{}, error) {
	liked := make(map[uint]struct{})
	if viewerID == 0 {
		return liked, nil
	}
	ids, err := s.likeRepo.LikedPostIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = struct{}{}
	}
	return liked, nil
}
