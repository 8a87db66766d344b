package server

import (
	"loopline/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed?page=N
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.Context()

	page := c.QueryInt("page", 0)
	if page < 0 {
		page = 0
	}
	viewerID := s.viewerID(c)

	feedPage, err := s.feedService.GetFeedPage(ctx, page, viewerID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	likedSet, err := s.feedService.GetLikedPostIDs(ctx, viewerID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	likedIDs := make([]uint, 0, len(likedSet))
	for id := range likedSet {
		likedIDs = append(likedIDs, id)
	}

	return c.JSON(fiber.Map{
		"items":          feedPage.Items,
		"page":           feedPage.PageIndex,
		"page_size":      feedPage.PageSize,
		"total_items":    feedPage.TotalItems,
		"total_pages":    feedPage.TotalPages,
		"liked_post_ids": likedIDs,
	})
}
