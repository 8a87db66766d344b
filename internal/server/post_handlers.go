package server

import (
	"loopline/internal/models"
	"loopline/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err, "Post", 0)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(ctx, id, s.viewerID(c))
	if err != nil {
		return respondServiceError(c, err, "Post", id)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		ActorUsername: s.actorUsername(c),
		PostID:        postID,
		Title:         req.Title,
		Content:       req.Content,
	})
	if err != nil {
		return respondServiceError(c, err, "Post", postID)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(ctx, service.DeletePostInput{
		ActorUsername: s.actorUsername(c),
		PostID:        postID,
	}); err != nil {
		return respondServiceError(c, err, "Post", postID)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// ToggleLike handles POST /api/posts/:id/toggle-like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	result, err := s.likeService.Toggle(ctx, s.viewerID(c), postID)
	if err != nil {
		return respondServiceError(c, err, "Post", postID)
	}

	return c.JSON(result)
}
