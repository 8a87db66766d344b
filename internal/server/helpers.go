package server

import (
	"errors"

	"loopline/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts the "id" route parameter as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// viewerID returns the authenticated user id, or 0 for anonymous requests.
func (s *Server) viewerID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// actorUsername returns the authenticated username, or "" for anonymous requests.
func (s *Server) actorUsername(c *fiber.Ctx) string {
	if name, ok := c.Locals("username").(string); ok {
		return name
	}
	return ""
}

// respondServiceError maps a service error to an HTTP response. resource/id
// name the target for ownership collapsing: a NOT_OWNER error is rewritten
// into the exact NOT_FOUND response, so non-owners cannot distinguish a
// resource they may not touch from one that does not exist.
func respondServiceError(c *fiber.Ctx, err error, resource string, id uint) error {
	if models.HasCode(err, models.CodeNotOwner) {
		err = models.NewNotFoundError(resource, id)
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation:
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case models.CodeUnauthenticated:
			return models.RespondWithError(c, fiber.StatusUnauthorized, appErr)
		case models.CodeNotFound:
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case models.CodeConstraintViolation:
			return models.RespondWithError(c, fiber.StatusConflict, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}
