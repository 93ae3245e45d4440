package server

import (
	"errors"
	"fmt"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID reads a positive integer route parameter.
func parseID(c *fiber.Ctx, param, label string) (uint, error) {
	raw := c.Params(param)
	var id uint
	if _, err := fmt.Sscan(raw, &id); err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + label)
	}
	return id, nil
}

// parsePagination reads limit/offset query parameters with sane bounds.
func parsePagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// respondServiceError maps an AppError code to the matching HTTP status.
// Unauthorized errors from the service layer are ownership failures on an
// already-authenticated request, so they surface as 403 rather than 401.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusBadRequest, err)
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, err)
		case "UNAUTHORIZED":
			return models.RespondWithError(c, fiber.StatusForbidden, err)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}

// respondConflictOnDuplicate is for insert paths guarded by a unique
// constraint: a validation error here means the row already exists, so it
// surfaces as 409 like the pre-insert duplicate checks.
func respondConflictOnDuplicate(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == "VALIDATION_ERROR" {
		return models.RespondWithError(c, fiber.StatusConflict, err)
	}
	return respondServiceError(c, err)
}
