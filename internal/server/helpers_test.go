package server

import (
	"errors"
	"net/http/httptest"
	"testing"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondConflictOnDuplicate(t *testing.T) {
	app := fiber.New()
	app.Get("/duplicate", func(c *fiber.Ctx) error {
		return respondConflictOnDuplicate(c, models.NewValidationError("User already exists"))
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return respondConflictOnDuplicate(c, models.NewInternalError(errors.New("connection reset")))
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/duplicate", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("other errors keep their mapping", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/internal", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
