package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/qaforum/internal/middleware"
)

// AdminHandler serves the admin page. Any authenticated user can view
// it; the forum has no privilege levels beyond logged-in.
type AdminHandler struct{}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Show echoes the current user.
func (h *AdminHandler) Show(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":       user.ID,
			"phone":    user.Phone,
			"username": user.Username,
		},
	})
}
