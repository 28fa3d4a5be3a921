package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/hostelhub/hostelhub-server/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// CreateToken signs whatever claims payload the client sent and delivers the
// token in the session cookie.
func (h *AuthHandler) CreateToken(c *fiber.Ctx) error {
	claims := jwt.MapClaims{}
	if err := c.BodyParser(&claims); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	token, err := h.auth.GenerateToken(claims)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign token"})
	}

	c.Cookie(h.auth.TokenCookie(token))
	return c.JSON(fiber.Map{"success": true})
}

// Logout clears the session cookie. It succeeds even when no cookie was set.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.auth.ClearCookie())
	return c.JSON(fiber.Map{"success": true})
}
