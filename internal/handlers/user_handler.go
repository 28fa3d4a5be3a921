package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/hostelhub/hostelhub-server/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Save handles PUT /users/:email. An existing user is returned as-is without
// a write; a new email is upserted with the supplied fields.
func (h *UserHandler) Save(c *fiber.Ctx) error {
	email := c.Params("email")

	fields := bson.M{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	existing, result, err := h.users.Save(c.Context(), email, fields)
	if err != nil {
		log.Printf("save user %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save user"})
	}
	if existing != nil {
		return c.JSON(existing)
	}
	return c.JSON(result)
}

// UpdateRole handles PUT /users/update/:email. Unlike Save it always writes.
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	email := c.Params("email")

	fields := bson.M{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.users.UpdateRole(c.Context(), email, fields)
	if err != nil {
		log.Printf("update user %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}
	return c.JSON(result)
}

// Get handles GET /users/:email. A missing user serializes as null, matching
// what the frontend expects for first-time visitors.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.Get(c.Context(), c.Params("email"))
	if err != nil {
		log.Printf("get user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user"})
	}
	return c.JSON(user)
}

// List handles GET /users.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		log.Printf("list users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	return c.JSON(users)
}
