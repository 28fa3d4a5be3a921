package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hostelhub/hostelhub-server/internal/models"
	"github.com/hostelhub/hostelhub-server/internal/services"
)

type MealHandler struct {
	meals *services.MealService
}

func NewMealHandler(meals *services.MealService) *MealHandler {
	return &MealHandler{meals: meals}
}

// List handles GET /mealsCategory.
func (h *MealHandler) List(c *fiber.Ctx) error {
	meals, err := h.meals.List(c.Context())
	if err != nil {
		log.Printf("list meals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch meals"})
	}
	return c.JSON(meals)
}

// Get handles GET /mealsCategory/meal/:id.
func (h *MealHandler) Get(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid meal ID format"})
	}

	meal, err := h.meals.Get(c.Context(), objID)
	if err != nil {
		log.Printf("get meal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch meal"})
	}
	return c.JSON(meal)
}

// Create handles POST /mealsCategory.
func (h *MealHandler) Create(c *fiber.Ctx) error {
	var meal models.Meal
	if err := c.BodyParser(&meal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.meals.Create(c.Context(), meal)
	if err != nil {
		log.Printf("create meal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save meal"})
	}
	return c.JSON(result)
}

// ListUpcoming handles GET /upComingMeals.
func (h *MealHandler) ListUpcoming(c *fiber.Ctx) error {
	meals, err := h.meals.ListUpcoming(c.Context())
	if err != nil {
		log.Printf("list upcoming meals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch meals"})
	}
	return c.JSON(meals)
}

// CreateUpcoming handles POST /upComingMeals.
func (h *MealHandler) CreateUpcoming(c *fiber.Ctx) error {
	var meal models.Meal
	if err := c.BodyParser(&meal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.meals.CreateUpcoming(c.Context(), meal)
	if err != nil {
		log.Printf("create upcoming meal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save meal"})
	}
	return c.JSON(result)
}

// AddReview handles PATCH /mealsCategory/review/:id, overwriting the like
// counter and appending a review in one update.
func (h *MealHandler) AddReview(c *fiber.Ctx) error {
	var request struct {
		Review    string `json:"review"`
		Likes     int    `json:"likes"`
		UserEmail string `json:"UserEmail"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid meal ID format"})
	}

	result, err := h.meals.AddReview(c.Context(), objID, request.Likes, request.UserEmail, request.Review)
	if err != nil {
		log.Printf("review meal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update meal"})
	}
	return c.JSON(result)
}

// UpdateStatus handles PATCH /mealsCategory/status/:id.
func (h *MealHandler) UpdateStatus(c *fiber.Ctx) error {
	var request struct {
		Status bool `json:"status"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid meal ID format"})
	}

	result, err := h.meals.UpdateStatus(c.Context(), objID, request.Status)
	if err != nil {
		log.Printf("update meal status: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update meal"})
	}
	return c.JSON(result)
}
