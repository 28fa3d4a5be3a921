package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/hostelhub/hostelhub-server/internal/services"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateIntent handles POST /create-payment-intent. The price arrives in
// major units and is charged in USD cents.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var request struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	clientSecret, err := h.payments.CreateIntent(request.Price)
	if errors.Is(err, services.ErrInvalidPrice) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid price"})
	}
	if err != nil {
		log.Printf("create payment intent: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payment intent"})
	}

	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}
