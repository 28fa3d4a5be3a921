package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/hostelhub/hostelhub-server/internal/models"
	"github.com/hostelhub/hostelhub-server/internal/services"
)

type BookingHandler struct {
	bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.bookings.CreateBooking(c.Context(), booking)
	if err != nil {
		log.Printf("create booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save booking"})
	}
	return c.JSON(result)
}

// ListBookings handles GET /bookings.
func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	bookings, err := h.bookings.ListBookings(c.Context())
	if err != nil {
		log.Printf("list bookings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(bookings)
}

// CreateRequestInfo handles POST /reqInfo.
func (h *BookingHandler) CreateRequestInfo(c *fiber.Ctx) error {
	var info models.RequestInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.bookings.CreateRequestInfo(c.Context(), info)
	if err != nil {
		log.Printf("create request info: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save request"})
	}
	return c.JSON(result)
}

// ListRequestInfo handles GET /reqInfo.
func (h *BookingHandler) ListRequestInfo(c *fiber.Ctx) error {
	infos, err := h.bookings.ListRequestInfo(c.Context())
	if err != nil {
		log.Printf("list request info: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch requests"})
	}
	return c.JSON(infos)
}
