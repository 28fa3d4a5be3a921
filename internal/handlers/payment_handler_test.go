package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/hostelhub/hostelhub-server/internal/services"
)

func TestCreateIntentRejectsInvalidPrice(t *testing.T) {
	handler := NewPaymentHandler(services.NewPaymentService("sk_test_unused"))

	app := fiber.New()
	app.Post("/create-payment-intent", handler.CreateIntent)

	for _, body := range []string{`{"price":0}`, `{"price":-5}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400 for body %s, got %d", body, resp.StatusCode)
		}
	}
}
