package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/hostelhub/hostelhub-server/internal/services"
)

func newAuthApp() *fiber.App {
	auth := services.NewAuthService("test-secret", false)
	handler := NewAuthHandler(auth)

	app := fiber.New()
	app.Post("/jwt", handler.CreateToken)
	app.Get("/logout", handler.Logout)
	return app
}

func TestCreateTokenSetsSessionCookie(t *testing.T) {
	app := newAuthApp()

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var body map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !body["success"] {
		t.Error("Expected success response")
	}

	var tokenCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" {
			tokenCookie = cookie
		}
	}
	if tokenCookie == nil {
		t.Fatal("No token cookie was set")
	}
	if tokenCookie.Value == "" {
		t.Error("Token cookie is empty")
	}
	if !tokenCookie.HttpOnly {
		t.Error("Token cookie is not HttpOnly")
	}
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	app := newAuthApp()

	// No cookie on the request; logout still reports success.
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var tokenCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" {
			tokenCookie = cookie
		}
	}
	if tokenCookie == nil {
		t.Fatal("No token cookie in logout response")
	}
	if tokenCookie.MaxAge >= 0 && tokenCookie.Value != "" {
		t.Error("Logout did not expire the token cookie")
	}
}
