package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return signed
}

// newGatedApp returns an app with one protected route and a flag reporting
// whether the handler behind the gate ever ran.
func newGatedApp() (*fiber.App, *bool) {
	reached := false
	app := fiber.New()
	app.Get("/protected", Protected(testSecret), func(c *fiber.Ctx) error {
		reached = true
		return c.JSON(c.Locals(UserClaimsKey))
	})
	return app, &reached
}

func TestMissingTokenIsRejected(t *testing.T) {
	app, reached := newGatedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a cookie, got %d", resp.StatusCode)
	}
	if *reached {
		t.Error("Handler ran for a request with no token")
	}
}

func TestTamperedTokenIsRejected(t *testing.T) {
	app, reached := newGatedApp()

	token := signToken(t, "some-other-secret", jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401 for a tampered token, got %d", resp.StatusCode)
	}
	if *reached {
		t.Error("Handler ran for a request with a bad token")
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	app, reached := newGatedApp()

	token := signToken(t, testSecret, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401 for an expired token, got %d", resp.StatusCode)
	}
	if *reached {
		t.Error("Handler ran for a request with an expired token")
	}
}

func TestValidTokenPassesClaimsThrough(t *testing.T) {
	app, reached := newGatedApp()

	token := signToken(t, testSecret, jwt.MapClaims{
		"email": "a@x.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 for a valid token, got %d", resp.StatusCode)
	}
	if !*reached {
		t.Fatal("Handler never ran for a valid token")
	}

	var claims map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if claims["email"] != "a@x.com" {
		t.Errorf("Expected email claim a@x.com, got %v", claims["email"])
	}
	if claims["role"] != "admin" {
		t.Errorf("Expected role claim admin, got %v", claims["role"])
	}
}
