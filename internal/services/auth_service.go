package services

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const tokenCookieName = "token"

// AuthService signs session tokens and builds the cookies that carry them.
// Cookie attributes differ between development and production because the
// frontend is served from a different origin in production.
type AuthService struct {
	secret     []byte
	production bool
}

func NewAuthService(secret string, production bool) *AuthService {
	return &AuthService{secret: []byte(secret), production: production}
}

// GenerateToken signs the supplied claims as-is, adding a 365 day expiry.
// The payload's shape is not validated; whatever the client sent is what
// the verification gate will hand back to handlers.
func (s *AuthService) GenerateToken(claims jwt.MapClaims) (string, error) {
	claims["exp"] = time.Now().Add(365 * 24 * time.Hour).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// TokenCookie wraps a signed token in the session cookie.
func (s *AuthService) TokenCookie(token string) *fiber.Cookie {
	c := s.baseCookie()
	c.Value = token
	return c
}

// ClearCookie returns an expired session cookie. Sending it succeeds whether
// or not the client held a token.
func (s *AuthService) ClearCookie() *fiber.Cookie {
	c := s.baseCookie()
	c.Expires = time.Now().Add(-time.Hour)
	c.MaxAge = -1
	return c
}

func (s *AuthService) baseCookie() *fiber.Cookie {
	cookie := &fiber.Cookie{
		Name:     tokenCookieName,
		HTTPOnly: true,
		Secure:   s.production,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
	if s.production {
		// Cross-site cookies require SameSite=None, and None requires Secure.
		cookie.SameSite = fiber.CookieSameSiteNoneMode
	}
	return cookie
}
