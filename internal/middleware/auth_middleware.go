package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserClaimsKey is where Protected stores the verified claims on the request.
const UserClaimsKey = "user"

// Protected returns a middleware that verifies the signed session cookie
// before allowing a handler to execute. A missing, tampered or expired token
// halts the request with 401; no database work happens for rejected requests.
func Protected(secret string) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("token")
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
		}

		c.Locals(UserClaimsKey, claims)
		return c.Next()
	}
}
