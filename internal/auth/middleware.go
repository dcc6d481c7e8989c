// Package auth decodes caller identity for the stats endpoints. Tokens are
// issued and sessions managed by the surrounding application; this middleware
// only verifies the HS256 signature and extracts the subject.
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "userID"

// Middleware returns a fiber handler that rejects requests without a valid
// bearer token and stores the token subject as the caller's user id.
func Middleware(secret string) fiber.Handler {
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing_bearer_token",
			})
		}

		var claims jwt.RegisteredClaims
		token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid || claims.Subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid_bearer_token",
			})
		}

		c.Locals(userIDKey, claims.Subject)
		return c.Next()
	}
}

// UserID returns the caller identity set by Middleware, or "" when the
// request did not pass through it.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
