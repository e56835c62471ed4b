package serve

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticate guards mutating routes with a bearer token when a jwt secret is
// configured. Without a secret the route is open.
func (r *Handler) Authenticate(c fiber.Ctx) error {
	if r.Config.JwtSecret == nil {
		return c.Next()
	}

	// * extract bearer token
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
	}

	// * parse and verify
	token, err := jwt.ParseWithClaims(
		strings.TrimPrefix(header, "Bearer "),
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(*r.Config.JwtSecret), nil
		},
	)
	if err != nil || !token.Valid {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	return c.Next()
}
