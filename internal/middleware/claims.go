package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/taskmanager/backend/internal/services"
)

// CurrentUser returns the identity JWTProtected attached to the request.
// Handlers read claims from here only; the token is never re-verified
// downstream.
func CurrentUser(c *fiber.Ctx) (*services.TokenClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("no token in context")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	return services.ParseClaims(mapClaims)
}
