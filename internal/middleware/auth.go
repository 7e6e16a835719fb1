package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/taskmanager/backend/internal/config"
	"github.com/taskmanager/backend/internal/dto"
)

// JWTProtected rejects requests without a valid bearer token. A missing or
// malformed Authorization header and a failed verification produce distinct
// messages, matching the original API.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			message := "Invalid token"
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				message = "No token provided"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: message,
			})
		},
	})
}
