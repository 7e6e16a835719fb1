package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/taskmanager/backend/internal/dto"
	"github.com/taskmanager/backend/internal/services"
)

// serviceError maps a non-sentinel service error to a response: validation
// problems go back verbatim as 400, anything else is logged and hidden
// behind a generic 500.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: ve.Error(),
		})
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
