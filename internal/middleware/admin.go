package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskmanager/backend/internal/dto"
)

// AdminRequired allows only tokens whose role claim is "admin". Roles are
// free-form at signup, so this trusts whatever the token carries.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if user.Role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
