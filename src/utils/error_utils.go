package utils

import (
	"feedback-backend/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError sends the standard error payload.
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
