package routes

import (
	"github.com/gofiber/fiber/v2"
)

// InitRoutes mounts every module's routes on the app.
func InitRoutes(app *fiber.App) {
	authRoutes(app)
	formRoutes(app)
	feedbackRoutes(app)

	// Health probe
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
