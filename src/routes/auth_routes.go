package routes

import (
	"github.com/gofiber/fiber/v2"

	"feedback-backend/src/controllers"
	"feedback-backend/src/middleware"
)

// authRoutes defines login and identity endpoints.
func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/login", controllers.LoginUser)
	auth.Get("/me", middleware.AuthJWT, controllers.GetMe)
}
