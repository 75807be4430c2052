package routes

import (
	"github.com/gofiber/fiber/v2"

	"feedback-backend/src/controllers"
	"feedback-backend/src/middleware"
)

// formRoutes defines form management. Creation and listing are admin-only;
// reading a single form is public so anyone with the link can respond.
func formRoutes(app *fiber.App) {
	forms := app.Group("/forms")

	forms.Post("/", middleware.AuthJWT, middleware.AdminOnly, controllers.CreateForm)
	forms.Get("/", middleware.AuthJWT, middleware.AdminOnly, controllers.GetForms)
	forms.Get("/:id", controllers.GetFormByID)
	forms.Post("/:id/share", middleware.AuthJWT, middleware.AdminOnly, controllers.CreateShareLink)

	// Public share-link resolution
	app.Get("/f/:token", controllers.ResolveShareLink)
}
