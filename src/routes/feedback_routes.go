package routes

import (
	"github.com/gofiber/fiber/v2"

	"feedback-backend/src/controllers"
	"feedback-backend/src/middleware"
)

// feedbackRoutes defines submission (public) and review (admin) endpoints.
// Static paths go before /:id so "stats" is not read as an id.
func feedbackRoutes(app *fiber.App) {
	feedback := app.Group("/feedback")

	feedback.Post("/", controllers.SubmitFeedback)
	feedback.Get("/", middleware.AuthJWT, middleware.AdminOnly, controllers.GetFeedbacks)
	feedback.Get("/stats", middleware.AuthJWT, middleware.AdminOnly, controllers.GetFeedbackStats)
	feedback.Get("/form/:formId", middleware.AuthJWT, middleware.AdminOnly, controllers.GetFeedbacksByForm)
	feedback.Get("/:id", middleware.AuthJWT, middleware.AdminOnly, controllers.GetFeedbackByID)
	feedback.Delete("/:id", middleware.AuthJWT, middleware.AdminOnly, controllers.DeleteFeedback)
}
