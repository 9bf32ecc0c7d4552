package routes

import (
	"Backend-ClassPulse/src/controllers"
	"Backend-ClassPulse/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// activityRoutes: professor-facing lifecycle and aggregation endpoints.
// All of them require a professor principal.
func activityRoutes(app *fiber.App) {
	activity := app.Group("/activities", middleware.AuthJWT, middleware.ProfessorOnly)

	activity.Post("/", controllers.CreateActivity)
	activity.Get("/active", controllers.GetActiveActivity)
	activity.Get("/:id/feedback", controllers.GetActivityFeedback)
}
