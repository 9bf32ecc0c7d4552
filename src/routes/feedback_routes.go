package routes

import (
	"Backend-ClassPulse/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// feedbackRoutes: student-facing join and submit endpoints. Deliberately
// unauthenticated — feedback is anonymous, there is no participant account.
func feedbackRoutes(app *fiber.App) {
	feedback := app.Group("/feedback")

	feedback.Post("/join", controllers.JoinActivity)
	feedback.Post("/", controllers.SubmitFeedback)
}
