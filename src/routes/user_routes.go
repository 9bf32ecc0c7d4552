package routes

import (
	"Backend-ClassPulse/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// userRoutes: registration, login and the password-reset flow.
func userRoutes(app *fiber.App) {
	user := app.Group("/users")

	user.Post("/register", controllers.RegisterUser)
	user.Post("/login", controllers.LoginUser)
	user.Post("/forgot-password", controllers.ForgotPassword)
	user.Get("/reset-password/:token", controllers.ValidateResetToken)
	user.Post("/reset-password/:token", controllers.ResetPassword)
}
