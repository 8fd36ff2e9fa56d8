package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studiofit/controllers/auth"
	validators "studiofit/validators/auth"
)

// SetupAuthRoutes sets up authentication routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)
}
