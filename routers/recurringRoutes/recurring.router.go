package recurringRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studiofit/controllers/recurring"
	"studiofit/middleware"
	"studiofit/models"
	validators "studiofit/validators/recurring"
)

// SetupRecurringRoutes sets up recurring class template routes
func SetupRecurringRoutes(app *fiber.App) {
	recurringGroup := app.Group("/recurring")

	recurringGroup.Post("/", middleware.JWTMiddleware, validators.CreateTemplate(), controllers.CreateTemplate)
	recurringGroup.Get("/list", middleware.JWTMiddleware, controllers.ListTemplates)
	recurringGroup.Post("/:id/deactivate", middleware.JWTMiddleware, validators.TemplateID(), controllers.DeactivateTemplate)

	// Manual trigger for the weekly materialization
	recurringGroup.Post("/replicate", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.RunReplication)
}
