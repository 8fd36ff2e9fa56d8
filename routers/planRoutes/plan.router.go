package planRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studiofit/controllers/plans"
	"studiofit/middleware"
	"studiofit/models"
	validators "studiofit/validators/plans"
)

// SetupPlanRoutes sets up membership plan routes
func SetupPlanRoutes(app *fiber.App) {
	planGroup := app.Group("/plan")

	planGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CreatePlan(), controllers.CreatePlan)
	planGroup.Get("/list", middleware.JWTMiddleware, controllers.ListPlans)
	planGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.PlanID(), controllers.DeletePlan)
}
