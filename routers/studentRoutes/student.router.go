package studentRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studiofit/controllers/students"
	"studiofit/middleware"
	"studiofit/models"
	validators "studiofit/validators/students"
)

// SetupStudentRoutes sets up student management routes
func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/student")

	studentGroup.Post("/", middleware.JWTMiddleware, validators.CreateStudent(), controllers.CreateStudent)
	studentGroup.Get("/list", middleware.JWTMiddleware, controllers.ListStudents)
	studentGroup.Post("/:id/deactivate", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.StudentID(), controllers.DeactivateStudent)
	studentGroup.Post("/:id/plan", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.StudentID(), validators.AssignPlan(), controllers.AssignPlan)

	// Address lookup used by the registration form
	utilsGroup := app.Group("/utils")
	utilsGroup.Get("/cep/:cep", middleware.JWTMiddleware, controllers.LookupCep)
}
