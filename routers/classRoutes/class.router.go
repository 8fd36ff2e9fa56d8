package classRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studiofit/controllers/classes"
	"studiofit/middleware"
	validators "studiofit/validators/classes"
)

// SetupClassRoutes sets up class session routes
func SetupClassRoutes(app *fiber.App) {
	classGroup := app.Group("/class")

	classGroup.Post("/", middleware.JWTMiddleware, validators.CreateClass(), controllers.CreateClass)
	classGroup.Get("/:id", middleware.JWTMiddleware, validators.ClassID(), controllers.GetClass)
	classGroup.Put("/:id/times", middleware.JWTMiddleware, validators.ClassID(), validators.UpdateClassTimes(), controllers.UpdateClassTimes)

	// Status transitions
	classGroup.Post("/:id/complete", middleware.JWTMiddleware, validators.ClassID(), controllers.CompleteClass)
	classGroup.Post("/:id/cancel", middleware.JWTMiddleware, validators.ClassID(), controllers.CancelClass)

	// Roster
	classGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.ClassID(), validators.Enroll(), controllers.EnrollStudent)
	classGroup.Delete("/:id/enroll/:studentId", middleware.JWTMiddleware, validators.ClassID(), validators.StudentID(), controllers.UnenrollStudent)
}
