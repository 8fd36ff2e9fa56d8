package calendarRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studiofit/controllers/calendar"
	"studiofit/middleware"
)

// SetupCalendarRoutes sets up calendar routes
func SetupCalendarRoutes(app *fiber.App) {
	calendarGroup := app.Group("/calendar")

	calendarGroup.Get("/events", middleware.JWTMiddleware, controllers.GetEvents)
}
