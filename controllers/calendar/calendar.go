package calendarController

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"studiofit/database"
	"studiofit/middleware"
	"studiofit/services"
)

// GetEvents returns the calendar events visible to the authenticated user.
// Optional query params: start and end (RFC3339, both or neither) and
// instructor_id (admins only; ignored for instructors).
func GetEvents(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var window *services.TimeRange
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr != "" || endStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid start parameter!", nil)
		}
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid end parameter!", nil)
		}
		window = &services.TimeRange{Start: start, End: end}
	}

	var instructorFilter *uint
	if idStr := c.Query("instructor_id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid instructor_id parameter!", nil)
		}
		uid := uint(id)
		instructorFilter = &uid
	}

	events, err := services.ListEvents(database.Database.Db, user, window, instructorFilter)
	if err != nil {
		if errors.Is(err, services.ErrAccessDenied) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch events!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Events fetched successfully!", events)
}
