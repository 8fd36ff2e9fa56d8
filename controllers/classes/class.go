package classController

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studiofit/database"
	"studiofit/middleware"
	"studiofit/models"
	"studiofit/services"
	classValidator "studiofit/validators/classes"
)

// serviceError maps a domain error to its HTTP response
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidTimeRange):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "End time must be after start time!", nil)
	case errors.Is(err, services.ErrCapacityExceeded):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Class is already full!", nil)
	case errors.Is(err, services.ErrDuplicateEnrollment):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student is already enrolled in this class!", nil)
	case errors.Is(err, services.ErrNotEnrolled):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student is not enrolled in this class!", nil)
	case errors.Is(err, services.ErrInvalidState):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Class is not open for changes!", nil)
	case errors.Is(err, services.ErrInvalidTransition):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Status change not permitted!", nil)
	case errors.Is(err, services.ErrAccessDenied):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

// loadManagedSession fetches the session and checks the user may mutate it
func loadManagedSession(c *fiber.Ctx) (*models.ClassSession, *models.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classID := c.Locals("classID").(uint)

	var session models.ClassSession
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", classID, false).First(&session).Error; err != nil {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	if !services.CanManageSession(user, &session) {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}
	return &session, user, nil
}

// CreateClass creates a single scheduled class session
func CreateClass(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedClass").(*classValidator.ValidatedClass)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Instructors always schedule for themselves; admins pick the instructor
	instructorID := reqData.InstructorID
	if user.Role == models.RoleInstructor {
		instructorID = user.ID
	} else if instructorID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Instructor ID is required!", nil)
	}

	var instructor models.User
	if err := db.Where("id = ? AND role = ? AND is_active = ? AND is_deleted = ?",
		instructorID, models.RoleInstructor, true, false).First(&instructor).Error; err != nil {
		if user.Role == models.RoleAdmin && instructorID == user.ID {
			// An admin may also teach their own classes
			instructor = *user
		} else {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found or inactive!", nil)
		}
	}

	session, err := services.CreateSession(db, reqData.Title, reqData.StartTime, reqData.EndTime, instructor.ID, reqData.MaxStudents)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class created successfully!", session)
}

// GetClass returns one session with its roster
func GetClass(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classID := c.Locals("classID").(uint)
	db := database.Database.Db

	var session models.ClassSession
	if err := db.Where("id = ? AND is_deleted = ?", classID, false).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	if !services.CanViewSession(user, &session) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	students, err := services.RosterNames(db, session.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch roster!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class fetched successfully!", fiber.Map{
		"class":          session,
		"students":       students,
		"enrolled_count": len(students),
		"has_space":      len(students) < session.MaxStudents,
	})
}

// UpdateClassTimes reschedules a class session
func UpdateClassTimes(c *fiber.Ctx) error {
	session, _, err := loadManagedSession(c)
	if session == nil {
		return err
	}

	reqData, ok := c.Locals("validatedClassTimes").(*classValidator.ValidatedClassTimes)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updated, err := services.UpdateSessionTimes(database.Database.Db, session.ID, reqData.StartTime, reqData.EndTime)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class rescheduled successfully!", updated)
}

// CompleteClass marks a class as given
func CompleteClass(c *fiber.Ctx) error {
	session, _, err := loadManagedSession(c)
	if session == nil {
		return err
	}

	updated, err := services.CompleteSession(database.Database.Db, session.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class completed successfully!", updated)
}

// CancelClass cancels a scheduled class. The session is kept for history.
func CancelClass(c *fiber.Ctx) error {
	session, _, err := loadManagedSession(c)
	if session == nil {
		return err
	}

	updated, err := services.CancelSession(database.Database.Db, session.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class cancelled successfully!", updated)
}
