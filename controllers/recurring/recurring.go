package recurringController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"studiofit/database"
	"studiofit/middleware"
	"studiofit/models"
	"studiofit/services"
	recurringValidator "studiofit/validators/recurring"
)

// CreateTemplate creates a weekly recurring class template
func CreateTemplate(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTemplate").(*recurringValidator.CreateTemplateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Instructors always create templates for themselves
	instructorID := reqData.InstructorID
	if user.Role == models.RoleInstructor {
		instructorID = user.ID
	}

	var instructor models.User
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", instructorID, true, false).
		First(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found or inactive!", nil)
	}

	template := models.RecurringClass{
		Title:          reqData.Title,
		InstructorID:   instructorID,
		DayOfWeek:      reqData.DayOfWeek,
		StartTimeOfDay: reqData.StartTimeOfDay,
		EndTimeOfDay:   reqData.EndTimeOfDay,
		MaxStudents:    reqData.MaxStudents,
		IsActive:       true,
	}
	if err := db.Create(&template).Error; err != nil {
		log.Printf("Error creating recurring class: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create recurring class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Recurring class created successfully!", template)
}

// ListTemplates lists recurring class templates, instructors only see their own
func ListTemplates(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Where("is_deleted = ?", false)
	if user.Role == models.RoleInstructor {
		db = db.Where("instructor_id = ?", user.ID)
	}

	var templates []models.RecurringClass
	if err := db.Find(&templates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recurring classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recurring classes fetched successfully!", templates)
}

// DeactivateTemplate stops a template from materializing future sessions.
// Sessions already created stay untouched.
func DeactivateTemplate(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	templateID := c.Locals("templateID").(uint)
	db := database.Database.Db

	var template models.RecurringClass
	if err := db.Where("id = ? AND is_deleted = ?", templateID, false).First(&template).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recurring class not found!", nil)
	}

	if user.Role == models.RoleInstructor && template.InstructorID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	if err := db.Model(&template).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deactivate recurring class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recurring class deactivated successfully!", template)
}

// RunReplication triggers the weekly materialization manually (admin only,
// same run the scheduler performs)
func RunReplication(c *fiber.Ctx) error {
	report, err := services.ReplicateUpcomingWeek(database.Database.Db, time.Now())
	if err != nil {
		log.Printf("Error running replication: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to run replication!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Replication completed!", report)
}
