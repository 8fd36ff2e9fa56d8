package classController

import (
	"github.com/gofiber/fiber/v2"

	"studiofit/database"
	"studiofit/middleware"
	"studiofit/models"
	"studiofit/services"
	classValidator "studiofit/validators/classes"
)

// EnrollStudent adds a student to the class roster
func EnrollStudent(c *fiber.Ctx) error {
	session, _, err := loadManagedSession(c)
	if session == nil {
		return err
	}

	reqData, ok := c.Locals("validatedEnroll").(*classValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.StudentID, true, false).
		First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found or inactive!", nil)
	}

	enrollment, err := services.EnrollStudent(db, session.ID, student.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student enrolled successfully!", enrollment)
}

// UnenrollStudent removes a student from the class roster
func UnenrollStudent(c *fiber.Ctx) error {
	session, _, err := loadManagedSession(c)
	if session == nil {
		return err
	}

	studentID := c.Locals("studentID").(uint)

	if err := services.RemoveStudent(database.Database.Db, session.ID, studentID); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student removed successfully!", nil)
}
