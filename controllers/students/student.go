package studentController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"studiofit/database"
	"studiofit/middleware"
	"studiofit/models"
	"studiofit/utils"
	studentValidator "studiofit/validators/students"
)

// CreateStudent registers a new student. When a CEP is supplied the address
// fields are filled from the postal code service; a lookup failure is logged
// and never blocks the registration.
func CreateStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudent").(*studentValidator.CreateStudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.Student{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	student := models.Student{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		Cep:      reqData.Cep,
		IsActive: true,
	}

	if reqData.Cep != "" {
		if address, err := utils.LookupCep(reqData.Cep); err != nil {
			log.Printf("CEP lookup failed for %s: %v", reqData.Cep, err)
		} else {
			student.Street = address.Street
			student.District = address.District
			student.City = address.City
			student.State = address.State
		}
	}

	if err := db.Create(&student).Error; err != nil {
		log.Printf("Error saving student to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student registered successfully!", student)
}

// ListStudents returns all active students
func ListStudents(c *fiber.Ctx) error {
	var students []models.Student
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("name asc").Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}

// DeactivateStudent flags a student as inactive, keeping enrollment history
func DeactivateStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)
	db := database.Database.Db

	var student models.Student
	if err := db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	if err := db.Model(&student).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deactivate student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student deactivated successfully!", student)
}

// AssignPlan subscribes a student to a plan and opens the first billing cycle
func AssignPlan(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)

	reqData, ok := c.Locals("validatedAssignPlan").(*studentValidator.AssignPlanRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var plan models.Plan
	if err := db.Where("id = ? AND is_deleted = ?", reqData.PlanID, false).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	payment := models.Payment{
		StudentID: student.ID,
		PlanID:    plan.ID,
		Amount:    plan.Price,
		DueDate:   time.Now().AddDate(0, 1, 0),
		Status:    models.PaymentPending,
	}

	// Plan assignment and the first charge go together
	tx := db.Begin()
	if err := tx.Model(&student).Update("plan_id", plan.ID).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign plan!", nil)
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign plan!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan assigned successfully!", fiber.Map{
		"student": student,
		"payment": payment,
	})
}

// LookupCep proxies the postal code lookup for the frontend
func LookupCep(c *fiber.Ctx) error {
	cep := c.Params("cep")

	address, err := utils.LookupCep(cep)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "CEP not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "CEP fetched successfully!", address)
}
