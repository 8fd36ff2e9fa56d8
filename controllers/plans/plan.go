package planController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"studiofit/database"
	"studiofit/middleware"
	"studiofit/models"
	planValidator "studiofit/validators/plans"
)

// CreatePlan creates a membership plan
func CreatePlan(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPlan").(*planValidator.CreatePlanRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	plan := models.Plan{
		Name:            reqData.Name,
		Description:     reqData.Description,
		Price:           reqData.Price,
		SessionsPerWeek: reqData.SessionsPerWeek,
	}
	if err := database.Database.Db.Create(&plan).Error; err != nil {
		log.Printf("Error creating plan: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Plan created successfully!", plan)
}

// ListPlans returns all plans
func ListPlans(c *fiber.Ctx) error {
	var plans []models.Plan
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("price asc").Find(&plans).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plans!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plans fetched successfully!", plans)
}

// DeletePlan soft deletes a plan; students keep their historical payments
func DeletePlan(c *fiber.Ctx) error {
	planID := c.Locals("planID").(uint)
	db := database.Database.Db

	var plan models.Plan
	if err := db.Where("id = ? AND is_deleted = ?", planID, false).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	if err := db.Model(&plan).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan deleted successfully!", nil)
}
