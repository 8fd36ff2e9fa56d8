package planValidator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studiofit/middleware"
)

var validate = validator.New()

// CreatePlanRequest is the plan payload
type CreatePlanRequest struct {
	Name            string  `json:"name" validate:"required,min=3"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	SessionsPerWeek int     `json:"sessions_per_week" validate:"required,min=1,max=7"`
}

// CreatePlan validates the plan payload
func CreatePlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePlanRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPlan", reqData)
		return c.Next()
	}
}

// PlanID validates the plan id path parameter
func PlanID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Plan ID!", nil)
		}

		c.Locals("planID", uint(id))
		return c.Next()
	}
}
