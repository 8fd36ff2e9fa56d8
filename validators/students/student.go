package studentValidator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studiofit/middleware"
)

var validate = validator.New()

var cepRe = regexp.MustCompile(`^\d{8}$`)

// CreateStudentRequest is the student registration payload
type CreateStudentRequest struct {
	Name   string `json:"name" validate:"required,min=3"`
	Email  string `json:"email" validate:"required,email"`
	Mobile string `json:"mobile"`
	Cep    string `json:"cep"`
}

// CreateStudent validates the student registration payload
func CreateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateStudentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
		}

		// CEP is optional but must be 8 digits when present
		reqData.Cep = strings.ReplaceAll(strings.ReplaceAll(reqData.Cep, "-", ""), " ", "")
		if reqData.Cep != "" && !cepRe.MatchString(reqData.Cep) {
			errors["cep"] = "CEP must have 8 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudent", reqData)
		return c.Next()
	}
}

// AssignPlanRequest is the plan assignment payload
type AssignPlanRequest struct {
	PlanID uint `json:"plan_id" validate:"required"`
}

// AssignPlan validates the plan assignment payload
func AssignPlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignPlanRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"plan_id": "Plan ID is required!",
			})
		}

		c.Locals("validatedAssignPlan", reqData)
		return c.Next()
	}
}

// StudentID validates the student id path parameter
func StudentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Student ID!", nil)
		}

		c.Locals("studentID", uint(id))
		return c.Next()
	}
}
