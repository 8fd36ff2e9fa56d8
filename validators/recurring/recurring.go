package recurringValidator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studiofit/middleware"
)

var validate = validator.New()

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// CreateTemplateRequest is the recurring class template payload
type CreateTemplateRequest struct {
	Title          string `json:"title" validate:"required,min=3"`
	InstructorID   uint   `json:"instructor_id" validate:"required"`
	DayOfWeek      int    `json:"day_of_week" validate:"min=0,max=6"` // 0 = Sunday
	StartTimeOfDay string `json:"start_time_of_day" validate:"required"`
	EndTimeOfDay   string `json:"end_time_of_day" validate:"required"`
	MaxStudents    int    `json:"max_students" validate:"required,min=1"`
}

// CreateTemplate validates the template creation payload
func CreateTemplate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTemplateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
		}

		if reqData.StartTimeOfDay != "" && !timeOfDayRe.MatchString(reqData.StartTimeOfDay) {
			errors["start_time_of_day"] = "Start time must be in HH:MM format!"
		}
		if reqData.EndTimeOfDay != "" && !timeOfDayRe.MatchString(reqData.EndTimeOfDay) {
			errors["end_time_of_day"] = "End time must be in HH:MM format!"
		}
		// "HH:MM" strings compare correctly as text
		if len(errors) == 0 && reqData.EndTimeOfDay <= reqData.StartTimeOfDay {
			errors["end_time_of_day"] = "End time must be after start time!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTemplate", reqData)
		return c.Next()
	}
}

// TemplateID validates the template id path parameter
func TemplateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Template ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Template ID!", nil)
		}

		c.Locals("templateID", uint(id))
		return c.Next()
	}
}
