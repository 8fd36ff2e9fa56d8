package classValidator

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studiofit/middleware"
)

var validate = validator.New()

// CreateClassRequest is the raw create payload; times come in as RFC3339
type CreateClassRequest struct {
	Title        string `json:"title" validate:"required,min=3"`
	StartTime    string `json:"start_time" validate:"required"`
	EndTime      string `json:"end_time" validate:"required"`
	InstructorID uint   `json:"instructor_id"`
	MaxStudents  int    `json:"max_students" validate:"required,min=1"`
}

// ValidatedClass carries the parsed create/update payload to the controller
type ValidatedClass struct {
	Title        string
	StartTime    time.Time
	EndTime      time.Time
	InstructorID uint
	MaxStudents  int
}

// CreateClass validates the class creation payload
func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateClassRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
		}

		start, err := time.Parse(time.RFC3339, reqData.StartTime)
		if err != nil && errors["starttime"] == "" {
			errors["start_time"] = "Start time must be a valid RFC3339 timestamp!"
		}
		end, err := time.Parse(time.RFC3339, reqData.EndTime)
		if err != nil && errors["endtime"] == "" {
			errors["end_time"] = "End time must be a valid RFC3339 timestamp!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", &ValidatedClass{
			Title:        reqData.Title,
			StartTime:    start,
			EndTime:      end,
			InstructorID: reqData.InstructorID,
			MaxStudents:  reqData.MaxStudents,
		})
		return c.Next()
	}
}

// UpdateClassTimesRequest is the reschedule payload
type UpdateClassTimesRequest struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// ValidatedClassTimes carries the parsed reschedule payload
type ValidatedClassTimes struct {
	StartTime time.Time
	EndTime   time.Time
}

// UpdateClassTimes validates the reschedule payload
func UpdateClassTimes() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateClassTimesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		start, err := time.Parse(time.RFC3339, reqData.StartTime)
		if err != nil {
			errors["start_time"] = "Start time must be a valid RFC3339 timestamp!"
		}
		end, err := time.Parse(time.RFC3339, reqData.EndTime)
		if err != nil {
			errors["end_time"] = "End time must be a valid RFC3339 timestamp!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClassTimes", &ValidatedClassTimes{StartTime: start, EndTime: end})
		return c.Next()
	}
}

// ClassID validates the class id path parameter
func ClassID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Class ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Class ID!", nil)
		}

		c.Locals("classID", uint(id))
		return c.Next()
	}
}

// EnrollRequest is the enrollment payload
type EnrollRequest struct {
	StudentID uint `json:"student_id" validate:"required"`
}

// Enroll validates the enrollment payload
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"student_id": "Student ID is required!",
			})
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// StudentID validates the student id path parameter
func StudentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("studentId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Student ID!", nil)
		}

		c.Locals("studentID", uint(id))
		return c.Next()
	}
}
