package courseValidator

import (
	"strconv"
	"strings"

	"learnhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CourseID validates the :id path param and stashes it in locals
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateCourse validates the admin course creation payload
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string   `json:"title" validate:"required,min=3,max=200"`
			Description string   `json:"description" validate:"required,min=10"`
			Price       *float64 `json:"price" validate:"omitempty,gte=0"`
			Duration    int64    `json:"duration" validate:"gte=0"`
			Category    string   `json:"category" validate:"omitempty,max=100"`
			Level       string   `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Failed validation: " + fieldErr.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the admin course update payload
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       *string  `json:"title" validate:"omitempty,min=3,max=200"`
			Description *string  `json:"description" validate:"omitempty,min=10"`
			Price       *float64 `json:"price" validate:"omitempty,gte=0"`
			Duration    *int64   `json:"duration" validate:"omitempty,gte=0"`
			Category    *string  `json:"category" validate:"omitempty,max=100"`
			Level       *string  `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Failed validation: " + fieldErr.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateCourse", reqData)
		return c.Next()
	}
}

// AddLesson validates the admin lesson creation payload
func AddLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=3,max=200"`
			Description string `json:"description"`
			ContentType string `json:"contentType" validate:"omitempty,oneof=VIDEO ARTICLE QUIZ"`
			ContentURL  string `json:"contentUrl"`
			Duration    int64  `json:"duration" validate:"gte=0"`
			OrderIndex  int    `json:"orderIndex" validate:"gte=0"`
			IsPreview   bool   `json:"isPreview"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Failed validation: " + fieldErr.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		if reqData.ContentType == "" {
			reqData.ContentType = "VIDEO"
		}

		c.Locals("validatedAddLesson", reqData)
		return c.Next()
	}
}
