package courseValidator

import (
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress validates the progress update payload
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LessonID       *uint   `json:"lessonId"`
			Progress       float64 `json:"progress"`
			TimeSpentDelta int64   `json:"timeSpentDelta"`
			Completed      *bool   `json:"completed"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Progress < 0 || reqData.Progress > 100 {
			errors["progress"] = "Progress must be between 0 and 100!"
		}
		if reqData.TimeSpentDelta < 0 {
			errors["timeSpentDelta"] = "Time spent cannot be negative!"
		}
		if reqData.LessonID != nil && *reqData.LessonID == 0 {
			errors["lessonId"] = "Invalid lesson ID!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
