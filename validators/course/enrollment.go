package courseValidator

import (
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse validates the enrollment request body. The payment reference is
// optional; free courses need none.
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PaymentID *uint `json:"paymentId"`
		})

		// An empty body is fine for free courses
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
			if reqData.PaymentID != nil && *reqData.PaymentID == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment ID!", nil)
			}
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}
