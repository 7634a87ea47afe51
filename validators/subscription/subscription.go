package subscriptionValidator

import (
	"learnhub/middleware"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

// ActivateSubscription validates the activation payload
func ActivateSubscription() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PlanType  string `json:"planType"`
			PaymentID uint   `json:"paymentId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !models.IsValidPlanType(reqData.PlanType) {
			errors["planType"] = "Unknown subscription plan!"
		}
		if reqData.PaymentID == 0 {
			errors["paymentId"] = "Payment ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedActivateSubscription", reqData)
		return c.Next()
	}
}

// CancelSubscription validates the cancellation payload
func CancelSubscription() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SubscriptionID uint `json:"subscriptionId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.SubscriptionID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Subscription ID is required!", nil)
		}

		c.Locals("validatedCancelSubscription", reqData)
		return c.Next()
	}
}
