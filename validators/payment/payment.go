package paymentValidator

import (
	"learnhub/middleware"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePayment validates the payment creation payload
func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount      float64 `json:"amount"`
			Method      string  `json:"method"`
			Description string  `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than zero!"
		}
		if !models.IsValidPaymentMethod(reqData.Method) {
			errors["method"] = "Unknown payment method!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreatePayment", reqData)
		return c.Next()
	}
}

// VerifyPayment validates the payment verification payload
func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PaymentID     uint   `json:"paymentId"`
			TransactionID string `json:"transactionId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PaymentID == 0 {
			errors["paymentId"] = "Payment ID is required!"
		}
		if reqData.TransactionID == "" {
			errors["transactionId"] = "Transaction ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerifyPayment", reqData)
		return c.Next()
	}
}

// FailPayment validates the payment failure payload
func FailPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PaymentID uint `json:"paymentId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.PaymentID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"paymentId": "Payment ID is required!"})
		}

		c.Locals("validatedFailPayment", reqData)
		return c.Next()
	}
}
