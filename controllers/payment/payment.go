package paymentController

import (
	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

// CreatePayment records a PENDING payment and opens a gateway checkout.
// In demo mode the gateway round trip is skipped and the client verifies with
// the returned order reference as the transaction id.
func CreatePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCreatePayment").(*struct {
		Amount      float64 `json:"amount"`
		Method      string  `json:"method"`
		Description string  `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	payment, err := services.RecordPayment(database.Database.Db, userID, reqData.Amount, reqData.Method, reqData.Description)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	checkout, gwErr := utils.CreateCheckout(payment.GatewayOrderID, payment.Amount, user.Email)
	if gwErr != nil {
		// Leave the payment PENDING; the client can retry checkout
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment gateway unavailable!", fiber.Map{
			"payment": payment,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment created successfully!", fiber.Map{
		"payment":      payment,
		"checkout_url": checkout.CheckoutURL,
		"demo":         config.AppConfig.GatewayDemo,
	})
}

// VerifyPayment settles a PENDING payment with the gateway transaction id
func VerifyPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedVerifyPayment").(*struct {
		PaymentID     uint   `json:"paymentId"`
		TransactionID string `json:"transactionId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	payment, err := services.VerifyPayment(database.Database.Db, userID, reqData.PaymentID, reqData.TransactionID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	go utils.SendPaymentReceiptEmail(user.Email, user.Name, payment.Amount, payment.TransactionID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment verified successfully!", payment)
}

// FailPayment marks a PENDING payment as FAILED after a cancelled or
// rejected checkout
func FailPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedFailPayment").(*struct {
		PaymentID uint `json:"paymentId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	payment, err := services.FailPayment(database.Database.Db, userID, reqData.PaymentID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment marked as failed!", payment)
}

// GetPaymentHistory returns the caller's payments
func GetPaymentHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	status := c.Query("status") // PENDING, COMPLETED, FAILED
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Payment{}).Where("user_id = ? AND is_deleted = ?", userID, false)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var payments []models.Payment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
