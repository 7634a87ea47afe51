package subscriptionController

import (
	"time"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

// ActivateSubscription activates (or re-activates) a plan for the caller
func ActivateSubscription(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedActivateSubscription").(*struct {
		PlanType  string `json:"planType"`
		PaymentID uint   `json:"paymentId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	subscription, err := services.ActivateSubscription(database.Database.Db, userID, reqData.PlanType, reqData.PaymentID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	go utils.SendSubscriptionEmail(user.Email, user.Name, subscription.PlanType, subscription.EndDate)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription activated successfully!", subscription)
}

// CancelSubscription cancels the caller's ACTIVE subscription
func CancelSubscription(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCancelSubscription").(*struct {
		SubscriptionID uint `json:"subscriptionId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	subscription, err := services.CancelSubscription(database.Database.Db, userID, reqData.SubscriptionID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription cancelled!", subscription)
}

// GetMySubscriptions returns the caller's subscriptions
func GetMySubscriptions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var subscriptions []models.Subscription
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("end_date desc").
		Find(&subscriptions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscriptions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscriptions fetched!", subscriptions)
}

// AdminGetActiveSubscriptions returns all subscriptions for the admin view
func AdminGetActiveSubscriptions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	status := c.Query("status", models.SubscriptionActive)
	offset := (page - 1) * limit

	db := database.Database.Db

	// Auto-expire lapsed subscriptions first
	now := time.Now()
	db.Model(&models.Subscription{}).
		Where("status = ? AND end_date < ?", models.SubscriptionActive, now).
		Update("status", models.SubscriptionExpired)

	query := db.Model(&models.Subscription{}).Where("is_deleted = ?", false)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var subscriptions []models.Subscription
	if err := query.Offset(offset).Limit(limit).Order("end_date asc").Find(&subscriptions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscriptions!", nil)
	}

	// Add user details to response
	type SubscriptionWithUser struct {
		models.Subscription
		UserName  string `json:"userName"`
		UserEmail string `json:"userEmail"`
	}

	var response []SubscriptionWithUser
	for _, sub := range subscriptions {
		var subUser models.User
		db.Select("name, email").Where("id = ?", sub.UserID).First(&subUser)

		response = append(response, SubscriptionWithUser{
			Subscription: sub,
			UserName:     subUser.Name,
			UserEmail:    subUser.Email,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscriptions fetched!", fiber.Map{
		"subscriptions": response,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetExpiringSubscriptions returns subscriptions expiring within 7 days
func AdminGetExpiringSubscriptions(c *fiber.Ctx) error {
	db := database.Database.Db
	now := time.Now()
	expiryWindow := now.AddDate(0, 0, 7)

	var subscriptions []models.Subscription
	if err := db.
		Where("status = ? AND end_date BETWEEN ? AND ?", models.SubscriptionActive, now, expiryWindow).
		Order("end_date asc").
		Find(&subscriptions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch expiring subscriptions!", nil)
	}

	type ExpiringSubscription struct {
		models.Subscription
		UserName     string `json:"userName"`
		UserEmail    string `json:"userEmail"`
		DaysToExpiry int    `json:"daysToExpiry"`
	}

	var response []ExpiringSubscription
	for _, sub := range subscriptions {
		var subUser models.User
		db.Select("name, email").Where("id = ?", sub.UserID).First(&subUser)

		response = append(response, ExpiringSubscription{
			Subscription: sub,
			UserName:     subUser.Name,
			UserEmail:    subUser.Email,
			DaysToExpiry: int(sub.EndDate.Sub(now).Hours() / 24),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Expiring subscriptions fetched!", response)
}
