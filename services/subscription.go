package services

import (
	"errors"
	"time"

	"learnhub/models"

	"gorm.io/gorm"
)

// Subscription pricing tiers. Amounts below the monthly price point are
// rejected rather than rounded into the nearest tier.
const (
	TierMonthlyMin   = 99
	TierQuarterlyMin = 297
	TierYearlyMin    = 1188
)

// ComputeWindow derives a subscription window from the paid amount:
// [99, 297) buys one month, [297, 1188) three months, 1188 and above one year.
func ComputeWindow(amount float64, from time.Time) (time.Time, time.Time, error) {
	switch {
	case amount >= TierYearlyMin:
		return from, from.AddDate(1, 0, 0), nil
	case amount >= TierQuarterlyMin:
		return from, from.AddDate(0, 3, 0), nil
	case amount >= TierMonthlyMin:
		return from, from.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, time.Time{}, newError(KindInvalidInput, "Amount does not match any subscription tier!")
	}
}

// ActivateSubscription activates a subscription of planType for the user backed
// by a COMPLETED payment. Upsert keyed by (user, plan type): an existing row is
// reset to a fresh window from now, discarding remaining time. Resubscribing
// therefore never extends; plan changes always start clean.
func ActivateSubscription(db *gorm.DB, userID uint, planType string, paymentID uint) (*models.Subscription, error) {
	if !models.IsValidPlanType(planType) {
		return nil, newError(KindInvalidInput, "Unknown subscription plan!")
	}

	var payment models.Payment
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", paymentID, userID, false).First(&payment).Error; err != nil {
		return nil, newError(KindPreconditionFailed, "Completed payment required to activate subscription!")
	}
	if payment.Status != models.PaymentStatusCompleted {
		return nil, newError(KindPreconditionFailed, "Completed payment required to activate subscription!")
	}
	// Single-use evidence: a payment already backing an enrollment or
	// subscription cannot fund another activation.
	if payment.EnrollmentID != nil || payment.SubscriptionID != nil {
		return nil, newError(KindPreconditionFailed, "Payment already used!")
	}

	startDate, endDate, err := ComputeWindow(payment.Amount, time.Now())
	if err != nil {
		return nil, err
	}

	tx := db.Begin()

	var subscription models.Subscription
	findErr := tx.Where("user_id = ? AND plan_type = ?", userID, planType).First(&subscription).Error

	switch {
	case findErr == nil:
		subscription.Status = models.SubscriptionActive
		subscription.StartDate = startDate
		subscription.EndDate = endDate
		subscription.AmountPaid = payment.Amount
		subscription.PaymentID = payment.ID
		subscription.AutoRenew = true
		subscription.ReminderSent = false
		subscription.IsDeleted = false
		if err := tx.Save(&subscription).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	case errors.Is(findErr, gorm.ErrRecordNotFound):
		subscription = models.Subscription{
			UserID:     userID,
			PlanType:   planType,
			Status:     models.SubscriptionActive,
			StartDate:  startDate,
			EndDate:    endDate,
			AmountPaid: payment.Amount,
			PaymentID:  payment.ID,
			AutoRenew:  true,
		}
		if err := tx.Create(&subscription).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, newError(KindConflict, "Subscription already being activated!")
			}
			return nil, err
		}
	default:
		tx.Rollback()
		return nil, findErr
	}

	if err := tx.Model(&models.Payment{}).Where("id = ?", payment.ID).
		Update("subscription_id", subscription.ID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	tx.Commit()

	return &subscription, nil
}

// CancelSubscription cancels an ACTIVE subscription owned by the user: auto
// renew off, window closed as of now, status CANCELLED.
func CancelSubscription(db *gorm.DB, userID, subscriptionID uint) (*models.Subscription, error) {
	var subscription models.Subscription
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", subscriptionID, userID, false).First(&subscription).Error; err != nil {
		return nil, newError(KindNotFound, "Subscription not found!")
	}

	if subscription.Status != models.SubscriptionActive {
		return nil, newError(KindPreconditionFailed, "Subscription is not active!")
	}

	subscription.AutoRenew = false
	subscription.EndDate = time.Now()
	subscription.Status = models.SubscriptionCancelled
	if err := db.Save(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}
