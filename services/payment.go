package services

import (
	"time"

	"learnhub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordPayment creates a PENDING payment for the user. The gateway order id is
// returned to the client for the checkout step; VerifyPayment settles it.
func RecordPayment(db *gorm.DB, userID uint, amount float64, method, description string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, newError(KindInvalidInput, "Amount must be greater than zero!")
	}
	if !models.IsValidPaymentMethod(method) {
		return nil, newError(KindInvalidInput, "Unknown payment method!")
	}

	payment := models.Payment{
		UserID:         userID,
		Amount:         amount,
		Method:         method,
		Status:         models.PaymentStatusPending,
		GatewayOrderID: uuid.NewString(),
		Description:    description,
	}

	if err := db.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// VerifyPayment transitions a PENDING payment owned by userID to COMPLETED,
// recording the gateway transaction id. Safe to call at most once: a payment
// already COMPLETED or FAILED yields a conflict, never a silent success.
func VerifyPayment(db *gorm.DB, userID, paymentID uint, transactionID string) (*models.Payment, error) {
	if transactionID == "" {
		return nil, newError(KindInvalidInput, "Transaction ID is required!")
	}

	var payment models.Payment
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", paymentID, userID, false).First(&payment).Error; err != nil {
		return nil, newError(KindNotFound, "Payment not found!")
	}

	if payment.Status != models.PaymentStatusPending {
		return nil, newError(KindConflict, "Payment already processed!")
	}

	now := time.Now()

	// Guard the transition in the store as well: only a still-PENDING row is
	// updated, so two concurrent verifies settle the payment exactly once.
	res := db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", payment.ID, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":         models.PaymentStatusCompleted,
			"transaction_id": transactionID,
			"paid_at":        now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, newError(KindConflict, "Payment already processed!")
	}

	payment.Status = models.PaymentStatusCompleted
	payment.TransactionID = transactionID
	payment.PaidAt = &now
	return &payment, nil
}

// FailPayment marks a PENDING payment FAILED (gateway decline)
func FailPayment(db *gorm.DB, userID, paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", paymentID, userID, false).First(&payment).Error; err != nil {
		return nil, newError(KindNotFound, "Payment not found!")
	}
	if payment.Status != models.PaymentStatusPending {
		return nil, newError(KindConflict, "Payment already processed!")
	}

	// Same store-level guard as VerifyPayment: only a still-PENDING row may
	// transition, so a concurrent verify can never be overwritten with FAILED.
	res := db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", payment.ID, models.PaymentStatusPending).
		Update("status", models.PaymentStatusFailed)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, newError(KindConflict, "Payment already processed!")
	}
	payment.Status = models.PaymentStatusFailed
	return &payment, nil
}
