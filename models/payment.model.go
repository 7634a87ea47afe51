package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentStatus enum values
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
)

// PaymentMethod enum values
const (
	PaymentMethodCreditCard = "CREDIT_CARD"
	PaymentMethodDebitCard  = "DEBIT_CARD"
	PaymentMethodNetBanking = "NET_BANKING"
	PaymentMethodUPI        = "UPI"
	PaymentMethodWallet     = "WALLET"
)

// PaymentMethods lists every accepted payment method
var PaymentMethods = []string{
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodNetBanking,
	PaymentMethodUPI,
	PaymentMethodWallet,
}

// IsValidPaymentMethod reports whether method is one of the accepted values
func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Payment records a payment attempt and its outcome. A COMPLETED payment is
// immutable evidence; only a PENDING payment may transition to COMPLETED.
type Payment struct {
	gorm.Model
	UserID         uint       `gorm:"index;not null" json:"user_id"`
	Amount         float64    `gorm:"not null" json:"amount"`
	Method         string     `gorm:"type:varchar(20);not null" json:"method"`
	Status         string     `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	GatewayOrderID string     `gorm:"index" json:"gateway_order_id"` // Order reference issued at checkout
	TransactionID  string     `json:"transaction_id"`                // Gateway transaction id recorded on verification
	EnrollmentID   *uint      `gorm:"index" json:"enrollment_id"`
	SubscriptionID *uint      `gorm:"index" json:"subscription_id"`
	Description    string     `json:"description"`
	PaidAt         *time.Time `json:"paid_at"`
	IsDeleted      bool       `gorm:"default:false" json:"is_deleted"`
}
