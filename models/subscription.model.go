package models

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionStatus enum values
const (
	SubscriptionActive    = "ACTIVE"
	SubscriptionExpired   = "EXPIRED"
	SubscriptionCancelled = "CANCELLED"
)

// SubscriptionPlan enum values
const (
	PlanBasic    = "BASIC"
	PlanStandard = "STANDARD"
	PlanPremium  = "PREMIUM"
)

// IsValidPlanType reports whether planType names a known plan
func IsValidPlanType(planType string) bool {
	switch planType {
	case PlanBasic, PlanStandard, PlanPremium:
		return true
	}
	return false
}

// Subscription tracks a user's platform subscription. One row per (user, plan type);
// re-activating resets the window from now. EndDate is always derived from the paid
// amount and StartDate, never set independently.
type Subscription struct {
	gorm.Model
	UserID       uint      `gorm:"not null;uniqueIndex:idx_user_plan" json:"user_id"`
	PlanType     string    `gorm:"not null;type:varchar(20);uniqueIndex:idx_user_plan" json:"plan_type"`
	Status       string    `gorm:"not null;type:varchar(20);default:'ACTIVE'" json:"status"`
	StartDate    time.Time `gorm:"not null" json:"start_date"`
	EndDate      time.Time `gorm:"not null;index" json:"end_date"`
	AmountPaid   float64   `gorm:"not null;default:0" json:"amount_paid"`
	PaymentID    uint      `gorm:"index" json:"payment_id"`
	AutoRenew    bool      `gorm:"default:true" json:"auto_renew"`
	ReminderSent bool      `gorm:"default:false" json:"reminder_sent"` // Track if expiry reminder was sent
	IsDeleted    bool      `gorm:"default:false" json:"is_deleted"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
