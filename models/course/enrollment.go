package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment status enum values
const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCancelled = "CANCELLED"
)

// Enrollment type enum values
const (
	EnrollmentTypeFree = "FREE"
	EnrollmentTypePaid = "PAID"
)

// Enrollment tracks a user's enrollment in a course. The composite unique index
// makes check-then-create safe under concurrent requests: exactly one row can
// exist per (user, course).
type Enrollment struct {
	gorm.Model
	UserID         uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course_enrollment"`
	CourseID       uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course_enrollment"`
	Status         string     `json:"status" gorm:"default:'ACTIVE'"`          // ACTIVE, CANCELLED
	EnrollmentType string     `json:"enrollment_type" gorm:"default:'FREE'"`   // FREE, PAID
	PaymentID      *uint      `json:"payment_id" gorm:"index"`                 // Set for PAID enrollments
	EnrolledAt     time.Time  `json:"enrolled_at"`
	CancelledAt    *time.Time `json:"cancelled_at"`
	IsDeleted      bool       `gorm:"default:false"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
