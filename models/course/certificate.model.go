package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents an issued certificate for course completion. The
// certificate number doubles as a public verification token; the composite
// unique index guarantees at most one certificate per (user, course).
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course_certificate"`
	CourseID          uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course_certificate"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique;not null"`
	VerificationURL   string    `json:"verification_url"`
	IssuedAt          time.Time `json:"issued_at"`
	IsDeleted         bool      `gorm:"default:false"`
}
