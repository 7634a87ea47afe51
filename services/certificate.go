package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"learnhub/config"
	courseModels "learnhub/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateCertificateNumber builds a globally unique, unguessable certificate
// number usable as a public verification token
func GenerateCertificateNumber() string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("LH-%d-%s", time.Now().UnixNano(), strings.ToUpper(suffix))
}

// VerificationURL is the deterministic public link for a certificate number
func VerificationURL(certificateNumber string) string {
	return config.AppConfig.BaseURL + "/certificate/verify/" + certificateNumber
}

// IssueCertificate issues a certificate for (userID, courseID). Requires a
// completed course-level progress row; at most one certificate per pair, backed
// by the unique index so concurrent issuance creates exactly one row.
func IssueCertificate(db *gorm.DB, userID, courseID uint) (*courseModels.Certificate, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, newError(KindNotFound, "Course not found!")
	}

	completed, err := CourseCompleted(db, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, newError(KindPreconditionFailed, "Please complete the course before requesting a certificate!")
	}

	var existing courseModels.Certificate
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return nil, newError(KindConflict, "Certificate already issued!")
	}

	number := GenerateCertificateNumber()
	certificate := courseModels.Certificate{
		UserID:            userID,
		CourseID:          courseID,
		CertificateNumber: number,
		VerificationURL:   VerificationURL(number),
		IssuedAt:          time.Now(),
	}

	if err := db.Create(&certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newError(KindConflict, "Certificate already issued!")
		}
		return nil, err
	}
	return &certificate, nil
}

// VerifyCertificate resolves a certificate by its public number
func VerifyCertificate(db *gorm.DB, certificateNumber string) (*courseModels.Certificate, error) {
	var certificate courseModels.Certificate
	if err := db.Where("certificate_number = ? AND is_deleted = ?", certificateNumber, false).First(&certificate).Error; err != nil {
		return nil, newError(KindNotFound, "Certificate not found!")
	}
	return &certificate, nil
}
