package services

import (
	"errors"
	"time"

	"learnhub/models"
	courseModels "learnhub/models/course"

	"gorm.io/gorm"
)

// Enroll creates an enrollment for (userID, courseID). Free courses enroll
// directly; paid courses require paymentID to resolve to a COMPLETED payment
// owned by the user covering the course price. The unique index on
// (user_id, course_id) backs the duplicate check, so a concurrent race resolves
// to exactly one row and the loser gets the conflict error.
func Enroll(db *gorm.DB, userID, courseID uint, paymentID *uint) (*courseModels.Enrollment, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, courseModels.StatusActive).First(&course).Error; err != nil {
		return nil, newError(KindNotFound, "Course not found or not active!")
	}

	// A cancelled row is reactivated rather than recreated; the unique index
	// permits only one row per (user, course) across its whole lifetime.
	var existing courseModels.Enrollment
	hasExisting := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&existing).Error == nil
	if hasExisting && existing.Status == courseModels.EnrollmentActive {
		return nil, newError(KindConflict, "User already enrolled in this course!")
	}

	enrollment := courseModels.Enrollment{
		UserID:         userID,
		CourseID:       courseID,
		Status:         courseModels.EnrollmentActive,
		EnrollmentType: courseModels.EnrollmentTypeFree,
		EnrolledAt:     time.Now(),
	}

	if !course.IsFree() {
		if paymentID == nil {
			return nil, newError(KindPreconditionFailed, "Payment required to enroll in this course!")
		}

		var payment models.Payment
		if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", *paymentID, userID, false).First(&payment).Error; err != nil {
			return nil, newError(KindPreconditionFailed, "Payment required to enroll in this course!")
		}
		if payment.Status != models.PaymentStatusCompleted {
			return nil, newError(KindPreconditionFailed, "Payment is not completed!")
		}
		// A completed payment is single-use evidence; once linked to an
		// enrollment or subscription it cannot fund anything else.
		if payment.EnrollmentID != nil || payment.SubscriptionID != nil {
			return nil, newError(KindPreconditionFailed, "Payment already used!")
		}
		if payment.Amount < *course.Price {
			return nil, newError(KindPreconditionFailed, "Payment amount does not cover the course price!")
		}

		enrollment.EnrollmentType = courseModels.EnrollmentTypePaid
		enrollment.PaymentID = paymentID
	}

	tx := db.Begin()
	if hasExisting {
		existing.Status = courseModels.EnrollmentActive
		existing.EnrollmentType = enrollment.EnrollmentType
		existing.PaymentID = enrollment.PaymentID
		existing.EnrolledAt = enrollment.EnrolledAt
		existing.CancelledAt = nil
		if err := tx.Save(&existing).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		enrollment = existing
	} else if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newError(KindConflict, "User already enrolled in this course!")
		}
		return nil, err
	}

	// Link the payment to the enrollment it funded
	if enrollment.PaymentID != nil {
		if err := tx.Model(&models.Payment{}).Where("id = ?", *enrollment.PaymentID).
			Update("enrollment_id", enrollment.ID).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	tx.Commit()

	return &enrollment, nil
}

// CancelEnrollment marks an ACTIVE enrollment CANCELLED
func CancelEnrollment(db *gorm.DB, userID, courseID uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return nil, newError(KindNotFound, "Enrollment not found!")
	}
	if enrollment.Status != courseModels.EnrollmentActive {
		return nil, newError(KindPreconditionFailed, "Enrollment is not active!")
	}

	now := time.Now()
	enrollment.Status = courseModels.EnrollmentCancelled
	enrollment.CancelledAt = &now
	if err := db.Save(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}
