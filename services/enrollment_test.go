package services_test

import (
	"testing"

	"learnhub/models"
	courseModels "learnhub/models/course"
	"learnhub/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll_FreeCourse(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "free@test.com")
	course := createTestCourse(t, db, "Intro to Go", nil)

	enrollment, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollmentActive, enrollment.Status)
	assert.Equal(t, courseModels.EnrollmentTypeFree, enrollment.EnrollmentType)
	assert.Nil(t, enrollment.PaymentID)

	// No payment row is created for a free enrollment
	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.Equal(t, int64(0), paymentCount)
}

func TestEnroll_DuplicateReturnsConflict(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "dup@test.com")
	course := createTestCourse(t, db, "Databases 101", nil)

	_, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)

	_, err = services.Enroll(db, user.ID, course.ID, nil)
	require.Error(t, err)
	assert.Equal(t, services.KindConflict, services.ErrKind(err))

	// Exactly one enrollment row exists
	var count int64
	db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnroll_CourseNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "nocourse@test.com")

	_, err := services.Enroll(db, user.ID, 9999, nil)
	require.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.ErrKind(err))
}

func TestEnroll_InactiveCourseNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "draft@test.com")

	course := createTestCourse(t, db, "Unreleased", nil)
	db.Model(course).Update("status", courseModels.StatusDraft)

	_, err := services.Enroll(db, user.ID, course.ID, nil)
	require.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.ErrKind(err))
}

func TestEnroll_PaidCourseRequiresPayment(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "paid@test.com")
	course := createTestCourse(t, db, "Advanced Go", floatPtr(199))

	// Without a payment
	_, err := services.Enroll(db, user.ID, course.ID, nil)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))

	// With a pending payment
	pending, recErr := services.RecordPayment(db, user.ID, 199, models.PaymentMethodUPI, "Advanced Go")
	require.NoError(t, recErr)
	_, err = services.Enroll(db, user.ID, course.ID, &pending.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))

	// With a completed payment
	payment := createCompletedPayment(t, db, user.ID, 199)
	enrollment, err := services.Enroll(db, user.ID, course.ID, &payment.ID)
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollmentTypePaid, enrollment.EnrollmentType)
	require.NotNil(t, enrollment.PaymentID)
	assert.Equal(t, payment.ID, *enrollment.PaymentID)

	// Payment row now points back at the enrollment
	var linked models.Payment
	require.NoError(t, db.First(&linked, payment.ID).Error)
	require.NotNil(t, linked.EnrollmentID)
	assert.Equal(t, enrollment.ID, *linked.EnrollmentID)
}

func TestEnroll_PaymentBelowPriceRejected(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "short@test.com")
	course := createTestCourse(t, db, "Premium Course", floatPtr(499))

	payment := createCompletedPayment(t, db, user.ID, 199)
	_, err := services.Enroll(db, user.ID, course.ID, &payment.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))
}

func TestEnroll_PaymentSingleUse(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "reuse@test.com")
	first := createTestCourse(t, db, "First Paid", floatPtr(99))
	second := createTestCourse(t, db, "Second Paid", floatPtr(99))

	payment := createCompletedPayment(t, db, user.ID, 99)
	enrollment, err := services.Enroll(db, user.ID, first.ID, &payment.ID)
	require.NoError(t, err)

	// The same payment cannot fund a second enrollment
	_, err = services.Enroll(db, user.ID, second.ID, &payment.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))

	// Nor a subscription
	_, err = services.ActivateSubscription(db, user.ID, models.PlanBasic, payment.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))

	// The original link is untouched
	var stored models.Payment
	require.NoError(t, db.First(&stored, payment.ID).Error)
	require.NotNil(t, stored.EnrollmentID)
	assert.Equal(t, enrollment.ID, *stored.EnrollmentID)
	assert.Nil(t, stored.SubscriptionID)
}

func TestEnroll_OtherUsersPaymentRejected(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@test.com")
	other := createTestUser(t, db, "other@test.com")
	course := createTestCourse(t, db, "Paid Course", floatPtr(99))

	payment := createCompletedPayment(t, db, owner.ID, 99)
	_, err := services.Enroll(db, other.ID, course.ID, &payment.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))
}

func TestCancelEnrollment(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "cancel@test.com")
	course := createTestCourse(t, db, "Short Course", nil)

	_, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)

	cancelled, err := services.CancelEnrollment(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollmentCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	// Cancelling twice fails
	_, err = services.CancelEnrollment(db, user.ID, course.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))
}

func TestEnroll_ReenrollAfterCancel(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "reenroll@test.com")
	course := createTestCourse(t, db, "On Again", nil)

	first, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)
	_, err = services.CancelEnrollment(db, user.ID, course.ID)
	require.NoError(t, err)

	// The cancelled row is reactivated, not duplicated
	second, err := services.Enroll(db, user.ID, course.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, courseModels.EnrollmentActive, second.Status)
	assert.Nil(t, second.CancelledAt)

	var count int64
	db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}
