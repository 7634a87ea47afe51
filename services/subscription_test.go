package services_test

import (
	"testing"
	"time"

	"learnhub/models"
	"learnhub/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWindow_Tiers(t *testing.T) {
	from := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		amount float64
		want   time.Time
	}{
		{99, from.AddDate(0, 1, 0)},
		{296.99, from.AddDate(0, 1, 0)},
		{297, from.AddDate(0, 3, 0)},
		{1187, from.AddDate(0, 3, 0)},
		{1188, from.AddDate(1, 0, 0)},
		{5000, from.AddDate(1, 0, 0)},
	}

	for _, tc := range cases {
		start, end, err := services.ComputeWindow(tc.amount, from)
		require.NoError(t, err, "amount %v", tc.amount)
		assert.Equal(t, from, start, "amount %v", tc.amount)
		assert.Equal(t, tc.want, end, "amount %v", tc.amount)
	}
}

func TestComputeWindow_BelowMinimumRejected(t *testing.T) {
	_, _, err := services.ComputeWindow(50, time.Now())
	require.Error(t, err)
	assert.Equal(t, services.KindInvalidInput, services.ErrKind(err))

	_, _, err = services.ComputeWindow(0, time.Now())
	require.Error(t, err)
	assert.Equal(t, services.KindInvalidInput, services.ErrKind(err))
}

func TestActivateSubscription_Create(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "sub@test.com")
	payment := createCompletedPayment(t, db, user.ID, 99)

	subscription, err := services.ActivateSubscription(db, user.ID, models.PlanBasic, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionActive, subscription.Status)
	assert.Equal(t, models.PlanBasic, subscription.PlanType)
	assert.Equal(t, payment.ID, subscription.PaymentID)

	// One-month window within a second of now
	wantEnd := time.Now().AddDate(0, 1, 0)
	assert.WithinDuration(t, wantEnd, subscription.EndDate, time.Second)

	// Payment links back to the subscription
	var stored models.Payment
	require.NoError(t, db.First(&stored, payment.ID).Error)
	require.NotNil(t, stored.SubscriptionID)
	assert.Equal(t, subscription.ID, *stored.SubscriptionID)
}

func TestActivateSubscription_UpsertResetsWindow(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "resub@test.com")

	first := createCompletedPayment(t, db, user.ID, 1188)
	sub1, err := services.ActivateSubscription(db, user.ID, models.PlanPremium, first.ID)
	require.NoError(t, err)

	second := createCompletedPayment(t, db, user.ID, 99)
	sub2, err := services.ActivateSubscription(db, user.ID, models.PlanPremium, second.ID)
	require.NoError(t, err)

	// Same row, fresh window from now; remaining yearly time is discarded
	assert.Equal(t, sub1.ID, sub2.ID)
	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), sub2.EndDate, time.Second)

	var count int64
	db.Model(&models.Subscription{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestActivateSubscription_RequiresCompletedPayment(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "nopay@test.com")

	_, err := services.ActivateSubscription(db, user.ID, models.PlanBasic, 9999)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))

	pending, recErr := services.RecordPayment(db, user.ID, 99, models.PaymentMethodUPI, "")
	require.NoError(t, recErr)
	_, err = services.ActivateSubscription(db, user.ID, models.PlanBasic, pending.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))
}

func TestActivateSubscription_PaymentSingleUse(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "onepay@test.com")
	payment := createCompletedPayment(t, db, user.ID, 99)

	_, err := services.ActivateSubscription(db, user.ID, models.PlanBasic, payment.ID)
	require.NoError(t, err)

	// The consumed payment cannot back a second plan
	_, err = services.ActivateSubscription(db, user.ID, models.PlanStandard, payment.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))

	var count int64
	db.Model(&models.Subscription{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestActivateSubscription_UnknownPlan(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "plan@test.com")
	payment := createCompletedPayment(t, db, user.ID, 99)

	_, err := services.ActivateSubscription(db, user.ID, "PLATINUM", payment.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindInvalidInput, services.ErrKind(err))
}

func TestActivateSubscription_OutOfTierAmountRejected(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "cheap@test.com")
	payment := createCompletedPayment(t, db, user.ID, 50)

	_, err := services.ActivateSubscription(db, user.ID, models.PlanBasic, payment.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindInvalidInput, services.ErrKind(err))
}

func TestCancelSubscription(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "subcancel@test.com")
	payment := createCompletedPayment(t, db, user.ID, 297)

	subscription, err := services.ActivateSubscription(db, user.ID, models.PlanStandard, payment.ID)
	require.NoError(t, err)

	cancelled, err := services.CancelSubscription(db, user.ID, subscription.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionCancelled, cancelled.Status)
	assert.False(t, cancelled.AutoRenew)
	assert.WithinDuration(t, time.Now(), cancelled.EndDate, time.Second)

	// Only an ACTIVE subscription can be cancelled
	_, err = services.CancelSubscription(db, user.ID, subscription.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindPreconditionFailed, services.ErrKind(err))
}

func TestCancelSubscription_NotOwner(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "subowner@test.com")
	other := createTestUser(t, db, "subother@test.com")
	payment := createCompletedPayment(t, db, owner.ID, 99)

	subscription, err := services.ActivateSubscription(db, owner.ID, models.PlanBasic, payment.ID)
	require.NoError(t, err)

	_, err = services.CancelSubscription(db, other.ID, subscription.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.ErrKind(err))
}
