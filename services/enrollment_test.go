package services

import (
	"testing"

	"lyon/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll_FreeCourseAlwaysSucceeds(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "bob", "free", "0")
	course := createCourse(t, db, "Free Course", "0")

	enrollment, already, err := Enroll(db, user, course)
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, float64(0), enrollment.Progress)
	assert.False(t, enrollment.Completed)
}

func TestEnroll_PremiumSkipsDebit(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "carol", "premium", "10")
	course := createCourse(t, db, "Paid Course", "99.99")

	_, already, err := Enroll(db, user, course)
	require.NoError(t, err)
	assert.False(t, already)

	after := reloadUser(t, db, user.ID)
	assert.True(t, after.CreditBalance.Equal(decimal.RequireFromString("10")),
		"premium admission must not touch the balance, got %s", after.CreditBalance)
}

func TestEnroll_CreditAdmissionDebitsExactly(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "dave", "free", "75.50")
	course := createCourse(t, db, "Paid Course", "30.25")

	_, already, err := Enroll(db, user, course)
	require.NoError(t, err)
	assert.False(t, already)

	after := reloadUser(t, db, user.ID)
	assert.True(t, after.CreditBalance.Equal(decimal.RequireFromString("45.25")),
		"balance_after must be balance_before - price exactly, got %s", after.CreditBalance)

	// the debit leaves a ledger trail
	var entry models.CreditTransaction
	require.NoError(t, db.Where("user_id = ? AND transaction_type = ?", user.ID, models.CreditTypeEnrollment).First(&entry).Error)
	assert.True(t, entry.Amount.Equal(decimal.RequireFromString("-30.25")))
	assert.True(t, entry.BalanceAfter.Equal(decimal.RequireFromString("45.25")))
}

func TestEnroll_InsufficientCreditsReportsShortfall(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "erin", "free", "20")
	course := createCourse(t, db, "Paid Course", "30")

	_, _, err := Enroll(db, user, course)
	require.Error(t, err)

	var insufficient *InsufficientCreditsError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Shortfall.Equal(decimal.RequireFromString("10")),
		"shortfall must be price - balance, got %s", insufficient.Shortfall)

	// no mutation on failure
	after := reloadUser(t, db, user.ID)
	assert.True(t, after.CreditBalance.Equal(decimal.RequireFromString("20")))

	var count int64
	db.Model(&models.CreditTransaction{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestEnroll_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "frank", "free", "100")
	course := createCourse(t, db, "Paid Course", "40")

	first, already, err := Enroll(db, user, course)
	require.NoError(t, err)
	assert.False(t, already)

	second, already, err := Enroll(db, user, course)
	require.NoError(t, err)
	assert.True(t, already, "second enroll is an informational no-op")
	assert.Equal(t, first.ID, second.ID, "same enrollment identity")

	// no double debit
	after := reloadUser(t, db, user.ID)
	assert.True(t, after.CreditBalance.Equal(decimal.RequireFromString("60")),
		"balance debited once, got %s", after.CreditBalance)
}
