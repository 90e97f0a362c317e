package services

import (
	"testing"

	"lyon/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyReferral_GrantsBothParties(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice", "free", "0")
	bob := createUser(t, db, "bob", "free", "0")

	referral, err := ApplyReferral(db, bob, "alice")
	require.NoError(t, err)
	require.NotNil(t, referral)
	assert.Equal(t, alice.ID, referral.ReferrerID)
	assert.Equal(t, bob.ID, referral.ReferredUserID)

	assert.True(t, reloadUser(t, db, alice.ID).CreditBalance.Equal(decimal.RequireFromString("50")),
		"referrer earns the reward constant")
	assert.True(t, reloadUser(t, db, bob.ID).CreditBalance.Equal(decimal.RequireFromString("25")),
		"new user earns the signup bonus constant")

	// both grants leave ledger rows
	var count int64
	db.Model(&models.CreditTransaction{}).Where("reference_type = ? AND reference_id = ?", "referral", referral.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestApplyReferral_EmptyCodeIsNoop(t *testing.T) {
	db := setupTestDB(t)
	bob := createUser(t, db, "bob", "free", "0")

	referral, err := ApplyReferral(db, bob, "")
	require.NoError(t, err)
	assert.Nil(t, referral)
}

func TestApplyReferral_InvalidCodeWarnsWithoutMutation(t *testing.T) {
	db := setupTestDB(t)
	bob := createUser(t, db, "bob", "free", "0")

	referral, err := ApplyReferral(db, bob, "zzz")
	assert.ErrorIs(t, err, ErrInvalidReferralCode)
	assert.Nil(t, referral)

	assert.True(t, reloadUser(t, db, bob.ID).CreditBalance.IsZero(), "balances unchanged")

	var count int64
	db.Model(&models.Referral{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestApplyReferral_OwnCodeRejected(t *testing.T) {
	db := setupTestDB(t)
	bob := createUser(t, db, "bob", "free", "0")

	referral, err := ApplyReferral(db, bob, "bob")
	assert.ErrorIs(t, err, ErrInvalidReferralCode)
	assert.Nil(t, referral)
	assert.True(t, reloadUser(t, db, bob.ID).CreditBalance.IsZero())
}

func TestApplyReferral_SecondReferralSilentlySkipped(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice", "free", "0")
	carol := createUser(t, db, "carol", "free", "0")
	bob := createUser(t, db, "bob", "free", "0")

	first, err := ApplyReferral(db, bob, "alice")
	require.NoError(t, err)
	require.NotNil(t, first)

	// already referred: no error, no second grant
	second, err := ApplyReferral(db, bob, "carol")
	require.NoError(t, err)
	assert.Nil(t, second)

	assert.True(t, reloadUser(t, db, bob.ID).CreditBalance.Equal(decimal.RequireFromString("25")))
	assert.True(t, reloadUser(t, db, carol.ID).CreditBalance.IsZero())
	assert.True(t, reloadUser(t, db, alice.ID).CreditBalance.Equal(decimal.RequireFromString("50")))

	var count int64
	db.Model(&models.Referral{}).Where("referred_user_id = ?", bob.ID).Count(&count)
	assert.Equal(t, int64(1), count, "exactly one referral row per referred user")
}

func TestApplyReferral_AtomicOnFailure(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice", "free", "0")
	bob := createUser(t, db, "bob", "free", "0")

	// Drop the referred user's row so the second grant inside the
	// transaction fails after the referrer was already credited.
	require.NoError(t, db.Unscoped().Delete(&models.User{}, bob.ID).Error)

	referral, err := ApplyReferral(db, bob, "alice")
	require.Error(t, err)
	assert.Nil(t, referral)

	// all three writes rolled back together
	assert.True(t, reloadUser(t, db, alice.ID).CreditBalance.IsZero(),
		"referrer credit must roll back with the failed grant")

	var referralCount int64
	db.Model(&models.Referral{}).Count(&referralCount)
	assert.Equal(t, int64(0), referralCount)

	var ledgerCount int64
	db.Model(&models.CreditTransaction{}).Count(&ledgerCount)
	assert.Equal(t, int64(0), ledgerCount)
}
