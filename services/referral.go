package services

import (
	"errors"
	"fmt"

	"lyon/config"
	"lyon/models"

	"gorm.io/gorm"
)

// ApplyReferral resolves a referral code entered at signup and grants the
// credits. An empty code is a no-op. An unknown code (or the new user's own
// code) returns ErrInvalidReferralCode, which is a warning: signup proceeds
// without credits. A user that was already referred is skipped silently so
// signup is never blocked.
//
// The Referral row, the referrer's reward and the new user's bonus commit as
// one transaction. The unique index on referred_user_id makes a concurrent
// second application lose, rolling all three writes back together.
func ApplyReferral(db *gorm.DB, newUser *models.User, code string) (*models.Referral, error) {
	if code == "" {
		return nil, nil
	}

	var referrer models.User
	if err := db.Where("referral_code = ? AND is_deleted = false", code).First(&referrer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidReferralCode
		}
		return nil, err
	}
	if referrer.ID == newUser.ID {
		return nil, ErrInvalidReferralCode
	}

	reward := config.AppConfig.ReferrerReward
	bonus := config.AppConfig.ReferredBonus

	referral := models.Referral{
		ReferrerID:     referrer.ID,
		ReferredUserID: newUser.ID,
		CreditAmount:   reward,
	}

	grant := func(tx *gorm.DB) error {
		if err := tx.Create(&referral).Error; err != nil {
			return err
		}
		if _, err := applyBalanceChange(tx, referrer.ID, reward,
			models.CreditTypeReferralReward, "referral", referral.ID,
			fmt.Sprintf("Referral reward for inviting %s", newUser.Name)); err != nil {
			return err
		}
		updated, err := applyBalanceChange(tx, newUser.ID, bonus,
			models.CreditTypeSignupBonus, "referral", referral.ID,
			fmt.Sprintf("Signup bonus via %s's referral link", referrer.Name))
		if err != nil {
			return err
		}
		newUser.CreditBalance = updated.CreditBalance
		return nil
	}

	err := db.Transaction(grant)
	if errors.Is(err, ErrBalanceConflict) {
		// a concurrent balance mutation rolled the grant back, retry once
		referral.ID = 0
		err = db.Transaction(grant)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// already referred: silent no-op so signup is never blocked
			return nil, nil
		}
		return nil, err
	}
	return &referral, nil
}
