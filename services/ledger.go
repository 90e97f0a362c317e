package services

import (
	"time"

	"lyon/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// applyBalanceChange mutates a user's credit balance by the signed amount and
// writes the matching ledger row, both inside the caller's transaction.
//
// The update is a compare-and-set on the balance read in the same transaction:
// if another request changed the balance in between, no row matches and
// ErrBalanceConflict is returned so the caller can re-read and re-decide.
// Debits that would push the balance negative fail with InsufficientCreditsError.
func applyBalanceChange(tx *gorm.DB, userID uint, amount decimal.Decimal, txType models.CreditTransactionType, refType string, refID uint, description string) (*models.User, error) {
	var user models.User
	if err := tx.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return nil, err
	}

	balanceBefore := user.CreditBalance
	balanceAfter := balanceBefore.Add(amount)

	if balanceAfter.IsNegative() {
		return nil, NewInsufficientCreditsError(amount.Neg(), balanceBefore)
	}

	res := tx.Model(&models.User{}).
		Where("id = ? AND credit_balance = ?", userID, balanceBefore).
		Update("credit_balance", balanceAfter)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrBalanceConflict
	}

	entry := models.CreditTransaction{
		UserID:          userID,
		TransactionType: txType,
		Amount:          amount,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    balanceAfter,
		Description:     description,
		ReferenceType:   refType,
		ReferenceID:     refID,
		TransactionDate: time.Now(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}

	user.CreditBalance = balanceAfter
	return &user, nil
}
