package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditTransactionType defines the type of credit ledger entry
type CreditTransactionType string

const (
	CreditTypeReferralReward  CreditTransactionType = "REFERRAL_REWARD"
	CreditTypeSignupBonus     CreditTransactionType = "SIGNUP_BONUS"
	CreditTypeEnrollment      CreditTransactionType = "COURSE_ENROLLMENT"
	CreditTypeAdminAdjustment CreditTransactionType = "ADMIN_ADJUSTMENT"
)

// CreditTransaction tracks every mutation of a user's credit balance.
// A row is written in the same database transaction as the balance change.
type CreditTransaction struct {
	gorm.Model
	UserID          uint                  `gorm:"not null;index" json:"userId"`
	TransactionType CreditTransactionType `gorm:"type:varchar(50);not null" json:"transactionType"`
	Amount          decimal.Decimal       `gorm:"type:numeric(10,2);not null" json:"amount"` // signed: credits positive, debits negative
	BalanceBefore   decimal.Decimal       `gorm:"type:numeric(10,2);not null" json:"balanceBefore"`
	BalanceAfter    decimal.Decimal       `gorm:"type:numeric(10,2);not null" json:"balanceAfter"`
	Description     string                `gorm:"type:text" json:"description"`

	// Reference details (course for enrollments, referral for grants)
	ReferenceType string `gorm:"type:varchar(50)" json:"referenceType"`
	ReferenceID   uint   `gorm:"default:0" json:"referenceId"`

	TransactionDate time.Time `gorm:"not null" json:"transactionDate"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
