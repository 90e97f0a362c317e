package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Referral records a one-time credit grant between a referrer and a newly
// signed-up user. A user can be referred at most once; the unique index on
// ReferredUserID is the enforcement point.
type Referral struct {
	gorm.Model
	ReferrerID     uint            `gorm:"index;not null" json:"referrerId"`
	ReferredUserID uint            `gorm:"uniqueIndex;not null" json:"referredUserId"`
	CreditAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"creditAmount"`

	Referrer     User `gorm:"foreignKey:ReferrerID" json:"-"`
	ReferredUser User `gorm:"foreignKey:ReferredUserID" json:"-"`
}
