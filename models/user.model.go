package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SubscriptionTier defines the user's subscription level
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
)

type User struct {
	gorm.Model
	Name               string           `gorm:"default:''" json:"name"`
	Email              string           `gorm:"unique;not null" json:"email"`
	Mobile             string           `gorm:"default:''" json:"mobile"`
	Role               string           `gorm:"default:'USER'" json:"role"` // USER, ADMIN
	Password           string           `gorm:"not null" json:"-"`
	ProfileImage       string           `gorm:"default:''" json:"profileImage"`
	SubscriptionTier   SubscriptionTier `gorm:"type:varchar(20);default:'free'" json:"subscriptionTier"`
	SubscriptionExpiry *time.Time       `json:"subscriptionExpiry"`

	// ReferralCode is generated once at signup and never changes.
	ReferralCode  string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"referralCode"`
	CreditBalance decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"creditBalance"`

	LastLogin *time.Time `json:"lastLogin"`
	IsDeleted bool       `gorm:"default:false" json:"-"`
}

// IsPremium reports whether the user currently has premium access.
func (u *User) IsPremium() bool {
	if u.SubscriptionTier != TierPremium {
		return false
	}
	if u.SubscriptionExpiry != nil && u.SubscriptionExpiry.Before(time.Now()) {
		return false
	}
	return true
}
