package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus defines the status of a payment record
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is a bookkeeping record only. No gateway integration is wired;
// rows are created with status pending and settled out of band.
type Payment struct {
	gorm.Model
	UserID           uint            `gorm:"index;not null" json:"userId"`
	CourseID         *uint           `json:"courseId"`
	Amount           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	SubscriptionType string          `gorm:"type:varchar(20)" json:"subscriptionType"` // course, subscription
	PaymentStatus    PaymentStatus   `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`
	TransactionID    string          `gorm:"type:varchar(100)" json:"transactionId"`
	PaymentDate      time.Time       `gorm:"not null" json:"paymentDate"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
