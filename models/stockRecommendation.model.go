package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecommendationAction defines the analyst call on a stock
type RecommendationAction string

const (
	ActionBuy  RecommendationAction = "buy"
	ActionHold RecommendationAction = "hold"
	ActionSell RecommendationAction = "sell"
)

// RiskLevel defines the risk bucket of a recommendation
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type StockRecommendation struct {
	gorm.Model
	Symbol       string               `gorm:"type:varchar(10);index;not null" json:"symbol"`
	CompanyName  string               `gorm:"not null" json:"companyName"`
	Action       RecommendationAction `gorm:"type:varchar(20);not null" json:"action"`
	TargetPrice  decimal.Decimal      `gorm:"type:numeric(10,2);not null" json:"targetPrice"`
	CurrentPrice decimal.Decimal      `gorm:"type:numeric(10,2);not null" json:"currentPrice"`
	Analysis     string               `gorm:"type:text" json:"analysis"`
	RiskLevel    RiskLevel            `gorm:"type:varchar(20);not null" json:"riskLevel"`
	PublishedAt  time.Time            `gorm:"not null;index" json:"publishedAt"`
	ExpiresAt    time.Time            `gorm:"not null" json:"expiresAt"`
	IsActive     bool                 `gorm:"default:true" json:"isActive"`
	IsDeleted    bool                 `gorm:"default:false" json:"-"`
}
