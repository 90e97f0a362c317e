package models

import (
	"time"

	"gorm.io/gorm"
)

type NewsArticle struct {
	gorm.Model
	Title       string    `gorm:"type:varchar(300);not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Summary     string    `gorm:"type:text" json:"summary"`
	Source      string    `gorm:"type:varchar(100)" json:"source"`
	PublishedAt time.Time `gorm:"not null;index" json:"publishedAt"`
	ImageURL    string    `gorm:"default:''" json:"imageUrl"`
	Tags        string    `gorm:"type:varchar(200)" json:"tags"` // comma separated
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	IsDeleted   bool      `gorm:"default:false" json:"-"`
}
