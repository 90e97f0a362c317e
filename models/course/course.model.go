package course

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CourseLevel defines the difficulty of a course
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// Course represents a learning course. Deleting a course cascades to its
// lessons at the application level (see the admin controller), not through
// database-side foreign key actions.
type Course struct {
	gorm.Model
	Title         string          `gorm:"type:varchar(200);not null" json:"title"`
	Description   string          `gorm:"type:text" json:"description"`
	Instructor    string          `gorm:"type:varchar(200);default:''" json:"instructor"`
	CategoryID    *uint           `gorm:"index" json:"categoryId"` // nullable, category removal leaves courses
	Level         CourseLevel     `gorm:"type:varchar(20);not null" json:"level"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	DurationHours uint            `gorm:"default:0" json:"durationHours"`
	ThumbnailURL  string          `gorm:"default:''" json:"thumbnailUrl"`
	IsActive      bool            `gorm:"default:true" json:"isActive"`
	IsDeleted     bool            `gorm:"default:false" json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// IsFree reports whether the course can be joined without payment or credits.
func (c *Course) IsFree() bool {
	return c.Price.IsZero()
}
