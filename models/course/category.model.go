package course

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"type:varchar(50);default:''" json:"icon"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}

func (Category) TableName() string {
	return "course_categories"
}
