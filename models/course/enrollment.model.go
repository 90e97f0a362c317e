package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment binds a user to a course and tracks completion progress.
// The composite unique index keeps at most one row per (user, course) and is
// the serialization point for concurrent enroll attempts.
type Enrollment struct {
	gorm.Model
	UserID      uint       `gorm:"uniqueIndex:idx_user_course;not null" json:"userId"`
	CourseID    uint       `gorm:"uniqueIndex:idx_user_course;not null" json:"courseId"`
	Progress    float64    `gorm:"not null;default:0" json:"progress"` // completion percentage 0-100
	Completed   bool       `gorm:"default:false" json:"completed"`
	EnrolledAt  time.Time  `gorm:"not null" json:"enrolledAt"`
	CompletedAt *time.Time `json:"completedAt"`

	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
