package course

import "gorm.io/gorm"

// LessonContentType defines what kind of material a lesson carries
type LessonContentType string

const (
	ContentTypeVideo LessonContentType = "video"
	ContentTypeImage LessonContentType = "image"
	ContentTypePDF   LessonContentType = "pdf"
	ContentTypeText  LessonContentType = "text"
	ContentTypeQuiz  LessonContentType = "quiz"
)

// Lesson belongs to exactly one course. Order defines the position inside the
// course sequence; ties on Order are broken by ID so ranking stays stable.
type Lesson struct {
	gorm.Model
	CourseID        uint              `gorm:"index;not null" json:"courseId"`
	Title           string            `gorm:"type:varchar(200);not null" json:"title"`
	ContentType     LessonContentType `gorm:"type:varchar(10);default:'video'" json:"contentType"`
	Description     string            `gorm:"type:text" json:"description"`
	VideoURL        string            `gorm:"default:''" json:"videoUrl"`
	ImageURL        string            `gorm:"default:''" json:"imageUrl"`
	PDFURL          string            `gorm:"default:''" json:"pdfUrl"`
	TextContent     string            `gorm:"type:text" json:"textContent"`
	DurationMinutes uint              `gorm:"default:0" json:"durationMinutes"`
	Order           uint              `gorm:"column:order_index;not null" json:"order"`
	IsPreview       bool              `gorm:"default:false" json:"isPreview"`
	IsDeleted       bool              `gorm:"default:false" json:"-"`
}
