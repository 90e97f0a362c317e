package services

import (
	"errors"
	"math"
	"time"

	courseModels "lyon/models/course"

	"gorm.io/gorm"
)

// LessonSequence returns the ordered lesson sequence of a course. Ordering is
// by position with the lesson ID as tie-break, so ranks are deterministic
// even when two lessons share the same position.
func LessonSequence(db *gorm.DB, courseID uint) ([]courseModels.Lesson, error) {
	var lessons []courseModels.Lesson
	err := db.Where("course_id = ? AND is_deleted = false", courseID).
		Order("order_index asc, id asc").
		Find(&lessons).Error
	return lessons, err
}

// RecordLessonVisit updates the user's progress in a course after viewing a
// lesson, creating the enrollment on first visit. Callers are responsible
// for the access decision; this function assumes it was granted.
//
// Progress is recomputed from the visited lesson's rank on every visit:
// progress = round((rank+1) / totalLessons * 100). This is a deliberate
// policy, so revisiting an earlier lesson lowers the stored progress back
// to that lesson's rank.
func RecordLessonVisit(db *gorm.DB, userID uint, courseID uint, lessonID uint) (*courseModels.Enrollment, error) {
	lessons, err := LessonSequence(db, courseID)
	if err != nil {
		return nil, err
	}

	rank := -1
	for i, l := range lessons {
		if l.ID == lessonID {
			rank = i
			break
		}
	}
	if rank < 0 {
		return nil, ErrLessonNotInCourse
	}

	var enrollment courseModels.Enrollment
	err = db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Visiting a lesson implicitly enrolls. Only reached when access was
		// already granted through premium or a free course.
		enrollment = courseModels.Enrollment{
			UserID:     userID,
			CourseID:   courseID,
			EnrolledAt: time.Now(),
		}
		if cerr := db.Create(&enrollment).Error; cerr != nil {
			if errors.Is(cerr, gorm.ErrDuplicatedKey) {
				// concurrent first visit, reuse the winner's row
				if rerr := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; rerr != nil {
					return nil, rerr
				}
			} else {
				return nil, cerr
			}
		}
	} else if err != nil {
		return nil, err
	}

	total := len(lessons)
	completedCount := rank + 1
	if completedCount > total {
		completedCount = total
	}
	enrollment.Progress = math.Round(float64(completedCount) / float64(total) * 100)
	enrollment.Completed = enrollment.Progress == 100
	if enrollment.Completed {
		if enrollment.CompletedAt == nil {
			now := time.Now()
			enrollment.CompletedAt = &now
		}
	} else {
		enrollment.CompletedAt = nil
	}

	if err := db.Save(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}
