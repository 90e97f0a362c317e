package services

import (
	"errors"

	"lyon/models"
	courseModels "lyon/models/course"

	"gorm.io/gorm"
)

// CanAccessCourse decides whether a user may view the lessons of a course.
// Access is granted through any of three paths: an existing enrollment, a
// premium subscription, or a zero price. Pure read, no side effects.
// Missing or inactive courses are handled by callers as not-found before
// this decision is made.
func CanAccessCourse(db *gorm.DB, user *models.User, crs *courseModels.Course) (bool, error) {
	if user.IsPremium() || crs.IsFree() {
		return true, nil
	}
	enrolled, err := IsEnrolled(db, user.ID, crs.ID)
	if err != nil {
		return false, err
	}
	return enrolled, nil
}

// CanViewLesson adds the per-lesson preview grant on top of course-level
// access: a preview lesson is viewable without enrollment or subscription.
// The two grant paths are independent.
func CanViewLesson(db *gorm.DB, user *models.User, crs *courseModels.Course, lesson *courseModels.Lesson) (bool, error) {
	if lesson.IsPreview {
		return true, nil
	}
	return CanAccessCourse(db, user, crs)
}

// IsEnrolled reports whether an enrollment exists for the (user, course) pair.
func IsEnrolled(db *gorm.DB, userID, courseID uint) (bool, error) {
	var enrollment courseModels.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
