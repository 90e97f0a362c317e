package controllers

import (
	"errors"
	"log"

	"lyon/database"
	"lyon/middleware"
	"lyon/models"
	courseModels "lyon/models/course"
	"lyon/services"

	"github.com/gofiber/fiber/v2"
)

// ViewLesson serves a single lesson. Access runs through two independent
// grant paths: course-level access (enrollment, premium or free course) and
// the lesson's own preview flag. Progress is recorded only on the
// course-level path, so previewing never creates an enrollment.
func ViewLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", courseID, true, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	courseAccess, err := services.CanAccessCourse(database.Database.Db, &user, &course)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to evaluate access!", nil)
	}

	if !courseAccess && !lesson.IsPreview {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You need to enroll in this course to access the lessons.", nil)
	}

	lessons, err := services.LessonSequence(database.Database.Db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	var previous, next *courseModels.Lesson
	for i := range lessons {
		if lessons[i].ID == lesson.ID {
			if i > 0 {
				previous = &lessons[i-1]
			}
			if i+1 < len(lessons) {
				next = &lessons[i+1]
			}
			break
		}
	}

	// Preview-only viewers get the lesson without any progress side effects.
	var enrollment *courseModels.Enrollment
	if courseAccess {
		enrollment, err = services.RecordLessonVisit(database.Database.Db, user.ID, course.ID, lesson.ID)
		if err != nil {
			if errors.Is(err, services.ErrLessonNotInCourse) {
				log.Printf("Lesson %d not in sequence of course %d", lesson.ID, course.ID)
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	data := fiber.Map{
		"course":         course,
		"lesson":         lesson,
		"lessons":        lessons,
		"previousLesson": previous,
		"nextLesson":     next,
	}
	if enrollment != nil {
		data["progress"] = enrollment.Progress
		data["completed"] = enrollment.Completed
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", data)
}
