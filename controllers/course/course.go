package controllers

import (
	"lyon/database"
	"lyon/middleware"
	"lyon/models"
	courseModels "lyon/models/course"
	"lyon/services"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists active courses with optional category, level and
// substring search filters
func GetAllCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, _ := c.Locals("validatedCourseList").(*struct {
		Category *int   `query:"category"`
		Level    string `query:"level"`
		Search   string `query:"search"`
	})

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_active = ? AND is_deleted = ?", true, false).
		Preload("Category")

	if reqData != nil {
		if reqData.Category != nil {
			db = db.Where("category_id = ?", *reqData.Category)
		}
		if reqData.Level != "" {
			db = db.Where("level = ?", reqData.Level)
		}
		if reqData.Search != "" {
			pattern := "%" + reqData.Search + "%"
			db = db.Where("title LIKE ? OR description LIKE ? OR instructor LIKE ?", pattern, pattern, pattern)
		}
	}

	var courses []courseModels.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var categories []courseModels.Category
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":    courses,
		"categories": categories,
	})
}

// GetCourseDetails returns a course with its ordered lesson sequence plus the
// caller's enrollment and access state
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", courseID, true, false).
		Preload("Category").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	lessons, err := services.LessonSequence(database.Database.Db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	isEnrolled, err := services.IsEnrolled(database.Database.Db, user.ID, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment!", nil)
	}

	canAccess, err := services.CanAccessCourse(database.Database.Db, &user, &course)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to evaluate access!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":     course,
		"lessons":    lessons,
		"isEnrolled": isEnrolled,
		"canAccess":  canAccess,
	})
}
