package dashboardController

import (
	"fmt"

	"lyon/database"
	"lyon/middleware"
	"lyon/models"
	courseModels "lyon/models/course"

	"github.com/gofiber/fiber/v2"
)

// Dashboard content caps per tier
const (
	premiumDashboardRecs = 5
	freeDashboardRecs    = 2
	premiumDashboardNews = 5
	freeDashboardNews    = 3
)

// GetDashboard aggregates the signed-in user's home view: courses in
// progress, completed courses, tier-capped market content and referral stats
func GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	db := database.Database.Db

	var inProgress []courseModels.Enrollment
	if err := db.Where("user_id = ? AND completed = ?", userID, false).Preload("Course").Find(&inProgress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	var completed []courseModels.Enrollment
	if err := db.Where("user_id = ? AND completed = ?", userID, true).Preload("Course").Find(&completed).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	recLimit := freeDashboardRecs
	newsLimit := freeDashboardNews
	if user.IsPremium() {
		recLimit = premiumDashboardRecs
		newsLimit = premiumDashboardNews
	}

	var recommendations []models.StockRecommendation
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("published_at desc").Limit(recLimit).Find(&recommendations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recommendations!", nil)
	}

	var newsArticles []models.NewsArticle
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("published_at desc").Limit(newsLimit).Find(&newsArticles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch news!", nil)
	}

	var referralCount int64
	db.Model(&models.Referral{}).Where("referrer_id = ?", userID).Count(&referralCount)

	referralURL := fmt.Sprintf("%s://%s/signup?ref=%s", c.Protocol(), c.Hostname(), user.ReferralCode)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"inProgressCourses": inProgress,
		"completedCourses":  completed,
		"recommendations":   recommendations,
		"newsArticles":      newsArticles,
		"referralCount":     referralCount,
		"referralUrl":       referralURL,
		"creditBalance":     user.CreditBalance,
	})
}

// Search runs a substring match over courses, news and recommendations.
// No relevance ranking, plain LIKE filters.
func Search(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	query := c.Query("q")
	if query == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Search results fetched!", fiber.Map{
			"query":           "",
			"courses":         []courseModels.Course{},
			"newsArticles":    []models.NewsArticle{},
			"recommendations": []models.StockRecommendation{},
		})
	}

	pattern := "%" + query + "%"
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).
		Where("title LIKE ? OR description LIKE ? OR instructor LIKE ?", pattern, pattern, pattern).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Search failed!", nil)
	}

	var newsArticles []models.NewsArticle
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).
		Where("title LIKE ? OR content LIKE ? OR tags LIKE ?", pattern, pattern, pattern).
		Find(&newsArticles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Search failed!", nil)
	}

	var recommendations []models.StockRecommendation
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).
		Where("symbol LIKE ? OR company_name LIKE ? OR analysis LIKE ?", pattern, pattern, pattern).
		Find(&recommendations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Search failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Search results fetched!", fiber.Map{
		"query":           query,
		"courses":         courses,
		"newsArticles":    newsArticles,
		"recommendations": recommendations,
	})
}
