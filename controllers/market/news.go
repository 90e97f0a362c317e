package marketController

import (
	"lyon/database"
	"lyon/middleware"
	"lyon/models"

	"github.com/gofiber/fiber/v2"
)

// GetNews lists active news articles, capped for free-tier users
func GetNews(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	db := database.Database.Db.
		Where("is_active = ? AND is_deleted = ?", true, false).
		Order("published_at desc")

	message := "News fetched successfully!"
	if !user.IsPremium() {
		db = db.Limit(freeNewsLimit)
		message = "Upgrade to premium for unlimited access to daily market news."
	}

	var articles []models.NewsArticle
	if err := db.Find(&articles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch news!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"newsArticles": articles,
		"isPremium":    user.IsPremium(),
	})
}
