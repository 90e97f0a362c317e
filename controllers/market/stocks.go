package marketController

import (
	"lyon/database"
	"lyon/middleware"
	"lyon/models"

	"github.com/gofiber/fiber/v2"
)

// Free-tier caps on market content, mirroring the upgrade funnel
const (
	freeRecommendationLimit = 3
	freeNewsLimit           = 5
)

// GetRecommendations lists active stock recommendations. Free-tier users see
// only the newest few and get nudged to upgrade.
func GetRecommendations(c *fiber.Ctx) error {
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

	message := "Recommendations fetched successfully!"
	if !user.IsPremium() {
		db = db.Limit(freeRecommendationLimit)
		message = "Upgrade to premium for full access to all stock recommendations."
	}

	var recommendations []models.StockRecommendation
	if err := db.Find(&recommendations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recommendations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"recommendations": recommendations,
		"isPremium":       user.IsPremium(),
	})
}
