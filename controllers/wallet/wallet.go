package walletController

import (
	"lyon/database"
	"lyon/middleware"
	"lyon/models"

	"github.com/gofiber/fiber/v2"
)

// GetCreditBalance returns the user's current credit balance
func GetCreditBalance(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Credit balance fetched!", fiber.Map{
		"balance":          user.CreditBalance,
		"subscriptionTier": user.SubscriptionTier,
	})
}

// GetCreditHistory returns the user's credit ledger, newest first
func GetCreditHistory(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedCreditHistory").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.CreditTransaction{}).Where("user_id = ?", userID)

	var total int64
	db.Count(&total)

	var transactions []models.CreditTransaction
	if err := db.Offset(offset).Limit(limit).Order("transaction_date desc").Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch credit history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Credit history fetched!", fiber.Map{
		"transactions": transactions,
		"balance":      user.CreditBalance,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
