package referralController

import (
	"fmt"

	"lyon/database"
	"lyon/middleware"
	"lyon/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// GetReferralOverview returns the user's referral code, share link, the
// referrals made so far and the credits earned from them
func GetReferralOverview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var referrals []models.Referral
	if err := database.Database.Db.Where("referrer_id = ?", userID).
		Preload("ReferredUser").
		Order("created_at desc").
		Find(&referrals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch referrals!", nil)
	}

	totalEarned := decimal.Zero
	for _, referral := range referrals {
		totalEarned = totalEarned.Add(referral.CreditAmount)
	}

	type referralEntry struct {
		ReferredName string          `json:"referredName"`
		CreditAmount decimal.Decimal `json:"creditAmount"`
		CreatedAt    string          `json:"createdAt"`
	}
	entries := make([]referralEntry, len(referrals))
	for i, referral := range referrals {
		entries[i] = referralEntry{
			ReferredName: referral.ReferredUser.Name,
			CreditAmount: referral.CreditAmount,
			CreatedAt:    referral.CreatedAt.Format("2006-01-02"),
		}
	}

	referralURL := fmt.Sprintf("%s://%s/signup?ref=%s", c.Protocol(), c.Hostname(), user.ReferralCode)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Referral overview fetched!", fiber.Map{
		"referralCode":     user.ReferralCode,
		"referralUrl":      referralURL,
		"referrals":        entries,
		"referralCount":    len(referrals),
		"totalEarned":      totalEarned,
		"availableCredits": user.CreditBalance,
	})
}
