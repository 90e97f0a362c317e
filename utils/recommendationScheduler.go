package utils

import (
	"log"
	"time"

	"lyon/database"
	"lyon/models"

	"github.com/robfig/cron/v3"
)

// InitializeRecommendationScheduler sets up the stock recommendation expiry scheduler
func InitializeRecommendationScheduler() {
	log.Println("[RECOMMENDATION-SCHEDULER] Initializing recommendation scheduler...")

	c := cron.New()

	// Run daily at 6 AM to deactivate expired recommendations
	c.AddFunc("0 6 * * *", func() {
		log.Println("[RECOMMENDATION-SCHEDULER] Running daily expiry check...")
		ExpireRecommendations()
	})

	// Refresh current prices every hour during the day
	c.AddFunc("0 * * * *", func() {
		RefreshRecommendationQuotes()
	})

	c.Start()
	log.Println("[RECOMMENDATION-SCHEDULER] Recommendation scheduler started - expiry check daily at 6 AM")
}

// ExpireRecommendations deactivates recommendations past their expiry date
func ExpireRecommendations() {
	db := database.Database.Db

	res := db.Model(&models.StockRecommendation{}).
		Where("is_active = ? AND is_deleted = ? AND expires_at < ?", true, false, time.Now()).
		Update("is_active", false)
	if res.Error != nil {
		log.Printf("[RECOMMENDATION-SCHEDULER] Error expiring recommendations: %v", res.Error)
		return
	}

	if res.RowsAffected > 0 {
		log.Printf("[RECOMMENDATION-SCHEDULER] Deactivated %d expired recommendations", res.RowsAffected)
	}
}
