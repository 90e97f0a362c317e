package utils

import (
	"encoding/json"
	"log"

	"lyon/config"
	"lyon/database"
	"lyon/models"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// RefreshRecommendationQuotes pulls the latest market price for every active
// recommendation and stores it as CurrentPrice. Failures only log; stale
// prices are acceptable until the next run.
func RefreshRecommendationQuotes() {
	if config.AppConfig.QuoteApiKey == "" {
		return
	}

	db := database.Database.Db

	var recommendations []models.StockRecommendation
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).Find(&recommendations).Error; err != nil {
		log.Printf("[QUOTE-REFRESH] Error fetching active recommendations: %v", err)
		return
	}

	client := resty.New()
	updated := 0
	for _, rec := range recommendations {
		resp, err := client.R().
			SetQueryParams(map[string]string{
				"symbol": rec.Symbol,
				"apikey": config.AppConfig.QuoteApiKey,
			}).
			Get(config.AppConfig.QuoteApiURL)
		if err != nil {
			log.Printf("[QUOTE-REFRESH] Error fetching quote for %s: %v", rec.Symbol, err)
			continue
		}
		if resp.StatusCode() != 200 {
			log.Printf("[QUOTE-REFRESH] Quote API returned %d for %s", resp.StatusCode(), rec.Symbol)
			continue
		}

		var quote struct {
			Price string `json:"price"`
		}
		if err := json.Unmarshal(resp.Body(), &quote); err != nil {
			log.Printf("[QUOTE-REFRESH] Invalid quote response for %s: %v", rec.Symbol, err)
			continue
		}

		price, err := decimal.NewFromString(quote.Price)
		if err != nil || price.IsNegative() {
			log.Printf("[QUOTE-REFRESH] Unusable price %q for %s", quote.Price, rec.Symbol)
			continue
		}

		if err := db.Model(&models.StockRecommendation{}).
			Where("id = ?", rec.ID).
			Update("current_price", price).Error; err != nil {
			log.Printf("[QUOTE-REFRESH] Error updating price for %s: %v", rec.Symbol, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		log.Printf("[QUOTE-REFRESH] Updated prices for %d recommendations", updated)
	}
}
