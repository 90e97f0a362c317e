package marketController

import (
	"time"

	"lyon/database"
	"lyon/middleware"
	"lyon/models"
	adminValidator "lyon/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateRecommendation publishes a new stock recommendation
func AdminCreateRecommendation(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRecommendation").(*adminValidator.RecommendationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	rec := models.StockRecommendation{
		Symbol:       reqData.Symbol,
		CompanyName:  reqData.CompanyName,
		Action:       models.RecommendationAction(reqData.Action),
		TargetPrice:  reqData.TargetPrice,
		CurrentPrice: reqData.CurrentPrice,
		Analysis:     reqData.Analysis,
		RiskLevel:    models.RiskLevel(reqData.RiskLevel),
		PublishedAt:  time.Now(),
		ExpiresAt:    reqData.ExpiresAt,
		IsActive:     true,
	}
	if reqData.IsActive != nil {
		rec.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Create(&rec).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create recommendation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Recommendation created successfully!", rec)
}

// AdminUpdateRecommendation updates an existing recommendation
func AdminUpdateRecommendation(c *fiber.Ctx) error {
	recID := c.Locals("recommendationID").(int)

	var rec models.StockRecommendation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", recID, false).First(&rec).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recommendation not found!", nil)
	}

	reqData, ok := c.Locals("validatedRecommendation").(*adminValidator.RecommendationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	rec.Symbol = reqData.Symbol
	rec.CompanyName = reqData.CompanyName
	rec.Action = models.RecommendationAction(reqData.Action)
	rec.TargetPrice = reqData.TargetPrice
	rec.CurrentPrice = reqData.CurrentPrice
	rec.Analysis = reqData.Analysis
	rec.RiskLevel = models.RiskLevel(reqData.RiskLevel)
	rec.ExpiresAt = reqData.ExpiresAt
	if reqData.IsActive != nil {
		rec.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&rec).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update recommendation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendation updated successfully!", rec)
}

// AdminDeleteRecommendation soft deletes a recommendation
func AdminDeleteRecommendation(c *fiber.Ctx) error {
	recID := c.Locals("recommendationID").(int)

	var rec models.StockRecommendation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", recID, false).First(&rec).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recommendation not found!", nil)
	}

	if err := database.Database.Db.Model(&rec).Updates(map[string]interface{}{
		"is_deleted": true,
		"is_active":  false,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete recommendation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendation deleted successfully!", nil)
}

// AdminCreateNews publishes a news article
func AdminCreateNews(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNews").(*adminValidator.NewsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	article := models.NewsArticle{
		Title:       reqData.Title,
		Content:     reqData.Content,
		Summary:     reqData.Summary,
		Source:      reqData.Source,
		PublishedAt: reqData.PublishedAt,
		ImageURL:    reqData.ImageURL,
		Tags:        reqData.Tags,
		IsActive:    true,
	}
	if reqData.IsActive != nil {
		article.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Create(&article).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create news article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "News article created successfully!", article)
}

// AdminUpdateNews updates a news article
func AdminUpdateNews(c *fiber.Ctx) error {
	newsID := c.Locals("newsID").(int)

	var article models.NewsArticle
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", newsID, false).First(&article).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "News article not found!", nil)
	}

	reqData, ok := c.Locals("validatedNews").(*adminValidator.NewsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	article.Title = reqData.Title
	article.Content = reqData.Content
	article.Summary = reqData.Summary
	article.Source = reqData.Source
	article.PublishedAt = reqData.PublishedAt
	article.ImageURL = reqData.ImageURL
	article.Tags = reqData.Tags
	if reqData.IsActive != nil {
		article.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&article).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update news article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News article updated successfully!", article)
}

// AdminDeleteNews soft deletes a news article
func AdminDeleteNews(c *fiber.Ctx) error {
	newsID := c.Locals("newsID").(int)

	var article models.NewsArticle
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", newsID, false).First(&article).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "News article not found!", nil)
	}

	if err := database.Database.Db.Model(&article).Updates(map[string]interface{}{
		"is_deleted": true,
		"is_active":  false,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete news article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News article deleted successfully!", nil)
}
