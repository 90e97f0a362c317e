package marketRoutes

import (
	marketController "lyon/controllers/market"
	"lyon/middleware"
	adminValidators "lyon/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupMarketRoutes(app *fiber.App) {
	marketGroup := app.Group("/market")

	// User routes (tier-capped content)
	marketGroup.Get("/recommendations", middleware.JWTMiddleware, marketController.GetRecommendations)
	marketGroup.Get("/news", middleware.JWTMiddleware, marketController.GetNews)

	// Admin routes
	adminGroup := marketGroup.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	adminGroup.Post("/recommendation", adminValidators.Recommendation(), marketController.AdminCreateRecommendation)
	adminGroup.Put("/recommendation/:id", adminValidators.IDParam("id", "recommendationID"), adminValidators.Recommendation(), marketController.AdminUpdateRecommendation)
	adminGroup.Delete("/recommendation/:id", adminValidators.IDParam("id", "recommendationID"), marketController.AdminDeleteRecommendation)
	adminGroup.Post("/news", adminValidators.News(), marketController.AdminCreateNews)
	adminGroup.Put("/news/:id", adminValidators.IDParam("id", "newsID"), adminValidators.News(), marketController.AdminUpdateNews)
	adminGroup.Delete("/news/:id", adminValidators.IDParam("id", "newsID"), marketController.AdminDeleteNews)
}
