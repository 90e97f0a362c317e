package referralRoutes

import (
	referralController "lyon/controllers/referral"
	"lyon/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupReferralRoutes(app *fiber.App) {
	referralGroup := app.Group("/referral")

	referralGroup.Get("/", middleware.JWTMiddleware, referralController.GetReferralOverview)
}
