package walletRoutes

import (
	walletController "lyon/controllers/wallet"
	"lyon/middleware"
	walletValidator "lyon/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App) {
	walletGroup := app.Group("/wallet")

	walletGroup.Get("/balance", middleware.JWTMiddleware, walletController.GetCreditBalance)
	walletGroup.Get("/history", middleware.JWTMiddleware, walletValidator.GetCreditHistory(), walletController.GetCreditHistory)
}
