package dashboardRoutes

import (
	dashboardController "lyon/controllers/dashboard"
	"lyon/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", middleware.JWTMiddleware, dashboardController.GetDashboard)
	app.Get("/search", middleware.JWTMiddleware, dashboardController.Search)
}
