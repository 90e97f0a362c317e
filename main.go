package main

import (
	"log"

	"lyon/config"
	"lyon/database"
	authRoutes "lyon/routers/authRoutes"
	courseRoutes "lyon/routers/courseRoutes"
	dashboardRoutes "lyon/routers/dashboardRoutes"
	marketRoutes "lyon/routers/marketRoutes"
	referralRoutes "lyon/routers/referralRoutes"
	walletRoutes "lyon/routers/walletRoutes"
	"lyon/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	utils.InitializeRecommendationScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	marketRoutes.SetupMarketRoutes(app)
	walletRoutes.SetupWalletRoutes(app)
	referralRoutes.SetupReferralRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
