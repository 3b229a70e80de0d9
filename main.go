package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/foodtruck-order-app/config"
	"github.com/yeremiapane/foodtruck-order-app/database"
	"github.com/yeremiapane/foodtruck-order-app/router"
	"github.com/yeremiapane/foodtruck-order-app/services"
	"github.com/yeremiapane/foodtruck-order-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := cfg.OpenDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	if err := database.EnsureDefaultSettings(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed settings: %v", err)
	}

	ledger := services.NewGormLedger(db)
	coordinator := services.NewCoordinator(ledger, cfg.Location, cfg.LockTimeout)
	license := services.EnvLicense{Key: cfg.LicenseKey, Expires: cfg.LicenseExpires}

	r := router.SetupRouter(cfg, ledger, coordinator, license)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
