package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tastetrack/ordering/config"
	"github.com/tastetrack/ordering/hub"
	"github.com/tastetrack/ordering/models"
	"github.com/tastetrack/ordering/router"
	"github.com/tastetrack/ordering/services"
	"github.com/tastetrack/ordering/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
	utils.InitJWT()
	cfg := config.Load()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open local database: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	carts := services.NewCartStore()
	orderClient := services.NewOrderServiceClient(cfg.OrderServiceURL)
	catalogClient := services.NewCatalogClient(cfg.OrderServiceURL)
	statusHub := hub.NewStatusHub()

	monitor := services.NewStatusMonitor(db, orderClient, statusHub)
	monitor.Interval = cfg.PollInterval
	monitor.Start()
	defer monitor.Stop()

	r := router.SetupRouter(cfg, db, carts, orderClient, catalogClient, statusHub)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
