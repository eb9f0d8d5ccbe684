package main

import (
	"log"
	"time"

	// Embedded tzdata keeps the Sao Paulo conversion working on hosts
	// without a zone database.
	_ "time/tzdata"

	"github.com/gin-gonic/gin"

	"marmitaria/internal/config"
	"marmitaria/internal/database"
	"marmitaria/internal/handlers"
	"marmitaria/internal/middleware"
	"marmitaria/internal/migrations"
	"marmitaria/internal/redis"
	"marmitaria/internal/repository"
	"marmitaria/internal/services"
	"marmitaria/pkg/whatsapp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize WhatsApp client
	whatsappClient := whatsapp.NewClient(cfg.EvolutionAPIURL, cfg.EvolutionInstance, cfg.EvolutionAPIKey)

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db)
	pointRepo := repository.NewDeliveryPointRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// Initialize services
	menuService := services.NewMenuService(menuRepo, redisClient, time.Duration(cfg.CacheTTL)*time.Second)
	pointService := services.NewDeliveryPointService(pointRepo, orderRepo)
	configService := services.NewConfigService(configRepo)
	notificationService := services.NewNotificationService(whatsappClient, configRepo)
	orderService := services.NewOrderService(orderRepo, pointRepo, configRepo, menuService, notificationService)
	authService := services.NewAuthService(configService, cfg.JWTSecret, time.Duration(cfg.SessionTimeout)*time.Second)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService, menuService, pointService, configService)
	kitchenHandler := handlers.NewKitchenHandler(orderService)
	adminHandler := handlers.NewAdminHandler(menuService, pointService, configService)
	authHandler := handlers.NewAuthHandler(authService)

	// Setup routes
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	api := router.Group("/api")
	{
		// Customer surface, no auth
		api.GET("/points", orderHandler.ListPoints)
		api.GET("/menu", orderHandler.GetMenu)
		api.POST("/orders/quote", orderHandler.Quote)
		api.POST("/orders", orderHandler.SubmitOrder)

		api.POST("/auth/login", authHandler.Login)

		// Kitchen board
		kitchen := api.Group("/kitchen", middleware.RequireStaff(cfg.JWTSecret))
		{
			kitchen.GET("/orders", kitchenHandler.ListOrders)
			kitchen.GET("/orders/:number", kitchenHandler.GetOrder)
			kitchen.PUT("/orders/:number/status", kitchenHandler.UpdateStatus)
		}

		// Admin configuration
		admin := api.Group("/admin", middleware.RequireStaff(cfg.JWTSecret))
		{
			admin.GET("/points", adminHandler.ListPoints)
			admin.POST("/points", adminHandler.CreatePoint)
			admin.PUT("/points/:id", adminHandler.UpdatePoint)
			admin.PUT("/points/:id/toggle", adminHandler.TogglePoint)
			admin.DELETE("/points/:id", adminHandler.DeletePoint)

			admin.GET("/menu", adminHandler.GetMenu)
			admin.PUT("/menu/price", adminHandler.UpdateMenuPrice)
			admin.POST("/menu/items", adminHandler.CreateItem)
			admin.PUT("/menu/items/:id", adminHandler.UpdateItem)
			admin.PUT("/menu/items/:id/toggle", adminHandler.ToggleItem)
			admin.DELETE("/menu/items/:id", adminHandler.DeleteItem)
			admin.POST("/menu/sizes", adminHandler.CreateSize)
			admin.PUT("/menu/sizes/:id", adminHandler.UpdateSize)
			admin.DELETE("/menu/sizes/:id", adminHandler.DeleteSize)

			admin.GET("/config", adminHandler.GetConfig)
			admin.PUT("/config", adminHandler.UpdateConfig)
			admin.PUT("/config/password", adminHandler.ChangePassword)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
