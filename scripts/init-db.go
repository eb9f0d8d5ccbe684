package main

import (
	"fmt"
	"log"
	"marmitaria/internal/config"
	"marmitaria/internal/database"
	"marmitaria/internal/migrations"
	"marmitaria/internal/models"
	"marmitaria/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.MenuItem{},
		&models.SizeOption{},
		&models.Menu{},
		&models.Order{},
		&models.DeliveryPoint{},
		&models.OperatingConfig{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Recreate tables and seed default data
	fmt.Println("Creating tables...")
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Seeded delivery points, menu and operating config")
	fmt.Printf("Staff password: %s\n", services.DefaultStaffPassword)
	fmt.Println("Database initialization completed successfully!")
}
