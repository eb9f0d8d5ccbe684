package migrations

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"marmitaria/internal/models"
)

// RunMigrations migrates the schema and creates the default data the
// shop needs on a fresh database. Existing rows are left alone.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Menu{},
		&models.MenuItem{},
		&models.SizeOption{},
		&models.DeliveryPoint{},
		&models.Order{},
		&models.OperatingConfig{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData seeds the two delivery points, a starter menu and
// the operating config, each only when missing.
func createDefaultData(db *gorm.DB) error {
	seedDeliveryPoints(db)
	seedMenu(db)
	seedConfig(db)
	return nil
}

func seedDeliveryPoints(db *gorm.DB) {
	points := []models.DeliveryPoint{
		{ID: "quiosque-laranjinha", Name: "Quiosque Laranjinha", TimeLabel: "11h30", Active: true},
		{ID: "cebraspe", Name: "Cebraspe", TimeLabel: "12h00", Active: true},
	}
	for _, point := range points {
		var existing models.DeliveryPoint
		if err := db.First(&existing, "id = ?", point.ID).Error; err == nil {
			continue
		}
		if err := db.Create(&point).Error; err != nil {
			log.Printf("Warning: Failed to seed delivery point %s: %v", point.Name, err)
		} else {
			log.Printf("Delivery point created: %s", point.Name)
		}
	}
}

func seedMenu(db *gorm.DB) {
	var count int64
	db.Model(&models.Menu{}).Count(&count)
	if count > 0 {
		return
	}

	item := func(name string, category models.Category) models.MenuItem {
		return models.MenuItem{Name: name, Category: category, Available: true}
	}

	menu := models.Menu{
		Active: true,
		Price:  decimal.NewFromInt(20),
		Items: []models.MenuItem{
			item("Arroz", models.CategoryAccompaniment),
			item("Feijão Tropeiro", models.CategoryAccompaniment),
			item("Feijão Caldo", models.CategoryAccompaniment),
			item("Macarrão", models.CategoryAccompaniment),
			item("Farofa", models.CategoryAccompaniment),
			item("Mandioca", models.CategoryAccompaniment),
			item("Batata Palha", models.CategoryAccompaniment),
			item("Purê", models.CategoryAccompaniment),
			item("Vinagrete", models.CategoryAccompaniment),
			item("Alface com Tomate", models.CategoryAccompaniment),

			item("Alcatra", models.CategoryProtein),
			item("Contra Filé", models.CategoryProtein),
			item("Frango Grelhado", models.CategoryProtein),
			item("Asinha de Frango", models.CategoryProtein),
			item("Linguiça", models.CategoryProtein),
			item("Peixe", models.CategoryProtein),

			item("Espetinho de Carne", models.CategoryExtra),
			item("Espetinho de Frango", models.CategoryExtra),
			item("Refrigerante", models.CategoryExtra),
		},
	}
	if err := db.Create(&menu).Error; err != nil {
		log.Printf("Warning: Failed to seed menu: %v", err)
	} else {
		log.Printf("Default menu created with price %s", menu.Price)
	}
}

func seedConfig(db *gorm.DB) {
	var count int64
	db.Model(&models.OperatingConfig{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: Failed to hash default password: %v", err)
		return
	}

	cfg := models.OperatingConfig{
		OpeningTime:       models.DefaultOpeningTime,
		ClosingTime:       models.DefaultClosingTime,
		WhatsAppMessage:   "Pedido Confirmado!",
		NotificationPhone: "",
		PasswordHash:      string(hash),
	}
	if err := db.Create(&cfg).Error; err != nil {
		log.Printf("Warning: Failed to seed config: %v", err)
	} else {
		log.Println("Default operating config created (password: 1234)")
	}
}
