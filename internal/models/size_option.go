package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SizeOption is a purchasable size tier. When a size is chosen it
// supplies the order's base unit price instead of the menu's flat price.
type SizeOption struct {
	ID        string          `json:"id" gorm:"primaryKey"`
	MenuID    string          `json:"menu_id" gorm:"not null;index"`
	Name      string          `json:"name" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Active    bool            `json:"active" gorm:"default:true"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (s *SizeOption) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
