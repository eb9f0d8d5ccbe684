package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Menu is one day's offer: its items, its size tiers and a legacy flat
// price used when no size tiers are active. By convention at most one
// menu is active at a time; the data layer does not enforce it.
type Menu struct {
	ID        string          `json:"id" gorm:"primaryKey"`
	Active    bool            `json:"active" gorm:"default:true"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(10,2)"`
	Items     []MenuItem      `json:"items" gorm:"foreignKey:MenuID"`
	Sizes     []SizeOption    `json:"sizes" gorm:"foreignKey:MenuID"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
