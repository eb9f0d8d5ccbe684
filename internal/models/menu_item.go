package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryAccompaniment Category = "accompaniment"
	CategoryProtein       Category = "protein"
	CategoryExtra         Category = "extra"
)

// DefaultMaxSelections applies when an item carries no explicit cap.
const DefaultMaxSelections = 99

// MenuItem is one selectable food component. MaxSelections caps how many
// items of its category can be selected at once; zero means uncapped.
type MenuItem struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	MenuID        string    `json:"menu_id" gorm:"not null;index"`
	Name          string    `json:"name" gorm:"not null"`
	Category      Category  `json:"category" gorm:"not null"`
	Available     bool      `json:"available" gorm:"default:true"`
	MaxSelections int       `json:"max_selections"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (i *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// SelectionCap resolves the effective cap for this item's category.
func (i *MenuItem) SelectionCap() int {
	if i.MaxSelections <= 0 {
		return DefaultMaxSelections
	}
	return i.MaxSelections
}
