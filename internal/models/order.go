package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known lifecycle states.
// Transitions are deliberately unordered: staff may move an order to any
// status, including backward, to correct mistakes.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderPreparing, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order is one confirmed purchase request. Number is the customer-facing
// sequential id. Item names are snapshotted as JSON lists so the receipt
// survives later menu edits; orders are never deleted.
type Order struct {
	Number        uint            `json:"number" gorm:"primaryKey;autoIncrement"`
	CustomerName  string          `json:"customer_name" gorm:"not null"`
	CustomerPhone string          `json:"customer_phone"`
	Quantity      int             `json:"quantity" gorm:"not null"`
	SizeID        *string         `json:"size_id"`
	SizeName      string          `json:"size_name"`
	Items         datatypes.JSON  `json:"items"`
	SelectedSides datatypes.JSON  `json:"selected_sides"`
	RemovedSides  datatypes.JSON  `json:"removed_sides"`
	Notes         string          `json:"notes" gorm:"type:text"`
	Total         decimal.Decimal `json:"total" gorm:"type:numeric(10,2);not null"`
	Status        OrderStatus     `json:"status" gorm:"default:'pending'"`
	WhatsAppSent  bool            `json:"whatsapp_sent" gorm:"default:false"`

	DeliveryPointID string        `json:"delivery_point_id" gorm:"not null;index"`
	DeliveryPoint   DeliveryPoint `json:"delivery_point" gorm:"foreignKey:DeliveryPointID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NameList encodes a list of item names for a JSON snapshot column.
func NameList(names []string) datatypes.JSON {
	if names == nil {
		names = []string{}
	}
	b, _ := json.Marshal(names)
	return datatypes.JSON(b)
}

// Names decodes a JSON snapshot column back into item names.
func Names(col datatypes.JSON) []string {
	var names []string
	if err := json.Unmarshal([]byte(col), &names); err != nil {
		return nil
	}
	return names
}
