package models

import "time"

// Default operating window applied before any config row exists.
const (
	DefaultOpeningTime = "08:00"
	DefaultClosingTime = "11:00"
)

// OperatingConfig is the vendor-wide settings row. Logically a
// singleton: created lazily on first write, always read via FindFirst.
// PasswordHash is the bcrypt hash of the shared kitchen/admin password.
type OperatingConfig struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	OpeningTime       string    `json:"opening_time" gorm:"not null;default:'08:00'"`
	ClosingTime       string    `json:"closing_time" gorm:"not null;default:'11:00'"`
	WhatsAppMessage   string    `json:"whatsapp_message" gorm:"type:text"`
	NotificationPhone string    `json:"notification_phone"`
	PasswordHash      string    `json:"-" gorm:"not null"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
