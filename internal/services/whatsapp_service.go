package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"marmitaria/internal/models"
	"marmitaria/internal/receipt"
	"marmitaria/internal/repository"
	"marmitaria/pkg/whatsapp"
)

// TextSender is the outbound message transport. Satisfied by
// *whatsapp.Client.
type TextSender interface {
	SendText(number, text string) whatsapp.SendResult
}

// NotificationService sends the order receipt to the owner's configured
// phone and, when present, the customer's. Best effort: per-recipient
// failures are logged and folded into the returned flag, never into an
// error.
type NotificationService interface {
	NotifyOrder(order *models.Order) bool
}

type notificationService struct {
	sender     TextSender
	configRepo repository.ConfigRepository
}

func NewNotificationService(sender TextSender, configRepo repository.ConfigRepository) NotificationService {
	return &notificationService{sender: sender, configRepo: configRepo}
}

// NotifyOrder returns true when at least one recipient received the
// receipt. Both sends complete before it returns; there is no
// fire-and-forget detachment and no retry.
func (s *notificationService) NotifyOrder(order *models.Order) bool {
	text := receipt.Format(order)

	ownerPhone := ""
	cfg, err := s.configRepo.Get()
	switch {
	case err == nil:
		ownerPhone = cfg.NotificationPhone
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No config yet, owner simply gets nothing.
	default:
		log.Printf("notification: failed to load config: %v", err)
	}

	anySent := false
	if ownerPhone != "" {
		if res := s.sender.SendText(ownerPhone, text); res.OK {
			anySent = true
		} else {
			log.Printf("notification: owner send for order #%d failed: %s", order.Number, res.Error)
		}
	}
	if order.CustomerPhone != "" {
		if res := s.sender.SendText(order.CustomerPhone, text); res.OK {
			anySent = true
		} else {
			log.Printf("notification: customer send for order #%d failed: %s", order.Number, res.Error)
		}
	}
	return anySent
}
