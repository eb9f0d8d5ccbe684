package services

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"marmitaria/internal/models"
	"marmitaria/internal/repository"
	"marmitaria/internal/schedule"
)

// DefaultStaffPassword seeds the shared kitchen/admin password until an
// admin changes it.
const DefaultStaffPassword = "1234"

var (
	ErrInvalidHours  = errors.New("hours must be HH:MM with opening before closing")
	ErrWrongPassword = errors.New("current password is incorrect")
	ErrEmptyPassword = errors.New("new password must not be empty")
)

type ConfigService interface {
	Get() (*models.OperatingConfig, error)
	Update(opening, closing, message, phone string) (*models.OperatingConfig, error)
	ChangePassword(current, newPassword string) error
	VerifyPassword(password string) error
	IsOrderingOpen() (bool, error)
}

type configService struct {
	configRepo repository.ConfigRepository
	now        func() time.Time
}

func NewConfigService(configRepo repository.ConfigRepository) ConfigService {
	return &configService{configRepo: configRepo, now: time.Now}
}

// Get returns the stored config, or the defaults when nothing has been
// persisted yet. The row itself is only created on first write.
func (s *configService) Get() (*models.OperatingConfig, error) {
	cfg, err := s.configRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.OperatingConfig{
				OpeningTime: models.DefaultOpeningTime,
				ClosingTime: models.DefaultClosingTime,
			}, nil
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func (s *configService) Update(opening, closing, message, phone string) (*models.OperatingConfig, error) {
	if !schedule.ValidHours(opening) || !schedule.ValidHours(closing) || opening >= closing {
		return nil, ErrInvalidHours
	}

	cfg, err := s.ensure()
	if err != nil {
		return nil, err
	}

	cfg.OpeningTime = opening
	cfg.ClosingTime = closing
	cfg.WhatsAppMessage = message
	cfg.NotificationPhone = phone
	if err := s.configRepo.Save(cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}
	return cfg, nil
}

func (s *configService) ChangePassword(current, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyPassword
	}
	if err := s.VerifyPassword(current); err != nil {
		return err
	}

	cfg, err := s.ensure()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	cfg.PasswordHash = string(hash)
	if err := s.configRepo.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// VerifyPassword checks the shared staff password against the stored
// bcrypt hash, creating the config row with the default password when
// none exists yet.
func (s *configService) VerifyPassword(password string) error {
	cfg, err := s.ensure()
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(password)) != nil {
		return ErrWrongPassword
	}
	return nil
}

func (s *configService) IsOrderingOpen() (bool, error) {
	cfg, err := s.Get()
	if err != nil {
		return false, err
	}
	return schedule.IsOrderingOpen(cfg.OpeningTime, cfg.ClosingTime, s.now()), nil
}

// ensure loads the config row, lazily creating the defaults on first
// use so later writes have something to update.
func (s *configService) ensure() (*models.OperatingConfig, error) {
	cfg, err := s.configRepo.Get()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultStaffPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}
	cfg = &models.OperatingConfig{
		OpeningTime:  models.DefaultOpeningTime,
		ClosingTime:  models.DefaultClosingTime,
		PasswordHash: string(hash),
	}
	if err := s.configRepo.Save(cfg); err != nil {
		return nil, fmt.Errorf("failed to create config: %w", err)
	}
	return cfg, nil
}
