package services

import (
	"errors"
	"testing"
	"time"

	"marmitaria/internal/models"
)

func TestConfigGetDefaultsBeforeFirstWrite(t *testing.T) {
	svc := NewConfigService(&memConfigRepo{})

	cfg, err := svc.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if cfg.OpeningTime != models.DefaultOpeningTime || cfg.ClosingTime != models.DefaultClosingTime {
		t.Errorf("window = %s-%s, want %s-%s", cfg.OpeningTime, cfg.ClosingTime, models.DefaultOpeningTime, models.DefaultClosingTime)
	}
}

func TestConfigUpdateValidatesHours(t *testing.T) {
	tests := []struct {
		name    string
		opening string
		closing string
		wantErr bool
	}{
		{"valid window", "09:30", "13:00", false},
		{"malformed opening", "9h30", "13:00", true},
		{"malformed closing", "09:30", "25:00", true},
		{"opening after closing", "14:00", "11:00", true},
		{"opening equals closing", "11:00", "11:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memConfigRepo{}
			svc := NewConfigService(repo)

			cfg, err := svc.Update(tt.opening, tt.closing, "Pedido recebido!", "5561999990000")
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHours) {
					t.Fatalf("Update() error = %v, want ErrInvalidHours", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if cfg.OpeningTime != tt.opening || cfg.ClosingTime != tt.closing {
				t.Errorf("window = %s-%s, want %s-%s", cfg.OpeningTime, cfg.ClosingTime, tt.opening, tt.closing)
			}
			if repo.cfg == nil {
				t.Fatal("config row was not persisted")
			}
			if repo.cfg.NotificationPhone != "5561999990000" {
				t.Errorf("NotificationPhone = %q", repo.cfg.NotificationPhone)
			}
		})
	}
}

func TestConfigPasswordLifecycle(t *testing.T) {
	repo := &memConfigRepo{}
	svc := NewConfigService(repo)

	// First verification lazily seeds the row with the default password.
	if err := svc.VerifyPassword(DefaultStaffPassword); err != nil {
		t.Fatalf("VerifyPassword(default) error = %v", err)
	}
	if repo.cfg == nil || repo.cfg.PasswordHash == "" {
		t.Fatal("config row was not seeded with a password hash")
	}
	if repo.cfg.PasswordHash == DefaultStaffPassword {
		t.Fatal("password stored in plaintext")
	}

	if err := svc.VerifyPassword("errada"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("VerifyPassword(wrong) error = %v, want ErrWrongPassword", err)
	}

	if err := svc.ChangePassword("errada", "segredo"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("ChangePassword(wrong current) error = %v, want ErrWrongPassword", err)
	}
	if err := svc.ChangePassword(DefaultStaffPassword, ""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("ChangePassword(empty) error = %v, want ErrEmptyPassword", err)
	}

	if err := svc.ChangePassword(DefaultStaffPassword, "segredo"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}
	if err := svc.VerifyPassword("segredo"); err != nil {
		t.Errorf("VerifyPassword(new) error = %v", err)
	}
	if err := svc.VerifyPassword(DefaultStaffPassword); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("VerifyPassword(old) error = %v, want ErrWrongPassword", err)
	}
}

func TestConfigIsOrderingOpen(t *testing.T) {
	repo := &memConfigRepo{cfg: &models.OperatingConfig{
		ID:          1,
		OpeningTime: "08:00",
		ClosingTime: "11:00",
	}}
	svc := NewConfigService(repo).(*configService)

	svc.now = func() time.Time { return vendorClock(9, 0) }
	open, err := svc.IsOrderingOpen()
	if err != nil {
		t.Fatalf("IsOrderingOpen() error = %v", err)
	}
	if !open {
		t.Error("IsOrderingOpen() = false at 09:00, want true")
	}

	svc.now = func() time.Time { return vendorClock(11, 0) }
	open, err = svc.IsOrderingOpen()
	if err != nil {
		t.Fatalf("IsOrderingOpen() error = %v", err)
	}
	if open {
		t.Error("IsOrderingOpen() = true at 11:00, want false")
	}
}
