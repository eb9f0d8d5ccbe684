package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const StaffRole = "staff"

// StaffClaims is the token payload for the shared-password session.
// There are no per-user accounts: anyone holding the shared password is
// "staff".
type StaffClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService turns the shared staff password into a server-verified
// session token. The client never holds a trusted "logged in" flag;
// every staff route re-checks the token signature.
type AuthService interface {
	Login(password string) (string, error)
}

type authService struct {
	configs   ConfigService
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(configs ConfigService, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{configs: configs, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *authService) Login(password string) (string, error) {
	if err := s.configs.VerifyPassword(password); err != nil {
		return "", err
	}

	claims := &StaffClaims{
		Role: StaffRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
