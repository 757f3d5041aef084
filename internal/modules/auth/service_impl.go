package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/staff"
)

type service struct {
	staffRepo staff.Repository
	jwtKey    []byte
}

// NewService creates a new auth service signing tokens with key.
func NewService(staffRepo staff.Repository, key []byte) Service {
	return &service{staffRepo: staffRepo, jwtKey: key}
}

func (s *service) Login(ctx context.Context, staffID int, password string) (string, error) {
	st, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &jwt.StandardClaims{
		Subject:   strconv.Itoa(st.ID),
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
