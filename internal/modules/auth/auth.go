package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned when the staff id or password is wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, staffID int, password string) (string, error)
}
