package staff

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Service defines staff business logic.
type Service interface {
	RegisterStaff(ctx context.Context, req RegisterStaffRequest) (*Staff, error)
	GetStaff(ctx context.Context, id int) (*Staff, error)
	ListStaff(ctx context.Context) ([]*Staff, error)
}

type service struct{ repo Repository }

// NewService creates a new staff service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) RegisterStaff(ctx context.Context, req RegisterStaffRequest) (*Staff, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(req.IC) == "" {
		return nil, fmt.Errorf("ic is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	st := &Staff{
		IC:           req.IC,
		Name:         req.Name,
		PasswordHash: string(hashed),
		Age:          req.Age,
		Salary:       req.Salary,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) GetStaff(ctx context.Context, id int) (*Staff, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListStaff(ctx context.Context) ([]*Staff, error) {
	return s.repo.List(ctx)
}
