package member

import (
	"context"
	"fmt"
	"strings"
)

// Service defines membership business logic.
type Service interface {
	RegisterMember(ctx context.Context, req RegisterMemberRequest) (*Member, error)
	GetMember(ctx context.Context, id int) (*Member, error)
	ListMembers(ctx context.Context) ([]*Member, error)
	UpdateMember(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error)
	DeleteMember(ctx context.Context, id int) error
}

type service struct{ repo Repository }

// NewService creates a new membership service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) RegisterMember(ctx context.Context, req RegisterMemberRequest) (*Member, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(req.IC) == "" {
		return nil, fmt.Errorf("ic is required")
	}
	tier, err := ParseTier(req.Tier)
	if err != nil {
		return nil, err
	}

	m := &Member{
		Name:  req.Name,
		IC:    req.IC,
		Phone: req.Phone,
		Tier:  tier,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) GetMember(ctx context.Context, id int) (*Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListMembers(ctx context.Context) ([]*Member, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateMember(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *m
	if req.Name != "" {
		updated.Name = req.Name
	}
	if req.Phone != "" {
		updated.Phone = req.Phone
	}
	if req.IC != "" && req.IC != m.IC {
		if other, err := s.repo.GetByIC(ctx, req.IC); err == nil && other.ID != id {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIC, req.IC)
		}
		updated.IC = req.IC
	}
	if req.Tier != "" {
		tier, err := ParseTier(req.Tier)
		if err != nil {
			return nil, err
		}
		updated.Tier = tier
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *service) DeleteMember(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}
