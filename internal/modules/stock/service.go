package stock

import (
	"context"
	"fmt"
	"strings"
)

// Service defines catalog business logic.
type Service interface {
	ListAvailable(ctx context.Context) ([]*Product, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	AddProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListAvailable(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) AddProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Qty < 0 {
		return nil, fmt.Errorf("qty must not be negative")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}

	p := &Product{Name: req.Name, Qty: req.Qty, Price: req.Price}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}
