package stock

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no product carries the requested id.
	ErrNotFound = errors.New("product not found")
	// ErrDuplicateName is returned when a product name already exists,
	// compared case-insensitively.
	ErrDuplicateName = errors.New("product name already exists")
)

// Repository defines the interface for catalog storage.
//
// GetByID and List return the live records of the in-memory mirror; a caller
// that changes a record's quantity must follow up with Persist to commit the
// change.
type Repository interface {
	List(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int) (bool, error)
	Persist(ctx context.Context) error
}
