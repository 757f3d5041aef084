package staff

import "context"

// Repository defines the interface for staff storage.
type Repository interface {
	List(ctx context.Context) ([]*Staff, error)
	GetByID(ctx context.Context, id int) (*Staff, error)
	GetByIC(ctx context.Context, ic string) (*Staff, error)
	Create(ctx context.Context, s *Staff) error
}
