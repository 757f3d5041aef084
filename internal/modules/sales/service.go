package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/stock"
)

var (
	// ErrLineNotFound is returned when no cart line carries the order number.
	ErrLineNotFound = errors.New("order not found in cart")
	// ErrInsufficientStock is returned when a reservation asks for more than
	// the product has available.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantity is returned for quantities or deltas outside the
	// allowed bounds. The operation mutates nothing.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidDirection is returned for an unknown edit direction.
	ErrInvalidDirection = errors.New("invalid edit direction")
)

// Service moves quantity between available stock and the cart. Quantity for a
// product is conserved: whatever leaves the catalog is held by a cart line
// until the line is removed (refund) or settled (terminal, no refund).
type Service interface {
	// AddToCart reserves qty units of a product into a new cart line.
	AddToCart(ctx context.Context, productID, qty int) (*OrderLine, error)

	// RemoveOrder deletes a cart line and refunds its quantity to stock.
	RemoveOrder(ctx context.Context, orderNo int) error

	// EditOrderQuantity moves delta units between a line and available stock.
	EditOrderQuantity(ctx context.Context, orderNo, delta int, dir EditDirection) (*OrderLine, error)

	// Read-only queries for the presentation layer.
	ListAvailable(ctx context.Context) ([]*stock.Product, error)
	FindProduct(ctx context.Context, id int) (*stock.Product, error)
	ListCart(ctx context.Context) []*OrderLine
	FindLine(ctx context.Context, orderNo int) (*OrderLine, error)
}

type service struct {
	stockRepo stock.Repository
	cart      *Cart
}

// NewService creates the cart engine over the given catalog and cart.
func NewService(stockRepo stock.Repository, cart *Cart) Service {
	return &service{stockRepo: stockRepo, cart: cart}
}

func (s *service) AddToCart(ctx context.Context, productID, qty int) (*OrderLine, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: qty must be > 0, got %d", ErrInvalidQuantity, qty)
	}
	p, err := s.stockRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if qty > p.Qty {
		return nil, fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, qty, p.Qty)
	}

	// Both sides move together: deduct from stock, mirror into a new line.
	p.Qty -= qty
	line := &OrderLine{
		ProductID: p.ID,
		Name:      p.Name,
		Qty:       qty,
		Price:     p.Price,
	}
	s.cart.Add(line)

	if err := s.stockRepo.Persist(ctx); err != nil {
		// The in-memory mirror stays authoritative; the next successful
		// persist writes the current state (see DESIGN.md).
		return nil, fmt.Errorf("persist stock after reservation: %w", err)
	}
	return line, nil
}

func (s *service) RemoveOrder(ctx context.Context, orderNo int) error {
	line := s.cart.Remove(orderNo)
	if line == nil {
		return fmt.Errorf("%w: order %d", ErrLineNotFound, orderNo)
	}

	// Refund the reserved quantity. The product may have been deleted from
	// the catalog since the reservation; in that case there is nothing to
	// refund into.
	if p, err := s.stockRepo.GetByID(ctx, line.ProductID); err == nil {
		p.Qty += line.Qty
	}

	if err := s.stockRepo.Persist(ctx); err != nil {
		return fmt.Errorf("persist stock after removal: %w", err)
	}
	return nil
}

func (s *service) EditOrderQuantity(ctx context.Context, orderNo, delta int, dir EditDirection) (*OrderLine, error) {
	line := s.cart.Find(orderNo)
	if line == nil {
		return nil, fmt.Errorf("%w: order %d", ErrLineNotFound, orderNo)
	}
	p, err := s.stockRepo.GetByID(ctx, line.ProductID)
	if err != nil {
		return nil, err
	}
	if delta <= 0 {
		return nil, fmt.Errorf("%w: delta must be > 0, got %d", ErrInvalidQuantity, delta)
	}

	// Validate fully before touching either side, so a rejection leaves the
	// line and the catalog untouched.
	switch dir {
	case DirectionReduce:
		if delta > line.Qty {
			return nil, fmt.Errorf("%w: reduce by %d exceeds line quantity %d", ErrInvalidQuantity, delta, line.Qty)
		}
		if delta == line.Qty {
			return nil, fmt.Errorf("%w: reducing a line to zero is not allowed, remove the order instead", ErrInvalidQuantity)
		}
		line.Qty -= delta
		p.Qty += delta
	case DirectionAdd:
		if delta > p.Qty {
			return nil, fmt.Errorf("%w: add %d exceeds available stock %d", ErrInvalidQuantity, delta, p.Qty)
		}
		line.Qty += delta
		p.Qty -= delta
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}

	if err := s.stockRepo.Persist(ctx); err != nil {
		return nil, fmt.Errorf("persist stock after edit: %w", err)
	}
	return line, nil
}

func (s *service) ListAvailable(ctx context.Context) ([]*stock.Product, error) {
	return s.stockRepo.List(ctx)
}

func (s *service) FindProduct(ctx context.Context, id int) (*stock.Product, error) {
	return s.stockRepo.GetByID(ctx, id)
}

func (s *service) ListCart(ctx context.Context) []*OrderLine {
	return s.cart.Lines()
}

func (s *service) FindLine(ctx context.Context, orderNo int) (*OrderLine, error) {
	line := s.cart.Find(orderNo)
	if line == nil {
		return nil, fmt.Errorf("%w: order %d", ErrLineNotFound, orderNo)
	}
	return line, nil
}
