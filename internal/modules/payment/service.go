package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/ledger"
	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/member"
	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/sales"
)

// TaxRate applies to the post-discount amount of every settlement.
const TaxRate = 0.06

var (
	// ErrEmptyCart is returned when settlement is attempted on an empty
	// cart. Nothing is written.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidDiscountRate is returned for rates outside [0, 1].
	ErrInvalidDiscountRate = errors.New("discount rate out of range")
)

// MemberDirectory resolves members for tier-based discounts. Satisfied by
// member.Service.
type MemberDirectory interface {
	GetMember(ctx context.Context, id int) (*member.Member, error)
}

// Service settles the cart into the ledgers.
type Service interface {
	// Preview computes the totals for the current cart without writing
	// anything or clearing the cart.
	Preview(ctx context.Context, discountRate float64) (*Totals, error)

	// Settle finalizes the cart: appends one paid item per line and one
	// transaction record, then clears the cart. Stock is not refunded —
	// it was already deducted when each line was reserved.
	Settle(ctx context.Context, discountRate float64) (*Receipt, error)

	// SettleForMember settles with the discount rate of the member's tier.
	SettleForMember(ctx context.Context, memberID int) (*Receipt, error)
}

type service struct {
	cart     *sales.Cart
	members  MemberDirectory
	paidRepo ledger.PaidItemRepository
	txRepo   ledger.TransactionRepository
}

// NewService creates a new settlement service.
func NewService(cart *sales.Cart, members MemberDirectory, paidRepo ledger.PaidItemRepository, txRepo ledger.TransactionRepository) Service {
	return &service{cart: cart, members: members, paidRepo: paidRepo, txRepo: txRepo}
}

// Subtotal sums qty x price over the given lines.
func Subtotal(lines []*sales.OrderLine) float64 {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.LineTotal()
	}
	return subtotal
}

// Discount returns the discount amount for the given rate.
func Discount(rate, subtotal float64) float64 {
	return subtotal * rate
}

// Tax returns the tax on the post-discount amount.
func Tax(subtotal, discount float64) float64 {
	return (subtotal - discount) * TaxRate
}

func (s *service) Preview(ctx context.Context, discountRate float64) (*Totals, error) {
	if discountRate < 0 || discountRate > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDiscountRate, discountRate)
	}
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	return computeTotals(lines, discountRate), nil
}

func (s *service) Settle(ctx context.Context, discountRate float64) (*Receipt, error) {
	if discountRate < 0 || discountRate > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDiscountRate, discountRate)
	}
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := computeTotals(lines, discountRate)

	paid := make([]*ledger.PaidItem, 0, len(lines))
	for _, l := range lines {
		paid = append(paid, &ledger.PaidItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Qty:       l.Qty,
			Price:     l.Price,
		})
	}
	if err := s.paidRepo.Append(ctx, paid); err != nil {
		return nil, fmt.Errorf("append paid items: %w", err)
	}
	if err := s.txRepo.Append(ctx, &ledger.TransactionRecord{
		Subtotal: totals.Subtotal,
		Discount: totals.Discount,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}); err != nil {
		return nil, fmt.Errorf("append transaction: %w", err)
	}

	s.cart.Clear()

	return &Receipt{
		ID:       uuid.New(),
		Subtotal: totals.Subtotal,
		Discount: totals.Discount,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}, nil
}

func (s *service) SettleForMember(ctx context.Context, memberID int) (*Receipt, error) {
	m, err := s.members.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return s.Settle(ctx, m.Tier.DiscountRate())
}

func computeTotals(lines []*sales.OrderLine, rate float64) *Totals {
	subtotal := Subtotal(lines)
	discount := Discount(rate, subtotal)
	tax := Tax(subtotal, discount)
	return &Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    subtotal - discount + tax,
	}
}
