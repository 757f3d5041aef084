package ledger

import "context"

// Service defines reporting over the settled ledgers.
type Service interface {
	ListTransactions(ctx context.Context) ([]*TransactionRecord, error)
	ListPaidItems(ctx context.Context) ([]*PaidItem, error)
	Report(ctx context.Context) (*SalesReport, error)
}

type service struct {
	txRepo   TransactionRepository
	paidRepo PaidItemRepository
}

// NewService creates a new ledger reporting service.
func NewService(txRepo TransactionRepository, paidRepo PaidItemRepository) Service {
	return &service{txRepo: txRepo, paidRepo: paidRepo}
}

func (s *service) ListTransactions(ctx context.Context) ([]*TransactionRecord, error) {
	return s.txRepo.LoadAll(ctx)
}

func (s *service) ListPaidItems(ctx context.Context) ([]*PaidItem, error) {
	return s.paidRepo.LoadAll(ctx)
}

func (s *service) Report(ctx context.Context) (*SalesReport, error) {
	records, err := s.txRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	report := &SalesReport{}
	for _, rec := range records {
		report.Count++
		report.Subtotal += rec.Subtotal
		report.Discount += rec.Discount
		report.Tax += rec.Tax
		report.Total += rec.Total
	}
	return report, nil
}
