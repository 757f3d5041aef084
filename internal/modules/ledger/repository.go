package ledger

import "context"

// TransactionRepository defines the append-only transaction log.
type TransactionRepository interface {
	Append(ctx context.Context, rec *TransactionRecord) error
	LoadAll(ctx context.Context) ([]*TransactionRecord, error)
}

// PaidItemRepository defines the append-only paid-items log.
type PaidItemRepository interface {
	Append(ctx context.Context, items []*PaidItem) error
	LoadAll(ctx context.Context) ([]*PaidItem, error)
}
