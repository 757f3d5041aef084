package ledger

// TransactionRecord is one settled checkout. Records are append-only and
// never rewritten once on disk.
type TransactionRecord struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// PaidItem is a settlement-time snapshot of one order line.
type PaidItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// SalesReport aggregates every settled transaction.
type SalesReport struct {
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
