package ledger

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Both ledgers are plain append-only logs: one tab-separated record per line,
// appended on settlement and read back in file order for reporting. Unlike
// the catalog they are never rewritten, so reads go to the file each time.

type txFileRepo struct {
	mu   sync.Mutex
	path string
}

// NewTransactionFileRepository creates a transaction ledger backed by a
// tab-separated file (subtotal, discount, tax, total per line).
func NewTransactionFileRepository(path string) TransactionRepository {
	return &txFileRepo{path: path}
}

func (r *txFileRepo) Append(ctx context.Context, rec *TransactionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	line := fmt.Sprintf("%.2f\t%.2f\t%.2f\t%.2f\n",
		rec.Subtotal, rec.Discount, rec.Tax, rec.Total)
	return appendLine(r.path, line)
}

func (r *txFileRepo) LoadAll(ctx context.Context) ([]*TransactionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []*TransactionRecord
	err := scanLines(r.path, func(parts []string) {
		if len(parts) < 4 {
			return
		}
		subtotal, err1 := strconv.ParseFloat(parts[0], 64)
		discount, err2 := strconv.ParseFloat(parts[1], 64)
		tax, err3 := strconv.ParseFloat(parts[2], 64)
		total, err4 := strconv.ParseFloat(parts[3], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return
		}
		records = append(records, &TransactionRecord{
			Subtotal: subtotal,
			Discount: discount,
			Tax:      tax,
			Total:    total,
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

type paidItemFileRepo struct {
	mu   sync.Mutex
	path string
}

// NewPaidItemFileRepository creates a paid-items ledger backed by a
// tab-separated file (productId, name, qty, price per line).
func NewPaidItemFileRepository(path string) PaidItemRepository {
	return &paidItemFileRepo{path: path}
}

func (r *paidItemFileRepo) Append(ctx context.Context, items []*PaidItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%d\t%s\t%d\t%.2f\n",
			item.ProductID, item.Name, item.Qty, item.Price)
	}
	return appendLine(r.path, b.String())
}

func (r *paidItemFileRepo) LoadAll(ctx context.Context) ([]*PaidItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []*PaidItem
	err := scanLines(r.path, func(parts []string) {
		if len(parts) < 4 {
			return
		}
		id, err1 := strconv.Atoi(parts[0])
		qty, err2 := strconv.Atoi(parts[2])
		price, err3 := strconv.ParseFloat(parts[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return
		}
		items = append(items, &PaidItem{
			ProductID: id,
			Name:      parts[1],
			Qty:       qty,
			Price:     price,
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func appendLine(path, data string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger file: %w", err)
	}
	if _, err := f.WriteString(data); err != nil {
		f.Close()
		return fmt.Errorf("append ledger record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close ledger file: %w", err)
	}
	return nil
}

func scanLines(path string, fn func(parts []string)) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // no settlements yet
		}
		return fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fn(strings.Split(scanner.Text(), "\t"))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read ledger file: %w", err)
	}
	return nil
}
