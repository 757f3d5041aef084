package ledger

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTransactionLedger_AppendAndLoadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Transaction.txt")
	repo := NewTransactionFileRepository(path)
	ctx := context.Background()

	first := &TransactionRecord{Subtotal: 25.00, Discount: 0.00, Tax: 1.50, Total: 26.50}
	second := &TransactionRecord{Subtotal: 10.00, Discount: 1.00, Tax: 0.54, Total: 9.54}
	if err := repo.Append(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := repo.Append(ctx, second); err != nil {
		t.Fatal(err)
	}

	records, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if *records[0] != *first || *records[1] != *second {
		t.Errorf("records not returned in file order: %+v", records)
	}

	// LoadAll with no intervening append is idempotent.
	again, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(records, again) {
		t.Error("repeated LoadAll returned different results")
	}
}

func TestTransactionLedger_FileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Transaction.txt")
	repo := NewTransactionFileRepository(path)

	if err := repo.Append(context.Background(), &TransactionRecord{
		Subtotal: 25.00, Discount: 0.00, Tax: 1.50, Total: 26.50,
	}); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "25.00\t0.00\t1.50\t26.50\n"
	if string(raw) != want {
		t.Errorf("unexpected file content %q, want %q", raw, want)
	}
}

func TestTransactionLedger_EmptyFile(t *testing.T) {
	repo := NewTransactionFileRepository(filepath.Join(t.TempDir(), "Transaction.txt"))
	records, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records before first settlement, got %d", len(records))
	}
}

func TestPaidItemLedger_AppendAndLoadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PaidItems.txt")
	repo := NewPaidItemFileRepository(path)
	ctx := context.Background()

	items := []*PaidItem{
		{ProductID: 10001, Name: "LATTE", Qty: 5, Price: 5.00},
		{ProductID: 10002, Name: "MOCHA", Qty: 1, Price: 6.50},
	}
	if err := repo.Append(ctx, items); err != nil {
		t.Fatal(err)
	}

	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 paid items, got %d", len(loaded))
	}
	if *loaded[0] != *items[0] || *loaded[1] != *items[1] {
		t.Errorf("unexpected paid items: %+v", loaded)
	}
}

func TestReport_FoldsAllTransactions(t *testing.T) {
	dir := t.TempDir()
	txRepo := NewTransactionFileRepository(filepath.Join(dir, "Transaction.txt"))
	paidRepo := NewPaidItemFileRepository(filepath.Join(dir, "PaidItems.txt"))
	svc := NewService(txRepo, paidRepo)
	ctx := context.Background()

	txRepo.Append(ctx, &TransactionRecord{Subtotal: 25.00, Discount: 0.00, Tax: 1.50, Total: 26.50})
	txRepo.Append(ctx, &TransactionRecord{Subtotal: 10.00, Discount: 1.00, Tax: 0.54, Total: 9.54})

	report, err := svc.Report(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if report.Count != 2 {
		t.Errorf("expected count 2, got %d", report.Count)
	}
	if !almostEqual(report.Subtotal, 35.00) || !almostEqual(report.Discount, 1.00) {
		t.Errorf("unexpected sums: %+v", report)
	}
	if !almostEqual(report.Tax, 2.04) || !almostEqual(report.Total, 36.04) {
		t.Errorf("unexpected sums: %+v", report)
	}
}
