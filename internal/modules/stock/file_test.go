package stock

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) (Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock.txt")
	return NewFileRepository(path), path
}

func TestFileRepo_CreateAssignsIDsAboveBase(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first := &Product{Name: "latte", Qty: 10, Price: 5.00}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatal(err)
	}
	if first.ID != 10001 {
		t.Errorf("expected first id 10001, got %d", first.ID)
	}
	if first.Name != "LATTE" {
		t.Errorf("expected upper-cased name, got %q", first.Name)
	}

	second := &Product{Name: "Mocha", Qty: 5, Price: 6.50}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatal(err)
	}
	if second.ID != 10002 {
		t.Errorf("expected second id 10002, got %d", second.ID)
	}
}

func TestFileRepo_RejectsDuplicateName(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &Product{Name: "Latte", Qty: 10, Price: 5.00}); err != nil {
		t.Fatal(err)
	}
	err := repo.Create(ctx, &Product{Name: "lAtTe", Qty: 1, Price: 1.00})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	products, _ := repo.List(ctx)
	if len(products) != 1 {
		t.Errorf("rejected create must not mutate: expected 1 product, got %d", len(products))
	}
}

func TestFileRepo_PersistAndReload(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &Product{Name: "Latte", Qty: 10, Price: 5.00}); err != nil {
		t.Fatal(err)
	}
	p, err := repo.GetByID(ctx, 10001)
	if err != nil {
		t.Fatal(err)
	}
	p.Qty = 7
	if err := repo.Persist(ctx); err != nil {
		t.Fatal(err)
	}

	// A fresh repository over the same file sees the committed state.
	reloaded := NewFileRepository(path)
	got, err := reloaded.GetByID(ctx, 10001)
	if err != nil {
		t.Fatal(err)
	}
	if got.Qty != 7 || got.Name != "LATTE" || got.Price != 5.00 {
		t.Errorf("unexpected reloaded product: %+v", got)
	}
}

func TestFileRepo_Delete(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	repo.Create(ctx, &Product{Name: "Latte", Qty: 10, Price: 5.00})
	repo.Create(ctx, &Product{Name: "Mocha", Qty: 3, Price: 6.50})

	deleted, err := repo.Delete(ctx, 10001)
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, got %v %v", deleted, err)
	}
	deleted, err = repo.Delete(ctx, 10001)
	if err != nil || deleted {
		t.Fatalf("expected absent id to be a no-op, got %v %v", deleted, err)
	}

	reloaded := NewFileRepository(path)
	products, err := reloaded.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 || products[0].Name != "MOCHA" {
		t.Errorf("unexpected catalog after delete: %+v", products)
	}
}

func TestFileRepo_MirrorIsAuthoritativeAfterLoad(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	repo.Create(ctx, &Product{Name: "Latte", Qty: 10, Price: 5.00})
	if _, err := repo.List(ctx); err != nil {
		t.Fatal(err)
	}

	// An external rewrite of the file is not picked up; the mirror owns the
	// state for the life of the process.
	if err := os.WriteFile(path, []byte("10002\tMOCHA\t3\t6.50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	products, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 || products[0].Name != "LATTE" {
		t.Errorf("expected mirror to stay authoritative, got %+v", products)
	}
}

func TestFileRepo_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.txt")
	content := "10001\tLATTE\t10\t5.00\n" +
		"not a record\n" +
		"10002\tMOCHA\tbad\t6.50\n" +
		"10003\tESPRESSO\t4\t3.00\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	repo := NewFileRepository(path)
	products, err := repo.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 parsable products, got %d", len(products))
	}
}
