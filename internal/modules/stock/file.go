package stock

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Product ids are assigned above this base so they never collide with order
// numbers or member ids on printed receipts.
const baseProductID = 10000

type fileRepo struct {
	mu     sync.Mutex
	path   string
	mirror []*Product
	loaded bool
}

// NewFileRepository creates a catalog repository backed by a tab-separated
// file at path (one record per line: id, NAME, qty, price). The file is read
// once; afterwards the in-memory mirror is authoritative and every committed
// mutation rewrites the file in full via a temp file and an atomic rename.
func NewFileRepository(path string) Repository {
	return &fileRepo{path: path}
}

func (r *fileRepo) List(ctx context.Context) ([]*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return nil, err
	}
	out := make([]*Product, len(r.mirror))
	copy(out, r.mirror)
	return out, nil
}

func (r *fileRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return nil, err
	}
	for _, p := range r.mirror {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

func (r *fileRepo) Create(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return err
	}

	name := strings.ToUpper(strings.TrimSpace(p.Name))
	for _, existing := range r.mirror {
		if strings.EqualFold(existing.Name, name) {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
	}

	last := baseProductID
	for _, existing := range r.mirror {
		if existing.ID > last {
			last = existing.ID
		}
	}
	p.ID = last + 1
	p.Name = name

	r.mirror = append(r.mirror, p)
	if err := r.persist(); err != nil {
		// Roll the append back so a rejected create leaves the mirror clean.
		r.mirror = r.mirror[:len(r.mirror)-1]
		return err
	}
	return nil
}

func (r *fileRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return false, err
	}
	for i, p := range r.mirror {
		if p.ID == id {
			r.mirror = append(r.mirror[:i], r.mirror[i+1:]...)
			if err := r.persist(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *fileRepo) Persist(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return err
	}
	return r.persist()
}

// load reads the backing file into the mirror. It runs at most once per
// process; a missing file is treated as an empty catalog.
func (r *fileRepo) load() error {
	if r.loaded {
		return nil
	}
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.loaded = true
			return nil
		}
		return fmt.Errorf("open stock file: %w", err)
	}
	defer f.Close()

	r.mirror = r.mirror[:0]
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		p, ok := parseRecord(scanner.Text())
		if !ok {
			continue // skip malformed lines, same as the legacy reader did
		}
		r.mirror = append(r.mirror, p)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stock file: %w", err)
	}
	r.loaded = true
	return nil
}

// persist rewrites the whole catalog to a temp file in the same directory and
// renames it over the original, so a failure mid-write cannot truncate the
// catalog. Caller must hold the mutex.
func (r *fileRepo) persist() error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, "stock-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp stock file: %w", err)
	}
	w := bufio.NewWriter(tmp)
	for _, p := range r.mirror {
		if _, err := fmt.Fprintln(w, formatRecord(p)); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("write stock file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("flush stock file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp stock file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace stock file: %w", err)
	}
	return nil
}

func parseRecord(line string) (*Product, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) < 4 {
		return nil, false
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, false
	}
	qty, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, false
	}
	price, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return nil, false
	}
	return &Product{ID: id, Name: parts[1], Qty: qty, Price: price}, true
}

func formatRecord(p *Product) string {
	return fmt.Sprintf("%d\t%s\t%d\t%s",
		p.ID, p.Name, p.Qty, strconv.FormatFloat(p.Price, 'f', 2, 64))
}
