package member

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

type fileRepo struct {
	mu     sync.Mutex
	path   string
	mirror []*Member
	loaded bool
}

// NewFileRepository creates a member repository backed by a tab-separated
// file at path (one record per line: name, ic, phone, id, tier — the column
// order the register has always used). Mutations rewrite the file in full
// via a temp file and an atomic rename.
func NewFileRepository(path string) Repository {
	return &fileRepo{path: path}
}

func (r *fileRepo) List(ctx context.Context) ([]*Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return nil, err
	}
	out := make([]*Member, len(r.mirror))
	copy(out, r.mirror)
	return out, nil
}

func (r *fileRepo) GetByID(ctx context.Context, id int) (*Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return nil, err
	}
	for _, m := range r.mirror {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

func (r *fileRepo) GetByIC(ctx context.Context, ic string) (*Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return nil, err
	}
	for _, m := range r.mirror {
		if m.IC == ic {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: ic %s", ErrNotFound, ic)
}

func (r *fileRepo) Create(ctx context.Context, m *Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return err
	}
	for _, existing := range r.mirror {
		if existing.IC == m.IC {
			return fmt.Errorf("%w: %s", ErrDuplicateIC, m.IC)
		}
	}

	last := 0
	for _, existing := range r.mirror {
		if existing.ID > last {
			last = existing.ID
		}
	}
	m.ID = last + 1

	r.mirror = append(r.mirror, m)
	if err := r.persist(); err != nil {
		r.mirror = r.mirror[:len(r.mirror)-1]
		return err
	}
	return nil
}

func (r *fileRepo) Update(ctx context.Context, m *Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return err
	}
	for i, existing := range r.mirror {
		if existing.ID == m.ID {
			r.mirror[i] = m
			return r.persist()
		}
	}
	return fmt.Errorf("%w: id %d", ErrNotFound, m.ID)
}

func (r *fileRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return false, err
	}
	for i, m := range r.mirror {
		if m.ID == id {
			r.mirror = append(r.mirror[:i], r.mirror[i+1:]...)
			if err := r.persist(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

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
		return fmt.Errorf("open members file: %w", err)
	}
	defer f.Close()

	r.mirror = r.mirror[:0]
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) < 5 {
			continue
		}
		id, err := strconv.Atoi(parts[3])
		if err != nil {
			continue
		}
		tier, err := ParseTier(parts[4])
		if err != nil {
			continue
		}
		r.mirror = append(r.mirror, &Member{
			ID:    id,
			Name:  parts[0],
			IC:    parts[1],
			Phone: parts[2],
			Tier:  tier,
		})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read members file: %w", err)
	}
	r.loaded = true
	return nil
}

func (r *fileRepo) persist() error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, "members-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp members file: %w", err)
	}
	w := bufio.NewWriter(tmp)
	for _, m := range r.mirror {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", m.Name, m.IC, m.Phone, m.ID, m.Tier)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write members file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp members file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace members file: %w", err)
	}
	return nil
}
