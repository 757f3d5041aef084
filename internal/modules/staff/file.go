package staff

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

type fileRepo struct {
	mu     sync.Mutex
	path   string
	mirror []*Staff
	loaded bool
}

// NewFileRepository creates a staff repository backed by a tab-separated file
// at path (one record per line: id, ic, name, passwordHash, age, salary).
// The staff register is append-only: new records are appended, existing ones
// are never rewritten.
func NewFileRepository(path string) Repository {
	return &fileRepo{path: path}
}

func (r *fileRepo) List(ctx context.Context) ([]*Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return nil, err
	}
	out := make([]*Staff, len(r.mirror))
	copy(out, r.mirror)
	return out, nil
}

func (r *fileRepo) GetByID(ctx context.Context, id int) (*Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return nil, err
	}
	for _, s := range r.mirror {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

func (r *fileRepo) GetByIC(ctx context.Context, ic string) (*Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return nil, err
	}
	for _, s := range r.mirror {
		if s.IC == ic {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: ic %s", ErrNotFound, ic)
}

func (r *fileRepo) Create(ctx context.Context, s *Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(); err != nil {
		return err
	}
	for _, existing := range r.mirror {
		if existing.IC == s.IC {
			return fmt.Errorf("%w: %s", ErrDuplicateIC, s.IC)
		}
	}

	last := 0
	for _, existing := range r.mirror {
		if existing.ID > last {
			last = existing.ID
		}
	}
	s.ID = last + 1

	line := fmt.Sprintf("%d\t%s\t%s\t%s\t%d\t%s\n",
		s.ID, s.IC, s.Name, s.PasswordHash, s.Age,
		strconv.FormatFloat(s.Salary, 'f', 2, 64))
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open staff file: %w", err)
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("append staff record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close staff file: %w", err)
	}

	r.mirror = append(r.mirror, s)
	return nil
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
		return fmt.Errorf("open staff file: %w", err)
	}
	defer f.Close()

	r.mirror = r.mirror[:0]
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) < 6 {
			continue
		}
		id, err1 := strconv.Atoi(parts[0])
		age, err2 := strconv.Atoi(parts[4])
		salary, err3 := strconv.ParseFloat(parts[5], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		r.mirror = append(r.mirror, &Staff{
			ID:           id,
			IC:           parts[1],
			Name:         parts[2],
			PasswordHash: parts[3],
			Age:          age,
			Salary:       salary,
		})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read staff file: %w", err)
	}
	r.loaded = true
	return nil
}
