package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/staff"
)

// Mock staff.Repository
type mockStaffRepo struct {
	records map[int]*staff.Staff
}

func (m *mockStaffRepo) List(ctx context.Context) ([]*staff.Staff, error) { return nil, nil }

func (m *mockStaffRepo) GetByID(ctx context.Context, id int) (*staff.Staff, error) {
	if s, ok := m.records[id]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: id %d", staff.ErrNotFound, id)
}

func (m *mockStaffRepo) GetByIC(ctx context.Context, ic string) (*staff.Staff, error) {
	for _, s := range m.records {
		if s.IC == ic {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: ic %s", staff.ErrNotFound, ic)
}

func (m *mockStaffRepo) Create(ctx context.Context, s *staff.Staff) error { return nil }

func newMockStaffRepo(t *testing.T, id int, password string) *mockStaffRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &mockStaffRepo{records: map[int]*staff.Staff{
		id: {ID: id, IC: "990101-14-1234", Name: "ALICE", PasswordHash: string(hash)},
	}}
}

func TestLogin_Success(t *testing.T) {
	repo := newMockStaffRepo(t, 1, "hunter2")
	svc := NewService(repo, []byte("test-secret"))

	token, err := svc.Login(context.Background(), 1, "hunter2")
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockStaffRepo(t, 1, "hunter2")
	svc := NewService(repo, []byte("test-secret"))

	_, err := svc.Login(context.Background(), 1, "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownStaff(t *testing.T) {
	repo := newMockStaffRepo(t, 1, "hunter2")
	svc := NewService(repo, []byte("test-secret"))

	_, err := svc.Login(context.Background(), 99, "hunter2")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
