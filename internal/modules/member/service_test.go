package member

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestTierDiscountRates(t *testing.T) {
	cases := []struct {
		tier Tier
		rate float64
	}{
		{TierNormal, 0.05},
		{TierGold, 0.10},
		{TierPremium, 0.15},
	}
	for _, c := range cases {
		if got := c.tier.DiscountRate(); got != c.rate {
			t.Errorf("%s: expected rate %v, got %v", c.tier, c.rate, got)
		}
	}
}

func TestParseTier_RejectsUnknown(t *testing.T) {
	if _, err := ParseTier("Platinum"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("expected ErrUnknownTier, got %v", err)
	}
	if _, err := ParseTier("gold"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("tiers are a closed case-sensitive set, got %v", err)
	}
}

func newTestService(t *testing.T) (Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "members.txt")
	return NewService(NewFileRepository(path)), path
}

func TestRegisterMember_AssignsSequentialIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.RegisterMember(ctx, RegisterMemberRequest{
		Name: "ALICE", IC: "990101-14-1234", Phone: "0123456789", Tier: "Gold",
	})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != 1 {
		t.Errorf("expected first member id 1, got %d", first.ID)
	}

	second, err := svc.RegisterMember(ctx, RegisterMemberRequest{
		Name: "BOB", IC: "880202-10-5678", Phone: "0198765432", Tier: "Normal",
	})
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != 2 {
		t.Errorf("expected second member id 2, got %d", second.ID)
	}
}

func TestRegisterMember_RejectsDuplicateIC(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := RegisterMemberRequest{Name: "ALICE", IC: "990101-14-1234", Tier: "Gold"}
	if _, err := svc.RegisterMember(ctx, req); err != nil {
		t.Fatal(err)
	}
	req.Name = "SOMEONE ELSE"
	if _, err := svc.RegisterMember(ctx, req); !errors.Is(err, ErrDuplicateIC) {
		t.Errorf("expected ErrDuplicateIC, got %v", err)
	}
	members, _ := svc.ListMembers(ctx)
	if len(members) != 1 {
		t.Errorf("rejected register must not mutate: expected 1 member, got %d", len(members))
	}
}

func TestRegisterMember_RejectsUnknownTier(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.RegisterMember(context.Background(), RegisterMemberRequest{
		Name: "ALICE", IC: "990101-14-1234", Tier: "Diamond",
	})
	if !errors.Is(err, ErrUnknownTier) {
		t.Errorf("expected ErrUnknownTier, got %v", err)
	}
}

func TestUpdateMember_ChangesTierAndPersists(t *testing.T) {
	svc, path := newTestService(t)
	ctx := context.Background()

	m, err := svc.RegisterMember(ctx, RegisterMemberRequest{
		Name: "ALICE", IC: "990101-14-1234", Tier: "Normal",
	})
	if err != nil {
		t.Fatal(err)
	}
	updated, err := svc.UpdateMember(ctx, m.ID, UpdateMemberRequest{Tier: "Premium"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Tier != TierPremium {
		t.Errorf("expected Premium, got %s", updated.Tier)
	}

	// A fresh repository over the same file sees the change.
	reloaded := NewService(NewFileRepository(path))
	got, err := reloaded.GetMember(ctx, m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Tier != TierPremium {
		t.Errorf("expected persisted Premium, got %s", got.Tier)
	}
}

func TestDeleteMember_UnknownID(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.DeleteMember(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
