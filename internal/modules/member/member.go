package member

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no member carries the requested id.
	ErrNotFound = errors.New("member not found")
	// ErrDuplicateIC is returned when the IC already belongs to a member.
	ErrDuplicateIC = errors.New("ic already registered")
	// ErrUnknownTier is returned for a tier outside the closed set.
	ErrUnknownTier = errors.New("unknown membership tier")
)

// Tier is a membership tier. The set is closed; discount rates come from the
// lookup table below rather than per-tier types.
type Tier string

const (
	TierNormal  Tier = "Normal"
	TierGold    Tier = "Gold"
	TierPremium Tier = "Premium"
)

var discountRates = map[Tier]float64{
	TierNormal:  0.05,
	TierGold:    0.10,
	TierPremium: 0.15,
}

// DiscountRate returns the settlement discount rate for the tier.
func (t Tier) DiscountRate() float64 { return discountRates[t] }

// ParseTier converts a request value into a Tier.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierNormal, TierGold, TierPremium:
		return Tier(s), nil
	default:
		return "", fmt.Errorf("%w: %q (allowed: Normal, Gold, Premium)", ErrUnknownTier, s)
	}
}

// Member is a registered store member. IC is unique across members.
type Member struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	IC    string `json:"ic"`
	Phone string `json:"phone"`
	Tier  Tier   `json:"tier"`
}

// RegisterMemberRequest is the payload for registering a member.
type RegisterMemberRequest struct {
	Name  string `json:"name"`
	IC    string `json:"ic"`
	Phone string `json:"phone"`
	Tier  string `json:"tier"`
}

// UpdateMemberRequest is the payload for editing a member's details.
type UpdateMemberRequest struct {
	Name  string `json:"name"`
	IC    string `json:"ic"`
	Phone string `json:"phone"`
	Tier  string `json:"tier"`
}
