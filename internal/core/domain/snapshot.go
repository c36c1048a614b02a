package domain

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// CampaignSnapshot is an immutable point-in-time read of a campaign's funding
// fields. Goal and Balance are denominated in the contract's native unit and
// may exceed 64 bits. Deadline is a unix timestamp in seconds.
type CampaignSnapshot struct {
	Goal     *uint256.Int
	Balance  *uint256.Int
	Deadline uint64
}

// NewSnapshot validates raw contract return values and converts them into a
// snapshot. A nil, negative or oversized field yields ErrInvalidSnapshot; a
// negative goal yields ErrInvalidGoal. Deadlines must fit a signed 64-bit
// Unix timestamp. A zero goal is accepted here and rejected when a
// percentage is computed from it.
func NewSnapshot(goal, balance, deadline *big.Int) (CampaignSnapshot, error) {
	var snap CampaignSnapshot
	if goal == nil {
		return snap, fmt.Errorf("%w: missing goal", ErrInvalidSnapshot)
	}
	if balance == nil {
		return snap, fmt.Errorf("%w: missing balance", ErrInvalidSnapshot)
	}
	if deadline == nil {
		return snap, fmt.Errorf("%w: missing deadline", ErrInvalidSnapshot)
	}
	if goal.Sign() < 0 {
		return snap, fmt.Errorf("%w: goal %s is negative", ErrInvalidGoal, goal)
	}
	if balance.Sign() < 0 {
		return snap, fmt.Errorf("%w: balance %s is negative", ErrInvalidSnapshot, balance)
	}
	if deadline.Sign() < 0 || !deadline.IsInt64() {
		return snap, fmt.Errorf("%w: deadline %s out of range", ErrInvalidSnapshot, deadline)
	}
	g, overflow := uint256.FromBig(goal)
	if overflow {
		return snap, fmt.Errorf("%w: goal overflows 256 bits", ErrInvalidSnapshot)
	}
	b, overflow := uint256.FromBig(balance)
	if overflow {
		return snap, fmt.Errorf("%w: balance overflows 256 bits", ErrInvalidSnapshot)
	}
	return CampaignSnapshot{Goal: g, Balance: b, Deadline: deadline.Uint64()}, nil
}

// ParseSnapshot builds a snapshot from base-10 strings, as stored in the
// database or typed on the command line.
func ParseSnapshot(goal, balance, deadline string) (CampaignSnapshot, error) {
	fields := [3]*big.Int{}
	for i, raw := range [3]string{goal, balance, deadline} {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		v, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return CampaignSnapshot{}, fmt.Errorf("%w: %q is not a number", ErrInvalidSnapshot, raw)
		}
		fields[i] = v
	}
	return NewSnapshot(fields[0], fields[1], fields[2])
}

// Validate reports whether the snapshot carries every required field and a
// deadline that fits a signed 64-bit timestamp.
func (s CampaignSnapshot) Validate() error {
	if s.Goal == nil {
		return fmt.Errorf("%w: missing goal", ErrInvalidSnapshot)
	}
	if s.Balance == nil {
		return fmt.Errorf("%w: missing balance", ErrInvalidSnapshot)
	}
	if s.Deadline > math.MaxInt64 {
		return fmt.Errorf("%w: deadline %d out of range", ErrInvalidSnapshot, s.Deadline)
	}
	return nil
}

// DerivedMetrics are display-ready values computed from a snapshot and the
// current time. They are never persisted.
type DerivedMetrics struct {
	FundedPercentage float64
	RemainingDays    uint64
	Status           Status
}
