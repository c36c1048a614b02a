// Package metrics derives display values from campaign snapshots. Every
// function is pure and safe for concurrent use.
package metrics

import (
	"fmt"
	"iter"
	"math"
	"math/big"

	"github.com/holiman/uint256"

	"fundscope/internal/core/domain"
)

const secondsPerDay = 86400

// FundedPercentage returns balance/goal*100 capped at 100. Only a balance
// that reaches the goal yields exactly 100. A zero or missing goal is
// reported as domain.ErrInvalidGoal.
func FundedPercentage(goal, balance *uint256.Int) (float64, error) {
	if goal == nil || goal.IsZero() {
		return 0, fmt.Errorf("%w: goal is zero", domain.ErrInvalidGoal)
	}
	if balance == nil {
		return 0, fmt.Errorf("%w: missing balance", domain.ErrInvalidSnapshot)
	}
	if !balance.Lt(goal) {
		return 100, nil
	}
	ratio := new(big.Float).Quo(
		new(big.Float).SetInt(balance.ToBig()),
		new(big.Float).SetInt(goal.ToBig()),
	)
	pct, _ := ratio.Mul(ratio, big.NewFloat(100)).Float64()
	if pct >= 100 {
		return math.Nextafter(100, 0), nil
	}
	return pct, nil
}

// RemainingDays returns the whole days left until deadline, rounded up.
// Deadlines at or before now yield 0.
func RemainingDays(deadline, now uint64) uint64 {
	if deadline <= now {
		return 0
	}
	remaining := deadline - now
	return remaining/secondsPerDay + min(remaining%secondsPerDay, 1)
}

// ComputeStatus classifies a campaign. Reaching the goal wins over an expired
// deadline, so a campaign funded in its final moment is SUCCESSFUL.
func ComputeStatus(fundedPercentage float64, deadline, now uint64) domain.Status {
	switch {
	case fundedPercentage >= 100:
		return domain.StatusSuccessful
	case now > deadline:
		return domain.StatusFailed
	default:
		return domain.StatusOngoing
	}
}

// Evaluate computes all derived metrics of snap at now.
func Evaluate(snap domain.CampaignSnapshot, now uint64) (domain.DerivedMetrics, error) {
	if err := snap.Validate(); err != nil {
		return domain.DerivedMetrics{}, err
	}
	pct, err := FundedPercentage(snap.Goal, snap.Balance)
	if err != nil {
		return domain.DerivedMetrics{}, err
	}
	return domain.DerivedMetrics{
		FundedPercentage: pct,
		RemainingDays:    RemainingDays(snap.Deadline, now),
		Status:           ComputeStatus(pct, snap.Deadline, now),
	}, nil
}

// Classified is anything carrying an already computed status.
type Classified interface {
	CampaignStatus() domain.Status
}

// FilterByStatus yields the items of campaigns whose status passes selector,
// in input order. The sequence holds no state: every range over it walks the
// full input again.
func FilterByStatus[T Classified](campaigns []T, selector domain.Selector) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range campaigns {
			if !selector.Matches(c.CampaignStatus()) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}
