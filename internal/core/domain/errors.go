package domain

import "errors"

var (
	// ErrInvalidGoal is returned when a campaign goal is zero or negative and
	// a funded percentage cannot be derived from it.
	ErrInvalidGoal = errors.New("invalid campaign goal")
	// ErrInvalidSnapshot is returned when a snapshot field is missing,
	// non-numeric or out of range.
	ErrInvalidSnapshot = errors.New("invalid campaign snapshot")
)
