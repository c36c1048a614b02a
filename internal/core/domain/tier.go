package domain

import "github.com/holiman/uint256"

// Tier is a named funding level with a fixed contribution amount in wei.
// Backers counts how many contributions the tier has received.
type Tier struct {
	Name    string
	Amount  *uint256.Int
	Backers uint64
}
