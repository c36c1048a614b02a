package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// TxKind names the contract call a relayed transaction performed.
type TxKind string

const (
	TxFund       TxKind = "fund"
	TxWithdraw   TxKind = "withdraw"
	TxAddTier    TxKind = "add_tier"
	TxRemoveTier TxKind = "remove_tier"
)

// TransactionRecord is a journal entry for a transaction relayed to a
// campaign contract.
type TransactionRecord struct {
	ID        uuid.UUID
	Campaign  common.Address
	Account   common.Address
	Kind      TxKind
	TierIndex *uint64
	TierName  string
	Amount    *uint256.Int // wei sent or tier amount; nil when not applicable
	TxHash    common.Hash
	CreatedAt time.Time
}
