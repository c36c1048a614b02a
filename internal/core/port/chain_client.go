package port

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"fundscope/internal/core/domain"
)

var (
	// ErrCampaignNotFound is returned when no contract is deployed at the
	// requested campaign address.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrUnknownAccount is returned when no signer is available for the
	// account a transaction should be sent from.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrChainUnavailable wraps transport and node failures.
	ErrChainUnavailable = errors.New("chain unavailable")
	// ErrTxReverted is returned when a submitted transaction was mined with
	// a failed status.
	ErrTxReverted = errors.New("transaction reverted")
)

// ChainClient reads campaign contracts and submits transactions to them. It
// is the outbound port to the blockchain; transport, signing and ABI
// encoding are the implementation's concern. Implementations must be safe
// for concurrent use.
type ChainClient interface {
	// ListCampaigns returns every campaign registered with the factory.
	ListCampaigns(ctx context.Context) ([]domain.CampaignRef, error)
	// ListUserCampaigns returns the campaigns created by user.
	ListUserCampaigns(ctx context.Context, user common.Address) ([]domain.CampaignRef, error)
	// ReadCampaignSnapshot reads goal, balance and deadline of a campaign.
	ReadCampaignSnapshot(ctx context.Context, campaign common.Address) (domain.CampaignSnapshot, error)
	// ReadCampaignDetails reads the descriptive fields, owner, contract
	// state and tiers of a campaign.
	ReadCampaignDetails(ctx context.Context, campaign common.Address) (*domain.CampaignDetails, error)

	// SubmitFunding sends amount wei to the campaign's fund(tierIndex).
	SubmitFunding(ctx context.Context, campaign common.Address, tierIndex uint64, amount *uint256.Int, from common.Address) (TxResult, error)
	// SubmitWithdraw calls withdraw() on behalf of the owner.
	SubmitWithdraw(ctx context.Context, campaign common.Address, from common.Address) (TxResult, error)
	// SubmitAddTier calls addTier(name, amount).
	SubmitAddTier(ctx context.Context, campaign common.Address, name string, amount *uint256.Int, from common.Address) (TxResult, error)
	// SubmitRemoveTier calls removeTier(index).
	SubmitRemoveTier(ctx context.Context, campaign common.Address, index uint64, from common.Address) (TxResult, error)
}

// TxResult identifies a transaction accepted by the chain. Confirmed is set
// when the client waited for a successful receipt.
type TxResult struct {
	Hash        common.Hash
	BlockNumber uint64
	Confirmed   bool
}
