package port

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"fundscope/internal/core/domain"
)

var (
	// ErrForbidden is returned when the account lacks the capability an
	// operation requires.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidTier is returned for a tier index the campaign does not have
	// or an invalid tier definition.
	ErrInvalidTier = errors.New("invalid tier")
	// ErrCampaignClosed is returned when funding a campaign that has failed.
	ErrCampaignClosed = errors.New("campaign closed")
)

// CampaignUseCase defines the business operations exposed to inbound
// adapters. Every operation that depends on "who is asking" takes the
// account explicitly.
type CampaignUseCase interface {
	// ListCampaigns returns the registry's campaigns with derived metrics,
	// keeping only those whose status passes selector.
	ListCampaigns(ctx context.Context, selector domain.Selector) ([]CampaignView, error)
	// ListUserCampaigns returns the campaigns created by user.
	ListUserCampaigns(ctx context.Context, user common.Address) ([]CampaignView, error)
	// GetCampaign returns one campaign with details and the capabilities of
	// account. The zero account means no wallet is connected.
	GetCampaign(ctx context.Context, campaign, account common.Address) (*CampaignDetailView, error)
	// Fund contributes the amount of the selected tier and returns the
	// journal entry together with the campaign re-read after submission.
	Fund(ctx context.Context, req FundRequest) (*TxResponse, error)
	// Withdraw releases the funds of a successful campaign to its owner.
	Withdraw(ctx context.Context, req WithdrawRequest) (*TxResponse, error)
	// AddTier appends a funding tier. Owner only.
	AddTier(ctx context.Context, req AddTierRequest) (*TxResponse, error)
	// RemoveTier deletes a funding tier by index. Owner only.
	RemoveTier(ctx context.Context, req RemoveTierRequest) (*TxResponse, error)
	// Transactions lists the relayed transactions of a campaign.
	Transactions(ctx context.Context, campaign common.Address) ([]domain.TransactionRecord, error)
}

// CampaignView is a registry entry with its snapshot and derived metrics.
// Stale marks a snapshot served from storage because the chain read failed.
// Err carries a per-campaign evaluation failure; Snapshot and Metrics may
// then be nil.
type CampaignView struct {
	Ref        domain.CampaignRef
	Snapshot   *domain.CampaignSnapshot
	Metrics    *domain.DerivedMetrics
	ObservedAt time.Time
	Stale      bool
	Err        error
}

// CampaignStatus returns the derived status, or "" when none was computed.
func (v CampaignView) CampaignStatus() domain.Status {
	if v.Metrics == nil {
		return ""
	}
	return v.Metrics.Status
}

// CampaignDetailView extends CampaignView with contract details and the
// capabilities of the requesting account.
type CampaignDetailView struct {
	CampaignView
	Details      domain.CampaignDetails
	Account      common.Address
	Capabilities domain.Capabilities
}

type FundRequest struct {
	Campaign  common.Address
	Account   common.Address
	TierIndex uint64
}

type WithdrawRequest struct {
	Campaign common.Address
	Account  common.Address
}

type AddTierRequest struct {
	Campaign common.Address
	Account  common.Address
	Name     string
	Amount   *uint256.Int
}

type RemoveTierRequest struct {
	Campaign common.Address
	Account  common.Address
	Index    uint64
}

// TxResponse is returned by every transaction-relaying operation. Campaign
// holds the state re-read after the transaction; it is nil when that read
// failed, which does not fail the operation.
type TxResponse struct {
	Record   domain.TransactionRecord
	Tx       TxResult
	Campaign *CampaignView
}
