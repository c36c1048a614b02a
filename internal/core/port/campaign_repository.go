package port

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"fundscope/internal/core/domain"
)

// CampaignRepository defines the persistence layer. It stores the factory
// registry, the last raw snapshot observed per campaign and a journal of
// relayed transactions. Derived metrics are never stored. Implementations
// must be concurrency-safe.
type CampaignRepository interface {
	// UpsertCampaigns inserts or refreshes registry entries.
	UpsertCampaigns(ctx context.Context, refs []domain.CampaignRef) error
	// SaveSnapshot stores snap as the latest observation of campaign.
	SaveSnapshot(ctx context.Context, campaign common.Address, snap domain.CampaignSnapshot, observedAt time.Time) error
	// LastSnapshot returns the most recent stored snapshot, or nil when the
	// campaign was never observed.
	LastSnapshot(ctx context.Context, campaign common.Address) (*StoredSnapshot, error)
	// RecordTransaction appends rec to the journal.
	RecordTransaction(ctx context.Context, rec domain.TransactionRecord) error
	// ListTransactions returns the journal of campaign, newest first.
	ListTransactions(ctx context.Context, campaign common.Address) ([]domain.TransactionRecord, error)
}

// StoredSnapshot is a snapshot together with the time it was read.
type StoredSnapshot struct {
	Snapshot   domain.CampaignSnapshot
	ObservedAt time.Time
}
