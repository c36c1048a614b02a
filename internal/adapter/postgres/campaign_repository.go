package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundscope/internal/core/domain"
	"fundscope/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Amounts are stored as NUMERIC(78,0) and travel as decimal text.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// UpsertCampaigns inserts registry entries and refreshes owner and name of
// known ones in a single batch.
func (r *CampaignRepository) UpsertCampaigns(ctx context.Context, refs []domain.CampaignRef) error {
	if len(refs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, ref := range refs {
		batch.Queue(`
            INSERT INTO campaigns (address, owner, name, created_at, updated_at)
            VALUES ($1, $2, $3, $4, now())
            ON CONFLICT (address) DO UPDATE
               SET owner = EXCLUDED.owner,
                   name = EXCLUDED.name,
                   updated_at = now()`,
			ref.Address.Hex(), ref.Owner.Hex(), ref.Name, nullTime(ref.CreatedAt))
	}
	br := r.pool.SendBatch(ctx, batch)
	for range refs {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("upsert campaigns: %w", err)
		}
	}
	return br.Close()
}

// SaveSnapshot replaces the stored snapshot of campaign. Older observations
// never overwrite newer ones.
func (r *CampaignRepository) SaveSnapshot(ctx context.Context, campaign common.Address, snap domain.CampaignSnapshot, observedAt time.Time) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO campaign_snapshots (address, goal, balance, deadline, observed_at)
        VALUES ($1, $2::numeric, $3::numeric, $4, $5)
        ON CONFLICT (address) DO UPDATE
           SET goal = EXCLUDED.goal,
               balance = EXCLUDED.balance,
               deadline = EXCLUDED.deadline,
               observed_at = EXCLUDED.observed_at
         WHERE campaign_snapshots.observed_at <= EXCLUDED.observed_at`,
		campaign.Hex(), snap.Goal.Dec(), snap.Balance.Dec(), int64(snap.Deadline), observedAt.UTC())
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", campaign.Hex(), err)
	}
	return nil
}

// LastSnapshot returns the stored snapshot of campaign, or nil if none.
func (r *CampaignRepository) LastSnapshot(ctx context.Context, campaign common.Address) (*port.StoredSnapshot, error) {
	var (
		goal, balance string
		deadline      int64
		observedAt    time.Time
	)
	err := r.pool.QueryRow(ctx, `
        SELECT goal::text, balance::text, deadline, observed_at
          FROM campaign_snapshots
         WHERE address = $1`, campaign.Hex()).Scan(&goal, &balance, &deadline, &observedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", campaign.Hex(), err)
	}
	snap, err := domain.ParseSnapshot(goal, balance, fmt.Sprint(deadline))
	if err != nil {
		return nil, fmt.Errorf("stored snapshot %s: %w", campaign.Hex(), err)
	}
	return &port.StoredSnapshot{Snapshot: snap, ObservedAt: observedAt}, nil
}

// RecordTransaction appends rec to the journal.
func (r *CampaignRepository) RecordTransaction(ctx context.Context, rec domain.TransactionRecord) error {
	var tierIndex *int64
	if rec.TierIndex != nil {
		v := int64(*rec.TierIndex)
		tierIndex = &v
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO campaign_transactions
            (id, campaign, account, kind, tier_index, tier_name, amount, tx_hash, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9)`,
		rec.ID, rec.Campaign.Hex(), rec.Account.Hex(), string(rec.Kind), tierIndex,
		rec.TierName, decimalOrNil(rec.Amount), rec.TxHash.Hex(), rec.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("record %s transaction: %w", rec.Kind, err)
	}
	return nil
}

// ListTransactions returns the journal of campaign, newest first.
func (r *CampaignRepository) ListTransactions(ctx context.Context, campaign common.Address) ([]domain.TransactionRecord, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign, account, kind, tier_index, tier_name, amount::text, tx_hash, created_at
          FROM campaign_transactions
         WHERE campaign = $1
         ORDER BY created_at DESC, id`, campaign.Hex())
	if err != nil {
		return nil, fmt.Errorf("list transactions %s: %w", campaign.Hex(), err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TransactionRecord, error) {
		var (
			rec                  domain.TransactionRecord
			campaignHex, account string
			kind, txHash         string
			tierIndex            *int64
			amount               *string
		)
		if err := row.Scan(&rec.ID, &campaignHex, &account, &kind, &tierIndex, &rec.TierName, &amount, &txHash, &rec.CreatedAt); err != nil {
			return rec, err
		}
		rec.Campaign = common.HexToAddress(campaignHex)
		rec.Account = common.HexToAddress(account)
		rec.Kind = domain.TxKind(kind)
		rec.TxHash = common.HexToHash(txHash)
		if tierIndex != nil {
			v := uint64(*tierIndex)
			rec.TierIndex = &v
		}
		if amount != nil {
			v, err := uint256.FromDecimal(*amount)
			if err != nil {
				return rec, fmt.Errorf("%w: amount %q", domain.ErrInvalidSnapshot, *amount)
			}
			rec.Amount = v
		}
		return rec, nil
	})
}

func decimalOrNil(v *uint256.Int) *string {
	if v == nil {
		return nil
	}
	s := v.Dec()
	return &s
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}
