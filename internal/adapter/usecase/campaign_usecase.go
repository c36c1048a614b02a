package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"fundscope/internal/core/domain"
	"fundscope/internal/core/metrics"
	"fundscope/internal/core/port"
)

const defaultConcurrency = 8

// CampaignUseCase implements port.CampaignUseCase. It reads campaigns through
// the chain client, derives metrics with the metrics engine and keeps the
// registry, last snapshots and transaction journal in the repository.
type CampaignUseCase struct {
	chain  port.ChainClient
	repo   port.CampaignRepository
	clock  port.Clock
	logger *slog.Logger

	// concurrency caps parallel snapshot reads in listings.
	concurrency int
}

// NewCampaignUseCase creates a use case reading wall-clock time from the
// system clock.
func NewCampaignUseCase(chain port.ChainClient, repo port.CampaignRepository, logger *slog.Logger) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{
		chain:       chain,
		repo:        repo,
		clock:       port.SystemClock{},
		logger:      logger,
		concurrency: defaultConcurrency,
	}
}

// WithClock replaces the wall-clock source.
func (u *CampaignUseCase) WithClock(clock port.Clock) *CampaignUseCase {
	u.clock = clock
	return u
}

// WithConcurrency sets how many snapshots are read in parallel. Values
// below one are ignored.
func (u *CampaignUseCase) WithConcurrency(n int) *CampaignUseCase {
	if n > 0 {
		u.concurrency = n
	}
	return u
}

// ListCampaigns returns every registered campaign whose derived status
// passes selector, in registry order.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, selector domain.Selector) ([]port.CampaignView, error) {
	refs, err := u.chain.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	views, err := u.evaluateAll(ctx, refs)
	if err != nil {
		return nil, err
	}
	return slices.Collect(metrics.FilterByStatus(views, selector)), nil
}

// ListUserCampaigns returns the campaigns created by user.
func (u *CampaignUseCase) ListUserCampaigns(ctx context.Context, user common.Address) ([]port.CampaignView, error) {
	refs, err := u.chain.ListUserCampaigns(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("list campaigns of %s: %w", user.Hex(), err)
	}
	return u.evaluateAll(ctx, refs)
}

// GetCampaign returns a single campaign. Unlike listings, an invalid
// snapshot fails the call so the caller can report it.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, campaign, account common.Address) (*port.CampaignDetailView, error) {
	details, view, err := u.load(ctx, campaign)
	if err != nil {
		return nil, err
	}
	caps := domain.CapabilitiesFor(account, details.Owner, details.State)
	caps.CanFund = caps.CanFund && view.CampaignStatus() != domain.StatusFailed
	return &port.CampaignDetailView{
		CampaignView: view,
		Details:      *details,
		Account:      account,
		Capabilities: caps,
	}, nil
}

// Fund sends the amount of the selected tier from req.Account.
func (u *CampaignUseCase) Fund(ctx context.Context, req port.FundRequest) (*port.TxResponse, error) {
	if req.Account == (common.Address{}) {
		return nil, fmt.Errorf("%w: account required", port.ErrForbidden)
	}
	details, view, err := u.load(ctx, req.Campaign)
	if err != nil {
		return nil, err
	}
	if req.TierIndex >= uint64(len(details.Tiers)) {
		return nil, fmt.Errorf("%w: campaign has %d tiers, got index %d", port.ErrInvalidTier, len(details.Tiers), req.TierIndex)
	}
	if view.CampaignStatus() == domain.StatusFailed || details.State != domain.ContractStateActive {
		return nil, fmt.Errorf("%w: status %s, contract %s", port.ErrCampaignClosed, view.CampaignStatus(), details.State)
	}
	tier := details.Tiers[req.TierIndex]
	index := req.TierIndex
	rec := domain.TransactionRecord{
		Campaign:  req.Campaign,
		Account:   req.Account,
		Kind:      domain.TxFund,
		TierIndex: &index,
		TierName:  tier.Name,
		Amount:    tier.Amount,
	}
	return u.relay(ctx, rec, view.Ref, func() (port.TxResult, error) {
		return u.chain.SubmitFunding(ctx, req.Campaign, req.TierIndex, tier.Amount, req.Account)
	})
}

// Withdraw releases the balance of a successful campaign to its owner.
func (u *CampaignUseCase) Withdraw(ctx context.Context, req port.WithdrawRequest) (*port.TxResponse, error) {
	details, err := u.chain.ReadCampaignDetails(ctx, req.Campaign)
	if err != nil {
		return nil, fmt.Errorf("read campaign %s: %w", req.Campaign.Hex(), err)
	}
	if !domain.CapabilitiesFor(req.Account, details.Owner, details.State).CanWithdraw {
		return nil, fmt.Errorf("%w: only the owner may withdraw from a successful campaign", port.ErrForbidden)
	}
	rec := domain.TransactionRecord{
		Campaign: req.Campaign,
		Account:  req.Account,
		Kind:     domain.TxWithdraw,
	}
	ref := domain.CampaignRef{Address: req.Campaign, Owner: details.Owner, Name: details.Name}
	return u.relay(ctx, rec, ref, func() (port.TxResult, error) {
		return u.chain.SubmitWithdraw(ctx, req.Campaign, req.Account)
	})
}

// AddTier appends a funding tier on behalf of the owner.
func (u *CampaignUseCase) AddTier(ctx context.Context, req port.AddTierRequest) (*port.TxResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", port.ErrInvalidTier)
	}
	if req.Amount == nil || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", port.ErrInvalidTier)
	}
	details, err := u.chain.ReadCampaignDetails(ctx, req.Campaign)
	if err != nil {
		return nil, fmt.Errorf("read campaign %s: %w", req.Campaign.Hex(), err)
	}
	if !domain.CapabilitiesFor(req.Account, details.Owner, details.State).CanEdit {
		return nil, fmt.Errorf("%w: only the owner may add tiers", port.ErrForbidden)
	}
	rec := domain.TransactionRecord{
		Campaign: req.Campaign,
		Account:  req.Account,
		Kind:     domain.TxAddTier,
		TierName: name,
		Amount:   req.Amount,
	}
	ref := domain.CampaignRef{Address: req.Campaign, Owner: details.Owner, Name: details.Name}
	return u.relay(ctx, rec, ref, func() (port.TxResult, error) {
		return u.chain.SubmitAddTier(ctx, req.Campaign, name, req.Amount, req.Account)
	})
}

// RemoveTier deletes a funding tier on behalf of the owner.
func (u *CampaignUseCase) RemoveTier(ctx context.Context, req port.RemoveTierRequest) (*port.TxResponse, error) {
	details, err := u.chain.ReadCampaignDetails(ctx, req.Campaign)
	if err != nil {
		return nil, fmt.Errorf("read campaign %s: %w", req.Campaign.Hex(), err)
	}
	if !domain.CapabilitiesFor(req.Account, details.Owner, details.State).CanEdit {
		return nil, fmt.Errorf("%w: only the owner may remove tiers", port.ErrForbidden)
	}
	if req.Index >= uint64(len(details.Tiers)) {
		return nil, fmt.Errorf("%w: campaign has %d tiers, got index %d", port.ErrInvalidTier, len(details.Tiers), req.Index)
	}
	index := req.Index
	rec := domain.TransactionRecord{
		Campaign:  req.Campaign,
		Account:   req.Account,
		Kind:      domain.TxRemoveTier,
		TierIndex: &index,
		TierName:  details.Tiers[req.Index].Name,
	}
	ref := domain.CampaignRef{Address: req.Campaign, Owner: details.Owner, Name: details.Name}
	return u.relay(ctx, rec, ref, func() (port.TxResult, error) {
		return u.chain.SubmitRemoveTier(ctx, req.Campaign, req.Index, req.Account)
	})
}

// Transactions returns the journal of campaign, newest first.
func (u *CampaignUseCase) Transactions(ctx context.Context, campaign common.Address) ([]domain.TransactionRecord, error) {
	return u.repo.ListTransactions(ctx, campaign)
}

// load reads details and the evaluated snapshot of one campaign.
func (u *CampaignUseCase) load(ctx context.Context, campaign common.Address) (*domain.CampaignDetails, port.CampaignView, error) {
	details, err := u.chain.ReadCampaignDetails(ctx, campaign)
	if err != nil {
		return nil, port.CampaignView{}, fmt.Errorf("read campaign %s: %w", campaign.Hex(), err)
	}
	ref := domain.CampaignRef{Address: campaign, Owner: details.Owner, Name: details.Name}
	view, err := u.evaluate(ctx, ref, u.clock.Now())
	if err != nil {
		return nil, port.CampaignView{}, err
	}
	if view.Err != nil {
		return nil, port.CampaignView{}, view.Err
	}
	return details, view, nil
}

// relay submits a transaction, journals it and re-reads the campaign so the
// response reflects the new balance. Journal and re-read failures are
// logged; the transaction is already on chain at that point.
func (u *CampaignUseCase) relay(ctx context.Context, rec domain.TransactionRecord, ref domain.CampaignRef, submit func() (port.TxResult, error)) (*port.TxResponse, error) {
	tx, err := submit()
	if err != nil {
		return nil, fmt.Errorf("submit %s to %s: %w", rec.Kind, rec.Campaign.Hex(), err)
	}
	rec.ID = uuid.New()
	rec.TxHash = tx.Hash
	rec.CreatedAt = u.clock.Now().UTC()
	u.logger.Info("transaction relayed",
		slog.String("kind", string(rec.Kind)),
		slog.String("campaign", rec.Campaign.Hex()),
		slog.String("account", rec.Account.Hex()),
		slog.String("tx", tx.Hash.Hex()),
	)
	if err = u.repo.RecordTransaction(ctx, rec); err != nil {
		u.logger.Error("record transaction", slog.String("tx", tx.Hash.Hex()), slog.Any("error", err))
	}

	resp := &port.TxResponse{Record: rec, Tx: tx}
	view, err := u.evaluate(ctx, ref, u.clock.Now())
	if err != nil {
		u.logger.Warn("refresh after transaction", slog.String("campaign", ref.Address.Hex()), slog.Any("error", err))
		return resp, nil
	}
	resp.Campaign = &view
	return resp, nil
}

// evaluateAll evaluates refs concurrently and returns views in input
// order. It fails when any campaign can be served neither from the chain
// nor from storage.
func (u *CampaignUseCase) evaluateAll(ctx context.Context, refs []domain.CampaignRef) ([]port.CampaignView, error) {
	if len(refs) == 0 {
		return []port.CampaignView{}, nil
	}
	if err := u.repo.UpsertCampaigns(ctx, refs); err != nil {
		u.logger.Warn("index campaigns", slog.Int("count", len(refs)), slog.Any("error", err))
	}

	now := u.clock.Now()
	views := make([]port.CampaignView, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i, ref := range refs {
		g.Go(func() error {
			view, err := u.evaluate(gctx, ref, now)
			if err != nil {
				return err
			}
			views[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// evaluate reads the snapshot of ref and derives its metrics at now. A
// snapshot that cannot be evaluated ends up in view.Err. A failed chain read
// falls back to the stored snapshot; without one the read error is
// returned.
func (u *CampaignUseCase) evaluate(ctx context.Context, ref domain.CampaignRef, now time.Time) (port.CampaignView, error) {
	view := port.CampaignView{Ref: ref}
	snap, err := u.chain.ReadCampaignSnapshot(ctx, ref.Address)
	observedAt := now
	switch {
	case err == nil:
		if saveErr := u.repo.SaveSnapshot(ctx, ref.Address, snap, now.UTC()); saveErr != nil {
			u.logger.Warn("save snapshot", slog.String("campaign", ref.Address.Hex()), slog.Any("error", saveErr))
		}
	case isSnapshotError(err):
		view.Err = err
		return view, nil
	default:
		stored, repoErr := u.repo.LastSnapshot(ctx, ref.Address)
		if repoErr != nil || stored == nil {
			return view, fmt.Errorf("read snapshot %s: %w", ref.Address.Hex(), err)
		}
		u.logger.Warn("serving stored snapshot",
			slog.String("campaign", ref.Address.Hex()),
			slog.Time("observed_at", stored.ObservedAt),
			slog.Any("error", err),
		)
		snap = stored.Snapshot
		observedAt = stored.ObservedAt
		view.Stale = true
	}

	view.Snapshot = &snap
	view.ObservedAt = observedAt
	m, err := metrics.Evaluate(snap, unixSeconds(now))
	if err != nil {
		view.Err = err
		return view, nil
	}
	view.Metrics = &m
	return view, nil
}

func isSnapshotError(err error) bool {
	return errors.Is(err, domain.ErrInvalidSnapshot) ||
		errors.Is(err, domain.ErrInvalidGoal) ||
		errors.Is(err, port.ErrCampaignNotFound)
}

func unixSeconds(t time.Time) uint64 {
	if s := t.Unix(); s > 0 {
		return uint64(s)
	}
	return 0
}
