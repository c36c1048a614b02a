// Package chain implements port.ChainClient over an Ethereum JSON-RPC
// endpoint using go-ethereum contract bindings.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"
	"golang.org/x/time/rate"

	"fundscope/internal/core/domain"
	"fundscope/internal/core/port"
	"fundscope/internal/observability"
)

// Backend is the subset of an Ethereum client the adapter needs.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Options tunes a Client. Zero values fall back to sensible defaults; a nil
// Signer disables transaction submission.
type Options struct {
	CallTimeout    time.Duration
	Limiter        *rate.Limiter
	Signer         *Signer
	WaitReceipt    bool
	ReceiptTimeout time.Duration
	Metrics        *observability.Metrics
}

// Client reads Crowdfunding and CrowdfundingFactory contracts and relays
// transactions to them.
type Client struct {
	backend Backend
	factory common.Address
	opts    Options
}

var _ port.ChainClient = (*Client)(nil)

// Dial connects to the JSON-RPC endpoint at rawURL.
func Dial(ctx context.Context, rawURL string) (*ethclient.Client, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, errors.New("rpc url required")
	}
	return ethclient.DialContext(ctx, trimmed)
}

// NewClient returns a client for the factory at the given address.
func NewClient(backend Backend, factory common.Address, opts Options) *Client {
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 10 * time.Second
	}
	if opts.ReceiptTimeout <= 0 {
		opts.ReceiptTimeout = 2 * time.Minute
	}
	if opts.Limiter == nil {
		opts.Limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Client{backend: backend, factory: factory, opts: opts}
}

// ListCampaigns returns every campaign registered with the factory.
func (c *Client) ListCampaigns(ctx context.Context) ([]domain.CampaignRef, error) {
	out, err := c.call(ctx, c.factory, factoryABI, "getAllCampaigns")
	if err != nil {
		return nil, err
	}
	return convertCampaigns(out)
}

// ListUserCampaigns returns the campaigns created by user.
func (c *Client) ListUserCampaigns(ctx context.Context, user common.Address) ([]domain.CampaignRef, error) {
	out, err := c.call(ctx, c.factory, factoryABI, "getUserCampaigns", user)
	if err != nil {
		return nil, err
	}
	return convertCampaigns(out)
}

// ReadCampaignSnapshot reads goal, balance and deadline of campaign.
func (c *Client) ReadCampaignSnapshot(ctx context.Context, campaign common.Address) (domain.CampaignSnapshot, error) {
	var values [3]*big.Int
	for i, method := range [3]string{"goal", "getContractBalance", "deadline"} {
		out, err := c.call(ctx, campaign, campaignABI, method)
		if err != nil {
			return domain.CampaignSnapshot{}, err
		}
		v, err := single[*big.Int](out, method)
		if err != nil {
			return domain.CampaignSnapshot{}, err
		}
		values[i] = v
	}
	return domain.NewSnapshot(values[0], values[1], values[2])
}

// ReadCampaignDetails reads name, description, owner, state and tiers.
func (c *Client) ReadCampaignDetails(ctx context.Context, campaign common.Address) (*domain.CampaignDetails, error) {
	d := &domain.CampaignDetails{Address: campaign}
	var err error
	if d.Name, err = readSingle[string](ctx, c, campaign, "name"); err != nil {
		return nil, err
	}
	if d.Description, err = readSingle[string](ctx, c, campaign, "description"); err != nil {
		return nil, err
	}
	if d.Owner, err = readSingle[common.Address](ctx, c, campaign, "owner"); err != nil {
		return nil, err
	}
	state, err := readSingle[uint8](ctx, c, campaign, "state")
	if err != nil {
		return nil, err
	}
	d.State = domain.ContractState(state)

	out, err := c.call(ctx, campaign, campaignABI, "getTiers")
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("getTiers: expected 1 return value, got %d", len(out))
	}
	tuples := *abi.ConvertType(out[0], new([]tierTuple)).(*[]tierTuple)
	d.Tiers = make([]domain.Tier, 0, len(tuples))
	for _, t := range tuples {
		amount, overflow := uint256.FromBig(t.Amount)
		if overflow || t.Amount.Sign() < 0 {
			return nil, fmt.Errorf("%w: tier %q amount out of range", domain.ErrInvalidSnapshot, t.Name)
		}
		d.Tiers = append(d.Tiers, domain.Tier{Name: t.Name, Amount: amount, Backers: t.Backers.Uint64()})
	}
	return d, nil
}

// SubmitFunding sends amount wei to fund(tierIndex).
func (c *Client) SubmitFunding(ctx context.Context, campaign common.Address, tierIndex uint64, amount *uint256.Int, from common.Address) (port.TxResult, error) {
	if amount == nil {
		return port.TxResult{}, errors.New("fund: amount required")
	}
	return c.transact(ctx, campaign, from, amount.ToBig(), "fund", new(big.Int).SetUint64(tierIndex))
}

// SubmitWithdraw calls withdraw().
func (c *Client) SubmitWithdraw(ctx context.Context, campaign common.Address, from common.Address) (port.TxResult, error) {
	return c.transact(ctx, campaign, from, nil, "withdraw")
}

// SubmitAddTier calls addTier(name, amount).
func (c *Client) SubmitAddTier(ctx context.Context, campaign common.Address, name string, amount *uint256.Int, from common.Address) (port.TxResult, error) {
	if amount == nil {
		return port.TxResult{}, errors.New("addTier: amount required")
	}
	return c.transact(ctx, campaign, from, nil, "addTier", name, amount.ToBig())
}

// SubmitRemoveTier calls removeTier(index).
func (c *Client) SubmitRemoveTier(ctx context.Context, campaign common.Address, index uint64, from common.Address) (port.TxResult, error) {
	return c.transact(ctx, campaign, from, nil, "removeTier", new(big.Int).SetUint64(index))
}

// call performs a rate limited, time bounded eth_call.
func (c *Client) call(ctx context.Context, address common.Address, parsed abi.ABI, method string, params ...any) ([]any, error) {
	if err := c.opts.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrChainUnavailable, err)
	}
	ctx, cancel := context.WithTimeout(ctx, c.opts.CallTimeout)
	defer cancel()

	contract := bind.NewBoundContract(address, parsed, c.backend, c.backend, c.backend)
	start := time.Now()
	var out []any
	err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...)
	c.opts.Metrics.ObserveChainCall(method, time.Since(start), err)
	if errors.Is(err, bind.ErrNoCode) {
		return nil, fmt.Errorf("%w: no contract at %s", port.ErrCampaignNotFound, address.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: call %s on %s: %w", port.ErrChainUnavailable, method, address.Hex(), err)
	}
	return out, nil
}

// transact signs and sends a transaction from the given account and, when
// configured, waits for it to be mined.
func (c *Client) transact(ctx context.Context, address, from common.Address, value *big.Int, method string, params ...any) (port.TxResult, error) {
	opts, err := c.opts.Signer.TransactOpts(from)
	if err != nil {
		return port.TxResult{}, err
	}
	if err = c.opts.Limiter.Wait(ctx); err != nil {
		return port.TxResult{}, fmt.Errorf("%w: %w", port.ErrChainUnavailable, err)
	}
	opts.Context = ctx
	opts.Value = value

	contract := bind.NewBoundContract(address, campaignABI, c.backend, c.backend, c.backend)
	start := time.Now()
	tx, err := contract.Transact(opts, method, params...)
	c.opts.Metrics.ObserveChainCall(method, time.Since(start), err)
	if errors.Is(err, bind.ErrNoCode) {
		return port.TxResult{}, fmt.Errorf("%w: no contract at %s", port.ErrCampaignNotFound, address.Hex())
	}
	if err != nil {
		return port.TxResult{}, fmt.Errorf("%w: send %s to %s: %w", port.ErrChainUnavailable, method, address.Hex(), err)
	}
	result := port.TxResult{Hash: tx.Hash()}
	if !c.opts.WaitReceipt {
		return result, nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, c.opts.ReceiptTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, c.backend, tx)
	if err != nil {
		return result, fmt.Errorf("%w: wait for %s: %w", port.ErrChainUnavailable, tx.Hash().Hex(), err)
	}
	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return result, fmt.Errorf("%w: %s", port.ErrTxReverted, tx.Hash().Hex())
	}
	result.Confirmed = true
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return result, nil
}

func readSingle[T any](ctx context.Context, c *Client, campaign common.Address, method string) (T, error) {
	out, err := c.call(ctx, campaign, campaignABI, method)
	if err != nil {
		var zero T
		return zero, err
	}
	return single[T](out, method)
}

func single[T any](out []any, method string) (T, error) {
	var zero T
	if len(out) != 1 {
		return zero, fmt.Errorf("%s: expected 1 return value, got %d", method, len(out))
	}
	v, ok := out[0].(T)
	if !ok {
		return zero, fmt.Errorf("%s: unexpected return type %T", method, out[0])
	}
	return v, nil
}

func convertCampaigns(out []any) ([]domain.CampaignRef, error) {
	if len(out) != 1 {
		return nil, fmt.Errorf("campaign list: expected 1 return value, got %d", len(out))
	}
	tuples := *abi.ConvertType(out[0], new([]campaignTuple)).(*[]campaignTuple)
	refs := make([]domain.CampaignRef, 0, len(tuples))
	for _, t := range tuples {
		ref := domain.CampaignRef{Address: t.CampaignAddress, Owner: t.Owner, Name: t.Name}
		if t.CreationTime != nil && t.CreationTime.IsInt64() {
			ref.CreatedAt = time.Unix(t.CreationTime.Int64(), 0).UTC()
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
