package httpadapter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"fundscope/internal/core/domain"
	"fundscope/internal/core/port"
)

// campaignResponse is the JSON form of a port.CampaignView. Amounts are wei
// as decimal strings.
type campaignResponse struct {
	Address              string     `json:"address"`
	Owner                string     `json:"owner"`
	Name                 string     `json:"name"`
	CreatedAt            *time.Time `json:"created_at,omitempty"`
	Goal                 string     `json:"goal,omitempty"`
	Balance              string     `json:"balance,omitempty"`
	Deadline             uint64     `json:"deadline,omitempty"`
	FundedPercentage     *float64   `json:"funded_percentage,omitempty"`
	FundedPercentageText string     `json:"funded_percentage_text,omitempty"`
	RemainingDays        *uint64    `json:"remaining_days,omitempty"`
	Status               string     `json:"status,omitempty"`
	ObservedAt           *time.Time `json:"observed_at,omitempty"`
	Stale                bool       `json:"stale,omitempty"`
	Error                string     `json:"error,omitempty"`
}

type tierResponse struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	Backers uint64 `json:"backers"`
}

type capabilitiesResponse struct {
	CanFund     bool `json:"can_fund"`
	CanWithdraw bool `json:"can_withdraw"`
	CanEdit     bool `json:"can_edit"`
}

type campaignDetailResponse struct {
	campaignResponse
	Description   string               `json:"description"`
	ContractState string               `json:"contract_state"`
	Tiers         []tierResponse       `json:"tiers"`
	Account       string               `json:"account,omitempty"`
	Capabilities  capabilitiesResponse `json:"capabilities"`
}

type transactionResponse struct {
	ID        string    `json:"id"`
	Campaign  string    `json:"campaign"`
	Account   string    `json:"account"`
	Kind      string    `json:"kind"`
	TierIndex *uint64   `json:"tier_index,omitempty"`
	TierName  string    `json:"tier_name,omitempty"`
	Amount    string    `json:"amount,omitempty"`
	TxHash    string    `json:"tx_hash"`
	CreatedAt time.Time `json:"created_at"`
}

type txResultResponse struct {
	Transaction transactionResponse `json:"transaction"`
	Confirmed   bool                `json:"confirmed"`
	BlockNumber uint64              `json:"block_number,omitempty"`
	Campaign    *campaignResponse   `json:"campaign,omitempty"`
}

type fundRequest struct {
	Account   string  `json:"account"`
	TierIndex *uint64 `json:"tier_index"`
}

type withdrawRequest struct {
	Account string `json:"account"`
}

type addTierRequest struct {
	Account string `json:"account"`
	Name    string `json:"name"`
	Amount  string `json:"amount"`
}

// formatPercentage renders a funded percentage with two decimals.
func formatPercentage(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 2, 64)
}

func toCampaignResponse(v port.CampaignView) campaignResponse {
	resp := campaignResponse{
		Address: v.Ref.Address.Hex(),
		Owner:   v.Ref.Owner.Hex(),
		Name:    v.Ref.Name,
		Stale:   v.Stale,
	}
	if !v.Ref.CreatedAt.IsZero() {
		created := v.Ref.CreatedAt
		resp.CreatedAt = &created
	}
	if v.Snapshot != nil {
		resp.Goal = decimal(v.Snapshot.Goal)
		resp.Balance = decimal(v.Snapshot.Balance)
		resp.Deadline = v.Snapshot.Deadline
	}
	if !v.ObservedAt.IsZero() {
		observed := v.ObservedAt.UTC()
		resp.ObservedAt = &observed
	}
	if v.Metrics != nil {
		pct, days := v.Metrics.FundedPercentage, v.Metrics.RemainingDays
		resp.FundedPercentage = &pct
		resp.FundedPercentageText = formatPercentage(pct)
		resp.RemainingDays = &days
		resp.Status = string(v.Metrics.Status)
	}
	if v.Err != nil {
		resp.Error = v.Err.Error()
	}
	return resp
}

func toCampaignListResponse(views []port.CampaignView) []campaignResponse {
	out := make([]campaignResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toCampaignResponse(v))
	}
	return out
}

func toCampaignDetailResponse(v *port.CampaignDetailView) campaignDetailResponse {
	resp := campaignDetailResponse{
		campaignResponse: toCampaignResponse(v.CampaignView),
		Description:      v.Details.Description,
		ContractState:    v.Details.State.String(),
		Tiers:            make([]tierResponse, 0, len(v.Details.Tiers)),
		Capabilities: capabilitiesResponse{
			CanFund:     v.Capabilities.CanFund,
			CanWithdraw: v.Capabilities.CanWithdraw,
			CanEdit:     v.Capabilities.CanEdit,
		},
	}
	if v.Account != (common.Address{}) {
		resp.Account = v.Account.Hex()
	}
	for i, t := range v.Details.Tiers {
		resp.Tiers = append(resp.Tiers, tierResponse{
			Index:   i,
			Name:    t.Name,
			Amount:  decimal(t.Amount),
			Backers: t.Backers,
		})
	}
	return resp
}

func toTransactionResponse(rec domain.TransactionRecord) transactionResponse {
	return transactionResponse{
		ID:        rec.ID.String(),
		Campaign:  rec.Campaign.Hex(),
		Account:   rec.Account.Hex(),
		Kind:      string(rec.Kind),
		TierIndex: rec.TierIndex,
		TierName:  rec.TierName,
		Amount:    decimal(rec.Amount),
		TxHash:    rec.TxHash.Hex(),
		CreatedAt: rec.CreatedAt,
	}
}

func toTxResultResponse(res *port.TxResponse) txResultResponse {
	out := txResultResponse{
		Transaction: toTransactionResponse(res.Record),
		Confirmed:   res.Tx.Confirmed,
		BlockNumber: res.Tx.BlockNumber,
	}
	if res.Campaign != nil {
		c := toCampaignResponse(*res.Campaign)
		out.Campaign = &c
	}
	return out
}

func decimal(v *uint256.Int) string {
	if v == nil {
		return ""
	}
	return v.Dec()
}

// parseAddress accepts a 0x-prefixed hex address. Empty input is rejected
// unless optional is set, in which case the zero address is returned.
func parseAddress(raw string, optional bool) (common.Address, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" && optional {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%w: invalid address %q", errBadRequest, raw)
	}
	return common.HexToAddress(raw), nil
}

func parseAmount(raw string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount %q", errBadRequest, raw)
	}
	return v, nil
}
