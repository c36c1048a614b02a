package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fundscope/internal/adapter/usecase"
	"fundscope/internal/core/domain"
	"fundscope/internal/core/port"
	"fundscope/internal/core/port/mocks"
	"fundscope/internal/observability"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

var (
	now      = time.Unix(1_700_000_000, 0)
	campaign = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	owner    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	backer   = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

type fixture struct {
	chain   *mocks.MockChainClient
	repo    *mocks.MockCampaignRepository
	metrics *observability.Metrics
	server  *httptest.Server
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		chain:   mocks.NewMockChainClient(t),
		repo:    mocks.NewMockCampaignRepository(t),
		metrics: observability.NewMetrics("fundscope"),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := usecase.NewCampaignUseCase(f.chain, f.repo, logger).WithClock(fixedClock(now))
	h := NewHandler(svc, logger, append([]Option{WithMetrics(f.metrics)}, opts...)...)
	f.server = httptest.NewServer(h.Router())
	t.Cleanup(f.server.Close)
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func snapshot(goal, balance uint64, deadline time.Time) domain.CampaignSnapshot {
	return domain.CampaignSnapshot{
		Goal:     uint256.NewInt(goal),
		Balance:  uint256.NewInt(balance),
		Deadline: uint64(deadline.Unix()),
	}
}

func details(state domain.ContractState) *domain.CampaignDetails {
	return &domain.CampaignDetails{
		Address:     campaign,
		Name:        "solar roof",
		Description: "panels",
		Owner:       owner,
		State:       state,
		Tiers: []domain.Tier{
			{Name: "bronze", Amount: uint256.NewInt(10)},
			{Name: "gold", Amount: uint256.NewInt(100), Backers: 3},
		},
	}
}

func TestListCampaigns(t *testing.T) {
	f := newFixture(t)
	refs := []domain.CampaignRef{{Address: campaign, Owner: owner, Name: "solar roof"}}
	f.chain.EXPECT().ListCampaigns(mock.Anything).Return(refs, nil)
	f.chain.EXPECT().ReadCampaignSnapshot(mock.Anything, campaign).Return(snapshot(300, 100, now.Add(36*time.Hour)), nil)
	f.repo.EXPECT().UpsertCampaigns(mock.Anything, refs).Return(nil)
	f.repo.EXPECT().SaveSnapshot(mock.Anything, campaign, mock.Anything, mock.Anything).Return(nil)

	resp, raw := f.do(t, http.MethodGet, "/api/v1/campaigns?status=ongoing", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body []campaignResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body, 1)
	assert.Equal(t, campaign.Hex(), body[0].Address)
	assert.Equal(t, "300", body[0].Goal)
	assert.Equal(t, "100", body[0].Balance)
	assert.Equal(t, "33.33", body[0].FundedPercentageText)
	require.NotNil(t, body[0].RemainingDays)
	assert.Equal(t, uint64(2), *body[0].RemainingDays)
	assert.Equal(t, "ONGOING", body[0].Status)
}

func TestListCampaigns_Errors(t *testing.T) {
	t.Run("bad selector", func(t *testing.T) {
		f := newFixture(t)
		resp, _ := f.do(t, http.MethodGet, "/api/v1/campaigns?status=pending", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
	t.Run("chain down", func(t *testing.T) {
		f := newFixture(t)
		f.chain.EXPECT().ListCampaigns(mock.Anything).
			Return(nil, fmt.Errorf("%w: dial tcp: refused", port.ErrChainUnavailable))
		resp, raw := f.do(t, http.MethodGet, "/api/v1/campaigns", "")
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Contains(t, string(raw), "chain unavailable")
	})
	t.Run("internal error is not exposed", func(t *testing.T) {
		f := newFixture(t)
		f.chain.EXPECT().ListCampaigns(mock.Anything).Return(nil, errors.New("secret detail"))
		resp, raw := f.do(t, http.MethodGet, "/api/v1/campaigns", "")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.NotContains(t, string(raw), "secret")
	})
}

func TestGetCampaign(t *testing.T) {
	f := newFixture(t)
	f.chain.EXPECT().ReadCampaignDetails(mock.Anything, campaign).Return(details(domain.ContractStateActive), nil)
	f.chain.EXPECT().ReadCampaignSnapshot(mock.Anything, campaign).Return(snapshot(100, 40, now.Add(time.Hour)), nil)
	f.repo.EXPECT().SaveSnapshot(mock.Anything, campaign, mock.Anything, mock.Anything).Return(nil)

	resp, raw := f.do(t, http.MethodGet, "/api/v1/campaigns/"+campaign.Hex()+"?account="+owner.Hex(), "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var body campaignDetailResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "solar roof", body.Name)
	assert.Equal(t, "active", body.ContractState)
	assert.Equal(t, "40.00", body.FundedPercentageText)
	require.Len(t, body.Tiers, 2)
	assert.Equal(t, tierResponse{Index: 1, Name: "gold", Amount: "100", Backers: 3}, body.Tiers[1])
	assert.Equal(t, capabilitiesResponse{CanFund: true, CanWithdraw: false, CanEdit: true}, body.Capabilities)
	assert.Equal(t, owner.Hex(), body.Account)
}

func TestGetCampaign_Errors(t *testing.T) {
	t.Run("bad address", func(t *testing.T) {
		f := newFixture(t)
		resp, _ := f.do(t, http.MethodGet, "/api/v1/campaigns/0x1234", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.chain.EXPECT().ReadCampaignDetails(mock.Anything, campaign).Return(nil, port.ErrCampaignNotFound)
		resp, _ := f.do(t, http.MethodGet, "/api/v1/campaigns/"+campaign.Hex(), "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
	t.Run("zero goal", func(t *testing.T) {
		f := newFixture(t)
		f.chain.EXPECT().ReadCampaignDetails(mock.Anything, campaign).Return(details(domain.ContractStateActive), nil)
		f.chain.EXPECT().ReadCampaignSnapshot(mock.Anything, campaign).Return(snapshot(0, 0, now.Add(time.Hour)), nil)
		f.repo.EXPECT().SaveSnapshot(mock.Anything, campaign, mock.Anything, mock.Anything).Return(nil)
		resp, raw := f.do(t, http.MethodGet, "/api/v1/campaigns/"+campaign.Hex(), "")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, string(raw), "goal")
	})
}

func TestUserCampaigns(t *testing.T) {
	f := newFixture(t)
	f.chain.EXPECT().ListUserCampaigns(mock.Anything, owner).Return(nil, nil)

	resp, raw := f.do(t, http.MethodGet, "/api/v1/accounts/"+owner.Hex()+"/campaigns", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestFund(t *testing.T) {
	f := newFixture(t)
	hash := common.HexToHash("0xfeed")
	f.chain.EXPECT().ReadCampaignDetails(mock.Anything, campaign).Return(details(domain.ContractStateActive), nil)
	f.chain.EXPECT().ReadCampaignSnapshot(mock.Anything, campaign).Return(snapshot(1000, 100, now.Add(time.Hour)), nil).Once()
	f.chain.EXPECT().ReadCampaignSnapshot(mock.Anything, campaign).Return(snapshot(1000, 200, now.Add(time.Hour)), nil).Once()
	f.repo.EXPECT().SaveSnapshot(mock.Anything, campaign, mock.Anything, mock.Anything).Return(nil)
	f.chain.EXPECT().SubmitFunding(mock.Anything, campaign, uint64(1), uint256.NewInt(100), backer).
		Return(port.TxResult{Hash: hash, BlockNumber: 7, Confirmed: true}, nil)
	f.repo.EXPECT().RecordTransaction(mock.Anything, mock.Anything).Return(nil)

	body := fmt.Sprintf(`{"account":%q,"tier_index":1}`, backer.Hex())
	resp, raw := f.do(t, http.MethodPost, "/api/v1/campaigns/"+campaign.Hex()+"/fund", body)
	require.Equal(t, http.StatusAccepted, resp.StatusCode, string(raw))

	var out txResultResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.Confirmed)
	assert.Equal(t, uint64(7), out.BlockNumber)
	assert.Equal(t, "fund", out.Transaction.Kind)
	assert.Equal(t, "100", out.Transaction.Amount)
	assert.Equal(t, hash.Hex(), out.Transaction.TxHash)
	require.NotNil(t, out.Campaign)
	assert.Equal(t, "20.00", out.Campaign.FundedPercentageText)
}

func TestFund_Errors(t *testing.T) {
	path := "/api/v1/campaigns/" + campaign.Hex() + "/fund"
	t.Run("missing tier", func(t *testing.T) {
		f := newFixture(t)
		resp, _ := f.do(t, http.MethodPost, path, fmt.Sprintf(`{"account":%q}`, backer.Hex()))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
	t.Run("malformed body", func(t *testing.T) {
		f := newFixture(t)
		resp, _ := f.do(t, http.MethodPost, path, `{"account":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
	t.Run("failed campaign", func(t *testing.T) {
		f := newFixture(t)
		f.chain.EXPECT().ReadCampaignDetails(mock.Anything, campaign).Return(details(domain.ContractStateActive), nil)
		f.chain.EXPECT().ReadCampaignSnapshot(mock.Anything, campaign).Return(snapshot(1000, 10, now.Add(-time.Hour)), nil)
		f.repo.EXPECT().SaveSnapshot(mock.Anything, campaign, mock.Anything, mock.Anything).Return(nil)
		resp, _ := f.do(t, http.MethodPost, path, fmt.Sprintf(`{"account":%q,"tier_index":0}`, backer.Hex()))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
	t.Run("unknown signer", func(t *testing.T) {
		f := newFixture(t)
		f.chain.EXPECT().ReadCampaignDetails(mock.Anything, campaign).Return(details(domain.ContractStateActive), nil)
		f.chain.EXPECT().ReadCampaignSnapshot(mock.Anything, campaign).Return(snapshot(1000, 10, now.Add(time.Hour)), nil)
		f.repo.EXPECT().SaveSnapshot(mock.Anything, campaign, mock.Anything, mock.Anything).Return(nil)
		f.chain.EXPECT().SubmitFunding(mock.Anything, campaign, uint64(0), uint256.NewInt(10), backer).
			Return(port.TxResult{}, port.ErrUnknownAccount)
		resp, _ := f.do(t, http.MethodPost, path, fmt.Sprintf(`{"account":%q,"tier_index":0}`, backer.Hex()))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestWithdraw_Forbidden(t *testing.T) {
	f := newFixture(t)
	f.chain.EXPECT().ReadCampaignDetails(mock.Anything, campaign).Return(details(domain.ContractStateSuccessful), nil)

	body := fmt.Sprintf(`{"account":%q}`, backer.Hex())
	resp, _ := f.do(t, http.MethodPost, "/api/v1/campaigns/"+campaign.Hex()+"/withdraw", body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestTiers(t *testing.T) {
	t.Run("add rejects bad amount", func(t *testing.T) {
		f := newFixture(t)
		body := fmt.Sprintf(`{"account":%q,"name":"silver","amount":"ten"}`, owner.Hex())
		resp, _ := f.do(t, http.MethodPost, "/api/v1/campaigns/"+campaign.Hex()+"/tiers", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
	t.Run("remove", func(t *testing.T) {
		f := newFixture(t)
		f.chain.EXPECT().ReadCampaignDetails(mock.Anything, campaign).Return(details(domain.ContractStateActive), nil)
		f.chain.EXPECT().SubmitRemoveTier(mock.Anything, campaign, uint64(0), owner).
			Return(port.TxResult{Hash: common.HexToHash("0x01")}, nil)
		f.repo.EXPECT().RecordTransaction(mock.Anything, mock.Anything).Return(nil)
		f.chain.EXPECT().ReadCampaignSnapshot(mock.Anything, campaign).Return(snapshot(100, 0, now.Add(time.Hour)), nil)
		f.repo.EXPECT().SaveSnapshot(mock.Anything, campaign, mock.Anything, mock.Anything).Return(nil)

		resp, raw := f.do(t, http.MethodDelete, "/api/v1/campaigns/"+campaign.Hex()+"/tiers/0?account="+owner.Hex(), "")
		require.Equal(t, http.StatusAccepted, resp.StatusCode, string(raw))
		var out txResultResponse
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, "remove_tier", out.Transaction.Kind)
		assert.Equal(t, "bronze", out.Transaction.TierName)
	})
	t.Run("remove bad index", func(t *testing.T) {
		f := newFixture(t)
		resp, _ := f.do(t, http.MethodDelete, "/api/v1/campaigns/"+campaign.Hex()+"/tiers/x?account="+owner.Hex(), "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestTransactions(t *testing.T) {
	f := newFixture(t)
	tier := uint64(1)
	f.repo.EXPECT().ListTransactions(mock.Anything, campaign).Return([]domain.TransactionRecord{{
		Campaign: campaign, Account: backer, Kind: domain.TxFund,
		TierIndex: &tier, Amount: uint256.NewInt(100), CreatedAt: now,
	}}, nil)

	resp, raw := f.do(t, http.MethodGet, "/api/v1/campaigns/"+campaign.Hex()+"/transactions", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []transactionResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out, 1)
	require.NotNil(t, out[0].TierIndex)
	assert.Equal(t, uint64(1), *out[0].TierIndex)
	assert.Equal(t, "100", out[0].Amount)
}

func TestHealthAndMetrics(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	f := newFixture(t, WithReadiness(func(context.Context) error {
		if healthy.Load() {
			return nil
		}
		return errors.New("db down")
	}))

	resp, _ := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	healthy.Store(false)
	resp, _ = f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, raw := f.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `fundscope_http_requests_total{method="GET",route="/healthz",status="503"} 1`)
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "0.00", formatPercentage(0))
	assert.Equal(t, "66.67", formatPercentage(200.0/3))
	assert.Equal(t, "100.00", formatPercentage(100))
}
