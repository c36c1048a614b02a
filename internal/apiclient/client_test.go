package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const campaignAddr = "0x00000000000000000000000000000000000000c1"

func TestClient_ListCampaignsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		assert.Equal(t, "/api/v1/campaigns", r.URL.Path)
		assert.Equal(t, "ONGOING", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"address":"` + campaignAddr + `","name":"solar","funded_percentage_text":"33.33","status":"ONGOING"}]`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, 2, time.Second)
	require.NoError(t, err)
	got, err := c.ListCampaigns(context.Background(), "ONGOING")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "33.33", got[0].FundedPercentageText)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_FundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1), body["tier_index"])
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"chain unavailable"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, 3, time.Second)
	require.NoError(t, err)
	_, err = c.Fund(context.Background(), campaignAddr, "0x00000000000000000000000000000000000000b2", 1)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "chain unavailable", apiErr.Message)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_GetCampaign(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/campaigns/"+campaignAddr, r.URL.Path)
		assert.Equal(t, "0xabc", r.URL.Query().Get("account"))
		_, _ = w.Write([]byte(`{"address":"` + campaignAddr + `","contract_state":"active","tiers":[{"index":0,"name":"bronze","amount":"10"}],"capabilities":{"can_fund":true}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, 0, time.Second)
	require.NoError(t, err)
	got, err := c.GetCampaign(context.Background(), campaignAddr, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, campaignAddr, got.Address)
	assert.True(t, got.Capabilities.CanFund)
	require.Len(t, got.Tiers, 1)
	assert.Equal(t, "10", got.Tiers[0].Amount)
}

func TestClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"campaign not found"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, 1, time.Second)
	require.NoError(t, err)
	_, err = c.Transactions(context.Background(), campaignAddr)
	require.EqualError(t, err, "fundscope: 404 campaign not found")
}

func TestClient_RemoveTier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/campaigns/"+campaignAddr+"/tiers/2", r.URL.Path)
		assert.Equal(t, "0xowner", r.URL.Query().Get("account"))
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"transaction":{"kind":"remove_tier","tx_hash":"0x01"},"confirmed":true}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, 0, time.Second)
	require.NoError(t, err)
	res, err := c.RemoveTier(context.Background(), campaignAddr, "0xowner", 2)
	require.NoError(t, err)
	assert.True(t, res.Confirmed)
	assert.Equal(t, "remove_tier", res.Transaction.Kind)
}

func TestClient_AddTier(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/campaigns/"+campaignAddr+"/tiers", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "silver", body["name"])
		assert.Equal(t, "50", body["amount"])
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"transaction":{"kind":"add_tier","tier_name":"silver","amount":"50","tx_hash":"0x02"}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, 3, time.Second)
	require.NoError(t, err)
	res, err := c.AddTier(context.Background(), campaignAddr, "0xowner", "silver", "50")
	require.NoError(t, err)
	assert.Equal(t, "add_tier", res.Transaction.Kind)
	assert.Equal(t, "50", res.Transaction.Amount)
	assert.False(t, res.Confirmed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("localhost", 0, time.Second)
	require.Error(t, err)
}
