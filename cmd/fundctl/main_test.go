package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/campaigns", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "FAILED", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`[{"address":"0xc1","name":"solar roof","funded_percentage_text":"12.50","remaining_days":0,"status":"FAILED","stale":true}]`))
	})
	mux.HandleFunc("/api/v1/campaigns/0xc1/fund", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"transaction":{"kind":"fund","tx_hash":"0xfeed"},"confirmed":true,"block_number":9,"campaign":{"funded_percentage_text":"40.00","status":"ONGOING"}}`))
	})
	mux.HandleFunc("/api/v1/campaigns/0xc1/tiers", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"account": "0xa1", "name": "silver", "amount": "50"}, body)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"transaction":{"kind":"add_tier","tx_hash":"0x0a"},"confirmed":false}`))
	})
	mux.HandleFunc("/api/v1/campaigns/0xc1/tiers/2", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "0xa1", r.URL.Query().Get("account"))
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"transaction":{"kind":"remove_tier","tx_hash":"0x0b"},"confirmed":true,"block_number":11}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCampaignsList(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, "campaigns", "list", "--status", "failed", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "solar roof")
	assert.Contains(t, out, "12.50%")
	assert.Contains(t, out, "stale")
}

func TestCampaignsList_JSON(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, "campaigns", "list", "--status", "FAILED", "--server", srv.URL, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"funded_percentage_text": "12.50"`)
}

func TestFund(t *testing.T) {
	srv := newTestServer(t)
	t.Setenv("FUNDSCOPE_SERVER", srv.URL)

	out, err := run(t, "fund", "0xc1", "--tier", "1", "--account", "0xb2")
	require.NoError(t, err)
	assert.Contains(t, out, "fund 0xfeed: confirmed in block 9")
	assert.Contains(t, out, "40.00% funded")
}

func TestFund_RequiresAccount(t *testing.T) {
	_, err := run(t, "fund", "0xc1", "--tier", "1")
	require.Error(t, err)
}

func TestTiersAdd(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, "tiers", "add", "0xc1", "--account", "0xa1", "--name", "silver", "--amount", "50", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "add_tier 0x0a: pending")
}

func TestTiersRemove(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, "tiers", "remove", "0xc1", "--account", "0xa1", "--index", "2", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "remove_tier 0x0b: confirmed in block 11")
}

func TestTiersAdd_RequiresAmount(t *testing.T) {
	_, err := run(t, "tiers", "add", "0xc1", "--account", "0xa1", "--name", "silver")
	require.Error(t, err)
}
