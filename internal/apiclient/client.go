// Package apiclient is a small client for the fundscope HTTP API used by
// fundctl. Reads are retried with backoff; transaction requests are sent
// once.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// APIError is a non-2xx response of the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fundscope: %d %s", e.StatusCode, e.Message)
}

// Campaign mirrors the server's campaign representation.
type Campaign struct {
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

type Tier struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	Backers uint64 `json:"backers"`
}

type Capabilities struct {
	CanFund     bool `json:"can_fund"`
	CanWithdraw bool `json:"can_withdraw"`
	CanEdit     bool `json:"can_edit"`
}

// CampaignDetail is a campaign with tiers and account capabilities.
type CampaignDetail struct {
	Campaign
	Description   string       `json:"description"`
	ContractState string       `json:"contract_state"`
	Tiers         []Tier       `json:"tiers"`
	Account       string       `json:"account,omitempty"`
	Capabilities  Capabilities `json:"capabilities"`
}

// Transaction is a journal entry.
type Transaction struct {
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

// TxResult is the response of a relayed transaction.
type TxResult struct {
	Transaction Transaction `json:"transaction"`
	Confirmed   bool        `json:"confirmed"`
	BlockNumber uint64      `json:"block_number,omitempty"`
	Campaign    *Campaign   `json:"campaign,omitempty"`
}

// Client talks to one fundscope server.
type Client struct {
	baseURL *url.URL
	reads   *retryablehttp.Client
	writes  *retryablehttp.Client
}

// New returns a client for the server at baseURL. retries bounds how often
// a failed read is repeated.
func New(baseURL string, retries int, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q", baseURL)
	}
	return &Client{
		baseURL: u,
		reads:   newRetryClient(retries, timeout),
		writes:  newRetryClient(0, timeout),
	}, nil
}

func newRetryClient(retries int, timeout time.Duration) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.Logger = log.New(io.Discard, "", 0)
	c.RetryMax = retries
	c.RetryWaitMin = 200 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.HTTPClient.Timeout = timeout
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return c
}

// ListCampaigns lists campaigns, filtered by status unless it is empty.
func (c *Client) ListCampaigns(ctx context.Context, status string) ([]Campaign, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var out []Campaign
	err := c.get(ctx, "/api/v1/campaigns", q, &out)
	return out, err
}

// GetCampaign returns one campaign as seen by account, which may be empty.
func (c *Client) GetCampaign(ctx context.Context, address, account string) (*CampaignDetail, error) {
	q := url.Values{}
	if account != "" {
		q.Set("account", account)
	}
	var out CampaignDetail
	if err := c.get(ctx, "/api/v1/campaigns/"+url.PathEscape(address), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transactions returns the journal of a campaign.
func (c *Client) Transactions(ctx context.Context, address string) ([]Transaction, error) {
	var out []Transaction
	err := c.get(ctx, "/api/v1/campaigns/"+url.PathEscape(address)+"/transactions", nil, &out)
	return out, err
}

// UserCampaigns lists the campaigns created by account.
func (c *Client) UserCampaigns(ctx context.Context, account string) ([]Campaign, error) {
	var out []Campaign
	err := c.get(ctx, "/api/v1/accounts/"+url.PathEscape(account)+"/campaigns", nil, &out)
	return out, err
}

// Fund contributes the amount of tier from account.
func (c *Client) Fund(ctx context.Context, address, account string, tier uint64) (*TxResult, error) {
	body := map[string]any{"account": account, "tier_index": tier}
	var out TxResult
	if err := c.send(ctx, http.MethodPost, "/api/v1/campaigns/"+url.PathEscape(address)+"/fund", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Withdraw releases the funds of a successful campaign to its owner.
func (c *Client) Withdraw(ctx context.Context, address, account string) (*TxResult, error) {
	body := map[string]any{"account": account}
	var out TxResult
	if err := c.send(ctx, http.MethodPost, "/api/v1/campaigns/"+url.PathEscape(address)+"/withdraw", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddTier appends a tier of amount wei.
func (c *Client) AddTier(ctx context.Context, address, account, name, amount string) (*TxResult, error) {
	body := map[string]any{"account": account, "name": name, "amount": amount}
	var out TxResult
	if err := c.send(ctx, http.MethodPost, "/api/v1/campaigns/"+url.PathEscape(address)+"/tiers", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveTier deletes the tier at index.
func (c *Client) RemoveTier(ctx context.Context, address, account string, index uint64) (*TxResult, error) {
	path := "/api/v1/campaigns/" + url.PathEscape(address) + "/tiers/" + strconv.FormatUint(index, 10) +
		"?" + url.Values{"account": {account}}.Encode()
	var out TxResult
	if err := c.send(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, dst any) error {
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String()+path, nil)
	if err != nil {
		return err
	}
	return c.do(c.reads, req, dst)
}

func (c *Client) send(ctx context.Context, method, path string, body, dst any) error {
	var payload any
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = raw
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL.String()+path, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(c.writes, req, dst)
}

func (c *Client) do(client *retryablehttp.Client, req *retryablehttp.Request, dst any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var body struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &body) == nil && body.Error != "" {
			apiErr.Message = body.Error
		}
		return apiErr
	}
	if dst == nil {
		return nil
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
