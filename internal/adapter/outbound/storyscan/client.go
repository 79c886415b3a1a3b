// Package storyscan queries the StoryScan block explorer, a Blockscout
// deployment, through its v2 REST API.
package storyscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"storymcp/internal/domain"
)

// Client implements the explorer query surface over the Blockscout v2 API.
type Client struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// New creates an explorer client. endpoint is the API root, e.g.
// "https://www.storyscan.io/api".
func New(endpoint string, client *http.Client, logger *slog.Logger) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   client,
		logger:   logger.With("component", "storyscan_client"),
	}
}

// AddressBalance returns the native coin balance of an address in wei.
func (c *Client) AddressBalance(ctx context.Context, address string) (*domain.AddressBalance, error) {
	var overview domain.AddressOverview
	if err := c.get(ctx, "addresses/"+url.PathEscape(address), &overview); err != nil {
		return nil, err
	}
	return &domain.AddressBalance{Address: overview.Hash, Balance: overview.CoinBalance}, nil
}

// TransactionHistory returns the most recent transactions of an address,
// newest first, at most limit entries.
func (c *Client) TransactionHistory(ctx context.Context, address string, limit int) ([]domain.Transaction, error) {
	var page struct {
		Items []domain.Transaction `json:"items"`
	}
	if err := c.get(ctx, "addresses/"+url.PathEscape(address)+"/transactions", &page); err != nil {
		return nil, err
	}
	if limit > 0 && len(page.Items) > limit {
		page.Items = page.Items[:limit]
	}
	return page.Items, nil
}

// BlockchainStats returns network-wide statistics.
func (c *Client) BlockchainStats(ctx context.Context) (*domain.BlockchainStats, error) {
	var stats domain.BlockchainStats
	if err := c.get(ctx, "stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AddressOverview returns the full explorer view of an address.
func (c *Client) AddressOverview(ctx context.Context, address string) (*domain.AddressOverview, error) {
	var overview domain.AddressOverview
	if err := c.get(ctx, "addresses/"+url.PathEscape(address), &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// TokenHoldings returns the fungible token positions of an address.
func (c *Client) TokenHoldings(ctx context.Context, address string) (*domain.TokenHoldings, error) {
	var holdings domain.TokenHoldings
	if err := c.get(ctx, "addresses/"+url.PathEscape(address)+"/tokens", &holdings); err != nil {
		return nil, err
	}
	return &holdings, nil
}

// NFTHoldings returns the NFT collections an address holds.
func (c *Client) NFTHoldings(ctx context.Context, address string) (*domain.NFTCollections, error) {
	var collections domain.NFTCollections
	if err := c.get(ctx, "addresses/"+url.PathEscape(address)+"/collectibles", &collections); err != nil {
		return nil, err
	}
	return &collections, nil
}

// TransactionInterpretation returns the explorer's human-readable summary
// of a transaction.
func (c *Client) TransactionInterpretation(ctx context.Context, txHash string) (*domain.TransactionInterpretation, error) {
	var interp domain.TransactionInterpretation
	if err := c.get(ctx, "transactions/"+url.PathEscape(txHash)+"/summary", &interp); err != nil {
		return nil, err
	}
	return &interp, nil
}

// get performs a GET against the v2 API and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	reqURL := c.endpoint + "/v2/" + path
	c.logger.Debug("Querying explorer.", "url", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create explorer request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("explorer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("explorer returned status %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode explorer response for %s: %w", path, err)
	}
	return nil
}
