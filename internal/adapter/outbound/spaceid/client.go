package spaceid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// DefaultBaseURL is the public Space ID name API endpoint.
const DefaultBaseURL = "https://nameapi.space.id"

// Client queries the Space ID name API. It implements the resolver's
// NamingBackend capability: a `code` of 0 signals success; any other code
// or a non-2xx status is reported as "no record", matching the API's
// contract. Transport and decoding faults are returned as errors and left
// to the resolver's fault policy.
type Client struct {
	baseURL string
	chainID int64
	client  *http.Client
	logger  *slog.Logger
}

// New creates a Space ID client. chainID selects the namespace used for
// reverse lookups.
func New(baseURL string, chainID int64, client *http.Client, logger *slog.Logger) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		chainID: chainID,
		client:  client,
		logger:  logger.With("component", "spaceid_client"),
	}
}

type addressResponse struct {
	Code    int    `json:"code"`
	Address string `json:"address"`
}

type nameResponse struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// ForwardLookup resolves a domain name to an address via
// GET {base}/getAddress?domain=<name>.
func (c *Client) ForwardLookup(ctx context.Context, name string) (string, error) {
	var resp addressResponse
	ok, err := c.get(ctx, fmt.Sprintf("%s/getAddress?domain=%s", c.baseURL, url.QueryEscape(name)), &resp)
	if err != nil || !ok || resp.Code != 0 {
		return "", err
	}
	return resp.Address, nil
}

// ReverseLookup resolves an address to its registered name via
// GET {base}/getName?chainid=<id>&address=<addr>.
func (c *Client) ReverseLookup(ctx context.Context, address string) (string, error) {
	var resp nameResponse
	ok, err := c.get(ctx, fmt.Sprintf("%s/getName?chainid=%d&address=%s", c.baseURL, c.chainID, url.QueryEscape(address)), &resp)
	if err != nil || !ok || resp.Code != 0 {
		return "", err
	}
	return resp.Name, nil
}

// get executes the request and decodes a 2xx JSON body into out. A non-2xx
// status returns (false, nil): the API reports absence that way.
func (c *Client) get(ctx context.Context, rawURL string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("request execution failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("Non-success status from name API, treating as no record.",
			slog.String("url", rawURL),
			slog.Int("status_code", resp.StatusCode))
		return false, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal name API response: %w", err)
	}
	return true, nil
}
