// Package pinata pins content to IPFS through the Pinata pinning service.
package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
)

const (
	// DefaultAPIBase is the Pinata pinning API root.
	DefaultAPIBase = "https://api.pinata.cloud"
	// GatewayBase is the public gateway used for pinned JSON documents.
	GatewayBase = "https://ipfs.io/ipfs/"

	maxDownloadSize = 32 << 20
)

// Client talks to the Pinata pinning API using a JWT credential.
type Client struct {
	apiBase string
	jwt     string
	client  *http.Client
	logger  *slog.Logger
}

// New creates a Pinata client. An empty apiBase selects the public API.
func New(apiBase, jwt string, client *http.Client, logger *slog.Logger) *Client {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	return &Client{
		apiBase: strings.TrimRight(apiBase, "/"),
		jwt:     jwt,
		client:  client,
		logger:  logger.With("component", "pinata_client"),
	}
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// PinFile pins raw bytes under the given filename and returns an
// "ipfs://<hash>" URI.
func (c *Client) PinFile(ctx context.Context, data []byte, filename string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}

	hash, err := c.pin(ctx, "/pinning/pinFileToIPFS", &body, writer.FormDataContentType())
	if err != nil {
		return "", err
	}
	c.logger.Info("Pinned file to IPFS.", "filename", filename, "hash", hash, "size", len(data))
	return "ipfs://" + hash, nil
}

// PinJSON pins a JSON document and returns a public gateway URL for it.
func (c *Client) PinJSON(ctx context.Context, v any) (string, error) {
	payload, err := json.Marshal(map[string]any{"pinataContent": v})
	if err != nil {
		return "", fmt.Errorf("failed to marshal pin payload: %w", err)
	}

	hash, err := c.pin(ctx, "/pinning/pinJSONToIPFS", bytes.NewReader(payload), "application/json")
	if err != nil {
		return "", err
	}
	c.logger.Info("Pinned JSON to IPFS.", "hash", hash)
	return GatewayBase + hash, nil
}

// Download fetches the content behind an HTTP(S) URL, typically an image
// about to be pinned.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("download of %s returned status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read download body: %w", err)
	}
	return data, nil
}

func (c *Client) pin(ctx context.Context, path string, body io.Reader, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+path, body)
	if err != nil {
		return "", fmt.Errorf("failed to create pin request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.jwt)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("pin request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("pinning service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var pinned pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&pinned); err != nil {
		return "", fmt.Errorf("failed to decode pin response: %w", err)
	}
	if pinned.IpfsHash == "" {
		return "", fmt.Errorf("pinning service returned an empty hash")
	}
	return pinned.IpfsHash, nil
}
