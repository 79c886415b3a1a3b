// Package adminhttp serves the operational HTTP endpoints that live next
// to the MCP transport.
package adminhttp

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ChainStatus is the connection info reported by the health endpoint.
type ChainStatus interface {
	NetworkName() string
	ChainID() int64
	SignerAddress() string
}

// Handlers holds dependencies for the admin HTTP handlers.
type Handlers struct {
	status ChainStatus
	logger *slog.Logger
}

// NewHandlers creates the admin handlers.
func NewHandlers(status ChainStatus, logger *slog.Logger) *Handlers {
	return &Handlers{
		status: status,
		logger: logger.With("component", "adminhttp_handler"),
	}
}

// RegisterRoutes sets up the admin routes.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

type healthResponse struct {
	Status  string `json:"status"`
	Network string `json:"network"`
	ChainID int64  `json:"chain_id"`
	Wallet  string `json:"wallet"`
}

// handleHealth implements GET /healthz.
func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{
		Status:  "ok",
		Network: h.status.NetworkName(),
		ChainID: h.status.ChainID(),
		Wallet:  h.status.SignerAddress(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode health response.", slog.Any("error", err))
	}
}
