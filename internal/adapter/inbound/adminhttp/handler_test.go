package adminhttp

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatus struct{}

func (stubStatus) NetworkName() string   { return "aeneid" }
func (stubStatus) ChainID() int64        { return 1315 }
func (stubStatus) SignerAddress() string { return "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359" }

func TestHandleHealth(t *testing.T) {
	assert := assert.New(t)

	mux := http.NewServeMux()
	NewHandlers(stubStatus{}, slog.New(slog.DiscardHandler)).RegisterRoutes(mux)

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal("application/json", recorder.Header().Get("Content-Type"))

	var response struct {
		Status  string `json:"status"`
		Network string `json:"network"`
		ChainID int64  `json:"chain_id"`
		Wallet  string `json:"wallet"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal("ok", response.Status)
	assert.Equal("aeneid", response.Network)
	assert.Equal(int64(1315), response.ChainID)
}
