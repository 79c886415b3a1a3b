package spaceid_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storymcp/internal/adapter/outbound/spaceid"
)

func newTestClient(t *testing.T, handler http.Handler) *spaceid.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return spaceid.New(server.URL, 1514, server.Client(), logger)
}

func TestClient_ForwardLookup(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		mockHandler func(w http.ResponseWriter, r *http.Request)
		inName      string
		wantAddr    string
		wantErr     bool
	}{
		{
			name: "registered domain",
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/getAddress", r.URL.Path)
				assert.Equal(t, "alice.ip", r.URL.Query().Get("domain"))
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"code":0,"address":"0x1234567890123456789012345678901234567890"}`))
			},
			inName:   "alice.ip",
			wantAddr: "0x1234567890123456789012345678901234567890",
		},
		{
			name: "non-zero code means no record",
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"code":1,"address":""}`))
			},
			inName:   "unknown.ip",
			wantAddr: "",
		},
		{
			name: "non-200 status means no record, not an error",
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			inName:   "missing.ip",
			wantAddr: "",
		},
		{
			name: "malformed body is a backend fault",
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{not json`))
			},
			inName:  "broken.ip",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(tt.mockHandler))
			addr, err := client.ForwardLookup(ctx, tt.inName)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, addr)
		})
	}
}

func TestClient_ReverseLookup(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getName", r.URL.Path)
		assert.Equal(t, "1514", r.URL.Query().Get("chainid"))
		assert.Equal(t, "0x1234567890123456789012345678901234567890", r.URL.Query().Get("address"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":0,"name":"alice.ip"}`))
	}))

	name, err := client.ReverseLookup(ctx, "0x1234567890123456789012345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "alice.ip", name)
}

func TestClient_ReverseLookup_NoRecord(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":3,"name":""}`))
	}))

	name, err := client.ReverseLookup(context.Background(), "0x1234567890123456789012345678901234567890")
	require.NoError(t, err)
	assert.Empty(t, name)
}
