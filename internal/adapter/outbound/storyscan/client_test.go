package storyscan

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, server.Client(), slog.New(slog.DiscardHandler))
}

func TestAddressBalance(t *testing.T) {
	assert := assert.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v2/addresses/0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hash":"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359","coin_balance":"1500000000000000000"}`))
	})

	balance, err := c.AddressBalance(context.Background(), "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359")
	require.NoError(t, err)
	assert.Equal("0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", balance.Address)
	assert.Equal("1500000000000000000", balance.Balance)
}

func TestTransactionHistory(t *testing.T) {
	assert := assert.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v2/addresses/0xabc/transactions", r.URL.Path)
		w.Write([]byte(`{"items":[
			{"hash":"0x1","value":"100","status":"ok","block_number":10,"from":{"hash":"0xaa"},"to":{"hash":"0xbb"}},
			{"hash":"0x2","value":"200","status":"ok","block_number":9,"from":{"hash":"0xaa"},"to":{"hash":"0xcc"}},
			{"hash":"0x3","value":"300","status":"error","block_number":8,"from":{"hash":"0xdd"},"to":{"hash":"0xaa"}}
		]}`))
	})

	txs, err := c.TransactionHistory(context.Background(), "0xabc", 2)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal("0x1", txs[0].Hash)
	assert.Equal("0xbb", txs[0].To.Hash)
	assert.Equal("0x2", txs[1].Hash)
}

func TestBlockchainStats(t *testing.T) {
	assert := assert.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v2/stats", r.URL.Path)
		w.Write([]byte(`{
			"total_blocks":"4120000",
			"total_transactions":"9200000",
			"average_block_time":2400.5,
			"gas_prices":{"average":1.2,"fast":2.5,"slow":0.8}
		}`))
	})

	stats, err := c.BlockchainStats(context.Background())
	require.NoError(t, err)
	assert.Equal("4120000", stats.TotalBlocks)
	assert.Equal(2400.5, stats.AverageBlockTime)
	assert.Equal(2.5, stats.GasPrices.Fast)
}

func TestTokenHoldings(t *testing.T) {
	assert := assert.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v2/addresses/0xabc/tokens", r.URL.Path)
		w.Write([]byte(`{"items":[{"token":{"name":"Wrapped IP","symbol":"WIP","decimals":"18"},"value":"5000000000000000000"}]}`))
	})

	holdings, err := c.TokenHoldings(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, holdings.Items, 1)
	assert.Equal("WIP", holdings.Items[0].Token.Symbol)
	assert.Equal("5000000000000000000", holdings.Items[0].Value)
}

func TestNFTHoldings(t *testing.T) {
	assert := assert.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v2/addresses/0xabc/collectibles", r.URL.Path)
		w.Write([]byte(`{"items":[{"token":{"name":"Test Collection","symbol":"TEST","type":"ERC-721"},"amount":"2","token_instances":[{"id":"1"},{"id":"7"}]}]}`))
	})

	collections, err := c.NFTHoldings(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, collections.Items, 1)
	assert.Equal("ERC-721", collections.Items[0].Token.Type)
	require.Len(t, collections.Items[0].TokenInstances, 2)
	assert.Equal("7", collections.Items[0].TokenInstances[1].ID)
}

func TestTransactionInterpretation(t *testing.T) {
	assert := assert.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v2/transactions/0xdead/summary", r.URL.Path)
		w.Write([]byte(`{"success":true,"summaries":[{"summary_template":"{sender} sent {amount} IP","summary_template_variables":{"amount":"1"}}]}`))
	})

	interp, err := c.TransactionInterpretation(context.Background(), "0xdead")
	require.NoError(t, err)
	assert.True(interp.Success)
	require.Len(t, interp.Summaries, 1)
	assert.Contains(interp.Summaries[0].SummaryTemplate, "sent")
}

func TestErrorStatus(t *testing.T) {
	assert := assert.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not found"}`, http.StatusNotFound)
	})

	_, err := c.AddressBalance(context.Background(), "0xmissing")
	assert.ErrorContains(err, "status 404")
}

func TestMalformedBody(t *testing.T) {
	assert := assert.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	})

	_, err := c.BlockchainStats(context.Background())
	assert.ErrorContains(err, "decode")
}
