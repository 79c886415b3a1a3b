package usecase_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storymcp/internal/domain"
	"storymcp/internal/usecase"
)

func newExplorerFixture() (*usecase.ExplorerUseCase, *MockExplorerClient, *MockChainClient, *MockNamingBackend) {
	explorer := new(MockExplorerClient)
	chain := new(MockChainClient)
	primary := new(MockNamingBackend)
	secondary := new(MockNamingBackend)
	logger := slog.New(slog.DiscardHandler)
	u := usecase.NewExplorerUseCase(explorer, chain, usecase.NewAddressResolver(primary, secondary, logger), logger)
	return u, explorer, chain, primary
}

func TestExplorerCheckBalanceDefaultsToSigner(t *testing.T) {
	assert := assert.New(t)
	u, explorer, chain, _ := newExplorerFixture()

	chain.On("SignerAddress").Return(registeredAddr)
	want := &domain.AddressBalance{Address: registeredAddr, Balance: "1000"}
	explorer.On("AddressBalance", mock.Anything, registeredAddr).Return(want, nil)

	balance, err := u.CheckBalance(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(want, balance)
}

func TestExplorerCheckBalanceResolvesDomainName(t *testing.T) {
	u, explorer, _, primary := newExplorerFixture()

	primary.On("ForwardLookup", mock.Anything, "alice.eth").Return(registeredAddr, nil)
	explorer.On("AddressBalance", mock.Anything, registeredAddr).Return(&domain.AddressBalance{}, nil)

	_, err := u.CheckBalance(context.Background(), "alice.eth")
	require.NoError(t, err)
	explorer.AssertExpectations(t)
}

func TestExplorerGetTransactionsDefaultLimit(t *testing.T) {
	u, explorer, _, _ := newExplorerFixture()

	explorer.On("TransactionHistory", mock.Anything, registeredAddr, 10).Return([]domain.Transaction{}, nil)

	_, err := u.GetTransactions(context.Background(), registeredAddr, 0)
	require.NoError(t, err)
	explorer.AssertExpectations(t)
}

func TestExplorerGetStats(t *testing.T) {
	assert := assert.New(t)
	u, explorer, _, _ := newExplorerFixture()

	want := &domain.BlockchainStats{TotalBlocks: "100"}
	explorer.On("BlockchainStats", mock.Anything).Return(want, nil)

	stats, err := u.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(want, stats)
}

func TestExplorerQueriesResolveAddress(t *testing.T) {
	u, explorer, _, _ := newExplorerFixture()

	explorer.On("AddressOverview", mock.Anything, registeredAddr).Return(&domain.AddressOverview{}, nil)
	explorer.On("TokenHoldings", mock.Anything, registeredAddr).Return(&domain.TokenHoldings{}, nil)
	explorer.On("NFTHoldings", mock.Anything, registeredAddr).Return(&domain.NFTCollections{}, nil)

	_, err := u.GetAddressOverview(context.Background(), registeredAddr)
	require.NoError(t, err)
	_, err = u.GetTokenHoldings(context.Background(), registeredAddr)
	require.NoError(t, err)
	_, err = u.GetNFTHoldings(context.Background(), registeredAddr)
	require.NoError(t, err)
	explorer.AssertExpectations(t)
}

func TestExplorerInterpretTransactionRequiresHash(t *testing.T) {
	u, explorer, _, _ := newExplorerFixture()

	_, err := u.InterpretTransaction(context.Background(), "")
	assert.ErrorContains(t, err, "required")
	explorer.AssertNotCalled(t, "TransactionInterpretation", mock.Anything, mock.Anything)
}

func TestExplorerInterpretTransaction(t *testing.T) {
	assert := assert.New(t)
	u, explorer, _, _ := newExplorerFixture()

	want := &domain.TransactionInterpretation{Success: true}
	explorer.On("TransactionInterpretation", mock.Anything, "0xdead").Return(want, nil)

	interp, err := u.InterpretTransaction(context.Background(), "0xdead")
	require.NoError(t, err)
	assert.Equal(want, interp)
}
