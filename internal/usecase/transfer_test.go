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

func newTransferFixture() (*usecase.TransferUseCase, *MockChainClient, *MockNamingBackend, *MockNamingBackend) {
	chain := new(MockChainClient)
	primary := new(MockNamingBackend)
	secondary := new(MockNamingBackend)
	logger := slog.New(slog.DiscardHandler)
	u := usecase.NewTransferUseCase(chain, usecase.NewAddressResolver(primary, secondary, logger), logger)
	return u, chain, primary, secondary
}

func TestTransferSendIPToDomainName(t *testing.T) {
	assert := assert.New(t)
	u, chain, primary, _ := newTransferFixture()

	primary.On("ForwardLookup", mock.Anything, "alice.eth").Return(registeredAddr, nil)
	want := &domain.SendIPResult{TxHash: "0xhash", To: registeredAddr}
	chain.On("SendIP", mock.Anything, registeredAddr, 2.5).Return(want, nil)

	result, err := u.SendIP(context.Background(), "alice.eth", 2.5)
	require.NoError(t, err)
	assert.Equal(want, result)
	chain.AssertExpectations(t)
}

func TestTransferSendIPRejectsNonPositiveAmount(t *testing.T) {
	u, chain, _, _ := newTransferFixture()

	_, err := u.SendIP(context.Background(), registeredAddr, -1)
	assert.ErrorContains(t, err, "must be positive")
	chain.AssertNotCalled(t, "SendIP", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransferSendIPUnresolvedRecipient(t *testing.T) {
	u, chain, primary, secondary := newTransferFixture()

	primary.On("ForwardLookup", mock.Anything, "ghost.eth").Return("", nil)
	secondary.On("ForwardLookup", mock.Anything, "ghost.eth").Return("", nil)

	_, err := u.SendIP(context.Background(), "ghost.eth", 1)

	var unresolved *domain.UnresolvedError
	assert.ErrorAs(t, err, &unresolved)
	chain.AssertNotCalled(t, "SendIP", mock.Anything, mock.Anything, mock.Anything)
}
