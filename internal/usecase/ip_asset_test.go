package usecase_test

import (
	"context"
	"log/slog"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storymcp/internal/domain"
	"storymcp/internal/usecase"
)

const defaultSPG = "0x58E2c909D557Cd23EF90D14f8fd21667A5Ae7a93"

func newIPAssetFixture() (*usecase.IPAssetUseCase, *MockChainClient, *MockNamingBackend) {
	chain := new(MockChainClient)
	primary := new(MockNamingBackend)
	secondary := new(MockNamingBackend)
	logger := slog.New(slog.DiscardHandler)
	u := usecase.NewIPAssetUseCase(chain, usecase.NewAddressResolver(primary, secondary, logger), defaultSPG, logger)
	return u, chain, primary
}

func TestIPAssetMintAndRegisterUsesDefaultCollection(t *testing.T) {
	assert := assert.New(t)
	u, chain, _ := newIPAssetFixture()

	want := &domain.MintAndRegisterResult{
		TxHash:         "0xhash",
		IPID:           registeredAddr,
		TokenID:        big.NewInt(7),
		LicenseTermsID: big.NewInt(3),
	}
	chain.On("MintAndRegisterIPWithTerms", mock.Anything, mock.MatchedBy(func(req domain.MintAndRegisterRequest) bool {
		return req.SPGNFTContract == defaultSPG
	})).Return(want, nil)

	result, err := u.MintAndRegister(context.Background(), domain.MintAndRegisterRequest{
		CommercialRevShare: 10,
		DerivativesAllowed: true,
	})
	require.NoError(t, err)
	assert.Equal(want, result)
}

func TestIPAssetMintAndRegisterResolvesRecipient(t *testing.T) {
	u, chain, primary := newIPAssetFixture()

	primary.On("ForwardLookup", mock.Anything, "creator.eth").Return(registeredAddr, nil)
	chain.On("MintAndRegisterIPWithTerms", mock.Anything, mock.MatchedBy(func(req domain.MintAndRegisterRequest) bool {
		return req.Recipient == registeredAddr
	})).Return(&domain.MintAndRegisterResult{TxHash: "0xhash"}, nil)

	_, err := u.MintAndRegister(context.Background(), domain.MintAndRegisterRequest{Recipient: "creator.eth"})
	require.NoError(t, err)
	chain.AssertExpectations(t)
}

func TestIPAssetMintAndRegisterRejectsExcessRevShare(t *testing.T) {
	u, chain, _ := newIPAssetFixture()

	_, err := u.MintAndRegister(context.Background(), domain.MintAndRegisterRequest{CommercialRevShare: 101})
	assert.ErrorContains(t, err, "between 0 and 100")
	chain.AssertNotCalled(t, "MintAndRegisterIPWithTerms", mock.Anything, mock.Anything)
}

func TestIPAssetCreateCollection(t *testing.T) {
	assert := assert.New(t)
	u, chain, primary := newIPAssetFixture()

	primary.On("ForwardLookup", mock.Anything, "treasury.eth").Return(otherAddr, nil)
	want := &domain.CreateCollectionResult{TxHash: "0xhash", SPGNFTContract: registeredAddr}
	chain.On("CreateSPGCollection", mock.Anything, mock.MatchedBy(func(req domain.CreateCollectionRequest) bool {
		return req.Name == "Test Collection" && req.MintFeeRecipient == otherAddr
	})).Return(want, nil)

	result, err := u.CreateCollection(context.Background(), domain.CreateCollectionRequest{
		Name:             "Test Collection",
		Symbol:           "TEST",
		MintFeeRecipient: "treasury.eth",
		IsPublicMinting:  true,
		MintOpen:         true,
	})
	require.NoError(t, err)
	assert.Equal(want, result)
}

func TestIPAssetCreateCollectionRequiresNameAndSymbol(t *testing.T) {
	u, chain, _ := newIPAssetFixture()

	_, err := u.CreateCollection(context.Background(), domain.CreateCollectionRequest{Symbol: "TEST"})
	assert.ErrorContains(t, err, "required")
	chain.AssertNotCalled(t, "CreateSPGCollection", mock.Anything, mock.Anything)
}
