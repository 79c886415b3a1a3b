package usecase_test

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"

	"storymcp/internal/domain"
)

// MockChainClient is a mock implementation of the ChainClient interface.
type MockChainClient struct {
	mock.Mock
}

func (m *MockChainClient) SignerAddress() string {
	return m.Called().String(0)
}

func (m *MockChainClient) ChainID() int64 {
	return m.Called().Get(0).(int64)
}

func (m *MockChainClient) SendIP(ctx context.Context, to string, amount float64) (*domain.SendIPResult, error) {
	args := m.Called(ctx, to, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SendIPResult), args.Error(1)
}

func (m *MockChainClient) GetLicenseTerms(ctx context.Context, id *big.Int) (*domain.LicenseTerms, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LicenseTerms), args.Error(1)
}

func (m *MockChainClient) MintLicenseTokens(ctx context.Context, req domain.MintLicenseTokensRequest) (*domain.MintLicenseTokensResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MintLicenseTokensResult), args.Error(1)
}

func (m *MockChainClient) MintAndRegisterIPWithTerms(ctx context.Context, req domain.MintAndRegisterRequest) (*domain.MintAndRegisterResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MintAndRegisterResult), args.Error(1)
}

func (m *MockChainClient) CreateSPGCollection(ctx context.Context, req domain.CreateCollectionRequest) (*domain.CreateCollectionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreateCollectionResult), args.Error(1)
}

// MockExplorerClient is a mock implementation of the ExplorerClient
// interface.
type MockExplorerClient struct {
	mock.Mock
}

func (m *MockExplorerClient) AddressBalance(ctx context.Context, address string) (*domain.AddressBalance, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AddressBalance), args.Error(1)
}

func (m *MockExplorerClient) TransactionHistory(ctx context.Context, address string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, address, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockExplorerClient) BlockchainStats(ctx context.Context) (*domain.BlockchainStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlockchainStats), args.Error(1)
}

func (m *MockExplorerClient) AddressOverview(ctx context.Context, address string) (*domain.AddressOverview, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AddressOverview), args.Error(1)
}

func (m *MockExplorerClient) TokenHoldings(ctx context.Context, address string) (*domain.TokenHoldings, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenHoldings), args.Error(1)
}

func (m *MockExplorerClient) NFTHoldings(ctx context.Context, address string) (*domain.NFTCollections, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NFTCollections), args.Error(1)
}

func (m *MockExplorerClient) TransactionInterpretation(ctx context.Context, txHash string) (*domain.TransactionInterpretation, error) {
	args := m.Called(ctx, txHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionInterpretation), args.Error(1)
}

// MockIPFSClient is a mock implementation of the IPFSClient interface.
type MockIPFSClient struct {
	mock.Mock
}

func (m *MockIPFSClient) PinFile(ctx context.Context, data []byte, filename string) (string, error) {
	args := m.Called(ctx, data, filename)
	return args.String(0), args.Error(1)
}

func (m *MockIPFSClient) PinJSON(ctx context.Context, v any) (string, error) {
	args := m.Called(ctx, v)
	return args.String(0), args.Error(1)
}

func (m *MockIPFSClient) Download(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
