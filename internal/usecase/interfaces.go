package usecase

import (
	"context"
	"errors"
	"math/big"

	"storymcp/internal/domain"
)

// Standard errors returned by use cases and adapters.
var (
	// ErrIPFSDisabled is returned by the IPFS-backed use cases when no
	// Pinata credential is configured.
	ErrIPFSDisabled = errors.New("IPFS functions are disabled: PINATA_JWT is not configured")
)

// --- Naming ---

// NamingBackend is the lookup capability shared by every naming system the
// address resolver consults. A forward lookup maps a human-readable domain
// name to an address; a reverse lookup maps an address to its primary name.
// An empty string with a nil error means "no record"; a non-nil error means
// the backend itself faulted. The resolver treats implementations as
// interchangeable and only decides their priority order, so additional
// naming systems can be added without touching its control flow.
type NamingBackend interface {
	ForwardLookup(ctx context.Context, name string) (string, error)
	ReverseLookup(ctx context.Context, address string) (string, error)
}

// --- Chain access ---

// ChainClient is the on-chain surface the tool use cases need: the signing
// wallet, native transfers, and the Story Protocol licensing/registration
// contracts.
type ChainClient interface {
	// SignerAddress returns the canonical address of the configured wallet.
	SignerAddress() string
	// ChainID returns the connected network's chain ID.
	ChainID() int64

	SendIP(ctx context.Context, to string, amount float64) (*domain.SendIPResult, error)
	GetLicenseTerms(ctx context.Context, id *big.Int) (*domain.LicenseTerms, error)
	MintLicenseTokens(ctx context.Context, req domain.MintLicenseTokensRequest) (*domain.MintLicenseTokensResult, error)
	MintAndRegisterIPWithTerms(ctx context.Context, req domain.MintAndRegisterRequest) (*domain.MintAndRegisterResult, error)
	CreateSPGCollection(ctx context.Context, req domain.CreateCollectionRequest) (*domain.CreateCollectionResult, error)
}

// --- Block explorer ---

// ExplorerClient is the read-only StoryScan (Blockscout) query surface.
type ExplorerClient interface {
	AddressBalance(ctx context.Context, address string) (*domain.AddressBalance, error)
	TransactionHistory(ctx context.Context, address string, limit int) ([]domain.Transaction, error)
	BlockchainStats(ctx context.Context) (*domain.BlockchainStats, error)
	AddressOverview(ctx context.Context, address string) (*domain.AddressOverview, error)
	TokenHoldings(ctx context.Context, address string) (*domain.TokenHoldings, error)
	NFTHoldings(ctx context.Context, address string) (*domain.NFTCollections, error)
	TransactionInterpretation(ctx context.Context, txHash string) (*domain.TransactionInterpretation, error)
}

// --- IPFS pinning ---

// IPFSClient pins content to IPFS and fetches remote media for pinning.
type IPFSClient interface {
	// PinFile pins raw bytes and returns an "ipfs://<hash>" URI.
	PinFile(ctx context.Context, data []byte, filename string) (string, error)
	// PinJSON pins a JSON document and returns a public gateway URL.
	PinJSON(ctx context.Context, v any) (string, error)
	// Download fetches the content behind an HTTP(S) URL.
	Download(ctx context.Context, url string) ([]byte, error)
}
