package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"storymcp/internal/domain"
)

// defaultTransactionLimit bounds the history query when the caller does
// not ask for a specific number of entries.
const defaultTransactionLimit = 10

// ExplorerUseCase answers read-only queries against the block explorer.
// Address parameters accept domain names; an empty address defaults to
// the signing wallet.
type ExplorerUseCase struct {
	explorer ExplorerClient
	chain    ChainClient
	resolver *AddressResolver
	logger   *slog.Logger
}

// NewExplorerUseCase creates the explorer use case.
func NewExplorerUseCase(explorer ExplorerClient, chain ChainClient, resolver *AddressResolver, logger *slog.Logger) *ExplorerUseCase {
	return &ExplorerUseCase{
		explorer: explorer,
		chain:    chain,
		resolver: resolver,
		logger:   logger.With("usecase", "ExplorerUseCase"),
	}
}

// resolveOrSigner resolves an identifier to an address, defaulting to the
// signing wallet when the identifier is empty.
func (u *ExplorerUseCase) resolveOrSigner(ctx context.Context, identifier string) (string, error) {
	if identifier == "" {
		return u.chain.SignerAddress(), nil
	}
	return u.resolver.Resolve(ctx, identifier)
}

// CheckBalance returns the native balance of an address, or of the signing
// wallet when address is empty.
func (u *ExplorerUseCase) CheckBalance(ctx context.Context, address string) (*domain.AddressBalance, error) {
	ctx, span := tracer.Start(ctx, "ExplorerUseCase.CheckBalance")
	defer span.End()

	resolved, err := u.resolveOrSigner(ctx, address)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("address", resolved))
	return u.explorer.AddressBalance(ctx, resolved)
}

// GetTransactions returns the latest transactions of an address, at most
// limit entries (defaulting to 10).
func (u *ExplorerUseCase) GetTransactions(ctx context.Context, address string, limit int) ([]domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "ExplorerUseCase.GetTransactions",
		trace.WithAttributes(attribute.Int("limit", limit)))
	defer span.End()

	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	resolved, err := u.resolveOrSigner(ctx, address)
	if err != nil {
		return nil, err
	}
	return u.explorer.TransactionHistory(ctx, resolved, limit)
}

// GetStats returns network-wide blockchain statistics.
func (u *ExplorerUseCase) GetStats(ctx context.Context) (*domain.BlockchainStats, error) {
	ctx, span := tracer.Start(ctx, "ExplorerUseCase.GetStats")
	defer span.End()

	return u.explorer.BlockchainStats(ctx)
}

// GetAddressOverview returns the full explorer view of an address.
func (u *ExplorerUseCase) GetAddressOverview(ctx context.Context, address string) (*domain.AddressOverview, error) {
	ctx, span := tracer.Start(ctx, "ExplorerUseCase.GetAddressOverview")
	defer span.End()

	resolved, err := u.resolveOrSigner(ctx, address)
	if err != nil {
		return nil, err
	}
	return u.explorer.AddressOverview(ctx, resolved)
}

// GetTokenHoldings returns the ERC-20 positions of an address.
func (u *ExplorerUseCase) GetTokenHoldings(ctx context.Context, address string) (*domain.TokenHoldings, error) {
	ctx, span := tracer.Start(ctx, "ExplorerUseCase.GetTokenHoldings")
	defer span.End()

	resolved, err := u.resolveOrSigner(ctx, address)
	if err != nil {
		return nil, err
	}
	return u.explorer.TokenHoldings(ctx, resolved)
}

// GetNFTHoldings returns the NFT collections an address holds.
func (u *ExplorerUseCase) GetNFTHoldings(ctx context.Context, address string) (*domain.NFTCollections, error) {
	ctx, span := tracer.Start(ctx, "ExplorerUseCase.GetNFTHoldings")
	defer span.End()

	resolved, err := u.resolveOrSigner(ctx, address)
	if err != nil {
		return nil, err
	}
	return u.explorer.NFTHoldings(ctx, resolved)
}

// InterpretTransaction returns the explorer's human-readable summary of a
// transaction hash.
func (u *ExplorerUseCase) InterpretTransaction(ctx context.Context, txHash string) (*domain.TransactionInterpretation, error) {
	ctx, span := tracer.Start(ctx, "ExplorerUseCase.InterpretTransaction",
		trace.WithAttributes(attribute.String("tx_hash", txHash)))
	defer span.End()

	if txHash == "" {
		return nil, fmt.Errorf("transaction hash is required")
	}
	return u.explorer.TransactionInterpretation(ctx, txHash)
}
