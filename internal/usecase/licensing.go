package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"storymcp/internal/domain"
)

// LicensingUseCase reads PIL license terms and mints license tokens.
// Address-typed inputs accept domain names and are resolved before any
// chain interaction.
type LicensingUseCase struct {
	chain    ChainClient
	resolver *AddressResolver
	logger   *slog.Logger
}

// NewLicensingUseCase creates the licensing use case.
func NewLicensingUseCase(chain ChainClient, resolver *AddressResolver, logger *slog.Logger) *LicensingUseCase {
	return &LicensingUseCase{
		chain:    chain,
		resolver: resolver,
		logger:   logger.With("usecase", "LicensingUseCase"),
	}
}

// GetLicenseTerms fetches the PIL terms registered under id.
func (u *LicensingUseCase) GetLicenseTerms(ctx context.Context, id *big.Int) (*domain.LicenseTerms, error) {
	ctx, span := tracer.Start(ctx, "LicensingUseCase.GetLicenseTerms",
		trace.WithAttributes(attribute.String("license_terms_id", id.String())))
	defer span.End()

	if id.Sign() < 0 {
		return nil, fmt.Errorf("license terms ID must not be negative, got %s", id)
	}
	terms, err := u.chain.GetLicenseTerms(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch license terms %s: %w", id, err)
	}
	return terms, nil
}

// MintLicenseTokens mints license tokens against a licensor IP asset. The
// licensor may be given as a domain name; an empty receiver defaults to
// the signing wallet.
func (u *LicensingUseCase) MintLicenseTokens(ctx context.Context, req domain.MintLicenseTokensRequest) (*domain.MintLicenseTokensResult, error) {
	ctx, span := tracer.Start(ctx, "LicensingUseCase.MintLicenseTokens")
	defer span.End()

	if req.LicenseTermsID == nil {
		return nil, fmt.Errorf("license terms ID is required")
	}
	if req.MaxRevenueShare != nil && *req.MaxRevenueShare > 100 {
		return nil, fmt.Errorf("max revenue share must be between 0 and 100, got %d", *req.MaxRevenueShare)
	}

	licensor, err := u.resolver.Resolve(ctx, req.LicensorIPID)
	if err != nil {
		return nil, err
	}
	req.LicensorIPID = licensor

	if req.Receiver != "" {
		receiver, err := u.resolver.Resolve(ctx, req.Receiver)
		if err != nil {
			return nil, err
		}
		req.Receiver = receiver
	}

	result, err := u.chain.MintLicenseTokens(ctx, req)
	if err != nil {
		return nil, err
	}
	u.logger.Info("Minted license tokens.",
		slog.String("licensor_ip_id", req.LicensorIPID),
		slog.String("license_terms_id", req.LicenseTermsID.String()),
		slog.String("tx_hash", result.TxHash),
		slog.Int("tokens", len(result.LicenseTokenIDs)))
	return result, nil
}
