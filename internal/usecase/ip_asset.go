package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"storymcp/internal/domain"
)

// IPAssetUseCase registers IP assets and deploys SPG NFT collections.
type IPAssetUseCase struct {
	chain      ChainClient
	resolver   *AddressResolver
	defaultSPG string
	logger     *slog.Logger
}

// NewIPAssetUseCase creates the IP asset use case. defaultSPG is the SPG
// NFT contract used when a registration request does not name one.
func NewIPAssetUseCase(chain ChainClient, resolver *AddressResolver, defaultSPG string, logger *slog.Logger) *IPAssetUseCase {
	return &IPAssetUseCase{
		chain:      chain,
		resolver:   resolver,
		defaultSPG: defaultSPG,
		logger:     logger.With("usecase", "IPAssetUseCase"),
	}
}

// MintAndRegister mints an NFT, registers it as an IP asset, and attaches
// PIL terms derived from the commercial revenue share and derivatives
// flags.
func (u *IPAssetUseCase) MintAndRegister(ctx context.Context, req domain.MintAndRegisterRequest) (*domain.MintAndRegisterResult, error) {
	ctx, span := tracer.Start(ctx, "IPAssetUseCase.MintAndRegister",
		trace.WithAttributes(attribute.Int("commercial_rev_share", int(req.CommercialRevShare))))
	defer span.End()

	if req.CommercialRevShare > 100 {
		return nil, fmt.Errorf("commercial revenue share must be between 0 and 100, got %d", req.CommercialRevShare)
	}
	if req.SPGNFTContract == "" {
		req.SPGNFTContract = u.defaultSPG
	}
	if req.Recipient != "" {
		recipient, err := u.resolver.Resolve(ctx, req.Recipient)
		if err != nil {
			return nil, err
		}
		req.Recipient = recipient
	}

	result, err := u.chain.MintAndRegisterIPWithTerms(ctx, req)
	if err != nil {
		return nil, err
	}
	u.logger.Info("Registered IP asset.",
		slog.String("ip_id", result.IPID),
		slog.String("spg_nft_contract", req.SPGNFTContract),
		slog.String("tx_hash", result.TxHash))
	return result, nil
}

// CreateCollection deploys a new SPG NFT collection. The mint fee
// recipient and owner may be given as domain names.
func (u *IPAssetUseCase) CreateCollection(ctx context.Context, req domain.CreateCollectionRequest) (*domain.CreateCollectionResult, error) {
	ctx, span := tracer.Start(ctx, "IPAssetUseCase.CreateCollection",
		trace.WithAttributes(attribute.String("name", req.Name), attribute.String("symbol", req.Symbol)))
	defer span.End()

	if req.Name == "" || req.Symbol == "" {
		return nil, fmt.Errorf("collection name and symbol are required")
	}
	if req.MintFeeRecipient != "" {
		recipient, err := u.resolver.Resolve(ctx, req.MintFeeRecipient)
		if err != nil {
			return nil, err
		}
		req.MintFeeRecipient = recipient
	}
	if req.Owner != "" {
		owner, err := u.resolver.Resolve(ctx, req.Owner)
		if err != nil {
			return nil, err
		}
		req.Owner = owner
	}

	result, err := u.chain.CreateSPGCollection(ctx, req)
	if err != nil {
		return nil, err
	}
	u.logger.Info("Created SPG NFT collection.",
		slog.String("name", req.Name),
		slog.String("contract", result.SPGNFTContract),
		slog.String("tx_hash", result.TxHash))
	return result, nil
}
