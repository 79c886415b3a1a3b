package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"storymcp/internal/domain"
)

// TransferUseCase sends native IP tokens from the signing wallet.
type TransferUseCase struct {
	chain    ChainClient
	resolver *AddressResolver
	logger   *slog.Logger
}

// NewTransferUseCase creates the transfer use case.
func NewTransferUseCase(chain ChainClient, resolver *AddressResolver, logger *slog.Logger) *TransferUseCase {
	return &TransferUseCase{
		chain:    chain,
		resolver: resolver,
		logger:   logger.With("usecase", "TransferUseCase"),
	}
}

// SendIP transfers amount IP to the given recipient, which may be a
// literal address or a domain name.
func (u *TransferUseCase) SendIP(ctx context.Context, to string, amount float64) (*domain.SendIPResult, error) {
	ctx, span := tracer.Start(ctx, "TransferUseCase.SendIP",
		trace.WithAttributes(attribute.String("to", to), attribute.Float64("amount", amount)))
	defer span.End()

	if amount <= 0 {
		return nil, fmt.Errorf("transfer amount must be positive, got %g", amount)
	}
	recipient, err := u.resolver.Resolve(ctx, to)
	if err != nil {
		return nil, err
	}

	result, err := u.chain.SendIP(ctx, recipient, amount)
	if err != nil {
		return nil, err
	}
	u.logger.Info("Sent IP.",
		slog.String("to", recipient),
		slog.Float64("amount", amount),
		slog.String("tx_hash", result.TxHash))
	return result, nil
}
