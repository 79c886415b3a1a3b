package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"storymcp/internal/domain"
)

// GetLicenseTerms reads a PIL terms record from the license template
// contract.
func (c *Client) GetLicenseTerms(ctx context.Context, id *big.Int) (*domain.LicenseTerms, error) {
	data, err := c.pilABI.Pack("getLicenseTerms", id)
	if err != nil {
		return nil, fmt.Errorf("failed to pack getLicenseTerms call: %w", err)
	}
	template := common.HexToAddress(c.profile.Contracts.PILicenseTemplate)
	out, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &template, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("getLicenseTerms call failed: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("license terms %s not found", id)
	}

	results, err := c.pilABI.Unpack("getLicenseTerms", out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack license terms: %w", err)
	}
	terms := *abi.ConvertType(results[0], new(pilTerms)).(*pilTerms)

	return &domain.LicenseTerms{
		Transferable:              terms.Transferable,
		RoyaltyPolicy:             terms.RoyaltyPolicy.Hex(),
		DefaultMintingFee:         terms.DefaultMintingFee,
		Expiration:                terms.Expiration,
		CommercialUse:             terms.CommercialUse,
		CommercialAttribution:     terms.CommercialAttribution,
		CommercializerChecker:     terms.CommercializerChecker.Hex(),
		CommercializerCheckerData: hexutil.Encode(terms.CommercializerCheckerData),
		CommercialRevShare:        terms.CommercialRevShare,
		CommercialRevCeiling:      terms.CommercialRevCeiling,
		DerivativesAllowed:        terms.DerivativesAllowed,
		DerivativesAttribution:    terms.DerivativesAttribution,
		DerivativesApproval:       terms.DerivativesApproval,
		DerivativesReciprocal:     terms.DerivativesReciprocal,
		DerivativeRevCeiling:      terms.DerivativeRevCeiling,
		Currency:                  terms.Currency.Hex(),
		URI:                       terms.Uri,
	}, nil
}

// MintLicenseTokens mints license tokens for an IP asset through the
// licensing module. An empty receiver defaults to the signer.
func (c *Client) MintLicenseTokens(ctx context.Context, req domain.MintLicenseTokensRequest) (*domain.MintLicenseTokensResult, error) {
	receiver := c.signer
	if req.Receiver != "" {
		receiver = common.HexToAddress(req.Receiver)
	}
	amount := big.NewInt(1)
	if req.Amount != nil && req.Amount.Sign() > 0 {
		amount = req.Amount
	}
	maxMintingFee := big.NewInt(0)
	if req.MaxMintingFee != nil {
		maxMintingFee = req.MaxMintingFee
	}
	// The contract encodes revenue share percentages scaled by 10^6; no
	// cap means accepting the full 100%.
	maxRevenueShare := uint32(100 * revShareScale)
	if req.MaxRevenueShare != nil {
		maxRevenueShare = *req.MaxRevenueShare * revShareScale
	}

	data, err := c.licensingABI.Pack("mintLicenseTokens",
		common.HexToAddress(req.LicensorIPID),
		common.HexToAddress(c.profile.Contracts.PILicenseTemplate),
		req.LicenseTermsID,
		amount,
		receiver,
		[]byte{},
		maxMintingFee,
		maxRevenueShare,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack mintLicenseTokens call: %w", err)
	}

	receipt, err := c.submit(ctx, common.HexToAddress(c.profile.Contracts.LicensingModule), big.NewInt(0), data)
	if err != nil {
		return nil, fmt.Errorf("mintLicenseTokens failed: %w", err)
	}

	result := &domain.MintLicenseTokensResult{TxHash: receipt.TxHash.Hex()}
	result.LicenseTokenIDs = c.licenseTokenIDs(receipt.Logs)
	if len(result.LicenseTokenIDs) == 0 {
		c.logger.Warn("No LicenseTokensMinted event found in receipt.", "tx_hash", result.TxHash)
	}
	return result, nil
}

// licenseTokenIDs extracts the minted token ID range from the
// LicenseTokensMinted event.
func (c *Client) licenseTokenIDs(logs []*types.Log) []*big.Int {
	event := c.licensingABI.Events["LicenseTokensMinted"]
	for _, entry := range logs {
		if len(entry.Topics) == 0 || entry.Topics[0] != event.ID {
			continue
		}
		fields, err := event.Inputs.NonIndexed().Unpack(entry.Data)
		if err != nil {
			c.logger.Warn("Failed to decode LicenseTokensMinted event.", "error", err)
			continue
		}
		// Non-indexed fields: licenseTemplate, amount, receiver,
		// startLicenseTokenId.
		amount := fields[1].(*big.Int)
		start := fields[3].(*big.Int)

		ids := make([]*big.Int, 0, amount.Int64())
		for i := int64(0); i < amount.Int64(); i++ {
			ids = append(ids, new(big.Int).Add(start, big.NewInt(i)))
		}
		return ids
	}
	return nil
}
