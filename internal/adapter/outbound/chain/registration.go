package chain

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"storymcp/internal/domain"
)

// MintAndRegisterIPWithTerms mints an NFT from an SPG collection, registers
// it as an IP asset, and attaches PIL terms, all in one transaction.
func (c *Client) MintAndRegisterIPWithTerms(ctx context.Context, req domain.MintAndRegisterRequest) (*domain.MintAndRegisterResult, error) {
	if req.CommercialRevShare > 100 {
		return nil, fmt.Errorf("commercial revenue share must be between 0 and 100, got %d", req.CommercialRevShare)
	}

	recipient := c.signer
	if req.Recipient != "" {
		recipient = common.HexToAddress(req.Recipient)
	}

	terms := c.buildPILTerms(req.CommercialRevShare, req.DerivativesAllowed)
	termsData := []licenseTermsData{{
		Terms: terms,
		LicensingConfig: licensingConfig{
			IsSet:              true,
			MintingFee:         big.NewInt(0),
			HookData:           []byte{},
			CommercialRevShare: terms.CommercialRevShare,
		},
	}}

	var metadata ipMetadata
	if req.Metadata != nil {
		metadata = ipMetadata{
			IpMetadataURI:   req.Metadata.IPMetadataURI,
			IpMetadataHash:  common.HexToHash(req.Metadata.IPMetadataHash),
			NftMetadataURI:  req.Metadata.NFTMetadataURI,
			NftMetadataHash: common.HexToHash(req.Metadata.NFTMetadataHash),
		}
	}

	data, err := c.attachABI.Pack("mintAndRegisterIpAndAttachPILTerms",
		common.HexToAddress(req.SPGNFTContract),
		recipient,
		metadata,
		termsData,
		true,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack mintAndRegisterIpAndAttachPILTerms call: %w", err)
	}

	receipt, err := c.submit(ctx, common.HexToAddress(c.profile.Contracts.LicenseAttachmentWorkflows), big.NewInt(0), data)
	if err != nil {
		return nil, fmt.Errorf("mintAndRegisterIpAndAttachPILTerms failed: %w", err)
	}

	result := &domain.MintAndRegisterResult{TxHash: receipt.TxHash.Hex()}
	c.fillRegistration(receipt.Logs, result)
	if result.IPID == "" {
		c.logger.Warn("No IPRegistered event found in receipt.", "tx_hash", result.TxHash)
	}
	return result, nil
}

// CreateSPGCollection deploys a new SPG NFT collection.
func (c *Client) CreateSPGCollection(ctx context.Context, req domain.CreateCollectionRequest) (*domain.CreateCollectionResult, error) {
	params := spgNFTInitParams{
		Name:            req.Name,
		Symbol:          req.Symbol,
		BaseURI:         req.BaseURI,
		ContractURI:     req.ContractURI,
		MaxSupply:       math.MaxUint32,
		MintFee:         big.NewInt(0),
		Owner:           c.signer,
		MintOpen:        req.MintOpen,
		IsPublicMinting: req.IsPublicMinting,
	}
	if req.MaxSupply != nil {
		params.MaxSupply = uint32(req.MaxSupply.Uint64())
	}
	if req.MintFee != nil {
		params.MintFee = req.MintFee
	}
	if req.MintFeeToken != "" {
		params.MintFeeToken = common.HexToAddress(req.MintFeeToken)
	}
	if req.MintFeeRecipient != "" {
		params.MintFeeRecipient = common.HexToAddress(req.MintFeeRecipient)
	}
	if req.Owner != "" {
		params.Owner = common.HexToAddress(req.Owner)
	}

	data, err := c.workflowsABI.Pack("createCollection", params)
	if err != nil {
		return nil, fmt.Errorf("failed to pack createCollection call: %w", err)
	}

	receipt, err := c.submit(ctx, common.HexToAddress(c.profile.Contracts.RegistrationWorkflows), big.NewInt(0), data)
	if err != nil {
		return nil, fmt.Errorf("createCollection failed: %w", err)
	}

	result := &domain.CreateCollectionResult{TxHash: receipt.TxHash.Hex()}
	event := c.workflowsABI.Events["CollectionCreated"]
	for _, entry := range receipt.Logs {
		if len(entry.Topics) == 2 && entry.Topics[0] == event.ID {
			result.SPGNFTContract = common.BytesToAddress(entry.Topics[1].Bytes()).Hex()
			break
		}
	}
	if result.SPGNFTContract == "" {
		c.logger.Warn("No CollectionCreated event found in receipt.", "tx_hash", result.TxHash)
	}
	return result, nil
}

// buildPILTerms derives a full PIL terms record from the two knobs the
// registration tool exposes. A non-zero revenue share makes the license
// commercial; allowing derivatives also requires attribution and makes the
// terms reciprocal.
func (c *Client) buildPILTerms(commercialRevShare uint32, derivativesAllowed bool) pilTerms {
	return pilTerms{
		Transferable:              true,
		RoyaltyPolicy:             common.HexToAddress(c.profile.Contracts.RoyaltyPolicyLAP),
		DefaultMintingFee:         big.NewInt(0),
		Expiration:                big.NewInt(0),
		CommercialUse:             commercialRevShare > 0,
		CommercialAttribution:     false,
		CommercializerCheckerData: []byte{},
		CommercialRevShare:        commercialRevShare * revShareScale,
		CommercialRevCeiling:      big.NewInt(0),
		DerivativesAllowed:        derivativesAllowed,
		DerivativesAttribution:    derivativesAllowed,
		DerivativesApproval:       false,
		DerivativesReciprocal:     derivativesAllowed,
		DerivativeRevCeiling:      big.NewInt(0),
		Currency:                  common.HexToAddress(c.profile.Contracts.WIPToken),
	}
}

// fillRegistration extracts the IP ID, token ID, and attached license
// terms ID from the registration receipt logs.
func (c *Client) fillRegistration(logs []*types.Log, result *domain.MintAndRegisterResult) {
	registered := c.registryABI.Events["IPRegistered"]
	attached := c.licensingABI.Events["LicenseTermsAttached"]

	for _, entry := range logs {
		if len(entry.Topics) == 0 {
			continue
		}
		switch entry.Topics[0] {
		case registered.ID:
			fields, err := registered.Inputs.NonIndexed().Unpack(entry.Data)
			if err != nil {
				c.logger.Warn("Failed to decode IPRegistered event.", "error", err)
				continue
			}
			// Non-indexed fields: ipId, name, uri, registrationDate;
			// tokenId is the third indexed topic.
			result.IPID = fields[0].(common.Address).Hex()
			if len(entry.Topics) == 4 {
				result.TokenID = new(big.Int).SetBytes(entry.Topics[3].Bytes())
			}
		case attached.ID:
			fields, err := attached.Inputs.NonIndexed().Unpack(entry.Data)
			if err != nil {
				c.logger.Warn("Failed to decode LicenseTermsAttached event.", "error", err)
				continue
			}
			result.LicenseTermsID = fields[1].(*big.Int)
		}
	}
}
