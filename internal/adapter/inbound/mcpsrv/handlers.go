package mcpsrv

import (
	"context"
	"encoding/base64"
	"fmt"
	"math/big"
	"path"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"

	"storymcp/internal/domain"
)

// Argument helpers over the loosely-typed MCP argument map. JSON numbers
// arrive as float64.

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func numberArg(args map[string]any, key string) (float64, bool) {
	v, ok := args[key].(float64)
	return v, ok
}

func boolArg(args map[string]any, key string, fallback bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return fallback
}

func objectArg(args map[string]any, key string) map[string]any {
	v, _ := args[key].(map[string]any)
	return v
}

func bigIntArg(args map[string]any, key string) *big.Int {
	if v, ok := numberArg(args, key); ok {
		return big.NewInt(int64(v))
	}
	return nil
}

func (s *Server) handleResolveAddress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	identifier := stringArg(args, "identifier")
	if identifier == "" {
		return mcp.NewToolResultError("identifier is required"), nil
	}
	addr, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(addr), nil
}

func (s *Server) handleGetDomainForAddress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	address := stringArg(args, "address")
	if address == "" {
		return mcp.NewToolResultError("address is required"), nil
	}
	name, err := s.resolver.ReverseResolve(ctx, address)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if name == "" {
		return mcp.NewToolResultText(fmt.Sprintf("No domain name is registered for %s.", address)), nil
	}
	return mcp.NewToolResultText(name), nil
}

func (s *Server) handleGetLicenseTerms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := bigIntArg(args, "license_terms_id")
	if id == nil {
		return mcp.NewToolResultError("license_terms_id is required"), nil
	}
	terms, err := s.licensing.GetLicenseTerms(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatLicenseTerms(id, terms)), nil
}

func (s *Server) handleMintLicenseTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	mintReq := domain.MintLicenseTokensRequest{
		LicensorIPID:   stringArg(args, "licensor_ip_id"),
		LicenseTermsID: bigIntArg(args, "license_terms_id"),
		Receiver:       stringArg(args, "receiver"),
		Amount:         bigIntArg(args, "amount"),
		MaxMintingFee:  bigIntArg(args, "max_minting_fee"),
	}
	if mintReq.LicensorIPID == "" {
		return mcp.NewToolResultError("licensor_ip_id is required"), nil
	}
	if mintReq.LicenseTermsID == nil {
		return mcp.NewToolResultError("license_terms_id is required"), nil
	}
	if v, ok := numberArg(args, "max_revenue_share"); ok {
		if v < 0 || v > 100 {
			return mcp.NewToolResultError(fmt.Sprintf("max_revenue_share must be between 0 and 100, got %g", v)), nil
		}
		share := uint32(v)
		mintReq.MaxRevenueShare = &share
	}

	result, err := s.licensing.MintLicenseTokens(ctx, mintReq)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text := fmt.Sprintf("Successfully minted %d license token(s).\nTransaction hash: %s", len(result.LicenseTokenIDs), result.TxHash)
	if len(result.LicenseTokenIDs) > 0 {
		text += fmt.Sprintf("\nLicense token IDs: %s", formatBigInts(result.LicenseTokenIDs))
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleSendIP(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	to := stringArg(args, "to_address")
	if to == "" {
		return mcp.NewToolResultError("to_address is required"), nil
	}
	amount, ok := numberArg(args, "amount")
	if !ok {
		return mcp.NewToolResultError("amount is required"), nil
	}

	result, err := s.transfer.SendIP(ctx, to, amount)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully sent %g IP to %s.\nTransaction hash: %s", amount, result.To, result.TxHash)), nil
}

func (s *Server) handleMintAndRegister(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	revShare, ok := numberArg(args, "commercial_rev_share")
	if !ok {
		return mcp.NewToolResultError("commercial_rev_share is required"), nil
	}
	if revShare < 0 || revShare > 100 {
		return mcp.NewToolResultError(fmt.Sprintf("commercial_rev_share must be between 0 and 100, got %g", revShare)), nil
	}

	registerReq := domain.MintAndRegisterRequest{
		SPGNFTContract:     stringArg(args, "spg_nft_contract"),
		Recipient:          stringArg(args, "recipient"),
		CommercialRevShare: uint32(revShare),
		DerivativesAllowed: boolArg(args, "derivatives_allowed", true),
	}
	if metadata := objectArg(args, "registration_metadata"); metadata != nil {
		registerReq.Metadata = &domain.RegistrationMetadata{
			IPMetadataURI:   stringArg(metadata, "ip_metadata_uri"),
			IPMetadataHash:  stringArg(metadata, "ip_metadata_hash"),
			NFTMetadataURI:  stringArg(metadata, "nft_metadata_uri"),
			NFTMetadataHash: stringArg(metadata, "nft_metadata_hash"),
		}
	}

	result, err := s.ipAssets.MintAndRegister(ctx, registerReq)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text := fmt.Sprintf("Successfully registered IP asset.\nIP ID: %s\nTransaction hash: %s", result.IPID, result.TxHash)
	if result.TokenID != nil {
		text += fmt.Sprintf("\nToken ID: %s", result.TokenID)
	}
	if result.LicenseTermsID != nil {
		text += fmt.Sprintf("\nLicense terms ID: %s", result.LicenseTermsID)
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleCreateCollection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	createReq := domain.CreateCollectionRequest{
		Name:             stringArg(args, "name"),
		Symbol:           stringArg(args, "symbol"),
		IsPublicMinting:  boolArg(args, "is_public_minting", true),
		MintOpen:         boolArg(args, "mint_open", true),
		MintFeeRecipient: stringArg(args, "mint_fee_recipient"),
		ContractURI:      stringArg(args, "contract_uri"),
		BaseURI:          stringArg(args, "base_uri"),
		MaxSupply:        bigIntArg(args, "max_supply"),
		MintFee:          bigIntArg(args, "mint_fee"),
		MintFeeToken:     stringArg(args, "mint_fee_token"),
		Owner:            stringArg(args, "owner"),
	}
	if createReq.Name == "" || createReq.Symbol == "" {
		return mcp.NewToolResultError("name and symbol are required"), nil
	}

	result, err := s.ipAssets.CreateCollection(ctx, createReq)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Successfully created SPG NFT collection %q (%s).\nContract address: %s\nTransaction hash: %s",
		createReq.Name, createReq.Symbol, result.SPGNFTContract, result.TxHash)), nil
}

func (s *Server) handleUploadImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	imageURL := stringArg(args, "image_url")
	imageData := stringArg(args, "image_data")
	filename := stringArg(args, "filename")

	var (
		uri string
		err error
	)
	switch {
	case imageURL != "":
		if filename == "" {
			filename = path.Base(imageURL)
		}
		uri, err = s.metadata.UploadImageFromURL(ctx, imageURL, filename)
	case imageData != "":
		var decoded []byte
		decoded, err = base64.StdEncoding.DecodeString(imageData)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("image_data is not valid base64: %v", err)), nil
		}
		if filename == "" {
			filename = "image.png"
		}
		uri, err = s.metadata.UploadImage(ctx, decoded, filename)
	default:
		return mcp.NewToolResultError("either image_url or image_data is required"), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully uploaded image to IPFS: %s", uri)), nil
}

func (s *Server) handleCreateIPMetadata(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	imageURI := stringArg(args, "image_uri")
	name := stringArg(args, "name")
	description := stringArg(args, "description")
	if imageURI == "" || name == "" || description == "" {
		return mcp.NewToolResultError("image_uri, name, and description are required"), nil
	}

	result, err := s.metadata.CreateIPMetadata(ctx, imageURI, name, description, attributesArg(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Successfully created IP metadata.\nNFT metadata URI: %s\nIP metadata URI: %s\n\nRegistration metadata for mint_and_register_ip_with_terms:\n%s",
		result.NFTMetadataURI, result.IPMetadataURI, formatRegistrationMetadata(result.Registration))), nil
}

// attributesArg converts the attributes object into a deterministic,
// key-sorted attribute list.
func attributesArg(args map[string]any) []domain.Attribute {
	raw := objectArg(args, "attributes")
	if len(raw) == 0 {
		return nil
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attributes := make([]domain.Attribute, 0, len(keys))
	for _, k := range keys {
		attributes = append(attributes, domain.Attribute{TraitType: k, Value: fmt.Sprint(raw[k])})
	}
	return attributes
}

func (s *Server) handleCheckBalance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	balance, err := s.explorer.CheckBalance(ctx, stringArg(req.GetArguments(), "address"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Balance of %s: %s IP", balance.Address, weiToIP(balance.Balance))), nil
}

func (s *Server) handleGetTransactions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	limit := 0
	if v, ok := numberArg(args, "limit"); ok {
		limit = int(v)
	}
	transactions, err := s.explorer.GetTransactions(ctx, stringArg(args, "address"), limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatTransactions(transactions)), nil
}

func (s *Server) handleGetStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.explorer.GetStats(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatStats(stats)), nil
}

func (s *Server) handleGetAddressOverview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	overview, err := s.explorer.GetAddressOverview(ctx, stringArg(req.GetArguments(), "address"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatAddressOverview(overview)), nil
}

func (s *Server) handleGetTokenHoldings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	holdings, err := s.explorer.GetTokenHoldings(ctx, stringArg(req.GetArguments(), "address"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatTokenHoldings(holdings)), nil
}

func (s *Server) handleGetNFTHoldings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	holdings, err := s.explorer.GetNFTHoldings(ctx, stringArg(req.GetArguments(), "address"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatNFTHoldings(holdings)), nil
}

func (s *Server) handleInterpretTransaction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	txHash := stringArg(req.GetArguments(), "transaction_hash")
	if txHash == "" {
		return mcp.NewToolResultError("transaction_hash is required"), nil
	}
	interpretation, err := s.explorer.InterpretTransaction(ctx, txHash)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatInterpretation(txHash, interpretation)), nil
}
