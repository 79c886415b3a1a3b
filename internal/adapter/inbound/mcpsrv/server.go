// Package mcpsrv exposes the Story Protocol use cases as MCP tools on a
// mark3labs/mcp-go server.
package mcpsrv

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"storymcp/internal/usecase"
)

// Server wires the use cases to MCP tool registrations.
type Server struct {
	resolver  *usecase.AddressResolver
	licensing *usecase.LicensingUseCase
	transfer  *usecase.TransferUseCase
	ipAssets  *usecase.IPAssetUseCase
	metadata  *usecase.MetadataUseCase
	explorer  *usecase.ExplorerUseCase
	logger    *slog.Logger
}

// New creates the MCP tool server over the given use cases.
func New(
	resolver *usecase.AddressResolver,
	licensing *usecase.LicensingUseCase,
	transfer *usecase.TransferUseCase,
	ipAssets *usecase.IPAssetUseCase,
	metadata *usecase.MetadataUseCase,
	explorer *usecase.ExplorerUseCase,
	logger *slog.Logger,
) *Server {
	return &Server{
		resolver:  resolver,
		licensing: licensing,
		transfer:  transfer,
		ipAssets:  ipAssets,
		metadata:  metadata,
		explorer:  explorer,
		logger:    logger.With("component", "mcpsrv"),
	}
}

// Install registers every tool on the MCP server. The IPFS tools are only
// registered when pinning is configured, so clients never see tools that
// can only fail.
func (s *Server) Install(mcpSrv *server.MCPServer) {
	type registration struct {
		tool    mcp.Tool
		handler server.ToolHandlerFunc
	}
	registrations := []registration{
		{resolveAddressTool(), s.handleResolveAddress},
		{getDomainForAddressTool(), s.handleGetDomainForAddress},
		{getLicenseTermsTool(), s.handleGetLicenseTerms},
		{mintLicenseTokensTool(), s.handleMintLicenseTokens},
		{sendIPTool(), s.handleSendIP},
		{mintAndRegisterTool(), s.handleMintAndRegister},
		{createCollectionTool(), s.handleCreateCollection},
		{checkBalanceTool(), s.handleCheckBalance},
		{getTransactionsTool(), s.handleGetTransactions},
		{getStatsTool(), s.handleGetStats},
		{getAddressOverviewTool(), s.handleGetAddressOverview},
		{getTokenHoldingsTool(), s.handleGetTokenHoldings},
		{getNFTHoldingsTool(), s.handleGetNFTHoldings},
		{interpretTransactionTool(), s.handleInterpretTransaction},
	}
	if s.metadata.Enabled() {
		registrations = append(registrations,
			registration{uploadImageTool(), s.handleUploadImage},
			registration{createIPMetadataTool(), s.handleCreateIPMetadata},
		)
	} else {
		s.logger.Info("IPFS tools not registered: no pinning credential configured.")
	}

	for _, r := range registrations {
		mcpSrv.AddTool(r.tool, r.handler)
	}
	s.logger.Info("MCP tools registered.", slog.Int("count", len(registrations)))
}
