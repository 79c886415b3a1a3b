package mcpsrv

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions for the Story Protocol MCP surface. Descriptions are
// written for the LLM client picking the tool.

func resolveAddressTool() mcp.Tool {
	return mcp.NewTool("resolve_address",
		mcp.WithDescription("Resolve a wallet address or a domain name (.eth, .ip, etc.) to its canonical checksummed address."),
		mcp.WithString("identifier", mcp.Required(), mcp.Description("A hex address or a human-readable domain name.")),
	)
}

func getDomainForAddressTool() mcp.Tool {
	return mcp.NewTool("get_domain_for_address",
		mcp.WithDescription("Look up the primary domain name registered for a wallet address. Returns an empty result when no verified reverse record exists."),
		mcp.WithString("address", mcp.Required(), mcp.Description("The wallet address to reverse-resolve.")),
	)
}

func getLicenseTermsTool() mcp.Tool {
	return mcp.NewTool("get_license_terms",
		mcp.WithDescription("Fetch the PIL license terms registered under a license terms ID."),
		mcp.WithNumber("license_terms_id", mcp.Required(), mcp.Description("The license terms ID to look up.")),
	)
}

func mintLicenseTokensTool() mcp.Tool {
	return mcp.NewTool("mint_license_tokens",
		mcp.WithDescription("Mint license tokens for an IP asset under specific license terms."),
		mcp.WithString("licensor_ip_id", mcp.Required(), mcp.Description("The IP asset ID (address or domain name) to license from.")),
		mcp.WithNumber("license_terms_id", mcp.Required(), mcp.Description("The license terms ID to mint under.")),
		mcp.WithString("receiver", mcp.Description("Recipient of the license tokens; defaults to the server wallet.")),
		mcp.WithNumber("amount", mcp.Description("Number of tokens to mint; defaults to 1.")),
		mcp.WithNumber("max_minting_fee", mcp.Description("Maximum minting fee in wei to accept; defaults to 0.")),
		mcp.WithNumber("max_revenue_share", mcp.Description("Maximum revenue share percentage (0-100) to accept; defaults to 100.")),
	)
}

func sendIPTool() mcp.Tool {
	return mcp.NewTool("send_ip",
		mcp.WithDescription("Send native IP tokens from the server wallet to an address or domain name."),
		mcp.WithString("to_address", mcp.Required(), mcp.Description("Recipient address or domain name.")),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Amount of IP to send.")),
	)
}

func mintAndRegisterTool() mcp.Tool {
	return mcp.NewTool("mint_and_register_ip_with_terms",
		mcp.WithDescription("Mint an NFT, register it as an IP asset, and attach PIL license terms in one transaction."),
		mcp.WithNumber("commercial_rev_share", mcp.Required(), mcp.Description("Commercial revenue share percentage (0-100). Zero makes the license non-commercial.")),
		mcp.WithBoolean("derivatives_allowed", mcp.Required(), mcp.Description("Whether derivative works are allowed.")),
		mcp.WithObject("registration_metadata", mcp.Description("Metadata envelope from create_ip_metadata: ip_metadata_uri, ip_metadata_hash, nft_metadata_uri, nft_metadata_hash.")),
		mcp.WithString("recipient", mcp.Description("Recipient of the minted NFT; defaults to the server wallet.")),
		mcp.WithString("spg_nft_contract", mcp.Description("SPG NFT collection to mint from; defaults to the configured collection.")),
	)
}

func createCollectionTool() mcp.Tool {
	return mcp.NewTool("create_spg_nft_collection",
		mcp.WithDescription("Deploy a new SPG NFT collection for minting and registering IP assets."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Collection name.")),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Collection symbol.")),
		mcp.WithBoolean("is_public_minting", mcp.Description("Whether anyone may mint; defaults to true.")),
		mcp.WithBoolean("mint_open", mcp.Description("Whether minting starts open; defaults to true.")),
		mcp.WithString("mint_fee_recipient", mcp.Description("Address or domain name receiving mint fees.")),
		mcp.WithString("contract_uri", mcp.Description("Contract-level metadata URI.")),
		mcp.WithString("base_uri", mcp.Description("Base URI for token metadata.")),
		mcp.WithNumber("max_supply", mcp.Description("Maximum supply; defaults to unlimited.")),
		mcp.WithNumber("mint_fee", mcp.Description("Mint fee in wei; defaults to 0.")),
		mcp.WithString("mint_fee_token", mcp.Description("ERC-20 token the mint fee is paid in; defaults to the native token.")),
		mcp.WithString("owner", mcp.Description("Collection owner; defaults to the server wallet.")),
	)
}

func uploadImageTool() mcp.Tool {
	return mcp.NewTool("upload_image_to_ipfs",
		mcp.WithDescription("Upload an image to IPFS and return its ipfs:// URI. Provide either a source URL or base64-encoded data."),
		mcp.WithString("image_url", mcp.Description("HTTP(S) URL of the image to fetch and pin.")),
		mcp.WithString("image_data", mcp.Description("Base64-encoded image bytes to pin.")),
		mcp.WithString("filename", mcp.Description("Filename to pin under; defaults to image.png.")),
	)
}

func createIPMetadataTool() mcp.Tool {
	return mcp.NewTool("create_ip_metadata",
		mcp.WithDescription("Create and pin NFT and IP metadata documents for an image, returning the registration envelope for mint_and_register_ip_with_terms."),
		mcp.WithString("image_uri", mcp.Required(), mcp.Description("URI of the pinned image, typically from upload_image_to_ipfs.")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the IP asset.")),
		mcp.WithString("description", mcp.Required(), mcp.Description("Description of the IP asset.")),
		mcp.WithObject("attributes", mcp.Description("Optional ERC-721 attributes as a map of trait name to value.")),
	)
}

func checkBalanceTool() mcp.Tool {
	return mcp.NewTool("check_balance",
		mcp.WithDescription("Check the native IP balance of an address or domain name; defaults to the server wallet."),
		mcp.WithString("address", mcp.Description("Address or domain name to check.")),
	)
}

func getTransactionsTool() mcp.Tool {
	return mcp.NewTool("get_transactions",
		mcp.WithDescription("List recent transactions of an address or domain name."),
		mcp.WithString("address", mcp.Description("Address or domain name; defaults to the server wallet.")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of transactions to return; defaults to 10.")),
	)
}

func getStatsTool() mcp.Tool {
	return mcp.NewTool("get_stats",
		mcp.WithDescription("Get current Story network statistics: blocks, transactions, gas prices, and more."),
	)
}

func getAddressOverviewTool() mcp.Tool {
	return mcp.NewTool("get_address_overview",
		mcp.WithDescription("Get a comprehensive overview of an address: balance, contract status, and token info."),
		mcp.WithString("address", mcp.Description("Address or domain name; defaults to the server wallet.")),
	)
}

func getTokenHoldingsTool() mcp.Tool {
	return mcp.NewTool("get_token_holdings",
		mcp.WithDescription("List the ERC-20 token holdings of an address or domain name."),
		mcp.WithString("address", mcp.Description("Address or domain name; defaults to the server wallet.")),
	)
}

func getNFTHoldingsTool() mcp.Tool {
	return mcp.NewTool("get_nft_holdings",
		mcp.WithDescription("List the NFT holdings of an address or domain name, grouped by collection."),
		mcp.WithString("address", mcp.Description("Address or domain name; defaults to the server wallet.")),
	)
}

func interpretTransactionTool() mcp.Tool {
	return mcp.NewTool("interpret_transaction",
		mcp.WithDescription("Get a human-readable interpretation of a transaction."),
		mcp.WithString("transaction_hash", mcp.Required(), mcp.Description("The transaction hash to interpret.")),
	)
}
