package mcpsrv

import (
	"fmt"
	"math/big"
	"strings"

	"storymcp/internal/domain"
)

// weiToIP renders a wei-denominated decimal string as a human-readable IP
// amount. Unparseable inputs pass through unchanged.
func weiToIP(wei string) string {
	value, ok := new(big.Int).SetString(wei, 10)
	if !ok {
		return wei
	}
	ip := new(big.Float).Quo(new(big.Float).SetInt(value), big.NewFloat(1e18))
	text := ip.Text('f', 6)
	text = strings.TrimRight(text, "0")
	return strings.TrimSuffix(text, ".")
}

func formatBigInts(values []*big.Int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatLicenseTerms(id *big.Int, terms *domain.LicenseTerms) string {
	var b strings.Builder
	fmt.Fprintf(&b, "License terms %s:\n", id)
	fmt.Fprintf(&b, "- Transferable: %s\n", yesNo(terms.Transferable))
	fmt.Fprintf(&b, "- Royalty policy: %s\n", terms.RoyaltyPolicy)
	fmt.Fprintf(&b, "- Default minting fee: %s wei\n", terms.DefaultMintingFee)
	fmt.Fprintf(&b, "- Expiration: %s\n", terms.Expiration)
	fmt.Fprintf(&b, "- Commercial use: %s\n", yesNo(terms.CommercialUse))
	fmt.Fprintf(&b, "- Commercial attribution: %s\n", yesNo(terms.CommercialAttribution))
	fmt.Fprintf(&b, "- Commercial revenue share: %g%%\n", float64(terms.CommercialRevShare)/1e6)
	fmt.Fprintf(&b, "- Derivatives allowed: %s\n", yesNo(terms.DerivativesAllowed))
	fmt.Fprintf(&b, "- Derivatives attribution: %s\n", yesNo(terms.DerivativesAttribution))
	fmt.Fprintf(&b, "- Derivatives approval: %s\n", yesNo(terms.DerivativesApproval))
	fmt.Fprintf(&b, "- Derivatives reciprocal: %s\n", yesNo(terms.DerivativesReciprocal))
	fmt.Fprintf(&b, "- Currency: %s\n", terms.Currency)
	if terms.URI != "" {
		fmt.Fprintf(&b, "- URI: %s\n", terms.URI)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTransactions(transactions []domain.Transaction) string {
	if len(transactions) == 0 {
		return "No transactions found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Latest %d transaction(s):\n", len(transactions))
	for i, tx := range transactions {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, tx.Hash)
		fmt.Fprintf(&b, "   From: %s\n", tx.From.Hash)
		fmt.Fprintf(&b, "   To: %s\n", tx.To.Hash)
		fmt.Fprintf(&b, "   Value: %s IP\n", weiToIP(tx.Value))
		if tx.Timestamp != "" {
			fmt.Fprintf(&b, "   Time: %s\n", tx.Timestamp)
		}
		fmt.Fprintf(&b, "   Status: %s (block %d)\n", tx.Status, tx.BlockNumber)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatStats(stats *domain.BlockchainStats) string {
	var b strings.Builder
	b.WriteString("Story network statistics:\n")
	fmt.Fprintf(&b, "- Total blocks: %s\n", stats.TotalBlocks)
	fmt.Fprintf(&b, "- Total transactions: %s\n", stats.TotalTransactions)
	fmt.Fprintf(&b, "- Transactions today: %s\n", stats.TransactionsToday)
	fmt.Fprintf(&b, "- Total addresses: %s\n", stats.TotalAddresses)
	fmt.Fprintf(&b, "- Average block time: %.1f ms\n", stats.AverageBlockTime)
	fmt.Fprintf(&b, "- Network utilization: %.2f%%\n", stats.NetworkUtilizationPercentage)
	fmt.Fprintf(&b, "- Gas prices (gwei): slow %.2f, average %.2f, fast %.2f\n",
		stats.GasPrices.Slow, stats.GasPrices.Average, stats.GasPrices.Fast)
	if stats.CoinPrice != "" {
		fmt.Fprintf(&b, "- IP price: $%s\n", stats.CoinPrice)
	}
	if stats.MarketCap != "" {
		fmt.Fprintf(&b, "- Market cap: $%s\n", stats.MarketCap)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatAddressOverview(overview *domain.AddressOverview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Overview of %s:\n", overview.Hash)
	fmt.Fprintf(&b, "- Balance: %s IP\n", weiToIP(overview.CoinBalance))
	fmt.Fprintf(&b, "- Is contract: %s\n", yesNo(overview.IsContract))
	fmt.Fprintf(&b, "- Has tokens: %s\n", yesNo(overview.HasTokens))
	fmt.Fprintf(&b, "- Has token transfers: %s\n", yesNo(overview.HasTokenTransfers))
	if overview.Token != nil {
		fmt.Fprintf(&b, "- Token contract: %s (%s), type %s\n", overview.Token.Name, overview.Token.Symbol, overview.Token.Type)
		if overview.Token.Holders != "" {
			fmt.Fprintf(&b, "- Token holders: %s\n", overview.Token.Holders)
		}
	}
	for _, tag := range overview.PublicTags {
		fmt.Fprintf(&b, "- Public tag: %s\n", tag.DisplayName)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTokenHoldings(holdings *domain.TokenHoldings) string {
	if len(holdings.Items) == 0 {
		return "No token holdings found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d token holding(s):\n", len(holdings.Items))
	for _, item := range holdings.Items {
		fmt.Fprintf(&b, "- %s (%s): %s\n", item.Token.Name, item.Token.Symbol, formatTokenAmount(item.Value, item.Token.Decimals))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatTokenAmount renders a raw token amount using the token's decimals,
// falling back to the raw value when decimals are missing or malformed.
func formatTokenAmount(raw, decimals string) string {
	value, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return raw
	}
	var exp int
	if _, err := fmt.Sscanf(decimals, "%d", &exp); err != nil || exp < 0 || exp > 80 {
		return raw
	}
	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
	amount := new(big.Float).Quo(new(big.Float).SetInt(value), scale)
	text := strings.TrimRight(amount.Text('f', 6), "0")
	return strings.TrimSuffix(text, ".")
}

func formatNFTHoldings(holdings *domain.NFTCollections) string {
	if len(holdings.Items) == 0 {
		return "No NFT holdings found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d NFT collection(s):\n", len(holdings.Items))
	for _, collection := range holdings.Items {
		fmt.Fprintf(&b, "- %s (%s), %s item(s)", collection.Token.Name, collection.Token.Symbol, collection.Amount)
		if len(collection.TokenInstances) > 0 {
			ids := make([]string, 0, len(collection.TokenInstances))
			for _, instance := range collection.TokenInstances {
				ids = append(ids, "#"+instance.ID)
			}
			fmt.Fprintf(&b, ": %s", strings.Join(ids, ", "))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatInterpretation(txHash string, interpretation *domain.TransactionInterpretation) string {
	if !interpretation.Success && interpretation.Error != "" {
		return fmt.Sprintf("Could not interpret transaction %s: %s", txHash, interpretation.Error)
	}
	if len(interpretation.Summaries) == 0 {
		return fmt.Sprintf("No interpretation available for transaction %s.", txHash)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Interpretation of %s:\n", txHash)
	for _, summary := range interpretation.Summaries {
		fmt.Fprintf(&b, "- %s\n", summary.SummaryTemplate)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatRegistrationMetadata(metadata domain.RegistrationMetadata) string {
	return fmt.Sprintf("ip_metadata_uri: %s\nip_metadata_hash: %s\nnft_metadata_uri: %s\nnft_metadata_hash: %s",
		metadata.IPMetadataURI, metadata.IPMetadataHash, metadata.NFTMetadataURI, metadata.NFTMetadataHash)
}
