package domain

import "encoding/json"

// Types mirroring the Blockscout v2 REST API responses served by the
// StoryScan explorer. JSON tags match the wire format so the explorer
// client can decode responses directly.

// AddressBalance is the reduced balance view of an address.
type AddressBalance struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

// AddressParty identifies a transaction counterparty.
type AddressParty struct {
	Hash string `json:"hash"`
	Name string `json:"name,omitempty"`
}

// TransactionFee is the fee entry attached to a transaction.
type TransactionFee struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Transaction is a single entry of an address's transaction history.
type Transaction struct {
	Hash        string         `json:"hash"`
	From        AddressParty   `json:"from"`
	To          AddressParty   `json:"to"`
	Value       string         `json:"value"`
	Timestamp   string         `json:"timestamp"`
	BlockNumber int64          `json:"block_number"`
	Fee         TransactionFee `json:"fee"`
	Status      string         `json:"status"`
}

// GasPrices is the explorer's current gas price tiers, in gwei.
type GasPrices struct {
	Average float64 `json:"average"`
	Fast    float64 `json:"fast"`
	Slow    float64 `json:"slow"`
}

// BlockchainStats is the network-wide statistics summary.
type BlockchainStats struct {
	TotalBlocks                  string    `json:"total_blocks"`
	TotalAddresses               string    `json:"total_addresses"`
	TotalTransactions            string    `json:"total_transactions"`
	AverageBlockTime             float64   `json:"average_block_time"`
	CoinPrice                    string    `json:"coin_price"`
	TransactionsToday            string    `json:"transactions_today"`
	MarketCap                    string    `json:"market_cap"`
	NetworkUtilizationPercentage float64   `json:"network_utilization_percentage"`
	GasPrices                    GasPrices `json:"gas_prices"`
	GasUsedToday                 string    `json:"gas_used_today"`
	TotalGasUsed                 string    `json:"total_gas_used"`
	GasPriceUpdatedAt            string    `json:"gas_price_updated_at"`
	GasPricesUpdateIn            int64     `json:"gas_prices_update_in"`
	StaticGasPrice               string    `json:"static_gas_price"`
}

// Tag is a public or private label attached to an address.
type Tag struct {
	AddressHash string `json:"address_hash"`
	DisplayName string `json:"display_name"`
	Label       string `json:"label"`
}

// WatchlistName is a watchlist entry label for an address.
type WatchlistName struct {
	DisplayName string `json:"display_name"`
	Label       string `json:"label"`
}

// TokenInfo describes a token contract.
type TokenInfo struct {
	CirculatingMarketCap string `json:"circulating_market_cap"`
	IconURL              string `json:"icon_url"`
	Name                 string `json:"name"`
	Decimals             string `json:"decimals"`
	Symbol               string `json:"symbol"`
	Address              string `json:"address"`
	Type                 string `json:"type"`
	Holders              string `json:"holders"`
	ExchangeRate         string `json:"exchange_rate"`
	TotalSupply          string `json:"total_supply"`
}

// AddressOverview is the comprehensive view of an address, including token
// info when the address is itself a token contract.
type AddressOverview struct {
	Hash                      string          `json:"hash"`
	CoinBalance               string          `json:"coin_balance"`
	IsContract                bool            `json:"is_contract"`
	Token                     *TokenInfo      `json:"token"`
	HasTokens                 bool            `json:"has_tokens"`
	HasTokenTransfers         bool            `json:"has_token_transfers"`
	HasBeaconChainWithdrawals bool            `json:"has_beacon_chain_withdrawals"`
	PrivateTags               []Tag           `json:"private_tags"`
	PublicTags                []Tag           `json:"public_tags"`
	WatchlistNames            []WatchlistName `json:"watchlist_names"`
	ExchangeRate              string          `json:"exchange_rate"`
}

// TokenHolding is one fungible token position of an address.
type TokenHolding struct {
	Token   TokenInfo `json:"token"`
	Value   string    `json:"value"`
	TokenID string    `json:"token_id,omitempty"`
}

// TokenHoldings is a page of token positions.
type TokenHoldings struct {
	Items []TokenHolding `json:"items"`
}

// TokenInstance is a single NFT within a collection.
type TokenInstance struct {
	IsUnique          bool            `json:"is_unique"`
	ID                string          `json:"id"`
	HolderAddressHash string          `json:"holder_address_hash"`
	ImageURL          string          `json:"image_url"`
	AnimationURL      string          `json:"animation_url"`
	ExternalAppURL    string          `json:"external_app_url"`
	Metadata          json.RawMessage `json:"metadata"`
	TokenType         string          `json:"token_type"`
	Value             string          `json:"value"`
}

// NFTCollection groups the NFTs an address holds within one contract.
type NFTCollection struct {
	Token          TokenInfo       `json:"token"`
	Amount         string          `json:"amount"`
	TokenInstances []TokenInstance `json:"token_instances"`
}

// NFTCollections is a page of NFT holdings.
type NFTCollections struct {
	Items []NFTCollection `json:"items"`
}

// TransactionSummary is one human-readable rendering of a transaction
// produced by the explorer's interpreter.
type TransactionSummary struct {
	SummaryTemplate          string          `json:"summary_template"`
	SummaryTemplateVariables json.RawMessage `json:"summary_template_variables"`
}

// TransactionInterpretation is the explorer's interpretation of a
// transaction. Data is kept raw; the tool layer renders it verbatim.
type TransactionInterpretation struct {
	Success   bool                 `json:"success"`
	Error     string               `json:"error,omitempty"`
	Summaries []TransactionSummary `json:"summaries,omitempty"`
	Data      json.RawMessage      `json:"data,omitempty"`
}
