package domain

import "math/big"

// RegistrationMetadata is the IPFS metadata envelope attached at IP
// registration time: URIs of the pinned NFT and IP metadata documents and
// the keccak256 hashes of their canonical JSON encodings.
type RegistrationMetadata struct {
	IPMetadataURI   string `json:"ip_metadata_uri"`
	IPMetadataHash  string `json:"ip_metadata_hash"`
	NFTMetadataURI  string `json:"nft_metadata_uri"`
	NFTMetadataHash string `json:"nft_metadata_hash"`
}

// MintAndRegisterRequest carries the parameters for minting an NFT,
// registering it as an IP asset, and attaching PIL terms in one
// transaction. CommercialRevShare is a whole percentage in [0, 100].
type MintAndRegisterRequest struct {
	SPGNFTContract     string
	Recipient          string // empty means the signer's own address
	CommercialRevShare uint32
	DerivativesAllowed bool
	Metadata           *RegistrationMetadata // optional
}

// MintAndRegisterResult reports the registered IP asset.
type MintAndRegisterResult struct {
	TxHash         string
	IPID           string
	TokenID        *big.Int
	LicenseTermsID *big.Int
}

// CreateCollectionRequest carries the parameters for deploying a new SPG
// NFT collection used for minting and registering IP assets.
type CreateCollectionRequest struct {
	Name             string
	Symbol           string
	IsPublicMinting  bool
	MintOpen         bool
	MintFeeRecipient string // empty defaults to the zero address
	ContractURI      string
	BaseURI          string
	MaxSupply        *big.Int // nil means unlimited
	MintFee          *big.Int // nil means 0
	MintFeeToken     string   // empty means the native token
	Owner            string   // empty means the signer's own address
}

// CreateCollectionResult reports the deployed collection.
type CreateCollectionResult struct {
	TxHash         string
	SPGNFTContract string
}

// SendIPResult reports a native IP token transfer.
type SendIPResult struct {
	TxHash string
	To     string
}
