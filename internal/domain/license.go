package domain

import "math/big"

// LicenseTerms is the decoded form of a PIL (Programmable IP License)
// terms record as stored on the PILicenseTemplate contract.
type LicenseTerms struct {
	Transferable              bool
	RoyaltyPolicy             string
	DefaultMintingFee         *big.Int
	Expiration                *big.Int
	CommercialUse             bool
	CommercialAttribution     bool
	CommercializerChecker     string
	CommercializerCheckerData string
	CommercialRevShare        uint32
	CommercialRevCeiling      *big.Int
	DerivativesAllowed        bool
	DerivativesAttribution    bool
	DerivativesApproval       bool
	DerivativesReciprocal     bool
	DerivativeRevCeiling      *big.Int
	Currency                  string
	URI                       string
}

// MintLicenseTokensRequest carries the parameters for minting license
// tokens against an IP asset. Receiver may be empty, in which case the
// signer's own address is used.
type MintLicenseTokensRequest struct {
	LicensorIPID    string
	LicenseTermsID  *big.Int
	Receiver        string
	Amount          *big.Int
	MaxMintingFee   *big.Int // nil means no cap
	MaxRevenueShare *uint32  // nil means no cap
}

// MintLicenseTokensResult reports the outcome of a license token mint.
type MintLicenseTokensResult struct {
	TxHash          string
	LicenseTokenIDs []*big.Int
}
