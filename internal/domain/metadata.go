package domain

// Attribute is a single ERC-721 metadata attribute.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// IPMetadataResult reports the pinned metadata documents for an IP asset
// about to be registered, including the envelope to pass to registration.
type IPMetadataResult struct {
	NFTMetadataURI string
	IPMetadataURI  string
	Registration   RegistrationMetadata
}
