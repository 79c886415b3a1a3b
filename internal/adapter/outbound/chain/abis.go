package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Hand-trimmed ABIs for the Story Protocol contracts this client calls,
// reduced to the functions and events it actually uses.

const pilTemplateABIJSON = `[
	{"inputs":[{"internalType":"uint256","name":"selectedLicenseTermsId","type":"uint256"}],"name":"getLicenseTerms","outputs":[{"components":[
		{"internalType":"bool","name":"transferable","type":"bool"},
		{"internalType":"address","name":"royaltyPolicy","type":"address"},
		{"internalType":"uint256","name":"defaultMintingFee","type":"uint256"},
		{"internalType":"uint256","name":"expiration","type":"uint256"},
		{"internalType":"bool","name":"commercialUse","type":"bool"},
		{"internalType":"bool","name":"commercialAttribution","type":"bool"},
		{"internalType":"address","name":"commercializerChecker","type":"address"},
		{"internalType":"bytes","name":"commercializerCheckerData","type":"bytes"},
		{"internalType":"uint32","name":"commercialRevShare","type":"uint32"},
		{"internalType":"uint256","name":"commercialRevCeiling","type":"uint256"},
		{"internalType":"bool","name":"derivativesAllowed","type":"bool"},
		{"internalType":"bool","name":"derivativesAttribution","type":"bool"},
		{"internalType":"bool","name":"derivativesApproval","type":"bool"},
		{"internalType":"bool","name":"derivativesReciprocal","type":"bool"},
		{"internalType":"uint256","name":"derivativeRevCeiling","type":"uint256"},
		{"internalType":"address","name":"currency","type":"address"},
		{"internalType":"string","name":"uri","type":"string"}
	],"internalType":"struct PILTerms","name":"terms","type":"tuple"}],"stateMutability":"view","type":"function"}
]`

const licensingModuleABIJSON = `[
	{"inputs":[
		{"internalType":"address","name":"licensorIpId","type":"address"},
		{"internalType":"address","name":"licenseTemplate","type":"address"},
		{"internalType":"uint256","name":"licenseTermsId","type":"uint256"},
		{"internalType":"uint256","name":"amount","type":"uint256"},
		{"internalType":"address","name":"receiver","type":"address"},
		{"internalType":"bytes","name":"royaltyContext","type":"bytes"},
		{"internalType":"uint256","name":"maxMintingFee","type":"uint256"},
		{"internalType":"uint32","name":"maxRevenueShare","type":"uint32"}
	],"name":"mintLicenseTokens","outputs":[{"internalType":"uint256","name":"startLicenseTokenId","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
	{"anonymous":false,"inputs":[
		{"indexed":true,"internalType":"address","name":"caller","type":"address"},
		{"indexed":true,"internalType":"address","name":"licensorIpId","type":"address"},
		{"indexed":false,"internalType":"address","name":"licenseTemplate","type":"address"},
		{"indexed":true,"internalType":"uint256","name":"licenseTermsId","type":"uint256"},
		{"indexed":false,"internalType":"uint256","name":"amount","type":"uint256"},
		{"indexed":false,"internalType":"address","name":"receiver","type":"address"},
		{"indexed":false,"internalType":"uint256","name":"startLicenseTokenId","type":"uint256"}
	],"name":"LicenseTokensMinted","type":"event"},
	{"anonymous":false,"inputs":[
		{"indexed":true,"internalType":"address","name":"caller","type":"address"},
		{"indexed":true,"internalType":"address","name":"ipId","type":"address"},
		{"indexed":false,"internalType":"address","name":"licenseTemplate","type":"address"},
		{"indexed":false,"internalType":"uint256","name":"licenseTermsId","type":"uint256"}
	],"name":"LicenseTermsAttached","type":"event"}
]`

const licenseAttachmentABIJSON = `[
	{"inputs":[
		{"internalType":"address","name":"spgNftContract","type":"address"},
		{"internalType":"address","name":"recipient","type":"address"},
		{"components":[
			{"internalType":"string","name":"ipMetadataURI","type":"string"},
			{"internalType":"bytes32","name":"ipMetadataHash","type":"bytes32"},
			{"internalType":"string","name":"nftMetadataURI","type":"string"},
			{"internalType":"bytes32","name":"nftMetadataHash","type":"bytes32"}
		],"internalType":"struct WorkflowStructs.IPMetadata","name":"ipMetadata","type":"tuple"},
		{"components":[
			{"components":[
				{"internalType":"bool","name":"transferable","type":"bool"},
				{"internalType":"address","name":"royaltyPolicy","type":"address"},
				{"internalType":"uint256","name":"defaultMintingFee","type":"uint256"},
				{"internalType":"uint256","name":"expiration","type":"uint256"},
				{"internalType":"bool","name":"commercialUse","type":"bool"},
				{"internalType":"bool","name":"commercialAttribution","type":"bool"},
				{"internalType":"address","name":"commercializerChecker","type":"address"},
				{"internalType":"bytes","name":"commercializerCheckerData","type":"bytes"},
				{"internalType":"uint32","name":"commercialRevShare","type":"uint32"},
				{"internalType":"uint256","name":"commercialRevCeiling","type":"uint256"},
				{"internalType":"bool","name":"derivativesAllowed","type":"bool"},
				{"internalType":"bool","name":"derivativesAttribution","type":"bool"},
				{"internalType":"bool","name":"derivativesApproval","type":"bool"},
				{"internalType":"bool","name":"derivativesReciprocal","type":"bool"},
				{"internalType":"uint256","name":"derivativeRevCeiling","type":"uint256"},
				{"internalType":"address","name":"currency","type":"address"},
				{"internalType":"string","name":"uri","type":"string"}
			],"internalType":"struct PILTerms","name":"terms","type":"tuple"},
			{"components":[
				{"internalType":"bool","name":"isSet","type":"bool"},
				{"internalType":"uint256","name":"mintingFee","type":"uint256"},
				{"internalType":"address","name":"licensingHook","type":"address"},
				{"internalType":"bytes","name":"hookData","type":"bytes"},
				{"internalType":"uint32","name":"commercialRevShare","type":"uint32"},
				{"internalType":"bool","name":"disabled","type":"bool"},
				{"internalType":"uint32","name":"expectMinimumGroupRewardShare","type":"uint32"},
				{"internalType":"address","name":"expectGroupRewardPool","type":"address"}
			],"internalType":"struct Licensing.LicensingConfig","name":"licensingConfig","type":"tuple"}
		],"internalType":"struct WorkflowStructs.LicenseTermsData[]","name":"licenseTermsData","type":"tuple[]"},
		{"internalType":"bool","name":"allowDuplicates","type":"bool"}
	],"name":"mintAndRegisterIpAndAttachPILTerms","outputs":[
		{"internalType":"address","name":"ipId","type":"address"},
		{"internalType":"uint256","name":"tokenId","type":"uint256"},
		{"internalType":"uint256[]","name":"licenseTermsIds","type":"uint256[]"}
	],"stateMutability":"nonpayable","type":"function"}
]`

const registrationWorkflowsABIJSON = `[
	{"inputs":[{"components":[
		{"internalType":"string","name":"name","type":"string"},
		{"internalType":"string","name":"symbol","type":"string"},
		{"internalType":"string","name":"baseURI","type":"string"},
		{"internalType":"string","name":"contractURI","type":"string"},
		{"internalType":"uint32","name":"maxSupply","type":"uint32"},
		{"internalType":"uint256","name":"mintFee","type":"uint256"},
		{"internalType":"address","name":"mintFeeToken","type":"address"},
		{"internalType":"address","name":"mintFeeRecipient","type":"address"},
		{"internalType":"address","name":"owner","type":"address"},
		{"internalType":"bool","name":"mintOpen","type":"bool"},
		{"internalType":"bool","name":"isPublicMinting","type":"bool"}
	],"internalType":"struct ISPGNFT.InitParams","name":"spgNftInitParams","type":"tuple"}],"name":"createCollection","outputs":[{"internalType":"address","name":"spgNftContract","type":"address"}],"stateMutability":"nonpayable","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"spgNftContract","type":"address"}],"name":"CollectionCreated","type":"event"}
]`

const ipAssetRegistryABIJSON = `[
	{"anonymous":false,"inputs":[
		{"indexed":false,"internalType":"address","name":"ipId","type":"address"},
		{"indexed":true,"internalType":"uint256","name":"chainId","type":"uint256"},
		{"indexed":true,"internalType":"address","name":"tokenContract","type":"address"},
		{"indexed":true,"internalType":"uint256","name":"tokenId","type":"uint256"},
		{"indexed":false,"internalType":"string","name":"name","type":"string"},
		{"indexed":false,"internalType":"string","name":"uri","type":"string"},
		{"indexed":false,"internalType":"uint256","name":"registrationDate","type":"uint256"}
	],"name":"IPRegistered","type":"event"}
]`

// Go mirrors of the ABI tuple types. Field names follow the capitalized
// component names so abi.ConvertType and Pack can map them.

type pilTerms struct {
	Transferable              bool
	RoyaltyPolicy             common.Address
	DefaultMintingFee         *big.Int
	Expiration                *big.Int
	CommercialUse             bool
	CommercialAttribution     bool
	CommercializerChecker     common.Address
	CommercializerCheckerData []byte
	CommercialRevShare        uint32
	CommercialRevCeiling      *big.Int
	DerivativesAllowed        bool
	DerivativesAttribution    bool
	DerivativesApproval       bool
	DerivativesReciprocal     bool
	DerivativeRevCeiling      *big.Int
	Currency                  common.Address
	Uri                       string
}

type licensingConfig struct {
	IsSet                         bool
	MintingFee                    *big.Int
	LicensingHook                 common.Address
	HookData                      []byte
	CommercialRevShare            uint32
	Disabled                      bool
	ExpectMinimumGroupRewardShare uint32
	ExpectGroupRewardPool         common.Address
}

type licenseTermsData struct {
	Terms           pilTerms
	LicensingConfig licensingConfig
}

type ipMetadata struct {
	IpMetadataURI   string
	IpMetadataHash  [32]byte
	NftMetadataURI  string
	NftMetadataHash [32]byte
}

type spgNFTInitParams struct {
	Name             string
	Symbol           string
	BaseURI          string
	ContractURI      string
	MaxSupply        uint32
	MintFee          *big.Int
	MintFeeToken     common.Address
	MintFeeRecipient common.Address
	Owner            common.Address
	MintOpen         bool
	IsPublicMinting  bool
}
