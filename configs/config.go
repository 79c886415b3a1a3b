package configs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Story Protocol chain IDs.
const (
	ChainIDAeneid  = 1315
	ChainIDMainnet = 1514
)

// Contracts holds the deployed Story Protocol contract addresses for one
// network. The periphery contracts share deterministic addresses across
// Aeneid and mainnet.
type Contracts struct {
	PILicenseTemplate          string `yaml:"pil_license_template"`
	LicensingModule            string `yaml:"licensing_module"`
	RegistrationWorkflows      string `yaml:"registration_workflows"`
	LicenseAttachmentWorkflows string `yaml:"license_attachment_workflows"`
	RoyaltyPolicyLAP           string `yaml:"royalty_policy_lap"`
	WIPToken                   string `yaml:"wip_token"`
}

// NetworkProfile describes one supported network: its chain ID, contract
// addresses, explorer endpoint, and naming backend endpoints.
type NetworkProfile struct {
	ChainID        int64     `yaml:"chain_id"`
	ExplorerAPI    string    `yaml:"explorer_api"`
	ENSRegistry    string    `yaml:"ens_registry"`
	SpaceIDAPI     string    `yaml:"spaceid_api"`
	SpaceIDChainID int64     `yaml:"spaceid_chain_id"`
	Contracts      Contracts `yaml:"contracts"`
}

// FileConfig defines the structure loaded from the optional YAML
// configuration file. Anything present overrides the built-in profiles.
type FileConfig struct {
	Networks map[string]NetworkProfile `yaml:"networks"`
}

// Config holds the final application configuration, merged from built-in
// defaults, the YAML file, and environment variables with the prefix
// "STORYMCP_".
type Config struct {
	ConfigFilePath string `envconfig:"CONFIG_FILE" default:"configs/storymcp.yaml"`

	// Chain access. RPCURL and PrivateKey are required to start.
	RPCURL     string `envconfig:"RPC_PROVIDER_URL"`
	PrivateKey string `envconfig:"WALLET_PRIVATE_KEY"`
	// Network forces a profile ("aeneid" or "mainnet"); empty means
	// auto-detect from the node's chain ID.
	Network string `envconfig:"NETWORK"`

	// Optional integrations.
	PinataJWT      string `envconfig:"PINATA_JWT"`
	SPGNFTContract string `envconfig:"SPG_NFT_CONTRACT" default:"0x58E2c909D557Cd23EF90D14f8fd21667A5Ae7a93"`
	// ExplorerAPI overrides the profile's explorer endpoint when set.
	ExplorerAPI string `envconfig:"STORYSCAN_API_ENDPOINT"`

	// Server settings.
	ListenAddr        string        `envconfig:"LISTEN_ADDR" default:":8080"`
	AdminListenAddr   string        `envconfig:"ADMIN_LISTEN_ADDR" default:":8081"`
	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	// Observability.
	OtelExporterOtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	LogLevel                 string `envconfig:"LOG_LEVEL" default:"info"`

	// Networks is the merged profile table, keyed by network name.
	Networks map[string]NetworkProfile
}

// defaultNetworks mirrors the published Story Protocol deployment table.
func defaultNetworks() map[string]NetworkProfile {
	contracts := Contracts{
		PILicenseTemplate:          "0x2E896b0b2Fdb7457499B56AAaA4AE55BCB4Cd316",
		LicensingModule:            "0x04fbd8a2e56dd85CFD5500A4A4DfA955B9f1dE6f",
		RegistrationWorkflows:      "0xbe39E1C756e921BD25DF86e7AAa31106d1eb0424",
		LicenseAttachmentWorkflows: "0xcC2E862bCee5B6036Db0de6E06Ae87e524a79fd8",
		RoyaltyPolicyLAP:           "0xBe54FB168b3c982b7AaE60dB6CF75Bd8447b390E",
		WIPToken:                   "0x1514000000000000000000000000000000000000",
	}
	return map[string]NetworkProfile{
		"aeneid": {
			ChainID:        ChainIDAeneid,
			ExplorerAPI:    "https://aeneid.storyscan.io/api",
			ENSRegistry:    "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e",
			SpaceIDAPI:     "https://nameapi.space.id",
			SpaceIDChainID: ChainIDMainnet,
			Contracts:      contracts,
		},
		"mainnet": {
			ChainID:        ChainIDMainnet,
			ExplorerAPI:    "https://www.storyscan.io/api",
			ENSRegistry:    "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e",
			SpaceIDAPI:     "https://nameapi.space.id",
			SpaceIDChainID: ChainIDMainnet,
			Contracts:      contracts,
		},
	}
}

// ParsedLogLevel returns the slog.Level based on the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// ProfileByName returns the profile for a network name ("aeneid" or
// "mainnet").
func (c *Config) ProfileByName(name string) (NetworkProfile, error) {
	p, ok := c.Networks[strings.ToLower(name)]
	if !ok {
		return NetworkProfile{}, fmt.Errorf("unsupported network: %s (must be one of %s)", name, strings.Join(c.networkNames(), ", "))
	}
	return p, nil
}

// ProfileByChainID returns the profile whose chain ID matches the one
// reported by the node, along with its network name.
func (c *Config) ProfileByChainID(chainID int64) (NetworkProfile, string, error) {
	for name, p := range c.Networks {
		if p.ChainID == chainID {
			return p, name, nil
		}
	}
	return NetworkProfile{}, "", fmt.Errorf("unsupported chain ID: %d (known networks: %s)", chainID, strings.Join(c.networkNames(), ", "))
}

func (c *Config) networkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	return names
}

// Load loads configuration first from environment variables (to get the
// file path), then merges the optional YAML file over the built-in network
// profiles, and finally lets environment variables override everything.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("storymcp", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	cfg.Networks = defaultNetworks()

	if cfg.ConfigFilePath != "" {
		yamlFile, err := os.ReadFile(cfg.ConfigFilePath)
		switch {
		case os.IsNotExist(err):
			// The file is optional; built-in profiles apply.
			slog.Debug("No config file found, using built-in network profiles.", "path", cfg.ConfigFilePath)
		case err != nil:
			return nil, fmt.Errorf("failed to read config file '%s': %w", cfg.ConfigFilePath, err)
		default:
			var fileCfg FileConfig
			if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", cfg.ConfigFilePath, err)
			}
			for name, profile := range fileCfg.Networks {
				cfg.Networks[strings.ToLower(name)] = profile
			}
			slog.Info("Loaded network profiles from file.", "path", cfg.ConfigFilePath, "networks", len(fileCfg.Networks))
		}
	}

	// Environment overrides win over file settings.
	if err := envconfig.Process("storymcp", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process overriding environment variables: %w", err)
	}

	return &cfg, nil
}
