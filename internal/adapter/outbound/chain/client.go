// Package chain executes Story Protocol transactions and queries against a
// JSON-RPC node, signing with a locally held wallet key.
package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"storymcp/configs"
	"storymcp/internal/domain"
)

// fallbackGasPrice is used when the node cannot suggest one: 50 gwei.
var fallbackGasPrice = new(big.Int).Mul(big.NewInt(50), big.NewInt(1e9))

// transferGasLimit is the fallback gas limit for a plain value transfer.
const transferGasLimit = 21000

// revShareScale converts a whole percentage into the contract encoding,
// where 100% is 100_000_000.
const revShareScale = 1_000_000

// Backend is the node surface the client needs; *ethclient.Client
// satisfies it.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
}

// Client signs and submits Story Protocol transactions. It carries the
// network profile matched against the node's chain ID at construction.
type Client struct {
	backend Backend
	key     *ecdsa.PrivateKey
	signer  common.Address
	chainID *big.Int
	profile configs.NetworkProfile
	network string

	pilABI       abi.ABI
	licensingABI abi.ABI
	attachABI    abi.ABI
	workflowsABI abi.ABI
	registryABI  abi.ABI

	logger *slog.Logger
}

// New dials the configured RPC node, verifies its chain ID against the
// known network profiles, and loads the wallet key.
func New(ctx context.Context, cfg *configs.Config, logger *slog.Logger) (*Client, error) {
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("RPC_PROVIDER_URL is not configured")
	}
	if cfg.PrivateKey == "" {
		return nil, fmt.Errorf("WALLET_PRIVATE_KEY is not configured")
	}

	backend, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC node: %w", err)
	}
	return newWithBackend(ctx, backend, cfg, logger)
}

func newWithBackend(ctx context.Context, backend Backend, cfg *configs.Config, logger *slog.Logger) (*Client, error) {
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query chain ID: %w", err)
	}

	var (
		profile configs.NetworkProfile
		network string
	)
	if cfg.Network != "" {
		profile, err = cfg.ProfileByName(cfg.Network)
		if err != nil {
			return nil, err
		}
		network = strings.ToLower(cfg.Network)
		if profile.ChainID != chainID.Int64() {
			return nil, fmt.Errorf("node chain ID %d does not match network %q (chain ID %d)", chainID.Int64(), network, profile.ChainID)
		}
	} else {
		profile, network, err = cfg.ProfileByChainID(chainID.Int64())
		if err != nil {
			return nil, err
		}
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse wallet private key: %w", err)
	}

	c := &Client{
		backend: backend,
		key:     key,
		signer:  crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
		profile: profile,
		network: network,
		logger:  logger.With("component", "chain_client"),
	}
	for _, def := range []struct {
		json string
		dst  *abi.ABI
	}{
		{pilTemplateABIJSON, &c.pilABI},
		{licensingModuleABIJSON, &c.licensingABI},
		{licenseAttachmentABIJSON, &c.attachABI},
		{registrationWorkflowsABIJSON, &c.workflowsABI},
		{ipAssetRegistryABIJSON, &c.registryABI},
	} {
		parsed, err := abi.JSON(strings.NewReader(def.json))
		if err != nil {
			return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
		}
		*def.dst = parsed
	}

	c.logger.Info("Connected to Story network.", "network", network, "chain_id", chainID.Int64(), "wallet", c.signer.Hex())
	return c, nil
}

// SignerAddress returns the canonical address of the configured wallet.
func (c *Client) SignerAddress() string {
	return c.signer.Hex()
}

// ChainID returns the connected network's chain ID.
func (c *Client) ChainID() int64 {
	return c.chainID.Int64()
}

// NetworkName returns the matched network profile name.
func (c *Client) NetworkName() string {
	return c.network
}

// Profile returns the matched network profile, used to wire the explorer
// and naming backends against the same network.
func (c *Client) Profile() configs.NetworkProfile {
	return c.profile
}

// Caller exposes the node connection for read-only contract calls, so
// other adapters can share it instead of dialing their own.
func (c *Client) Caller() Backend {
	return c.backend
}

// SendIP transfers native IP tokens to an already-resolved address.
func (c *Client) SendIP(ctx context.Context, to string, amount float64) (*domain.SendIPResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("transfer amount must be positive, got %g", amount)
	}
	receipt, err := c.submit(ctx, common.HexToAddress(to), ipToWei(amount), nil)
	if err != nil {
		return nil, err
	}
	return &domain.SendIPResult{TxHash: receipt.TxHash.Hex(), To: to}, nil
}

// submit estimates, signs, sends, and waits for a transaction, returning
// its receipt. A nil data slice means a plain value transfer.
func (c *Client) submit(ctx context.Context, to common.Address, value *big.Int, data []byte) (*types.Receipt, error) {
	nonce, err := c.backend.PendingNonceAt(ctx, c.signer)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nonce: %w", err)
	}

	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		c.logger.Warn("Gas price suggestion failed, using fallback.", "error", err, "fallback_wei", fallbackGasPrice)
		gasPrice = fallbackGasPrice
	}

	msg := ethereum.CallMsg{From: c.signer, To: &to, Value: value, Data: data}
	gasLimit, err := c.backend.EstimateGas(ctx, msg)
	if err != nil {
		if data != nil {
			return nil, fmt.Errorf("gas estimation failed: %w", err)
		}
		c.logger.Warn("Gas estimation failed for transfer, using fallback limit.", "error", err)
		gasLimit = transferGasLimit
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	if err := c.backend.SendTransaction(ctx, signedTx); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}
	c.logger.Info("Transaction submitted.", "tx_hash", signedTx.Hash().Hex(), "to", to.Hex())

	receipt, err := bind.WaitMined(ctx, c.backend, signedTx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for transaction %s: %w", signedTx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction %s reverted", signedTx.Hash().Hex())
	}
	return receipt, nil
}

// ipToWei converts a decimal IP amount to wei.
func ipToWei(amount float64) *big.Int {
	wei, _ := new(big.Float).Mul(big.NewFloat(amount), big.NewFloat(1e18)).Int(nil)
	return wei
}
