package ensreg

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// DefaultRegistryAddress is the canonical ENS registry deployment.
const DefaultRegistryAddress = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"

const registryABIJSON = `[
	{"inputs":[{"internalType":"bytes32","name":"node","type":"bytes32"}],"name":"resolver","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`

const resolverABIJSON = `[
	{"inputs":[{"internalType":"bytes32","name":"node","type":"bytes32"}],"name":"addr","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"bytes32","name":"node","type":"bytes32"}],"name":"name","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"}
]`

// ContractCaller is the slice of the chain client the registry needs;
// *ethclient.Client satisfies it.
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Client resolves names through an ENS-style registry contract: the
// registry maps a node hash to a resolver contract, and the resolver
// answers forward (addr) and reverse (name) queries. It implements the
// resolver's NamingBackend capability; a zero resolver or zero address is
// reported as "no record".
type Client struct {
	caller      ContractCaller
	registry    common.Address
	registryABI abi.ABI
	resolverABI abi.ABI
	logger      *slog.Logger
}

// New creates a registry client against the given registry address.
func New(caller ContractCaller, registryAddress string, logger *slog.Logger) (*Client, error) {
	registryABI, err := abi.JSON(strings.NewReader(registryABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry ABI: %w", err)
	}
	resolverABI, err := abi.JSON(strings.NewReader(resolverABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse resolver ABI: %w", err)
	}
	if registryAddress == "" {
		registryAddress = DefaultRegistryAddress
	}
	return &Client{
		caller:      caller,
		registry:    common.HexToAddress(registryAddress),
		registryABI: registryABI,
		resolverABI: resolverABI,
		logger:      logger.With("component", "ens_registry"),
	}, nil
}

// ForwardLookup resolves a domain name to an address.
func (c *Client) ForwardLookup(ctx context.Context, name string) (string, error) {
	node := Namehash(name)
	resolver, err := c.resolverFor(ctx, node)
	if err != nil {
		return "", err
	}
	if resolver == (common.Address{}) {
		return "", nil
	}

	addr, err := c.callAddress(ctx, resolver, "addr", node)
	if err != nil {
		return "", fmt.Errorf("addr lookup for %q failed: %w", name, err)
	}
	if addr == (common.Address{}) {
		return "", nil
	}
	return addr.Hex(), nil
}

// ReverseLookup resolves an address to the name set in its reverse record.
// The caller is responsible for verifying the name forward-resolves back.
func (c *Client) ReverseLookup(ctx context.Context, address string) (string, error) {
	node := reverseNode(common.HexToAddress(address))
	resolver, err := c.resolverFor(ctx, node)
	if err != nil {
		return "", err
	}
	if resolver == (common.Address{}) {
		return "", nil
	}

	data, err := c.resolverABI.Pack("name", node)
	if err != nil {
		return "", fmt.Errorf("failed to pack name call: %w", err)
	}
	out, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &resolver, Data: data}, nil)
	if err != nil {
		return "", fmt.Errorf("name lookup for %s failed: %w", address, err)
	}
	if len(out) == 0 {
		return "", nil
	}
	results, err := c.resolverABI.Unpack("name", out)
	if err != nil {
		return "", fmt.Errorf("failed to unpack name result: %w", err)
	}
	name, ok := results[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected name result type %T", results[0])
	}
	return name, nil
}

// resolverFor returns the resolver contract registered for node, or the
// zero address when none is set.
func (c *Client) resolverFor(ctx context.Context, node common.Hash) (common.Address, error) {
	data, err := c.registryABI.Pack("resolver", node)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to pack resolver call: %w", err)
	}
	out, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &c.registry, Data: data}, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("resolver lookup failed: %w", err)
	}
	if len(out) == 0 {
		return common.Address{}, nil
	}
	results, err := c.registryABI.Unpack("resolver", out)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to unpack resolver result: %w", err)
	}
	addr, ok := results[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected resolver result type %T", results[0])
	}
	return addr, nil
}

// callAddress executes a resolver method returning a single address.
func (c *Client) callAddress(ctx context.Context, to common.Address, method string, node common.Hash) (common.Address, error) {
	data, err := c.resolverABI.Pack(method, node)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to pack %s call: %w", method, err)
	}
	out, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return common.Address{}, err
	}
	if len(out) == 0 {
		return common.Address{}, nil
	}
	results, err := c.resolverABI.Unpack(method, out)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	addr, ok := results[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected %s result type %T", method, results[0])
	}
	return addr, nil
}
