package ensreg

import (
	"context"
	"errors"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type callFunc func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)

func (f callFunc) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return f(ctx, msg, blockNumber)
}

var (
	resolverAddr = common.HexToAddress("0x4976fb03C32e5B8cfe2b6cCB31c09Ba78EBaBa41")
	ownerAddr    = common.HexToAddress("0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359")
)

// fakeChain answers registry and resolver calls for a single name whose
// record points at ownerAddr, with a reverse record naming reverseName.
func fakeChain(t *testing.T, c *Client, node common.Hash, reverseName string) callFunc {
	t.Helper()
	return func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
		selector := common.Bytes2Hex(msg.Data[:4])
		switch {
		case *msg.To == c.registry:
			return c.registryABI.Methods["resolver"].Outputs.Pack(resolverAddr)
		case *msg.To == resolverAddr && selector == common.Bytes2Hex(c.resolverABI.Methods["addr"].ID):
			if common.BytesToHash(msg.Data[4:]) != node {
				return c.resolverABI.Methods["addr"].Outputs.Pack(common.Address{})
			}
			return c.resolverABI.Methods["addr"].Outputs.Pack(ownerAddr)
		case *msg.To == resolverAddr && selector == common.Bytes2Hex(c.resolverABI.Methods["name"].ID):
			return c.resolverABI.Methods["name"].Outputs.Pack(reverseName)
		}
		t.Fatalf("unexpected call to %s", msg.To.Hex())
		return nil, nil
	}
}

func TestForwardLookup(t *testing.T) {
	assert := assert.New(t)
	logger := slog.New(slog.DiscardHandler)

	c, err := New(nil, "", logger)
	require.NoError(t, err)
	c.caller = fakeChain(t, c, Namehash("alice.eth"), "")

	addr, err := c.ForwardLookup(context.Background(), "alice.eth")
	assert.NoError(err)
	assert.Equal(ownerAddr.Hex(), addr)

	// A name whose resolver answers with the zero address has no record.
	addr, err = c.ForwardLookup(context.Background(), "unset.eth")
	assert.NoError(err)
	assert.Empty(addr)
}

func TestForwardLookupNoResolver(t *testing.T) {
	assert := assert.New(t)
	logger := slog.New(slog.DiscardHandler)

	c, err := New(nil, "", logger)
	require.NoError(t, err)
	c.caller = callFunc(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
		return c.registryABI.Methods["resolver"].Outputs.Pack(common.Address{})
	})

	addr, err := c.ForwardLookup(context.Background(), "nobody.eth")
	assert.NoError(err)
	assert.Empty(addr)
}

func TestForwardLookupChainFault(t *testing.T) {
	assert := assert.New(t)
	logger := slog.New(slog.DiscardHandler)

	c, err := New(nil, "", logger)
	require.NoError(t, err)
	c.caller = callFunc(func(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
		return nil, errors.New("connection refused")
	})

	_, err = c.ForwardLookup(context.Background(), "alice.eth")
	assert.Error(err)
}

func TestReverseLookup(t *testing.T) {
	assert := assert.New(t)
	logger := slog.New(slog.DiscardHandler)

	c, err := New(nil, "", logger)
	require.NoError(t, err)
	c.caller = fakeChain(t, c, Namehash("alice.eth"), "alice.eth")

	name, err := c.ReverseLookup(context.Background(), ownerAddr.Hex())
	assert.NoError(err)
	assert.Equal("alice.eth", name)
}
