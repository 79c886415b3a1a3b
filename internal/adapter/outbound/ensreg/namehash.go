package ensreg

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// Namehash computes the EIP-137 node hash for a domain name. Labels are
// lowercased before hashing, which covers the ASCII names this server
// deals with without pulling in full UTS-46 normalization.
func Namehash(name string) common.Hash {
	node := make([]byte, common.HashLength)
	if name == "" {
		return common.BytesToHash(node)
	}
	labels := strings.Split(strings.ToLower(name), ".")
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := keccak256([]byte(labels[i]))
		node = keccak256(append(node, labelHash...))
	}
	return common.BytesToHash(node)
}

// reverseNode returns the node of the reverse record for an address:
// "<hex-address>.addr.reverse".
func reverseNode(address common.Address) common.Hash {
	return Namehash(strings.ToLower(strings.TrimPrefix(address.Hex(), "0x")) + ".addr.reverse")
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}
