package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ZeroAddress is the canonical all-zero account address, used as the
// default for optional address parameters (e.g. mint fee recipients).
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// IsLiteralAddress reports whether s directly names an account: a
// "0x"-prefixed, 40-hex-digit string whose EIP-55 checksum is valid.
// All-lowercase and all-uppercase hex carry no checksum information and are
// accepted as-is; mixed-case strings must match their checksummed form.
// A string with the right shape but a wrong checksum is NOT a literal
// address; callers are expected to fall through to domain resolution.
func IsLiteralAddress(s string) bool {
	if !strings.HasPrefix(s, "0x") || len(s) != 42 {
		return false
	}
	if !common.IsHexAddress(s) {
		return false
	}
	hex := s[2:]
	if hex == strings.ToLower(hex) || hex == strings.ToUpper(hex) {
		return true
	}
	return common.HexToAddress(s).Hex() == s
}

// CanonicalAddress returns the EIP-55 checksummed form of s, the
// representation used for equality comparison and display everywhere in
// this codebase. It fails if s is not a valid literal address.
func CanonicalAddress(s string) (string, error) {
	if !IsLiteralAddress(s) {
		return "", fmt.Errorf("invalid address: %q", s)
	}
	return common.HexToAddress(s).Hex(), nil
}
