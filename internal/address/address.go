package address

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

// Canonical asset and fiat symbols: CoinGecko-style ids, lowercase.
var symbolRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// bech32 payload charset, checked for segwit-style addresses.
var bech32Re = regexp.MustCompile(`^[a-z0-9]+1[02-9ac-hj-np-z]{6,}$`)

// ValidSymbol reports whether s is a well-formed canonical symbol.
func ValidSymbol(s string) bool {
	return symbolRe.MatchString(s)
}

// ValidateAddress checks address syntax for the given canonical asset
// before any network call. It is a syntax check only: base58 or bech32
// charset for bitcoin-family chains, hex shape for EVM chains. Whether the
// address actually exists is the providers' business.
func ValidateAddress(asset, addr string) error {
	if addr == "" {
		return fmt.Errorf("empty address")
	}
	if len(addr) > 128 {
		return fmt.Errorf("address too long")
	}

	switch asset {
	case "ethereum":
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("%q is not a hex address", addr)
		}
	case "bitcoin", "litecoin", "dogecoin", "dash":
		if bech32Re.MatchString(strings.ToLower(addr)) && addr == strings.ToLower(addr) {
			return nil
		}
		raw, err := base58.Decode(addr)
		if err != nil {
			return fmt.Errorf("%q is not a base58 or bech32 address", addr)
		}
		if len(addr) < 4 {
			return fmt.Errorf("address too short")
		}
		// Full-length legacy addresses carry a base58check checksum.
		if len(raw) == 25 && !checksumOK(raw) {
			return fmt.Errorf("%q has a bad base58check checksum", addr)
		}
	default:
		// Unknown chain: accept anything that looks like an address token.
		for _, r := range addr {
			if r <= ' ' || r > '~' {
				return fmt.Errorf("address contains invalid character %q", r)
			}
		}
	}
	return nil
}

// checksumOK verifies the trailing 4 bytes against a double SHA-256 of the
// payload.
func checksumOK(raw []byte) bool {
	payload, sum := raw[:len(raw)-4], raw[len(raw)-4:]
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return bytes.Equal(sum, second[:4])
}
