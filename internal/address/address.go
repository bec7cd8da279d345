// Package address validates recipient addresses and deploy identifiers
// before they reach a ledger node.
package address

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

const (
	prefixLen   = 4
	hashLen     = 32
	checksumLen = 4
	decodedLen  = prefixLen + hashLen + checksumLen

	minDeployIDLen = 100
	maxDeployIDLen = 160
)

var (
	// ErrInvalidAddress marks a malformed recipient address.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidDeployID marks a malformed deploy identifier.
	ErrInvalidDeployID = errors.New("invalid deploy id")
)

// prefix is the coin id (3 bytes) followed by the address version (1 byte).
var prefix = []byte{0x00, 0x00, 0x00, 0x00}

// Validate checks that addr is a base58 ledger address with the expected
// prefix and a matching checksum.
func Validate(addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	raw := base58.Decode(addr)
	if len(raw) == 0 {
		return fmt.Errorf("%w: not base58", ErrInvalidAddress)
	}
	if len(raw) != decodedLen {
		return fmt.Errorf("%w: decoded length %d, want %d", ErrInvalidAddress, len(raw), decodedLen)
	}
	if !bytes.Equal(raw[:prefixLen], prefix) {
		return fmt.Errorf("%w: unknown prefix", ErrInvalidAddress)
	}
	body := raw[:prefixLen+hashLen]
	if !bytes.Equal(checksum(body), raw[prefixLen+hashLen:]) {
		return fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}
	return nil
}

// FromPublicKey derives the ledger address of an uncompressed secp256k1
// public key (65 bytes, leading 0x04).
func FromPublicKey(pub []byte) (string, error) {
	if len(pub) != 65 || pub[0] != 0x04 {
		return "", fmt.Errorf("%w: public key must be 65 uncompressed bytes", ErrInvalidAddress)
	}
	ethAddr := keccak256(pub[1:])[12:]
	body := make([]byte, 0, decodedLen)
	body = append(body, prefix...)
	body = append(body, keccak256(ethAddr)...)
	body = append(body, checksum(body)...)
	return base58.Encode(body), nil
}

// ValidateDeployID checks that id is 100 to 160 ASCII alphanumerics.
func ValidateDeployID(id string) error {
	if len(id) < minDeployIDLen || len(id) > maxDeployIDLen {
		return fmt.Errorf("%w: length %d outside [%d, %d]", ErrInvalidDeployID, len(id), minDeployIDLen, maxDeployIDLen)
	}
	for i := 0; i < len(id); i++ {
		if !isAlnum(id[i]) {
			return fmt.Errorf("%w: non-alphanumeric character at %d", ErrInvalidDeployID, i)
		}
	}
	return nil
}

func checksum(body []byte) []byte {
	sum := blake2b.Sum256(body)
	return sum[:checksumLen]
}

func keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
