package ledger

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"golang.org/x/crypto/blake2b"
)

const privateKeyLen = 32

// Credential holds the faucet's secp256k1 signing key. Its String and
// GoString methods never reveal the key, so it is safe to pass to loggers.
type Credential struct {
	key *btcec.PrivateKey
}

// ParseCredential decodes a hex-encoded 32-byte private key.
func ParseCredential(hexKey string) (*Credential, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, errors.New("private key is not valid hex")
	}
	if len(raw) != privateKeyLen {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", privateKeyLen, len(raw))
	}
	key, _ := btcec.PrivKeyFromBytes(raw)
	return &Credential{key: key}, nil
}

// PublicKey returns the 65-byte uncompressed public key.
func (c *Credential) PublicKey() []byte {
	return c.key.PubKey().SerializeUncompressed()
}

// PublicKeyHex returns the uncompressed public key in hex.
func (c *Credential) PublicKeyHex() string {
	return hex.EncodeToString(c.PublicKey())
}

// Sign returns the DER-encoded ECDSA signature over blake2b-256(payload) in hex.
func (c *Credential) Sign(payload []byte) string {
	digest := blake2b.Sum256(payload)
	return hex.EncodeToString(ecdsa.Sign(c.key, digest[:]).Serialize())
}

func (c *Credential) String() string {
	return "[redacted credential]"
}

// GoString keeps %#v from printing the key.
func (c *Credential) GoString() string {
	return c.String()
}
