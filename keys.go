package paseto

import (
	"crypto/subtle"
	"fmt"

	"github.com/vaultsandbox/paseto-go/internal/crypto"
)

// SymmetricKeyLength is the required size of a local-mode key in bytes.
const SymmetricKeyLength = crypto.KeySize

// SecretKeyLength is the size of a public-mode signing key in bytes.
const SecretKeyLength = crypto.SecretKeySize

// PublicKeyLength is the size of a public-mode verification key in bytes.
const PublicKeyLength = crypto.PublicKeySize

// SymmetricKey wraps the raw key material for local tokens. The wrapper
// guarantees the key passed validation, so the engines never operate on a
// key of the wrong size.
type SymmetricKey struct {
	material []byte
}

// NewSymmetricKey wraps 32 bytes of key material. Any other length fails
// with an [InvalidKeyLengthError] before cryptographic work begins.
func NewSymmetricKey(material []byte) (*SymmetricKey, error) {
	if len(material) != SymmetricKeyLength {
		return nil, &InvalidKeyLengthError{Expected: SymmetricKeyLength, Actual: len(material)}
	}
	key := make([]byte, SymmetricKeyLength)
	copy(key, material)
	return &SymmetricKey{material: key}, nil
}

// GenerateSymmetricKey creates a new random 32-byte local-mode key.
func GenerateSymmetricKey() (*SymmetricKey, error) {
	material, err := crypto.RandomBytes(SymmetricKeyLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return &SymmetricKey{material: material}, nil
}

// Bytes returns a copy of the raw key material.
func (k *SymmetricKey) Bytes() []byte {
	out := make([]byte, len(k.material))
	copy(out, k.material)
	return out
}

// Equal reports whether two keys hold the same material, in constant time.
func (k *SymmetricKey) Equal(other *SymmetricKey) bool {
	if other == nil {
		return false
	}
	return subtle.ConstantTimeCompare(k.material, other.material) == 1
}

// SecretKey wraps a 64-byte Ed25519 secret key for signing public tokens.
type SecretKey struct {
	material []byte
}

// NewSecretKey wraps a 64-byte Ed25519 secret key. Passing a seed-only
// 32-byte key or any other length is a caller error and is rejected.
func NewSecretKey(material []byte) (*SecretKey, error) {
	if len(material) != SecretKeyLength {
		return nil, &InvalidKeyLengthError{Expected: SecretKeyLength, Actual: len(material)}
	}
	key := make([]byte, SecretKeyLength)
	copy(key, material)
	return &SecretKey{material: key}, nil
}

// Bytes returns a copy of the raw key material.
func (k *SecretKey) Bytes() []byte {
	out := make([]byte, len(k.material))
	copy(out, k.material)
	return out
}

// Public extracts the verification key embedded in the trailing 32 bytes of
// the secret key.
func (k *SecretKey) Public() *PublicKey {
	// Length was validated at construction; extraction cannot fail.
	material, _ := crypto.PublicKeyFromSecret(k.material)
	return &PublicKey{material: material}
}

// PublicKey wraps a 32-byte Ed25519 public key for verifying public tokens.
type PublicKey struct {
	material []byte
}

// NewPublicKey wraps a 32-byte Ed25519 public key.
func NewPublicKey(material []byte) (*PublicKey, error) {
	if len(material) != PublicKeyLength {
		return nil, &InvalidKeyLengthError{Expected: PublicKeyLength, Actual: len(material)}
	}
	key := make([]byte, PublicKeyLength)
	copy(key, material)
	return &PublicKey{material: key}, nil
}

// Bytes returns a copy of the raw key material.
func (k *PublicKey) Bytes() []byte {
	out := make([]byte, len(k.material))
	copy(out, k.material)
	return out
}

// GenerateKeyPair creates a new Ed25519 keypair for public tokens.
func GenerateKeyPair() (*PublicKey, *SecretKey, error) {
	pub, secret, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	return &PublicKey{material: pub}, &SecretKey{material: secret}, nil
}
