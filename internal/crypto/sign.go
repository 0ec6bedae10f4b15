package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/sign/ed25519"
)

// GenerateKeyPair creates a new Ed25519 keypair. The secret key embeds the
// public key in its trailing 32 bytes.
func GenerateKeyPair() (publicKey, secretKey []byte, err error) {
	pub, priv, err := ed25519.GenerateKey(randReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate keypair: %w", err)
	}
	return pub, priv, nil
}

// PublicKeyFromSecret extracts the public key embedded in an Ed25519 secret key.
func PublicKeyFromSecret(secretKey []byte) ([]byte, error) {
	if len(secretKey) != SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), SecretKeySize)
	}

	publicKey := make([]byte, PublicKeySize)
	copy(publicKey, secretKey[PublicKeyOffset:])
	return publicKey, nil
}

// Sign produces a 64-byte detached Ed25519 signature over message.
func Sign(secretKey, message []byte) ([]byte, error) {
	if len(secretKey) != SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), SecretKeySize)
	}

	return ed25519.Sign(ed25519.PrivateKey(secretKey), message), nil
}

// Verify checks a detached Ed25519 signature over message. Verification is
// constant time; failures carry no detail about which bytes mismatched.
func Verify(publicKey, message, signature []byte) error {
	if len(publicKey) != PublicKeySize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(publicKey), PublicKeySize)
	}

	if len(signature) != SignatureSize {
		return ErrSignatureVerificationFailed
	}

	if !ed25519.Verify(ed25519.PublicKey(publicKey), message, signature) {
		return ErrSignatureVerificationFailed
	}

	return nil
}
