package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// randReader is the random source used for nonce seeding and key generation.
// It defaults to crypto/rand but can be overridden for testing.
var randReader io.Reader = rand.Reader

// RandomBytes draws n bytes from the CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	if _, err := io.ReadFull(randReader, out); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return out, nil
}

// NonceSeed draws a fresh 24-byte BLAKE2b key from the CSPRNG.
func NonceSeed() ([]byte, error) {
	return RandomBytes(NonceSeedSize)
}

// DeriveNonce computes the 24-byte AEAD nonce as a keyed BLAKE2b hash of the
// message, keyed by seed. Keying with fresh random bytes keeps the nonce
// unpredictable; hashing the message binds it to the content, so even a weak
// randomness source cannot produce the same nonce for two different messages.
func DeriveNonce(message, seed []byte) ([]byte, error) {
	h, err := blake2b.New(NonceSize, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create hash: %w", err)
	}
	h.Write(message)
	return h.Sum(nil), nil
}
