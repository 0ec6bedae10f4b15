package paseto

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKeyLength is returned when a symmetric key is not exactly
	// 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrDecryptionFailed is returned when local-token decryption fails:
	// authentication tag mismatch, truncated ciphertext, or a tampered
	// nonce/footer binding. The cause is deliberately not distinguished.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrSignatureVerificationFailed is returned when a public token's
	// signature does not match the message, footer, and public key.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrMalformedToken is returned when a token string does not parse:
	// wrong number of segments, invalid base64url, or an unexpected
	// version or purpose tag.
	ErrMalformedToken = errors.New("token is malformed")
)

// InvalidKeyLengthError reports a symmetric key of the wrong size.
type InvalidKeyLengthError struct {
	Expected int
	Actual   int
}

func (e *InvalidKeyLengthError) Error() string {
	return fmt.Sprintf("invalid key length: got %d, want %d", e.Actual, e.Expected)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidKeyLengthError) Is(target error) bool {
	return target == ErrInvalidKeyLength
}

// MalformedTokenError reports why a token string failed to parse.
type MalformedTokenError struct {
	Reason string
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("token is malformed: %s", e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *MalformedTokenError) Is(target error) bool {
	return target == ErrMalformedToken
}
