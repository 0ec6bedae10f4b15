package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the symmetric key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSecretKeySize is returned when the Ed25519 secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when the Ed25519 public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrDecryptionFailed is returned when AEAD decryption fails. The cause
	// is deliberately not distinguished further.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrSignatureVerificationFailed is returned when signature verification fails.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")
)
