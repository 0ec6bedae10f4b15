package crypto

const (
	// KeySize is the size of an XChaCha20-Poly1305 key in bytes.
	KeySize = 32
	// NonceSize is the size of an XChaCha20-Poly1305 extended nonce in bytes.
	NonceSize = 24
	// TagSize is the size of a Poly1305 authentication tag in bytes.
	TagSize = 16

	// NonceSeedSize is the size of the random BLAKE2b key used to derive
	// a nonce from the plaintext, in bytes.
	NonceSeedSize = 24

	// SecretKeySize is the size of an Ed25519 secret key in bytes.
	// The trailing 32 bytes are the embedded public key.
	SecretKeySize = 64
	// PublicKeySize is the size of an Ed25519 public key in bytes.
	PublicKeySize = 32
	// SignatureSize is the size of an Ed25519 signature in bytes.
	SignatureSize = 64

	// SeedSize is the size of an Ed25519 private key seed in bytes.
	SeedSize = 32

	// PublicKeyOffset is the byte offset where the public key is embedded
	// within an Ed25519 secret key.
	PublicKeyOffset = 32
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "XChaCha20-Poly1305:Ed25519:BLAKE2b"
