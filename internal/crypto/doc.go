// Package crypto provides the cryptographic primitives for the PASETO v2
// protocol: authenticated encryption, detached signatures, nonce derivation,
// and the pre-authentication encoding that binds token segments together.
//
// # Algorithm Suite
//
// The package uses the algorithms fixed by protocol version 2:
//
//   - XChaCha20-Poly1305: Authenticated encryption with associated data (AEAD)
//     for local tokens. The 192-bit extended nonce makes random nonces safe.
//
//   - Ed25519: Deterministic digital signatures for public tokens. Signatures
//     are a fixed 64 bytes and verification is constant time.
//
//   - BLAKE2b (keyed, 24-byte output): Derives the AEAD nonce from the
//     plaintext using a fresh random key, so the nonce is unpredictable yet
//     bound to the message content.
//
// # Security Model
//
// Local tokens provide confidentiality and integrity: only holders of the
// 32-byte symmetric key can decrypt, and any modification of the nonce,
// ciphertext, or footer causes decryption to fail. Public tokens provide
// authenticity only: the message is readable by anyone, but the signature
// covers the header, message, and footer together.
//
// # Critical Security Notes
//
// The pre-authentication encoding ([PAE]) is the single value fed to the AEAD
// as associated data and to Ed25519 as the signed message. Both sides of a
// token exchange must build it over the same (header, nonce-or-message,
// footer) sequence or verification fails.
//
// Nonce derivation intentionally covers only the plaintext, keyed by 24 fresh
// random bytes. This matches the protocol definition exactly; changing the
// inputs would break interoperability with other version 2 implementations.
//
// Keep symmetric and secret keys secure. They should never be logged,
// transmitted in plaintext, or stored in version control.
//
// # Base64 Encoding
//
// Token segments use URL-safe base64 without padding (RFC 4648 §5) via
// [ToBase64URL] and [FromBase64URL]. Decoding rejects padded input.
package crypto
