// Package paseto implements version 2 of the Platform-Agnostic Security
// Token format: compact, versioned bearer tokens in two modes, symmetric
// authenticated encryption ("local") and asymmetric digital signature
// ("public").
//
// Local tokens encrypt a payload with XChaCha20-Poly1305 under a 32-byte
// symmetric key:
//
//	key, err := paseto.GenerateSymmetricKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := paseto.Encrypt(key, []byte(`{"sub":"alice"}`), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, footer, err := paseto.Decrypt(token, key)
//
// Public tokens sign a readable payload with Ed25519:
//
//	pub, secret, err := paseto.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := paseto.Sign(secret, []byte(`{"sub":"alice"}`), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	message, footer, err := paseto.Verify(token, pub)
//
// The optional footer rides along unencrypted but is bound into the
// authentication of both modes: changing it invalidates the token.
//
// Tokens are exchanged on the wire as
//
//	v2.<purpose>.<base64url(body)>[.<base64url(footer)>]
//
// using the URL-safe base64 alphabet without padding. The footer segment is
// present exactly when the footer is non-empty.
//
// This package covers the token codec only. Claim-schema validation
// (expiration, audience), key distribution, and rotation policy are the
// caller's responsibility.
package paseto
