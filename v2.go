package paseto

import (
	"github.com/vaultsandbox/paseto-go/internal/crypto"
)

// Encrypt produces a local token: plaintext encrypted and authenticated
// under a 32-byte symmetric key. The optional footer is appended as a
// fourth segment and bound into the authentication, so it cannot be
// altered without invalidating the token. Pass nil for no footer.
//
// The nonce is derived from the plaintext with a keyed BLAKE2b hash under
// a fresh random key, so each call consumes the CSPRNG but is otherwise
// side-effect free.
func Encrypt(key *SymmetricKey, plaintext, footer []byte) (string, error) {
	t := &Token{Version: Version, Purpose: PurposeLocal, Footer: footer}

	seed, err := crypto.NonceSeed()
	if err != nil {
		return "", err
	}
	nonce, err := crypto.DeriveNonce(plaintext, seed)
	if err != nil {
		return "", err
	}

	preAuth := crypto.PAE(t.header(), nonce, footer)
	ciphertext, err := crypto.Seal(key.material, nonce, plaintext, preAuth)
	if err != nil {
		return "", err
	}

	t.Payload = append(nonce, ciphertext...)
	return t.String(), nil
}

// Decrypt parses a local token and decrypts its payload, returning the
// plaintext and the decoded footer. It fails with [ErrMalformedToken] when
// the token does not parse as a local token, and with [ErrDecryptionFailed]
// when the key is wrong or any part of the nonce, ciphertext, or footer has
// been tampered with. The failure reason is deliberately generic.
func Decrypt(raw string, key *SymmetricKey) (plaintext, footer []byte, err error) {
	t, err := ParseToken(raw)
	if err != nil {
		return nil, nil, err
	}
	if t.Purpose != PurposeLocal {
		return nil, nil, &MalformedTokenError{Reason: "not a local token"}
	}

	plaintext, err = DecryptToken(t, key)
	if err != nil {
		return nil, nil, err
	}
	return plaintext, t.Footer, nil
}

// DecryptToken decrypts an already-parsed local token. Callers that split
// tokens upstream can use this directly; Decrypt is the convenience form.
func DecryptToken(t *Token, key *SymmetricKey) ([]byte, error) {
	if len(t.Payload) < crypto.NonceSize+crypto.TagSize {
		return nil, &MalformedTokenError{Reason: "payload too short"}
	}

	nonce := t.Payload[:crypto.NonceSize]
	ciphertext := t.Payload[crypto.NonceSize:]

	preAuth := crypto.PAE(t.header(), nonce, t.Footer)
	plaintext, err := crypto.Open(key.material, nonce, ciphertext, preAuth)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// Sign produces a public token: the message stays readable, followed by a
// 64-byte Ed25519 signature over the header, message, and footer. Pass nil
// for no footer.
func Sign(key *SecretKey, message, footer []byte) (string, error) {
	t := &Token{Version: Version, Purpose: PurposePublic, Footer: footer}

	preAuth := crypto.PAE(t.header(), message, footer)
	signature, err := crypto.Sign(key.material, preAuth)
	if err != nil {
		return "", err
	}

	t.Payload = make([]byte, 0, len(message)+len(signature))
	t.Payload = append(t.Payload, message...)
	t.Payload = append(t.Payload, signature...)
	return t.String(), nil
}

// Verify parses a public token and checks its signature, returning the
// message and the decoded footer. It fails with [ErrMalformedToken] when
// the token does not parse as a public token, and with
// [ErrSignatureVerificationFailed] when the signature does not match the
// message, footer, and public key. The error carries no detail about which
// bytes mismatched.
func Verify(raw string, key *PublicKey) (message, footer []byte, err error) {
	t, err := ParseToken(raw)
	if err != nil {
		return nil, nil, err
	}
	if t.Purpose != PurposePublic {
		return nil, nil, &MalformedTokenError{Reason: "not a public token"}
	}

	message, err = VerifyToken(t, key)
	if err != nil {
		return nil, nil, err
	}
	return message, t.Footer, nil
}

// VerifyToken verifies an already-parsed public token. Callers that split
// tokens upstream can use this directly; Verify is the convenience form.
func VerifyToken(t *Token, key *PublicKey) ([]byte, error) {
	if len(t.Payload) < crypto.SignatureSize {
		return nil, &MalformedTokenError{Reason: "payload too short"}
	}

	split := len(t.Payload) - crypto.SignatureSize
	message := t.Payload[:split]
	signature := t.Payload[split:]

	preAuth := crypto.PAE(t.header(), message, t.Footer)
	if err := crypto.Verify(key.material, preAuth, signature); err != nil {
		return nil, ErrSignatureVerificationFailed
	}
	return message, nil
}

// PeekClaims extracts the message of a public token WITHOUT verifying its
// signature. The returned bytes are unauthenticated: anyone can forge them,
// so they must never be trusted for authorization decisions. Use this only
// for advisory purposes such as routing a token to the right verification
// key, then call [Verify] before acting on anything it contains.
func PeekClaims(raw string) ([]byte, error) {
	t, err := ParseToken(raw)
	if err != nil {
		return nil, err
	}
	if t.Purpose != PurposePublic {
		return nil, &MalformedTokenError{Reason: "not a public token"}
	}
	if len(t.Payload) < crypto.SignatureSize {
		return nil, &MalformedTokenError{Reason: "payload too short"}
	}
	return t.Payload[:len(t.Payload)-crypto.SignatureSize], nil
}
