package paseto

import (
	"fmt"
	"strings"

	"github.com/vaultsandbox/paseto-go/internal/crypto"
)

// Version is the protocol version tag carried by every token this package
// produces or accepts.
const Version = "v2"

// Purpose identifies the cryptographic mode of a token.
type Purpose string

const (
	// PurposeLocal marks a token encrypted with a symmetric key.
	PurposeLocal Purpose = "local"
	// PurposePublic marks a token signed with an asymmetric secret key.
	PurposePublic Purpose = "public"
)

// Token is a parsed PASETO token. Payload holds the decoded body segment:
// nonce || ciphertext || tag for local tokens, message || signature for
// public tokens. Footer holds the decoded footer segment, empty when the
// token carries none.
type Token struct {
	Version string
	Purpose Purpose
	Payload []byte
	Footer  []byte
}

// ParseToken splits a raw token string into its segments and decodes them.
// It enforces the wire format strictly: exactly 3 or 4 dot-separated
// segments, a known version and purpose tag, unpadded URL-safe base64, and
// no empty footer segment. All failures are reported as a
// [MalformedTokenError].
func ParseToken(raw string) (*Token, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, &MalformedTokenError{Reason: fmt.Sprintf("expected 3 or 4 segments, got %d", len(parts))}
	}

	if parts[0] != Version {
		return nil, &MalformedTokenError{Reason: fmt.Sprintf("unsupported version %q", parts[0])}
	}

	purpose := Purpose(parts[1])
	switch purpose {
	case PurposeLocal, PurposePublic:
	default:
		return nil, &MalformedTokenError{Reason: fmt.Sprintf("unknown purpose %q", parts[1])}
	}

	payload, err := crypto.FromBase64URL(parts[2])
	if err != nil {
		return nil, &MalformedTokenError{Reason: "invalid base64url payload"}
	}

	var footer []byte
	if len(parts) == 4 {
		if parts[3] == "" {
			return nil, &MalformedTokenError{Reason: "empty footer segment"}
		}
		footer, err = crypto.FromBase64URL(parts[3])
		if err != nil {
			return nil, &MalformedTokenError{Reason: "invalid base64url footer"}
		}
	}

	return &Token{
		Version: parts[0],
		Purpose: purpose,
		Payload: payload,
		Footer:  footer,
	}, nil
}

// String assembles the exact wire form of the token. The footer segment is
// emitted only when the footer is non-empty.
func (t *Token) String() string {
	var b strings.Builder
	b.WriteString(t.Version)
	b.WriteByte('.')
	b.WriteString(string(t.Purpose))
	b.WriteByte('.')
	b.WriteString(crypto.ToBase64URL(t.Payload))
	if len(t.Footer) > 0 {
		b.WriteByte('.')
		b.WriteString(crypto.ToBase64URL(t.Footer))
	}
	return b.String()
}

// header returns the literal ASCII tag bound into the pre-authentication
// encoding, e.g. "v2.local.".
func (t *Token) header() []byte {
	return []byte(t.Version + "." + string(t.Purpose) + ".")
}
