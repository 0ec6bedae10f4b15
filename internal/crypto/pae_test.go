package crypto

import (
	"bytes"
	"testing"
)

func TestPAE_KnownVectors(t *testing.T) {
	tests := []struct {
		name   string
		pieces [][]byte
		want   []byte
	}{
		{
			"no pieces",
			nil,
			[]byte("\x00\x00\x00\x00\x00\x00\x00\x00"),
		},
		{
			"one empty piece",
			[][]byte{[]byte("")},
			[]byte("\x01\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"),
		},
		{
			"two empty pieces",
			[][]byte{[]byte(""), []byte("")},
			[]byte("\x02\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"),
		},
		{
			"single word",
			[][]byte{[]byte("test")},
			[]byte("\x01\x00\x00\x00\x00\x00\x00\x00\x04\x00\x00\x00\x00\x00\x00\x00test"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PAE(tt.pieces...)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("PAE() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPAE_Injective(t *testing.T) {
	// Length-prefixing must prevent concatenation collisions.
	tests := []struct {
		name string
		a    [][]byte
		b    [][]byte
	}{
		{
			"split vs joined",
			[][]byte{[]byte("pa"), []byte("seto")},
			[][]byte{[]byte("paseto")},
		},
		{
			"two empty vs one empty",
			[][]byte{[]byte(""), []byte("")},
			[][]byte{[]byte("")},
		},
		{
			"boundary shift",
			[][]byte{[]byte("ab"), []byte("c")},
			[][]byte{[]byte("a"), []byte("bc")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if bytes.Equal(PAE(tt.a...), PAE(tt.b...)) {
				t.Errorf("PAE(%q) == PAE(%q), want distinct encodings", tt.a, tt.b)
			}
		})
	}
}

func TestPAE_Deterministic(t *testing.T) {
	pieces := [][]byte{[]byte("v2.local."), make([]byte, NonceSize), []byte("footer")}

	first := PAE(pieces...)
	second := PAE(pieces...)

	if !bytes.Equal(first, second) {
		t.Error("PAE is not deterministic for identical input")
	}
}
