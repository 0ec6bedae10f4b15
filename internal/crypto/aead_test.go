package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func TestSeal_Open_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
		aad       []byte
	}{
		{"empty", []byte{}, nil},
		{"simple", []byte("hello world"), nil},
		{"with aad", []byte("hello world"), []byte("additional data")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}, []byte{0x01}},
		{"large", make([]byte, 10000), []byte("aad")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := make([]byte, KeySize)
			if _, err := rand.Read(key); err != nil {
				t.Fatal(err)
			}

			nonce := make([]byte, NonceSize)
			if _, err := rand.Read(nonce); err != nil {
				t.Fatal(err)
			}

			ciphertext, err := Seal(key, nonce, tt.plaintext, tt.aad)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}

			// Ciphertext should be plaintext + tag
			if len(ciphertext) != len(tt.plaintext)+TagSize {
				t.Errorf("ciphertext length = %d, want %d", len(ciphertext), len(tt.plaintext)+TagSize)
			}

			decrypted, err := Open(key, nonce, ciphertext, tt.aad)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}

			if !bytes.Equal(decrypted, tt.plaintext) {
				t.Errorf("decrypted = %v, want %v", decrypted, tt.plaintext)
			}
		})
	}
}

func TestSeal_InvalidKeySize(t *testing.T) {
	tests := []struct {
		name    string
		keySize int
	}{
		{"empty", 0},
		{"too short", 16},
		{"off by one", 31},
		{"too long", 64},
	}

	nonce := make([]byte, NonceSize)
	plaintext := []byte("test")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := make([]byte, tt.keySize)
			_, err := Seal(key, nonce, plaintext, nil)
			if !errors.Is(err, ErrInvalidKeySize) {
				t.Errorf("Seal() error = %v, want ErrInvalidKeySize", err)
			}
		})
	}
}

func TestOpen_InvalidNonceSize(t *testing.T) {
	key := make([]byte, KeySize)

	_, err := Open(key, make([]byte, 12), []byte("ciphertext"), nil)
	if !errors.Is(err, ErrInvalidNonceSize) {
		t.Errorf("Open() error = %v, want ErrInvalidNonceSize", err)
	}
}

func TestOpen_Tampered(t *testing.T) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatal(err)
	}

	aad := []byte("aad")
	ciphertext, err := Seal(key, nonce, []byte("attack at dawn"), aad)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("flipped ciphertext bit", func(t *testing.T) {
		tampered := bytes.Clone(ciphertext)
		tampered[0] ^= 0x01
		if _, err := Open(key, nonce, tampered, aad); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("Open() error = %v, want ErrDecryptionFailed", err)
		}
	})

	t.Run("flipped tag bit", func(t *testing.T) {
		tampered := bytes.Clone(ciphertext)
		tampered[len(tampered)-1] ^= 0x80
		if _, err := Open(key, nonce, tampered, aad); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("Open() error = %v, want ErrDecryptionFailed", err)
		}
	})

	t.Run("wrong aad", func(t *testing.T) {
		if _, err := Open(key, nonce, ciphertext, []byte("other")); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("Open() error = %v, want ErrDecryptionFailed", err)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		other := make([]byte, KeySize)
		if _, err := rand.Read(other); err != nil {
			t.Fatal(err)
		}
		if _, err := Open(other, nonce, ciphertext, aad); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("Open() error = %v, want ErrDecryptionFailed", err)
		}
	})

	t.Run("truncated", func(t *testing.T) {
		if _, err := Open(key, nonce, ciphertext[:TagSize-1], aad); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("Open() error = %v, want ErrDecryptionFailed", err)
		}
	})
}
