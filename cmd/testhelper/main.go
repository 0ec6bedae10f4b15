// Command testhelper exercises the paseto codec from the command line for
// cross-implementation testing: tokens produced here can be consumed by any
// other PASETO v2 implementation and vice versa.
//
// Keys are passed base64url-encoded as arguments; payloads travel on stdin
// and tokens on stdout.
package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	paseto "github.com/vaultsandbox/paseto-go"
)

// Config carries the process streams so run is testable with buffers.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the real process streams.
func DefaultConfig() Config {
	return Config{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: testhelper <command> [args]")
	}

	switch args[1] {
	case "gen-key":
		return genKey(cfg)
	case "gen-keypair":
		return genKeyPair(cfg)
	case "encrypt":
		return encrypt(args[2:], cfg)
	case "decrypt":
		return decrypt(args[2:], cfg)
	case "sign":
		return sign(args[2:], cfg)
	case "verify":
		return verify(args[2:], cfg)
	case "peek":
		return peek(cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func genKey(cfg Config) error {
	key, err := paseto.GenerateSymmetricKey()
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	out := map[string]string{
		"key": base64.RawURLEncoding.EncodeToString(key.Bytes()),
	}
	return json.NewEncoder(cfg.Stdout).Encode(out)
}

func genKeyPair(cfg Config) error {
	pub, secret, err := paseto.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("generate keypair: %w", err)
	}

	out := map[string]string{
		"publicKey": base64.RawURLEncoding.EncodeToString(pub.Bytes()),
		"secretKey": base64.RawURLEncoding.EncodeToString(secret.Bytes()),
	}
	return json.NewEncoder(cfg.Stdout).Encode(out)
}

func encrypt(args []string, cfg Config) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: testhelper encrypt <key-b64> [footer]")
	}

	key, err := symmetricKeyFromArg(args[0])
	if err != nil {
		return err
	}

	plaintext, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	token, err := paseto.Encrypt(key, plaintext, footerArg(args, 1))
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	fmt.Fprintln(cfg.Stdout, token)
	return nil
}

func decrypt(args []string, cfg Config) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: testhelper decrypt <key-b64>")
	}

	key, err := symmetricKeyFromArg(args[0])
	if err != nil {
		return err
	}

	token, err := readToken(cfg.Stdin)
	if err != nil {
		return err
	}

	plaintext, _, err := paseto.Decrypt(token, key)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	_, err = cfg.Stdout.Write(plaintext)
	return err
}

func sign(args []string, cfg Config) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: testhelper sign <secret-key-b64> [footer]")
	}

	material, err := base64.RawURLEncoding.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("decode secret key: %w", err)
	}
	key, err := paseto.NewSecretKey(material)
	if err != nil {
		return err
	}

	message, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	token, err := paseto.Sign(key, message, footerArg(args, 1))
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}

	fmt.Fprintln(cfg.Stdout, token)
	return nil
}

func verify(args []string, cfg Config) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: testhelper verify <public-key-b64>")
	}

	material, err := base64.RawURLEncoding.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("decode public key: %w", err)
	}
	key, err := paseto.NewPublicKey(material)
	if err != nil {
		return err
	}

	token, err := readToken(cfg.Stdin)
	if err != nil {
		return err
	}

	message, _, err := paseto.Verify(token, key)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	_, err = cfg.Stdout.Write(message)
	return err
}

func peek(cfg Config) error {
	token, err := readToken(cfg.Stdin)
	if err != nil {
		return err
	}

	claims, err := paseto.PeekClaims(token)
	if err != nil {
		return fmt.Errorf("peek: %w", err)
	}

	_, err = cfg.Stdout.Write(claims)
	return err
}

func symmetricKeyFromArg(arg string) (*paseto.SymmetricKey, error) {
	material, err := base64.RawURLEncoding.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	return paseto.NewSymmetricKey(material)
}

func footerArg(args []string, i int) []byte {
	if len(args) > i && args[i] != "" {
		return []byte(args[i])
	}
	return nil
}

func readToken(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	// Trim the trailing newline a shell pipeline usually appends.
	for len(data) > 0 && (data[len(data)-1] == '\n' || data[len(data)-1] == '\r') {
		data = data[:len(data)-1]
	}
	return string(data), nil
}
