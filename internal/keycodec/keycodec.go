// Package keycodec converts Solana private keys between base-58 text and the
// byte-list format written by `solana-keygen` (a JSON array of decimal bytes).
package keycodec

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

const (
	SeedSize       = ed25519.SeedSize       // 32 bytes, raw ed25519 seed
	PrivateKeySize = ed25519.PrivateKeySize // 64 bytes, seed followed by public key
)

// KeyMaterial is the raw bytes of a private signing key, either a 32-byte seed
// or a full 64-byte Solana private key.
type KeyMaterial []byte

// DecodeError is returned when base-58 input cannot be decoded into a key.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("base58 decode: %s: %v", e.Reason, e.Err)
	}
	return "base58 decode: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ParseError is returned when byte-list input is malformed or has the wrong length.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("byte list parse: %s: %v", e.Reason, e.Err)
	}
	return "byte list parse: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsDecodeError checks if error is DecodeError
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// IsParseError checks if error is ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// validSize reports whether n is an accepted signing-key length.
func validSize(n int) bool {
	return n == SeedSize || n == PrivateKeySize
}

// DecodeBase58 decodes a base-58 private key.
// Surrounding whitespace is ignored.
func DecodeBase58(input string) (KeyMaterial, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, &DecodeError{Reason: "empty input"}
	}

	raw, err := base58.Decode(s)
	if err != nil {
		return nil, &DecodeError{Reason: "invalid base58 string", Err: err}
	}

	if !validSize(len(raw)) {
		clear(raw)
		return nil, &DecodeError{Reason: fmt.Sprintf("decoded %d bytes, expected %d or %d", len(raw), SeedSize, PrivateKeySize)}
	}

	return KeyMaterial(raw), nil
}

// EncodeBase58 encodes key as base-58 text.
func EncodeBase58(key KeyMaterial) string {
	return base58.Encode(key)
}

// DecodeByteList parses "[b0, b1, ..., bn]" into key bytes.
// Brackets are optional; each token must be a decimal integer in 0..255.
func DecodeByteList(input string) (KeyMaterial, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &ParseError{Reason: "empty byte list"}
	}

	tokens := strings.Split(s, ",")
	out := make(KeyMaterial, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			clear(out)
			return nil, &ParseError{Reason: fmt.Sprintf("empty token at position %d", i)}
		}
		b, err := strconv.ParseUint(tok, 10, 8)
		if err != nil {
			clear(out)
			return nil, &ParseError{Reason: fmt.Sprintf("token %d is not a byte value", i), Err: err}
		}
		out = append(out, byte(b))
	}

	if !validSize(len(out)) {
		clear(out)
		return nil, &ParseError{Reason: fmt.Sprintf("got %d bytes, expected %d or %d", len(tokens), SeedSize, PrivateKeySize)}
	}

	return out, nil
}

// EncodeByteList renders key in the solana-keygen wallet format, e.g. "[1,2,3]".
func EncodeByteList(key KeyMaterial) string {
	var b strings.Builder
	b.Grow(len(key)*4 + 2)
	b.WriteByte('[')
	for i, v := range key {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteByte(']')
	return b.String()
}

// Validate checks that the key has an accepted signing-key length and, for a
// full private key, that the trailing half matches the seed's public key.
func (k KeyMaterial) Validate() error {
	if !validSize(len(k)) {
		return fmt.Errorf("invalid private key length: %d", len(k))
	}
	if len(k) == PrivateKeySize {
		derived := ed25519.NewKeyFromSeed(k[:SeedSize])
		defer clear(derived)
		if !ed25519.PublicKey(derived[SeedSize:]).Equal(ed25519.PublicKey(k[SeedSize:])) {
			return errors.New("private key does not match its public key")
		}
	}
	return nil
}

// Seed returns a copy of the 32-byte ed25519 seed.
func (k KeyMaterial) Seed() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, SeedSize)
	copy(out, k[:SeedSize])
	return out, nil
}

// PrivateKey returns the full 64-byte Solana private key, expanding a seed if needed.
// Caller should clear the result after use.
func (k KeyMaterial) PrivateKey() (solana.PrivateKey, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	if len(k) == SeedSize {
		return solana.PrivateKey(ed25519.NewKeyFromSeed(k)), nil
	}
	out := make(solana.PrivateKey, PrivateKeySize)
	copy(out, k)
	return out, nil
}

// PublicKey returns the address that belongs to the key.
func (k KeyMaterial) PublicKey() (solana.PublicKey, error) {
	priv, err := k.PrivateKey()
	if err != nil {
		return solana.PublicKey{}, err
	}
	defer clear(priv)
	return priv.PublicKey(), nil
}
