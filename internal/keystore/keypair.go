// Package keystore reads and writes Solana keypairs on disk, either as
// solana-keygen JSON byte lists or as password-encrypted .cwt wallets.
package keystore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
)

// ErrFileNotEmpty is returned when a write would overwrite an existing key.
var ErrFileNotEmpty = errors.New("file is not empty")

// ReadKeypair reads a solana-keygen keypair file ("[12,34,...]").
// Caller should clear the returned key after use.
func ReadKeypair(path string) (keycodec.KeyMaterial, error) {
	data, err := readNonEmpty(path)
	if err != nil {
		return nil, err
	}
	defer clear(data)

	key, err := keycodec.DecodeByteList(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse keypair file %s: %w", path, err)
	}
	if err := key.Validate(); err != nil {
		clear(key)
		return nil, fmt.Errorf("invalid keypair file %s: %w", path, err)
	}
	return key, nil
}

// WriteKeypair writes key as a solana-keygen keypair file with mode 0600.
// A seed is expanded so the file always holds the full 64-byte key.
func WriteKeypair(path string, key keycodec.KeyMaterial) error {
	if err := ensureWritable(path); err != nil {
		return err
	}

	priv, err := key.PrivateKey()
	if err != nil {
		return err
	}
	defer clear(priv)

	if err := os.WriteFile(path, []byte(keycodec.EncodeByteList(keycodec.KeyMaterial(priv))), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Load reads a key from either format, choosing by extension.
// password is only called for .cwt files; the returned slice is cleared after use.
func Load(path string, password func() ([]byte, error)) (keycodec.KeyMaterial, error) {
	if !isEncrypted(path) {
		return ReadKeypair(path)
	}

	if password == nil {
		return nil, errors.New("encrypted wallet requires a password")
	}
	pw, err := password()
	if err != nil {
		return nil, err
	}
	defer clear(pw)

	_, walletData, err := DecryptWallet(path, pw)
	if err != nil {
		return nil, err
	}
	return keycodec.KeyMaterial(walletData.PrivateKey), nil
}

func isEncrypted(path string) bool {
	return strings.EqualFold(filepath.Ext(path), cwtExt)
}

// ensureWritable fails if path already holds data.
func ensureWritable(path string) error {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if fileInfo.Size() > 0 {
		return fmt.Errorf("%s: %w", path, ErrFileNotEmpty)
	}
	return nil
}

func readNonEmpty(path string) ([]byte, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %s does not exist", path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if fileInfo.Size() == 0 {
		return nil, fmt.Errorf("file %s is empty", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	return data, nil
}
