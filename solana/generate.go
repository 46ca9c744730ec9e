package solana

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
	"github.com/AlexZinkM/solana-prereq/internal/keystore"

	"github.com/gagliardetto/solana-go"
)

// NewKeypair generates a new Solana keypair.
// Caller should clear the returned key after use.
func NewKeypair() (keycodec.KeyMaterial, solana.PublicKey) {
	wallet := solana.NewWallet()
	return keycodec.KeyMaterial(wallet.PrivateKey), wallet.PublicKey()
}

// GenerateWallet generates a new keypair and saves it to filePath.
// A .cwt path is encrypted with password, anything else is written in the
// solana-keygen JSON format and password is ignored.
// Returns the generated public address on success.
func GenerateWallet(filePath, network string, password []byte) (address string, err error) {
	if filePath == "" {
		return "", errors.New("wallet path is required")
	}

	key, pub := NewKeypair()
	defer clear(key)

	if filepathIsEncrypted(filePath) {
		address, err = keystore.EncryptWallet(filePath, network, key, password)
		if err != nil {
			return "", fmt.Errorf("failed to encrypt wallet: %w", err)
		}
		logger.Infow("encrypted wallet generated", "address", address, "path", filePath)
		return address, nil
	}

	if err := keystore.WriteKeypair(filePath, key); err != nil {
		return "", fmt.Errorf("failed to write keypair: %w", err)
	}

	logger.Infow("wallet generated", "address", pub.String(), "path", filePath)
	return pub.String(), nil
}
