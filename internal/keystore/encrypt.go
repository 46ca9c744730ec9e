package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
	"github.com/AlexZinkM/solana-prereq/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	cwtExt = ".cwt"

	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12
)

// scryptN is the scrypt cost. N=2^18 needs ~256MB RAM and 0.5-2s per derivation.
var scryptN = 1 << 18

// EncryptWallet encrypts key with password and writes it to a .cwt file.
// Returns the wallet address.
// password must be []byte for security (caller should zero it after use)
func EncryptWallet(filePath, network string, key keycodec.KeyMaterial, password []byte) (string, error) {
	if !isEncrypted(filePath) {
		return "", fmt.Errorf("file must have %s extension", cwtExt)
	}
	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}
	if err := ensureWritable(filePath); err != nil {
		return "", err
	}

	priv, err := key.PrivateKey()
	if err != nil {
		return "", err
	}
	defer clear(priv)
	address := priv.PublicKey().String()

	qrCode, err := QRCodeBase64(address)
	if err != nil {
		return "", err
	}

	// Generate salt and nonce
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newGCM(password, salt)
	if err != nil {
		return "", err
	}

	plaintext, err := json.Marshal(&model.WalletData{
		PrivateKey: priv,
		CreatedAt:  time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal wallet data: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	cwtFile := model.CWTFile{
		Network:    network,
		Address:    address,
		QR:         qrCode,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}

	fileData, err := json.MarshalIndent(cwtFile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal cwt file: %w", err)
	}

	// Add UTF-8 BOM for proper display in Windows
	utf8BOM := []byte{0xEF, 0xBB, 0xBF}
	if err := os.WriteFile(filePath, append(utf8BOM, fileData...), 0600); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return address, nil
}

// newGCM derives the AES-256-GCM cipher for password and salt.
func newGCM(password, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
