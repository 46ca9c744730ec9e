package keystore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlexZinkM/solana-prereq/internal/keycodec"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// keep tests fast, the production cost is covered by the constant's comment
	scryptN = 1 << 10
}

func newKey(t *testing.T) keycodec.KeyMaterial {
	t.Helper()
	priv, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return keycodec.KeyMaterial(priv)
}

func TestKeypairRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev-wallet.json")
	key := newKey(t)

	require.NoError(t, WriteKeypair(path, key))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "["))

	got, err := ReadKeypair(path)
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestWriteKeypairExpandsSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	key := newKey(t)

	seed, err := key.Seed()
	require.NoError(t, err)
	require.NoError(t, WriteKeypair(path, keycodec.KeyMaterial(seed)))

	got, err := ReadKeypair(path)
	require.NoError(t, err)
	assert.Len(t, got, keycodec.PrivateKeySize)
	assert.Equal(t, key, got)
}

func TestWriteKeypairRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev-wallet.json")
	require.NoError(t, WriteKeypair(path, newKey(t)))

	err := WriteKeypair(path, newKey(t))
	assert.True(t, errors.Is(err, ErrFileNotEmpty))
}

func TestReadKeypairErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadKeypair(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0600))
	_, err = ReadKeypair(empty)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("[1,2,300]"), 0600))
	_, err = ReadKeypair(bad)
	assert.True(t, keycodec.IsParseError(err))
}

func TestEncryptedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	key := newKey(t)
	password := []byte("dev")

	address, err := EncryptWallet(path, "devnet", key, password)
	require.NoError(t, err)
	assert.Equal(t, solana.PrivateKey(key).PublicKey().String(), address)

	stored, err := ReadWalletAddress(path)
	require.NoError(t, err)
	assert.Equal(t, address, stored)

	cwt, data, err := DecryptWallet(path, password)
	require.NoError(t, err)
	assert.Equal(t, "devnet", cwt.Network)
	assert.NotEmpty(t, cwt.QR)
	assert.Equal(t, []byte(key), data.PrivateKey)

	_, _, err = DecryptWallet(path, []byte("wrong"))
	assert.True(t, errors.Is(err, ErrInvalidPassword))
}

func TestEncryptWalletRejects(t *testing.T) {
	dir := t.TempDir()

	_, err := EncryptWallet(filepath.Join(dir, "wallet.json"), "devnet", newKey(t), []byte("dev"))
	assert.Error(t, err)

	_, err = EncryptWallet(filepath.Join(dir, "wallet.cwt"), "devnet", newKey(t), nil)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	key := newKey(t)

	plain := filepath.Join(dir, "dev-wallet.json")
	require.NoError(t, WriteKeypair(plain, key))
	got, err := Load(plain, nil)
	require.NoError(t, err)
	assert.Equal(t, key, got)

	encrypted := filepath.Join(dir, "dev-wallet.cwt")
	_, err = EncryptWallet(encrypted, "devnet", key, []byte("dev"))
	require.NoError(t, err)

	_, err = Load(encrypted, nil)
	assert.Error(t, err)

	got, err = Load(encrypted, func() ([]byte, error) { return []byte("dev"), nil })
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestQRCode(t *testing.T) {
	png, err := QRCode(solana.NewWallet().PublicKey().String())
	require.NoError(t, err)
	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	path := filepath.Join(t.TempDir(), "address.png")
	require.NoError(t, WriteQRCode(path, "E7xuUu76d3aza4PKAw1t6RnMJho4HFoRAKeUAjJhPbUt"))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
