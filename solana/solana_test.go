package solana

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
	"github.com/AlexZinkM/solana-prereq/internal/keystore"
	"github.com/AlexZinkM/solana-prereq/internal/model"
	"github.com/AlexZinkM/solana-prereq/internal/prereq"
	"github.com/AlexZinkM/solana-prereq/internal/transfer"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger records submissions and serves canned answers.
type fakeLedger struct {
	balance   uint64
	fee       uint64
	blockhash solana.Hash

	balanceErr error
	submitErr  error

	submitted []*solana.Transaction
	feeMsgs   []*solana.Message
	airdrops  []uint64

	signatures []*rpc.TransactionSignature
	limits     []int
}

func newFakeLedger(balance, fee uint64) *fakeLedger {
	return &fakeLedger{balance: balance, fee: fee, blockhash: solana.Hash{42}}
}

func (f *fakeLedger) Balance(context.Context, solana.PublicKey) (uint64, error) {
	return f.balance, f.balanceErr
}

func (f *fakeLedger) LatestBlockhash(context.Context) (solana.Hash, error) {
	return f.blockhash, nil
}

func (f *fakeLedger) FeeForMessage(_ context.Context, msg *solana.Message) (uint64, error) {
	f.feeMsgs = append(f.feeMsgs, msg)
	return f.fee, nil
}

func (f *fakeLedger) Submit(_ context.Context, tx *solana.Transaction) (solana.Signature, error) {
	if f.submitErr != nil {
		return solana.Signature{}, f.submitErr
	}
	f.submitted = append(f.submitted, tx)
	return tx.Signatures[0], nil
}

func (f *fakeLedger) RequestAirdrop(_ context.Context, _ solana.PublicKey, lamports uint64) (solana.Signature, error) {
	f.airdrops = append(f.airdrops, lamports)
	return solana.Signature{1}, nil
}

func (f *fakeLedger) Signatures(_ context.Context, _ solana.PublicKey, limit int) ([]*rpc.TransactionSignature, error) {
	f.limits = append(f.limits, limit)
	return f.signatures, nil
}

func newKey(t *testing.T) keycodec.KeyMaterial {
	t.Helper()
	priv, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return keycodec.KeyMaterial(priv)
}

// transferLamports decodes the amount of a system transfer instruction.
func transferLamports(t *testing.T, tx *solana.Transaction) uint64 {
	t.Helper()
	require.Len(t, tx.Message.Instructions, 1)
	data := tx.Message.Instructions[0].Data
	require.Len(t, data, 12)
	return binary.LittleEndian.Uint64(data[4:])
}

var dest = solana.MustPublicKeyFromBase58("E7xuUu76d3aza4PKAw1t6RnMJho4HFoRAKeUAjJhPbUt")

func TestDrain(t *testing.T) {
	l := newFakeLedger(1_000_000_000, 5_000)
	key := newKey(t)

	res, err := Drain(context.Background(), l, key, dest)
	require.NoError(t, err)
	assert.Equal(t, uint64(999_995_000), res.Lamports)
	assert.Equal(t, uint64(5_000), res.Fee)

	// fee was quoted on a message moving the whole balance
	require.Len(t, l.feeMsgs, 1)
	require.Len(t, l.submitted, 1)

	tx := l.submitted[0]
	assert.Equal(t, res.Signature, tx.Signatures[0])
	assert.Equal(t, uint64(999_995_000), transferLamports(t, tx))
	assert.Equal(t, solana.Hash{42}, tx.Message.RecentBlockhash)
	assert.NoError(t, tx.VerifySignatures())
	assert.True(t, tx.Message.AccountKeys[0].Equals(solana.PrivateKey(key).PublicKey()))
}

func TestDrainInsufficientBalance(t *testing.T) {
	l := newFakeLedger(100, 5_000)

	_, err := Drain(context.Background(), l, newKey(t), dest)
	require.Error(t, err)
	assert.True(t, transfer.IsInsufficientBalanceError(err))
	assert.Empty(t, l.submitted)
}

func TestDrainBalanceError(t *testing.T) {
	l := newFakeLedger(0, 0)
	l.balanceErr = errors.New("node down")

	_, err := Drain(context.Background(), l, newKey(t), dest)
	assert.ErrorContains(t, err, "node down")
	assert.Empty(t, l.feeMsgs)
}

func TestTransfer(t *testing.T) {
	l := newFakeLedger(0, 0)
	key := newKey(t)

	sig, err := Transfer(context.Background(), l, key, dest, 1_000_000)
	require.NoError(t, err)
	require.Len(t, l.submitted, 1)
	assert.Equal(t, sig, l.submitted[0].Signatures[0])
	assert.Equal(t, uint64(1_000_000), transferLamports(t, l.submitted[0]))

	_, err = Transfer(context.Background(), l, key, dest, 0)
	assert.Error(t, err)
}

func TestTransferSeedKey(t *testing.T) {
	l := newFakeLedger(0, 0)
	key := newKey(t)

	seed, err := key.Seed()
	require.NoError(t, err)

	_, err = Transfer(context.Background(), l, keycodec.KeyMaterial(seed), dest, 1)
	require.NoError(t, err)
	assert.True(t, l.submitted[0].Message.AccountKeys[0].Equals(solana.PrivateKey(key).PublicKey()))
}

func TestTransferSubmitError(t *testing.T) {
	l := newFakeLedger(0, 0)
	l.submitErr = errors.New("blockhash not found")

	_, err := Transfer(context.Background(), l, newKey(t), dest, 1)
	assert.ErrorContains(t, err, "failed to send transaction")
}

func TestTransferInvalidKey(t *testing.T) {
	_, err := Transfer(context.Background(), newFakeLedger(0, 0), keycodec.KeyMaterial{1, 2, 3}, dest, 1)
	assert.Error(t, err)
}

func TestAirdrop(t *testing.T) {
	l := newFakeLedger(0, 0)

	_, err := Airdrop(context.Background(), l, dest, 2_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2_000_000_000}, l.airdrops)

	_, err = Airdrop(context.Background(), l, dest, 0)
	assert.Error(t, err)
}

func TestGetBalance(t *testing.T) {
	resp, err := GetBalance(context.Background(), newFakeLedger(1_500_000_000, 0), dest)
	require.NoError(t, err)
	assert.Equal(t, "1.500000000", resp.SOL)
	assert.Equal(t, dest.String(), resp.Address)
}

func TestEnroll(t *testing.T) {
	l := newFakeLedger(0, 0)
	key := newKey(t)

	_, err := Enroll(context.Background(), l, key, "octocat")
	require.NoError(t, err)
	require.Len(t, l.submitted, 1)

	tx := l.submitted[0]
	assert.NoError(t, tx.VerifySignatures())
	program := tx.Message.AccountKeys[tx.Message.Instructions[0].ProgramIDIndex]
	assert.True(t, program.Equals(prereq.ProgramID))
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name   string
		submit func(context.Context, *fakeLedger, keycodec.KeyMaterial) (solana.Signature, solana.PublicKey, error)
		disc   [8]byte
	}{
		{"rs", func(ctx context.Context, l *fakeLedger, k keycodec.KeyMaterial) (solana.Signature, solana.PublicKey, error) {
			return SubmitRs(ctx, l, k)
		}, prereq.SubmitRsDiscriminator},
		{"ts", func(ctx context.Context, l *fakeLedger, k keycodec.KeyMaterial) (solana.Signature, solana.PublicKey, error) {
			return SubmitTs(ctx, l, k)
		}, prereq.SubmitTsDiscriminator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newFakeLedger(0, 0)
			key := newKey(t)

			_, mint, err := tt.submit(context.Background(), l, key)
			require.NoError(t, err)
			require.Len(t, l.submitted, 1)

			tx := l.submitted[0]
			// user and mint both sign
			assert.Len(t, tx.Signatures, 2)
			assert.NoError(t, tx.VerifySignatures())
			signers := tx.Message.AccountKeys[:tx.Message.Header.NumRequiredSignatures]
			assert.Contains(t, signers, mint)
			assert.Contains(t, signers, solana.PrivateKey(key).PublicKey())
			assert.Equal(t, tt.disc[:], []byte(tx.Message.Instructions[0].Data))
		})
	}
}

func TestGetTransactions(t *testing.T) {
	older := solana.UnixTimeSeconds(1_700_000_000)
	newer := solana.UnixTimeSeconds(1_700_086_400)
	memo := "hello"

	l := newFakeLedger(0, 0)
	l.signatures = []*rpc.TransactionSignature{
		{Signature: solana.Signature{1}, Slot: 10, BlockTime: &older},
		{Signature: solana.Signature{2}, Slot: 30, BlockTime: &newer, Memo: &memo},
		{Signature: solana.Signature{3}, Slot: 20, Err: map[string]any{"InstructionError": []any{0, "Custom"}}},
	}

	resp, err := GetTransactions(context.Background(), l, dest, "devnet", &model.LogRequest{})
	require.NoError(t, err)
	assert.Equal(t, []int{model.DefaultLogLimit}, l.limits)
	assert.Equal(t, dest.String(), resp.Address)
	require.Len(t, resp.Transactions, 3)

	// newest first
	assert.Equal(t, solana.Signature{2}.String(), resp.Transactions[0].TxID)
	assert.Equal(t, "hello", resp.Transactions[0].Memo)
	assert.Equal(t, model.TransactionStatusFailed, resp.Transactions[1].Status)
	assert.Nil(t, resp.Transactions[1].Timestamp)
	assert.Equal(t, model.TransactionStatusSuccess, resp.Transactions[2].Status)
	assert.Contains(t, resp.Transactions[2].Explorer, "?cluster=devnet")

	failed := model.TransactionStatusFailed
	resp, err = GetTransactions(context.Background(), l, dest, "devnet", &model.LogRequest{Limit: 50, Status: &failed})
	require.NoError(t, err)
	assert.Equal(t, 50, l.limits[1])
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, uint64(20), resp.Transactions[0].Slot)

	// no block time never matches a date filter
	from := older.Time().Add(time.Hour)
	resp, err = GetTransactions(context.Background(), l, dest, "devnet", &model.LogRequest{From: &from})
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, uint64(30), resp.Transactions[0].Slot)

	_, err = GetTransactions(context.Background(), l, dest, "devnet", &model.LogRequest{Limit: model.MaxLogLimit + 1})
	assert.Error(t, err)
}

func TestVerifyKeypair(t *testing.T) {
	assert.NoError(t, VerifyKeypair(newKey(t)))
	assert.Error(t, VerifyKeypair(keycodec.KeyMaterial{1}))
}

func TestGenerateWallet(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "dev-wallet.json")
	address, err := GenerateWallet(path, "devnet", nil)
	require.NoError(t, err)
	assert.True(t, IsValidAddress(address))

	key, err := keystore.ReadKeypair(path)
	require.NoError(t, err)
	pub, err := key.PublicKey()
	require.NoError(t, err)
	assert.Equal(t, address, pub.String())

	// never overwrite an existing wallet
	_, err = GenerateWallet(path, "devnet", nil)
	assert.ErrorIs(t, err, keystore.ErrFileNotEmpty)

	_, err = GenerateWallet("", "devnet", nil)
	assert.Error(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExplorerURL(t *testing.T) {
	sig := solana.Signature{1}
	assert.Equal(t, "https://explorer.solana.com/tx/"+sig.String()+"?cluster=devnet", ExplorerURL(sig, "devnet"))
	assert.Equal(t, "https://explorer.solana.com/tx/"+sig.String(), ExplorerURL(sig, "mainnet-beta"))
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress(dest.String()))
	assert.False(t, IsValidAddress("not-an-address"))
}
