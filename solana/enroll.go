package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
	"github.com/AlexZinkM/solana-prereq/internal/ledger"
	"github.com/AlexZinkM/solana-prereq/internal/prereq"

	"github.com/gagliardetto/solana-go"
)

// Enroll creates the enrollment account for key, recording the GitHub handle
func Enroll(ctx context.Context, l ledger.Ledger, key keycodec.KeyMaterial, github string) (solana.Signature, error) {
	wallet, err := privateKey(key)
	if err != nil {
		return solana.Signature{}, err
	}
	defer clear(wallet)

	ix, err := prereq.NewInitializeInstruction(wallet.PublicKey(), github)
	if err != nil {
		return solana.Signature{}, err
	}

	blockhash, err := l.LatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, err
	}

	tx, err := buildTransaction([]solana.Instruction{ix}, blockhash, wallet.PublicKey())
	if err != nil {
		return solana.Signature{}, err
	}

	sig, err := signAndSubmit(ctx, l, tx, wallet)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send initialize transaction: %w", err)
	}

	logger.Infow("enrollment initialized", "user", wallet.PublicKey().String(), "github", github, "tx", sig.String())
	return sig, nil
}

// SubmitRs submits the Rust prerequisite for key. A fresh mint keypair
// co-signs the transaction; its address is returned with the signature.
func SubmitRs(ctx context.Context, l ledger.Ledger, key keycodec.KeyMaterial) (solana.Signature, solana.PublicKey, error) {
	return submit(ctx, l, key, "submit_rs", prereq.NewSubmitRsInstruction)
}

// SubmitTs submits the TypeScript prerequisite for key, like SubmitRs.
func SubmitTs(ctx context.Context, l ledger.Ledger, key keycodec.KeyMaterial) (solana.Signature, solana.PublicKey, error) {
	return submit(ctx, l, key, "submit_ts", prereq.NewSubmitTsInstruction)
}

func submit(
	ctx context.Context,
	l ledger.Ledger,
	key keycodec.KeyMaterial,
	name string,
	newInstruction func(user, mint solana.PublicKey) (solana.Instruction, error),
) (solana.Signature, solana.PublicKey, error) {
	wallet, err := privateKey(key)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}
	defer clear(wallet)

	mint := solana.NewWallet()
	defer clear(mint.PrivateKey)

	ix, err := newInstruction(wallet.PublicKey(), mint.PublicKey())
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}

	blockhash, err := l.LatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}

	tx, err := buildTransaction([]solana.Instruction{ix}, blockhash, wallet.PublicKey())
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}

	sig, err := signAndSubmit(ctx, l, tx, wallet, mint.PrivateKey)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, fmt.Errorf("failed to send %s transaction: %w", name, err)
	}

	logger.Infow(name+" sent", "user", wallet.PublicKey().String(), "mint", mint.PublicKey().String(), "tx", sig.String())
	return sig, mint.PublicKey(), nil
}
