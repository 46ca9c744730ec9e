package solana

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
	"github.com/AlexZinkM/solana-prereq/internal/ledger"
	"github.com/AlexZinkM/solana-prereq/internal/transfer"

	"github.com/gagliardetto/solana-go"
)

// Transfer sends a fixed amount of lamports from key to toAddress
// key is cleared by the caller, the expanded copy used for signing is cleared here
func Transfer(ctx context.Context, l ledger.Ledger, key keycodec.KeyMaterial, toAddress solana.PublicKey, lamports uint64) (solana.Signature, error) {
	if lamports == 0 {
		return solana.Signature{}, errors.New("transfer amount must be positive")
	}

	wallet, err := privateKey(key)
	if err != nil {
		return solana.Signature{}, err
	}
	defer clear(wallet)

	req := transfer.New(wallet.PublicKey(), toAddress, lamports)
	return submitTransfer(ctx, l, wallet, req)
}

// submitTransfer builds req against a fresh blockhash, signs it with wallet and sends it.
func submitTransfer(ctx context.Context, l ledger.Ledger, wallet solana.PrivateKey, req transfer.Request) (solana.Signature, error) {
	blockhash, err := l.LatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, err
	}

	tx, err := buildTransaction([]solana.Instruction{req.Instruction()}, blockhash, req.Source)
	if err != nil {
		return solana.Signature{}, err
	}

	sig, err := signAndSubmit(ctx, l, tx, wallet)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	logger.Infow("transfer sent",
		"from", req.Source.String(),
		"to", req.Destination.String(),
		"lamports", req.Lamports,
		"tx", sig.String(),
	)
	return sig, nil
}
