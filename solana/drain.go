package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
	"github.com/AlexZinkM/solana-prereq/internal/ledger"
	"github.com/AlexZinkM/solana-prereq/internal/transfer"

	"github.com/gagliardetto/solana-go"
)

// DrainResult describes a completed drain
type DrainResult struct {
	Signature solana.Signature
	Lamports  uint64 // amount transferred
	Fee       uint64 // fee quoted by the node
}

// Drain transfers the entire balance of key to toAddress, net of the transaction fee.
// The fee is quoted for a message of the same shape as the final transfer, so
// it does not depend on the amount.
func Drain(ctx context.Context, l ledger.Ledger, key keycodec.KeyMaterial, toAddress solana.PublicKey) (*DrainResult, error) {
	wallet, err := privateKey(key)
	if err != nil {
		return nil, err
	}
	defer clear(wallet)
	from := wallet.PublicKey()

	balance, err := l.Balance(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to check balance: %w", err)
	}

	blockhash, err := l.LatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}

	// Mock transaction moving the whole balance, only used to price the message
	mock, err := buildTransaction([]solana.Instruction{transfer.New(from, toAddress, balance).Instruction()}, blockhash, from)
	if err != nil {
		return nil, err
	}

	fee, err := l.FeeForMessage(ctx, &mock.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate fee: %w", err)
	}

	req, err := transfer.Drain(from, toAddress, balance, fee)
	if err != nil {
		return nil, err
	}

	tx, err := buildTransaction([]solana.Instruction{req.Instruction()}, blockhash, from)
	if err != nil {
		return nil, err
	}

	sig, err := signAndSubmit(ctx, l, tx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to send final transaction: %w", err)
	}

	logger.Infow("wallet drained",
		"from", from.String(),
		"to", toAddress.String(),
		"lamports", req.Lamports,
		"fee", fee,
		"tx", sig.String(),
	)
	return &DrainResult{
		Signature: sig,
		Lamports:  req.Lamports,
		Fee:       fee,
	}, nil
}
