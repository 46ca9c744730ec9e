// Package solana implements the devnet wallet operations on top of a ledger.
package solana

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
	"github.com/AlexZinkM/solana-prereq/internal/ledger"
	"github.com/AlexZinkM/solana-prereq/internal/log"

	"github.com/gagliardetto/solana-go"
)

var logger = log.Logger("wallet")

// IsValidAddress validates a Solana address
func IsValidAddress(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return err == nil
}

// ExplorerURL returns the Solana Explorer link for a transaction
func ExplorerURL(sig solana.Signature, cluster string) string {
	if cluster == "" || cluster == "mainnet-beta" {
		return fmt.Sprintf("https://explorer.solana.com/tx/%s", sig)
	}
	return fmt.Sprintf("https://explorer.solana.com/tx/%s?cluster=%s", sig, cluster)
}

func filepathIsEncrypted(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".cwt")
}

// privateKey validates key and returns the full private key.
func privateKey(key keycodec.KeyMaterial) (solana.PrivateKey, error) {
	priv, err := key.PrivateKey()
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return priv, nil
}

// buildTransaction creates an unsigned transaction paid by payer.
func buildTransaction(instructions []solana.Instruction, blockhash solana.Hash, payer solana.PublicKey) (*solana.Transaction, error) {
	tx, err := solana.NewTransaction(
		instructions,
		blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return tx, nil
}

// signAndSubmit signs tx with signers and sends it through l.
// Every signer required by the message must be present.
func signAndSubmit(ctx context.Context, l ledger.Ledger, tx *solana.Transaction, signers ...solana.PrivateKey) (solana.Signature, error) {
	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	sig, err := l.Submit(ctx, tx)
	if err != nil {
		return solana.Signature{}, err
	}
	return sig, nil
}
