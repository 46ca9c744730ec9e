package solana

import (
	"context"
	"errors"

	"github.com/AlexZinkM/solana-prereq/internal/ledger"

	"github.com/gagliardetto/solana-go"
)

// Airdrop claims devnet SOL from the faucet for address
func Airdrop(ctx context.Context, l ledger.Ledger, address solana.PublicKey, lamports uint64) (solana.Signature, error) {
	if lamports == 0 {
		return solana.Signature{}, errors.New("airdrop amount must be positive")
	}

	sig, err := l.RequestAirdrop(ctx, address, lamports)
	if err != nil {
		return solana.Signature{}, err
	}

	logger.Infow("airdrop requested", "address", address.String(), "lamports", lamports, "tx", sig.String())
	return sig, nil
}
