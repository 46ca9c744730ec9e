package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/solana-prereq/internal/common"
	"github.com/AlexZinkM/solana-prereq/internal/ledger"
	"github.com/AlexZinkM/solana-prereq/internal/model"

	"github.com/gagliardetto/solana-go"
)

// GetBalance gets wallet balance
func GetBalance(ctx context.Context, l ledger.Ledger, address solana.PublicKey) (*model.BalanceResponse, error) {
	lamports, err := l.Balance(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to check balance: %w", err)
	}

	return &model.BalanceResponse{
		Address:  address.String(),
		Lamports: lamports,
		SOL:      common.LamportsToSOL(lamports),
	}, nil
}
