package solana

import (
	"context"
	"sort"

	"github.com/AlexZinkM/solana-prereq/internal/ledger"
	"github.com/AlexZinkM/solana-prereq/internal/model"

	"github.com/gagliardetto/solana-go"
)

// GetTransactions lists recent transactions of address with filtering,
// newest first. A transaction without block time never matches a date filter.
func GetTransactions(ctx context.Context, l ledger.Ledger, address solana.PublicKey, cluster string, req *model.LogRequest) (*model.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit == 0 {
		limit = model.DefaultLogLimit
	}

	sigs, err := l.Signatures(ctx, address, limit)
	if err != nil {
		return nil, err
	}

	resultTransactions := make([]model.Transaction, 0, len(sigs))
	for _, sig := range sigs {
		status := model.TransactionStatusSuccess
		if sig.Err != nil {
			status = model.TransactionStatusFailed
		}

		// Filter by status
		if req.Status != nil && *req.Status != status {
			continue
		}

		tx := model.Transaction{
			TxID:         sig.Signature.String(),
			Slot:         sig.Slot,
			Status:       status,
			Confirmation: string(sig.ConfirmationStatus),
			Explorer:     ExplorerURL(sig.Signature, cluster),
		}
		if sig.Memo != nil {
			tx.Memo = *sig.Memo
		}
		if sig.BlockTime != nil {
			ts := sig.BlockTime.Time()
			tx.Timestamp = &ts
		}

		// Filter by dates
		if req.From != nil || req.To != nil {
			if tx.Timestamp == nil {
				continue
			}
			if req.From != nil && tx.Timestamp.Before(*req.From) {
				continue
			}
			if req.To != nil && tx.Timestamp.After(*req.To) {
				continue
			}
		}

		resultTransactions = append(resultTransactions, tx)
	}

	// Sort by slot DESC (newest first)
	sort.SliceStable(resultTransactions, func(i, j int) bool {
		return resultTransactions[i].Slot > resultTransactions[j].Slot
	})

	logger.Debugw("transactions listed", "address", address.String(), "fetched", len(sigs), "returned", len(resultTransactions))
	return &model.LogResponse{
		Address:      address.String(),
		Transactions: resultTransactions,
	}, nil
}
