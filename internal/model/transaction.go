package model

import (
	"fmt"
	"time"
)

// TransactionStatus is the outcome of a transaction on chain
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

const (
	DefaultLogLimit = 10
	MaxLogLimit     = 1000 // getSignaturesForAddress upper bound
)

// Transaction represents one signature touching the wallet
type Transaction struct {
	TxID         string            `json:"txId"`
	Slot         uint64            `json:"slot"`
	Timestamp    *time.Time        `json:"timestamp,omitempty"` // nil when the node has no block time
	Status       TransactionStatus `json:"status"`
	Confirmation string            `json:"confirmation,omitempty"`
	Memo         string            `json:"memo,omitempty"`
	Explorer     string            `json:"explorer"`
}

// LogResponse represents response for GET /wallet/transactions
type LogResponse struct {
	Address      string        `json:"address"`
	Transactions []Transaction `json:"transactions"`
}

// LogRequest represents request parameters for GET /wallet/transactions
type LogRequest struct {
	Limit  int                `form:"limit"`
	Status *TransactionStatus `form:"status"`
	From   *time.Time         `form:"from"`
	To     *time.Time         `form:"to"`
}

// Validate validates LogRequest filter parameters.
func (r *LogRequest) Validate() error {
	if r.Limit < 0 || r.Limit > MaxLogLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxLogLimit)
	}
	if r.Status != nil && *r.Status != TransactionStatusSuccess && *r.Status != TransactionStatusFailed {
		return fmt.Errorf("status must be success or failed")
	}
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return fmt.Errorf("to date must be after or equal to from date")
	}
	return nil
}
