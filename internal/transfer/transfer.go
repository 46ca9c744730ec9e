// Package transfer builds lamport transfer requests without touching the network.
package transfer

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/solana-prereq/internal/common"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// InsufficientBalanceError is returned when the fee exceeds the available balance
type InsufficientBalanceError struct {
	Balance uint64
	Fee     uint64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance to cover the transaction fee. Balance: %s SOL, Fee: %s SOL",
		common.LamportsToSOL(e.Balance), common.LamportsToSOL(e.Fee))
}

// IsInsufficientBalanceError checks if error is InsufficientBalanceError
func IsInsufficientBalanceError(err error) bool {
	var ibe *InsufficientBalanceError
	return errors.As(err, &ibe)
}

// Request describes a system-program transfer.
type Request struct {
	Source      solana.PublicKey
	Destination solana.PublicKey
	Lamports    uint64
}

// New creates a request for a fixed amount.
func New(source, destination solana.PublicKey, lamports uint64) Request {
	return Request{
		Source:      source,
		Destination: destination,
		Lamports:    lamports,
	}
}

// Drain creates a request that empties source net of fee.
// fee == balance yields a zero-lamport request.
func Drain(source, destination solana.PublicKey, balance, fee uint64) (Request, error) {
	if fee > balance {
		return Request{}, &InsufficientBalanceError{Balance: balance, Fee: fee}
	}
	return New(source, destination, balance-fee), nil
}

// Instruction returns the system-program transfer instruction for r.
func (r Request) Instruction() solana.Instruction {
	return system.NewTransferInstruction(
		r.Lamports,
		r.Source,
		r.Destination,
	).Build()
}
