// Package ledger is the boundary to the Solana JSON-RPC node.
package ledger

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/AlexZinkM/solana-prereq/internal/log"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
)

var logger = log.Logger("ledger")

// Ledger is everything the wallet operations need from a node.
type Ledger interface {
	// Balance returns the balance of account in lamports.
	Balance(ctx context.Context, account solana.PublicKey) (uint64, error)

	// LatestBlockhash returns a recent blockhash to bind a transaction's lifetime.
	LatestBlockhash(ctx context.Context) (solana.Hash, error)

	// FeeForMessage returns the fee in lamports the node would charge for msg.
	FeeForMessage(ctx context.Context, msg *solana.Message) (uint64, error)

	// Submit sends a signed transaction and returns its signature.
	Submit(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)

	// RequestAirdrop asks the cluster faucet for lamports.
	RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error)

	// Signatures returns up to limit recent transaction signatures for account, newest first.
	Signatures(ctx context.Context, account solana.PublicKey, limit int) ([]*rpc.TransactionSignature, error)
}

// ErrFeeUnavailable is returned when the node cannot price a message,
// usually because its blockhash has expired.
var ErrFeeUnavailable = errors.New("unable to calculate transaction fee")

// RPCLedger implements Ledger over Solana JSON-RPC
type RPCLedger struct {
	rpcClient  *rpc.Client
	rpcURL     string
	wsURL      string
	commitment rpc.CommitmentType
}

var _ Ledger = (*RPCLedger)(nil)

// NewRPCLedger creates a ledger for rpcURL. When wsURL is not empty, Submit
// waits for confirmation over a websocket subscription.
func NewRPCLedger(rpcURL, wsURL string, commitment rpc.CommitmentType) *RPCLedger {
	return &RPCLedger{
		rpcClient:  rpc.New(rpcURL),
		rpcURL:     rpcURL,
		wsURL:      wsURL,
		commitment: commitment,
	}
}

// Balance gets SOL balance in lamports
func (l *RPCLedger) Balance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	balance, err := l.rpcClient.GetBalance(ctx, account, l.commitment)
	if err != nil {
		return 0, fmt.Errorf("failed to get SOL balance: %w", err)
	}
	return balance.Value, nil
}

// LatestBlockhash gets latest blockhash (GetRecentBlockhash is deprecated)
func (l *RPCLedger) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	recent, err := l.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}
	return recent.Value.Blockhash, nil
}

// FeeForMessage prices a compiled message with getFeeForMessage
func (l *RPCLedger) FeeForMessage(ctx context.Context, msg *solana.Message) (uint64, error) {
	raw, err := msg.MarshalBinary()
	if err != nil {
		return 0, fmt.Errorf("failed to serialize message: %w", err)
	}

	fee, err := l.rpcClient.GetFeeForMessage(ctx, base64.StdEncoding.EncodeToString(raw), l.commitment)
	if err != nil {
		return 0, fmt.Errorf("failed to get fee for message: %w", err)
	}
	if fee == nil || fee.Value == nil {
		return 0, ErrFeeUnavailable
	}
	return *fee.Value, nil
}

// Submit sends tx with preflight at the configured commitment. When a
// websocket URL is set it also waits until the cluster reaches that
// commitment for the signature, or ctx is done.
func (l *RPCLedger) Submit(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := l.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false, // Transaction validation before node
			PreflightCommitment: l.commitment,
		},
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	if l.wsURL == "" {
		return sig, nil
	}

	if err := l.waitForSignature(ctx, sig); err != nil {
		return sig, err
	}
	return sig, nil
}

func (l *RPCLedger) waitForSignature(ctx context.Context, sig solana.Signature) error {
	wsClient, err := ws.Connect(ctx, l.wsURL)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", l.wsURL, err)
	}
	defer wsClient.Close()

	sub, err := wsClient.SignatureSubscribe(sig, l.commitment)
	if err != nil {
		return fmt.Errorf("failed to subscribe to signature: %w", err)
	}
	defer sub.Unsubscribe()

	logger.Debugw("waiting for confirmation", "tx", sig.String(), "rpc", l.rpcURL, "ws", l.wsURL, "commitment", l.commitment)
	res, err := sub.Recv(ctx)
	if err != nil {
		return fmt.Errorf("failed to confirm transaction %s: %w", sig, err)
	}
	if res.Value.Err != nil {
		return fmt.Errorf("transaction %s failed: %v", sig, res.Value.Err)
	}
	return nil
}

// Signatures lists the most recent transaction signatures touching account,
// newest first.
func (l *RPCLedger) Signatures(ctx context.Context, account solana.PublicKey, limit int) ([]*rpc.TransactionSignature, error) {
	sigs, err := l.rpcClient.GetSignaturesForAddressWithOpts(
		ctx,
		account,
		&rpc.GetSignaturesForAddressOpts{
			Limit:      &limit,
			Commitment: l.commitment,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get signatures: %w", err)
	}
	return sigs, nil
}

// RequestAirdrop requests faucet lamports; only devnet and testnet serve it
func (l *RPCLedger) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	sig, err := l.rpcClient.RequestAirdrop(ctx, account, lamports, l.commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to request airdrop: %w", err)
	}
	return sig, nil
}
