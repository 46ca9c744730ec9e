package model

// BalanceResponse represents response for GET /wallet/balance
type BalanceResponse struct {
	Address  string `json:"address"`
	Lamports uint64 `json:"lamports"`
	SOL      string `json:"sol"`
}

// AirdropRequest represents request for POST /wallet/airdrop
type AirdropRequest struct {
	Lamports uint64 `json:"lamports"`
}

// TransferRequest represents request for POST /wallet/transfer and /wallet/drain.
// Amount is ignored by drain.
type TransferRequest struct {
	ToAddress string `json:"toAddress"`
	Amount    string `json:"amount"` // SOL, e.g. "0.1"
}

// TxResponse is returned by every endpoint that submits a transaction
type TxResponse struct {
	TxID     string `json:"txId"`
	Lamports uint64 `json:"lamports,omitempty"`
	Explorer string `json:"explorer"`
}
