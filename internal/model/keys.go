package model

// KeyConvertRequest represents request for POST /keys/...
type KeyConvertRequest struct {
	Key string `json:"key"`
}

// ByteListResponse represents response for POST /keys/to-bytes
type ByteListResponse struct {
	Wallet  string `json:"wallet"` // solana-keygen JSON byte list
	Address string `json:"address"`
}

// Base58Response represents response for POST /keys/to-base58
type Base58Response struct {
	PrivateKey string `json:"privateKey"`
	Address    string `json:"address"`
}
