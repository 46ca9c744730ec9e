package api

import (
	"net/http"

	_ "github.com/AlexZinkM/solana-prereq/docs"
	"github.com/AlexZinkM/solana-prereq/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(solanaHandler *handler.SolanaHandler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Key conversion endpoints (stateless)
	mux.HandleFunc("/keys/to-bytes", handler.KeysToBytes)
	mux.HandleFunc("/keys/to-base58", handler.KeysToBase58)

	// Wallet endpoints
	mux.HandleFunc("/wallet/generate", solanaHandler.Generate)
	mux.HandleFunc("/wallet/balance", solanaHandler.GetBalance)
	mux.HandleFunc("/wallet/transactions", solanaHandler.GetTransactions)
	mux.HandleFunc("/wallet/airdrop", solanaHandler.Airdrop)
	mux.HandleFunc("/wallet/transfer", solanaHandler.Transfer)
	mux.HandleFunc("/wallet/drain", solanaHandler.Drain)

	return mux
}
