package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/AlexZinkM/solana-prereq/internal/common"
	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
	"github.com/AlexZinkM/solana-prereq/internal/keystore"
	"github.com/AlexZinkM/solana-prereq/internal/ledger"
	"github.com/AlexZinkM/solana-prereq/internal/model"
	"github.com/AlexZinkM/solana-prereq/internal/transfer"
	"github.com/AlexZinkM/solana-prereq/solana"

	solanago "github.com/gagliardetto/solana-go"
)

// KeyLoader returns the wallet key. Caller clears it after use.
type KeyLoader func() (keycodec.KeyMaterial, error)

// SolanaHandlerConfig wires a SolanaHandler
type SolanaHandlerConfig struct {
	Ledger  ledger.Ledger
	Address solanago.PublicKey // public key of the served wallet, read once at startup
	LoadKey KeyLoader          // only called on signing paths

	// Password encrypts wallets generated with a .cwt GeneratePath. May be nil.
	Password     func() ([]byte, error)
	GeneratePath string

	Cluster         string
	AirdropLamports uint64
}

// SolanaHandler serves wallet operations for a single configured keypair
type SolanaHandler struct {
	cfg SolanaHandlerConfig

	// one signing operation at a time; each may decrypt the wallet
	signMutex sync.Mutex
}

// NewSolanaHandler creates a new SolanaHandler
func NewSolanaHandler(cfg SolanaHandlerConfig) (*SolanaHandler, error) {
	if cfg.Ledger == nil || cfg.LoadKey == nil {
		return nil, errors.New("ledger and key loader are required")
	}
	if cfg.Address.IsZero() {
		return nil, errors.New("wallet address is required")
	}
	return &SolanaHandler{cfg: cfg}, nil
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a new keypair at the configured path (.cwt is encrypted, anything else is a solana-keygen file)
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/generate [post]
func (h *SolanaHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	if h.cfg.GeneratePath == "" {
		writeError(w, http.StatusNotImplemented, errors.New("wallet generation is not configured"))
		return
	}

	var password []byte
	if strings.EqualFold(filepath.Ext(h.cfg.GeneratePath), ".cwt") {
		if h.cfg.Password == nil {
			writeError(w, http.StatusBadRequest, errors.New("password is required for encrypted wallets"))
			return
		}
		pw, err := h.cfg.Password()
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		defer clear(pw) // Always clear password from memory
		password = pw
	}

	h.signMutex.Lock()
	defer h.signMutex.Unlock()

	address, err := solana.GenerateWallet(h.cfg.GeneratePath, h.cfg.Cluster, password)
	if err != nil {
		if errors.Is(err, keystore.ErrFileNotEmpty) {
			writeError(w, http.StatusConflict, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
		Path:    h.cfg.GeneratePath,
	})
}

// GetBalance handles GET /wallet/balance
// @Summary      Get wallet balance
// @Description  Gets the SOL balance of the configured wallet
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /wallet/balance [get]
func (h *SolanaHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	balance, err := solana.GetBalance(r.Context(), h.cfg.Ledger, h.cfg.Address)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

// Airdrop handles POST /wallet/airdrop
// @Summary      Request devnet airdrop
// @Description  Requests SOL from the cluster faucet; lamports defaults to AIRDROP_LAMPORTS
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.AirdropRequest  false  "Amount"
// @Success      200      {object}  model.TxResponse
// @Failure      500      {object}  model.ErrorResponse
// @Router       /wallet/airdrop [post]
func (h *SolanaHandler) Airdrop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.AirdropRequest
	// empty body means default amount
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Lamports == 0 {
		req.Lamports = h.cfg.AirdropLamports
	}

	sig, err := solana.Airdrop(r.Context(), h.cfg.Ledger, h.cfg.Address, req.Lamports)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, h.txResponse(sig, req.Lamports))
}

// Transfer handles POST /wallet/transfer
// @Summary      Send SOL
// @Description  Sends a SOL transaction to the specified address
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Payment data"
// @Success      200      {object}  model.TxResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/transfer [post]
func (h *SolanaHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	to, req, ok := h.decodeTransfer(w, r)
	if !ok {
		return
	}

	lamports, err := common.SOLToLamports(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if lamports == 0 {
		writeError(w, http.StatusBadRequest, errors.New("amount must be positive"))
		return
	}

	h.signMutex.Lock()
	defer h.signMutex.Unlock()

	key, err := h.cfg.LoadKey()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer clear(key)

	sig, err := solana.Transfer(r.Context(), h.cfg.Ledger, key, to, lamports)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, h.txResponse(sig, lamports))
}

// Drain handles POST /wallet/drain
// @Summary      Empty the wallet
// @Description  Transfers the whole balance minus the network fee to the specified address
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Destination (amount is ignored)"
// @Success      200      {object}  model.TxResponse
// @Failure      422      {object}  model.ErrorResponse
// @Router       /wallet/drain [post]
func (h *SolanaHandler) Drain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	to, _, ok := h.decodeTransfer(w, r)
	if !ok {
		return
	}

	h.signMutex.Lock()
	defer h.signMutex.Unlock()

	key, err := h.cfg.LoadKey()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer clear(key)

	res, err := solana.Drain(r.Context(), h.cfg.Ledger, key, to)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, h.txResponse(res.Signature, res.Lamports))
}

// GetTransactions handles GET /wallet/transactions
// @Summary      Get wallet transactions
// @Description  Lists recent transactions of the configured wallet, newest first
// @Tags         wallet
// @Produce      json
// @Param        limit   query     int     false  "Number of signatures to fetch (1-1000, default 10)"
// @Param        status  query     string  false  "success or failed"
// @Param        from    query     string  false  "From date YYYY-MM-DD"
// @Param        to      query     string  false  "To date YYYY-MM-DD, inclusive"
// @Success      200     {object}  model.LogResponse
// @Failure      400     {object}  model.ErrorResponse
// @Router       /wallet/transactions [get]
func (h *SolanaHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	req, err := parseLogRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	logResp, err := solana.GetTransactions(r.Context(), h.cfg.Ledger, h.cfg.Address, h.cfg.Cluster, req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, logResp)
}

func parseLogRequest(q url.Values) (*model.LogRequest, error) {
	var req model.LogRequest

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return nil, fmt.Errorf("invalid limit: %q", limitStr)
		}
		req.Limit = limit
	}

	if statusStr := q.Get("status"); statusStr != "" {
		status := model.TransactionStatus(statusStr)
		req.Status = &status
	}

	// Parse date parameters (YYYY-MM-DD)
	const dateLayout = "2006-01-02"
	if fromStr := q.Get("from"); fromStr != "" {
		t, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return nil, errors.New("invalid from date: use YYYY-MM-DD (e.g. 2006-01-02)")
		}
		req.From = &t
	}
	if toStr := q.Get("to"); toStr != "" {
		t, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return nil, errors.New("invalid to date: use YYYY-MM-DD (e.g. 2006-01-02)")
		}
		// End of day so filter is inclusive
		t = t.Add(24*time.Hour - time.Nanosecond)
		req.To = &t
	}
	return &req, nil
}

func (h *SolanaHandler) decodeTransfer(w http.ResponseWriter, r *http.Request) (solanago.PublicKey, *model.TransferRequest, bool) {
	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return solanago.PublicKey{}, nil, false
	}

	to, err := solanago.PublicKeyFromBase58(req.ToAddress)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid Solana address"))
		return solanago.PublicKey{}, nil, false
	}
	return to, &req, true
}

func (h *SolanaHandler) txResponse(sig solanago.Signature, lamports uint64) model.TxResponse {
	return model.TxResponse{
		TxID:     sig.String(),
		Lamports: lamports,
		Explorer: solana.ExplorerURL(sig, h.cfg.Cluster),
	}
}

// statusFor maps the error taxonomy to HTTP status codes
func statusFor(err error) int {
	switch {
	case keycodec.IsDecodeError(err), keycodec.IsParseError(err):
		return http.StatusBadRequest
	case transfer.IsInsufficientBalanceError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}
