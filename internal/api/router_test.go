package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlexZinkM/solana-prereq/internal/handler"
	"github.com/AlexZinkM/solana-prereq/internal/keycodec"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLedger struct{}

func (nopLedger) Balance(context.Context, solana.PublicKey) (uint64, error) {
	return 42, nil
}

func (nopLedger) LatestBlockhash(context.Context) (solana.Hash, error) {
	return solana.Hash{}, nil
}

func (nopLedger) FeeForMessage(context.Context, *solana.Message) (uint64, error) {
	return 0, nil
}

func (nopLedger) Submit(context.Context, *solana.Transaction) (solana.Signature, error) {
	return solana.Signature{}, nil
}

func (nopLedger) RequestAirdrop(context.Context, solana.PublicKey, uint64) (solana.Signature, error) {
	return solana.Signature{}, nil
}

func (nopLedger) Signatures(context.Context, solana.PublicKey, int) ([]*rpc.TransactionSignature, error) {
	return nil, nil
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	priv := solana.NewWallet().PrivateKey
	h, err := handler.NewSolanaHandler(handler.SolanaHandlerConfig{
		Ledger:  nopLedger{},
		Address: priv.PublicKey(),
		LoadKey: func() (keycodec.KeyMaterial, error) {
			return keycodec.KeyMaterial(append([]byte(nil), priv...)), nil
		},
		Cluster:         "devnet",
		AirdropLamports: 1,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(SetupRouter(h))
	t.Cleanup(srv.Close)
	return srv
}

func TestRoutes(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/wallet/balance")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/keys/to-base58", "application/json", strings.NewReader(`{"key":"[1,2]"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/wallet/transactions?limit=5")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// generation is not configured on this server
	resp, err = http.Post(srv.URL+"/wallet/generate", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSwaggerDoc(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "/wallet/drain")
	assert.Contains(t, string(body), "/keys/to-bytes")
	assert.Contains(t, string(body), "/wallet/transactions")
	assert.Contains(t, string(body), "/wallet/generate")
}
