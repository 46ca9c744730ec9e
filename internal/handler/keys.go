package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
	"github.com/AlexZinkM/solana-prereq/internal/model"
)

// KeysToBytes handles POST /keys/to-bytes
// @Summary      Base58 private key to wallet file format
// @Description  Decodes a base58 private key into the solana-keygen JSON byte list
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        request  body      model.KeyConvertRequest  true  "Base58 private key"
// @Success      200      {object}  model.ByteListResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /keys/to-bytes [post]
func KeysToBytes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.KeyConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	key, err := keycodec.DecodeBase58(req.Key)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	defer clear(key)

	pub, err := key.PublicKey()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ByteListResponse{
		Wallet:  keycodec.EncodeByteList(key),
		Address: pub.String(),
	})
}

// KeysToBase58 handles POST /keys/to-base58
// @Summary      Wallet file format to base58 private key
// @Description  Encodes a solana-keygen JSON byte list as a base58 private key
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        request  body      model.KeyConvertRequest  true  "Byte list, e.g. [12,34,...]"
// @Success      200      {object}  model.Base58Response
// @Failure      400      {object}  model.ErrorResponse
// @Router       /keys/to-base58 [post]
func KeysToBase58(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.KeyConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	key, err := keycodec.DecodeByteList(req.Key)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	defer clear(key)

	pub, err := key.PublicKey()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, model.Base58Response{
		PrivateKey: keycodec.EncodeBase58(key),
		Address:    pub.String(),
	})
}
