package solana

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
)

// verifyMessage is signed to prove the keypair is usable
var verifyMessage = []byte("I verify my Solana Keypair!")

// VerifyKeypair signs a fixed message with key and checks the signature
// against the key's public key.
func VerifyKeypair(key keycodec.KeyMaterial) error {
	wallet, err := privateKey(key)
	if err != nil {
		return err
	}
	defer clear(wallet)

	sig, err := wallet.Sign(verifyMessage)
	if err != nil {
		return fmt.Errorf("failed to sign message: %w", err)
	}
	if !sig.Verify(wallet.PublicKey(), verifyMessage) {
		return errors.New("signature verification failed")
	}
	return nil
}
