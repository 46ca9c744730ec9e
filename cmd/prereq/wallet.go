package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlexZinkM/solana-prereq/internal/common"
	"github.com/AlexZinkM/solana-prereq/internal/config"
	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
	"github.com/AlexZinkM/solana-prereq/internal/keystore"
	"github.com/AlexZinkM/solana-prereq/internal/ledger"
	"github.com/AlexZinkM/solana-prereq/internal/model"
	"github.com/AlexZinkM/solana-prereq/solana"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/urfave/cli/v2"
)

var walletFlag = &cli.StringFlag{
	Name:  "wallet",
	Usage: "keypair file to sign with (default: WALLET_PATH)",
}

var toFlag = &cli.StringFlag{
	Name:  "to",
	Usage: "destination address (default: DESTINATION)",
}

func newLedger() *ledger.RPCLedger {
	return ledger.NewRPCLedger(config.GetRPCURL(), config.GetWSURL(), config.GetCommitment())
}

// loadWallet loads the keypair named by --wallet, or fallback when unset.
func loadWallet(cctx *cli.Context, fallback string) (keycodec.KeyMaterial, error) {
	path := cctx.String(walletFlag.Name)
	if path == "" {
		path = fallback
	}
	return keystore.Load(path, config.PasswordFromTerminal)
}

// walletAddress resolves the address of the --wallet file without
// decrypting it when it is a .cwt wallet.
func walletAddress(cctx *cli.Context, fallback string) (solanago.PublicKey, error) {
	path := cctx.String(walletFlag.Name)
	if path == "" {
		path = fallback
	}
	if strings.EqualFold(filepath.Ext(path), ".cwt") {
		address, err := keystore.ReadWalletAddress(path)
		if err != nil {
			return solanago.PublicKey{}, err
		}
		return solanago.PublicKeyFromBase58(address)
	}

	key, err := keystore.ReadKeypair(path)
	if err != nil {
		return solanago.PublicKey{}, err
	}
	defer clear(key)
	return key.PublicKey()
}

func destination(cctx *cli.Context) (solanago.PublicKey, error) {
	to := cctx.String(toFlag.Name)
	if to == "" {
		to = config.Get().Destination
	}
	pub, err := solanago.PublicKeyFromBase58(to)
	if err != nil {
		return solanago.PublicKey{}, fmt.Errorf("invalid destination address %q: %w", to, err)
	}
	return pub, nil
}

func printTx(sig solanago.Signature) {
	fmt.Printf("Success! Check out your TX here:\n%s\n", solana.ExplorerURL(sig, config.Get().Cluster))
}

var airdropCmd = &cli.Command{
	Name:  "airdrop",
	Usage: "request devnet SOL for the wallet",
	Flags: []cli.Flag{
		walletFlag,
		&cli.Uint64Flag{
			Name:  "lamports",
			Usage: "amount to request (default: AIRDROP_LAMPORTS)",
		},
	},
	Action: func(cctx *cli.Context) error {
		address, err := walletAddress(cctx, config.GetWalletPath())
		if err != nil {
			return err
		}

		lamports := cctx.Uint64("lamports")
		if lamports == 0 {
			lamports = config.Get().AirdropLamports
		}

		sig, err := solana.Airdrop(cctx.Context, newLedger(), address, lamports)
		if err != nil {
			return err
		}
		printTx(sig)
		return nil
	},
}

var transferCmd = &cli.Command{
	Name:  "transfer",
	Usage: "send a fixed amount of SOL",
	Flags: []cli.Flag{
		walletFlag,
		toFlag,
		&cli.StringFlag{
			Name:  "amount",
			Usage: "amount in SOL (default: TRANSFER_SOL)",
		},
	},
	Action: func(cctx *cli.Context) error {
		to, err := destination(cctx)
		if err != nil {
			return err
		}

		amount := cctx.String("amount")
		if amount == "" {
			amount = config.Get().TransferSOL
		}
		lamports, err := common.SOLToLamports(amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", amount, err)
		}

		key, err := loadWallet(cctx, config.GetWalletPath())
		if err != nil {
			return err
		}
		defer clear(key)

		sig, err := solana.Transfer(cctx.Context, newLedger(), key, to, lamports)
		if err != nil {
			return err
		}
		printTx(sig)
		return nil
	},
}

var drainCmd = &cli.Command{
	Name:  "drain",
	Usage: "send the whole balance, net of fee",
	Flags: []cli.Flag{
		walletFlag,
		toFlag,
	},
	Action: func(cctx *cli.Context) error {
		to, err := destination(cctx)
		if err != nil {
			return err
		}

		key, err := loadWallet(cctx, config.GetWalletPath())
		if err != nil {
			return err
		}
		defer clear(key)

		res, err := solana.Drain(cctx.Context, newLedger(), key, to)
		if err != nil {
			return err
		}
		fmt.Printf("Sent %s SOL (fee %d lamports)\n", common.LamportsToSOL(res.Lamports), res.Fee)
		printTx(res.Signature)
		return nil
	},
}

var historyCmd = &cli.Command{
	Name:  "history",
	Usage: "list recent transactions of the wallet",
	Flags: []cli.Flag{
		walletFlag,
		&cli.IntFlag{
			Name:  "limit",
			Value: model.DefaultLogLimit,
			Usage: "number of signatures to fetch",
		},
		&cli.BoolFlag{
			Name:  "failed",
			Usage: "only show failed transactions",
		},
	},
	Action: func(cctx *cli.Context) error {
		address, err := walletAddress(cctx, config.GetWalletPath())
		if err != nil {
			return err
		}

		req := &model.LogRequest{Limit: cctx.Int("limit")}
		if cctx.Bool("failed") {
			failed := model.TransactionStatusFailed
			req.Status = &failed
		}

		resp, err := solana.GetTransactions(cctx.Context, newLedger(), address, config.Get().Cluster, req)
		if err != nil {
			return err
		}

		fmt.Printf("Transactions of %s:\n", resp.Address)
		for _, tx := range resp.Transactions {
			when := "-"
			if tx.Timestamp != nil {
				when = tx.Timestamp.UTC().Format(time.RFC3339)
			}
			fmt.Printf("%-20s  slot %-10d  %-7s  %s\n", when, tx.Slot, tx.Status, tx.Explorer)
		}
		return nil
	},
}
