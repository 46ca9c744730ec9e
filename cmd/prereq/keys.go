package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlexZinkM/solana-prereq/internal/config"
	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
	"github.com/AlexZinkM/solana-prereq/internal/keystore"
	"github.com/AlexZinkM/solana-prereq/solana"

	"github.com/urfave/cli/v2"
)

var keygenCmd = &cli.Command{
	Name:  "keygen",
	Usage: "generate a new keypair and save it",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "out",
			Usage: "keypair file; a .cwt path is password encrypted (default: WALLET_PATH)",
		},
		&cli.StringFlag{
			Name:  "qr",
			Usage: "also write a PNG QR code of the address here",
		},
	},
	Action: func(cctx *cli.Context) error {
		out := cctx.String("out")
		if out == "" {
			out = config.GetWalletPath()
		}

		var password []byte
		if strings.EqualFold(filepath.Ext(out), ".cwt") {
			pw, err := config.PasswordFromTerminal()
			if err != nil {
				return err
			}
			defer clear(pw)
			password = pw
		}

		address, err := solana.GenerateWallet(out, config.Get().Cluster, password)
		if err != nil {
			return err
		}
		fmt.Printf("You've generated a new Solana wallet: %s\n", address)
		fmt.Printf("Saved to %s\n", out)

		if qr := cctx.String("qr"); qr != "" {
			if err := keystore.WriteQRCode(qr, address); err != nil {
				return err
			}
			fmt.Printf("QR code written to %s\n", qr)
		}
		return nil
	},
}

var base58ToWalletCmd = &cli.Command{
	Name:  "base58-to-wallet",
	Usage: "read a base58 private key from stdin and print it as a wallet file byte list",
	Action: func(cctx *cli.Context) error {
		fmt.Fprintln(os.Stderr, "Input your private key as base58:")
		line, err := readLine(os.Stdin)
		if err != nil {
			return err
		}

		key, err := keycodec.DecodeBase58(line)
		if err != nil {
			return err
		}
		defer clear(key)

		fmt.Fprintln(os.Stderr, "Your wallet file is:")
		fmt.Println(keycodec.EncodeByteList(key))
		return nil
	},
}

var walletToBase58Cmd = &cli.Command{
	Name:  "wallet-to-base58",
	Usage: "read a wallet file byte list from stdin and print it as a base58 private key",
	Action: func(cctx *cli.Context) error {
		fmt.Fprintln(os.Stderr, "Input your private key as a wallet file byte array (e.g. [12,34,...]):")
		line, err := readLine(os.Stdin)
		if err != nil {
			return err
		}

		key, err := keycodec.DecodeByteList(line)
		if err != nil {
			return err
		}
		defer clear(key)

		fmt.Fprintln(os.Stderr, "Your base58-encoded private key is:")
		fmt.Println(keycodec.EncodeBase58(key))
		return nil
	},
}

// readLine reads a single line, accepting a final line without newline.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
