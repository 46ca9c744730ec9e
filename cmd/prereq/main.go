package main

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/solana-prereq/internal/config"
	"github.com/AlexZinkM/solana-prereq/internal/log"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:                 "prereq",
		Usage:                "Solana devnet prerequisite toolkit",
		Version:              "1.0.0",
		EnableBashCompletion: true,
		Before: func(cctx *cli.Context) error {
			if err := config.Init(); err != nil {
				return err
			}
			return log.SetLevel(config.Get().LogLevel)
		},
		After: func(cctx *cli.Context) error {
			log.Sync()
			return nil
		},
		Commands: []*cli.Command{
			keygenCmd,
			base58ToWalletCmd,
			walletToBase58Cmd,
			airdropCmd,
			transferCmd,
			drainCmd,
			historyCmd,
			enrollCmd,
			submitCmd,
			serveCmd,
		},
	}

	app.Setup()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n\n", err) // nolint:errcheck
		os.Exit(1)
	}
}
