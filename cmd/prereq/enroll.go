package main

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/solana-prereq/internal/config"
	"github.com/AlexZinkM/solana-prereq/solana"

	"github.com/urfave/cli/v2"
)

var enrollCmd = &cli.Command{
	Name:  "enroll",
	Usage: "create the enrollment account with your GitHub handle",
	Flags: []cli.Flag{
		walletFlag,
		&cli.StringFlag{
			Name:  "github",
			Usage: "GitHub handle (default: GITHUB_HANDLE)",
		},
	},
	Action: func(cctx *cli.Context) error {
		github := cctx.String("github")
		if github == "" {
			github = config.Get().GithubHandle
		}
		if github == "" {
			return errors.New("github handle is required: pass --github or set GITHUB_HANDLE")
		}

		key, err := loadWallet(cctx, config.Get().EnrollWalletPath)
		if err != nil {
			return err
		}
		defer clear(key)

		sig, err := solana.Enroll(cctx.Context, newLedger(), key, github)
		if err != nil {
			return err
		}
		printTx(sig)
		return nil
	},
}

var submitCmd = &cli.Command{
	Name:  "submit",
	Usage: "submit the Rust prerequisite (or TypeScript with --ts) and mint the completion NFT",
	Flags: []cli.Flag{
		walletFlag,
		&cli.BoolFlag{
			Name:  "ts",
			Usage: "submit the TypeScript prerequisite instead",
		},
	},
	Action: func(cctx *cli.Context) error {
		key, err := loadWallet(cctx, config.Get().EnrollWalletPath)
		if err != nil {
			return err
		}
		defer clear(key)

		submit := solana.SubmitRs
		if cctx.Bool("ts") {
			submit = solana.SubmitTs
		}

		sig, mint, err := submit(cctx.Context, newLedger(), key)
		if err != nil {
			return err
		}
		fmt.Printf("Minted %s\n", mint)
		printTx(sig)
		return nil
	},
}
