package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/AlexZinkM/solana-prereq/internal/api"
	"github.com/AlexZinkM/solana-prereq/internal/config"
	"github.com/AlexZinkM/solana-prereq/internal/handler"
	"github.com/AlexZinkM/solana-prereq/internal/keycodec"
	"github.com/AlexZinkM/solana-prereq/internal/keystore"
	"github.com/AlexZinkM/solana-prereq/internal/log"
	"github.com/AlexZinkM/solana-prereq/solana"

	"github.com/urfave/cli/v2"
)

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "run the HTTP API",
	Flags: []cli.Flag{
		walletFlag,
	},
	Action: func(cctx *cli.Context) error {
		logger := log.Logger("server")

		path := cctx.String(walletFlag.Name)
		if path == "" {
			path = config.GetWalletPath()
		}
		// prompt once up front; requests cannot reach the terminal
		if strings.EqualFold(filepath.Ext(path), ".cwt") {
			locked, err := keystore.ReadWalletAddress(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Unlocking wallet %s\n", locked)
			if err := config.PromptForPassword(); err != nil {
				return err
			}
		}
		loadKey := func() (keycodec.KeyMaterial, error) {
			return keystore.Load(path, config.GetPasswordBytes)
		}

		key, err := loadKey()
		if err != nil {
			return err
		}
		if err := solana.VerifyKeypair(key); err != nil {
			clear(key)
			return err
		}
		address, err := key.PublicKey()
		clear(key)
		if err != nil {
			return err
		}

		h, err := handler.NewSolanaHandler(handler.SolanaHandlerConfig{
			Ledger:          newLedger(),
			Address:         address,
			LoadKey:         loadKey,
			Password:        config.GetPasswordBytes,
			GeneratePath:    config.Get().EnrollWalletPath,
			Cluster:         config.Get().Cluster,
			AirdropLamports: config.Get().AirdropLamports,
		})
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              ":" + config.Get().Port,
			Handler:           api.SetupRouter(h),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cctx.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Infow("listening", "addr", srv.Addr, "wallet", address.String(), "swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", srv.Addr))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
