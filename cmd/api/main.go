package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/diagnosis/wallet-pass/internal/http/handlers/pass"
	"github.com/diagnosis/wallet-pass/internal/http/router"
	"github.com/diagnosis/wallet-pass/internal/platform/auth"
	"github.com/diagnosis/wallet-pass/internal/platform/wallet"
	"github.com/diagnosis/wallet-pass/pkg/config"
	"github.com/diagnosis/wallet-pass/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Failed to read .env file", "error", err)
	}
	logger.SetDefault(logger.New(os.Getenv("LOG_LEVEL")))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	builder, err := newBuilder(cfg.Wallet)
	if err != nil {
		logger.Error("Invalid pass template", "error", err)
		os.Exit(1)
	}

	issuer, err := auth.NewIssuer(cfg.Wallet.PrivateKey, cfg.Wallet.ServiceAccountEmail, cfg.Wallet.AllowedOrigins)
	if err != nil {
		logger.Error("Failed to load signing key", "error", err)
		os.Exit(1)
	}

	h := pass.NewHandler(builder, issuer)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.New(h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down wallet pass service...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Wallet pass service shutdown error", "error", err)
		}
	}()

	logger.Info("Starting wallet pass service", "port", cfg.Server.Port, "wallet", cfg.Wallet, "class_id", builder.ClassID())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Wallet pass service error", "error", err)
		os.Exit(1)
	}
}

func newBuilder(wc config.WalletConfig) (*wallet.Builder, error) {
	tmpl, err := wallet.LookupTemplate(wc.Template)
	if err != nil {
		return nil, err
	}
	if wc.SubheaderMode != "" {
		mode, err := wallet.ParseSubheaderMode(wc.SubheaderMode)
		if err != nil {
			return nil, err
		}
		tmpl.Subheader = mode
	}
	if wc.ClassSuffix != "" {
		tmpl.ClassSuffix = wc.ClassSuffix
	}
	return wallet.NewBuilder(wc.IssuerID, tmpl)
}
