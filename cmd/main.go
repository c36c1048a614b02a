package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"fundscope/internal/adapter/chain"
	httpadapter "fundscope/internal/adapter/http"
	"fundscope/internal/adapter/postgres"
	"fundscope/internal/adapter/usecase"
	"fundscope/internal/config"
	"fundscope/internal/db"
	"fundscope/internal/observability"
)

// main is the entry point of the fundscope service. It loads configuration,
// optionally runs database migrations, connects to PostgreSQL and the RPC
// endpoint, then starts the HTTP server. On SIGINT or SIGTERM it shuts the
// server down gracefully.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	if err = run(cfg, logger); err != nil {
		logger.Error("fundscope stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	rpc, err := chain.Dial(ctx, cfg.Chain.RPCURL)
	if err != nil {
		return fmt.Errorf("dial rpc: %w", err)
	}
	defer rpc.Close()

	var signer *chain.Signer
	if cfg.Chain.KeystoreDir != "" {
		signer, err = chain.OpenKeystore(cfg.Chain.KeystoreDir, cfg.Chain.KeystorePassphrase, big.NewInt(cfg.Chain.ChainID))
		if err != nil {
			return fmt.Errorf("open keystore: %w", err)
		}
		logger.Info("keystore unlocked", slog.Int("accounts", len(signer.Accounts())))
	} else {
		logger.Warn("no keystore configured, transactions disabled")
	}

	metrics := observability.NewMetrics("fundscope")
	client := chain.NewClient(rpc, common.HexToAddress(cfg.Chain.FactoryAddress), chain.Options{
		CallTimeout:    cfg.Chain.CallTimeout,
		Limiter:        rate.NewLimiter(rate.Limit(cfg.Chain.RequestsPerSecond), cfg.Chain.Burst),
		Signer:         signer,
		WaitReceipt:    cfg.Chain.WaitReceipt,
		ReceiptTimeout: cfg.Chain.ReceiptTimeout,
		Metrics:        metrics,
	})

	repo := postgres.NewCampaignRepository(pool)
	svc := usecase.NewCampaignUseCase(client, repo, logger).WithConcurrency(cfg.Chain.SnapshotConcurrency)

	handler := httpadapter.NewHandler(svc, logger,
		httpadapter.WithMetrics(metrics),
		httpadapter.WithReadiness(pool.Ping),
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("factory", cfg.Chain.FactoryAddress),
			slog.Int64("chain_id", cfg.Chain.ChainID),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
