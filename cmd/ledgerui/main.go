package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledgerui/internal/adapters/rest"
	"ledgerui/internal/adapters/storage/memory/snapshot"
	"ledgerui/internal/adapters/storage/memory/transaction"
	"ledgerui/internal/adapters/webui"
	"ledgerui/internal/config"
	"ledgerui/internal/core/application"
	"ledgerui/internal/core/domain"
	"ledgerui/internal/logger"
	"ledgerui/pkg/ledger"

	"golang.org/x/sync/errgroup"
)

// main is entry point of application.
func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (default: config/config.yml)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := logger.NewAppLogger(cfg.Logger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	appLogger.Info("Configuration loaded successfully",
		"apiBaseURL", cfg.API.BaseURL,
		"refreshIntervalMS", cfg.Refresh.IntervalMS,
	)

	formatter, err := domain.NewMoneyFormatter(cfg.Display.Locale, cfg.Display.CurrencySymbol)
	if err != nil {
		appLogger.Error("Failed to create money formatter", "error", err)
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: time.Duration(cfg.API.ClientTimeoutSeconds) * time.Second}
	txClient, err := rest.NewTransactionsAdapter(cfg.API.BaseURL, httpClient, appLogger.With("component", "rest"))
	if err != nil {
		appLogger.Error("Failed to create transactions API client", "error", err)
		os.Exit(1)
	}

	page := webui.NewPage()
	ledgerService, err := application.NewLedgerService(
		transaction.NewInMemoryTransactionStore(),
		snapshot.NewInMemorySnapshotRepo(),
		txClient,
		page,
		formatter,
		appLogger.With("component", "ledger"),
		application.Config{RefreshInterval: time.Duration(cfg.Refresh.IntervalMS) * time.Millisecond},
	)
	if err != nil {
		appLogger.Error("Failed to create ledger service", "error", err)
		os.Exit(1)
	}

	apiServer, err := webui.NewServer(page, ledgerService, appLogger.With("component", "webui"), &cfg.Server)
	if err != nil {
		appLogger.Error("Failed to create web UI server", "error", err)
		os.Exit(1)
	}

	appLogger.Info("-------------------------------------")
	appLogger.Info("Web UI starting", "address", cfg.Server.Port)
	appLogger.Info("Available Endpoints:")
	appLogger.Info("  GET  /")
	appLogger.Info("  GET  /transactions/list           (rows and balance, auto-refreshing)")
	appLogger.Info("  POST /transactions              (form: id, name, amount)")
	appLogger.Info("  POST /transactions/{id}/edit")
	appLogger.Info("  POST /transactions/{id}/delete")
	appLogger.Info("  POST /form/reset")
	appLogger.Info("  GET  /api/transactions")
	appLogger.Info("-------------------------------------")

	gracefulShutdown(appLogger, ledgerService, apiServer)

	appLogger.Info("Application shut down gracefully.")
}

// gracefulShutdown runs the refresh loop and the web server until a signal or a server error.
func gracefulShutdown(appLogger logger.AppLogger, service ledger.Ledger, apiServer *webui.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := service.Start(ctx); err != nil {
		appLogger.Error("Failed to start ledger service", "error", err)
		return
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := apiServer.Start(); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			appLogger.Info("Shutting down due to OS signal...")
		}

		httpShutdownCtx, cancelHTTPShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelHTTPShutdown()
		if err := apiServer.Shutdown(httpShutdownCtx); err != nil {
			appLogger.Error("HTTP server shutdown error", "error", err)
		}

		stopCtx, cancelStop := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelStop()
		if err := service.Stop(stopCtx); err != nil {
			appLogger.Error("Ledger service shutdown error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Shut down due to error", "error", err)
	}
}
