package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/moneta-app/banksync/internal/account"
	accountStore "github.com/moneta-app/banksync/internal/account/store"
	"github.com/moneta-app/banksync/internal/category"
	"github.com/moneta-app/banksync/internal/config"
	connectionStore "github.com/moneta-app/banksync/internal/connection/store"
	"github.com/moneta-app/banksync/internal/database"
	banksyncHttp "github.com/moneta-app/banksync/internal/http"
	providerHandler "github.com/moneta-app/banksync/internal/http/provider"
	syncHandler "github.com/moneta-app/banksync/internal/http/sync"
	"github.com/moneta-app/banksync/internal/metrics"
	"github.com/moneta-app/banksync/internal/scheduler"
	"github.com/moneta-app/banksync/internal/scraper"
	"github.com/moneta-app/banksync/internal/syncer"
	"github.com/moneta-app/banksync/internal/transaction"
	txStore "github.com/moneta-app/banksync/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rules := category.DefaultRules()

	if cfg.Sync.RulesPath != "" {
		rules, err = category.LoadRules(cfg.Sync.RulesPath)
		if err != nil {
			slog.Error("failed to load category rules", "path", cfg.Sync.RulesPath, "error", err)
			os.Exit(1)
		}
	}

	registry := scraper.NewRegistry()
	for _, info := range scraper.Catalog() {
		registry.Register(info.ID, scraper.NewExec(cfg.Sync.ScraperCommand, info.ID))
	}

	var (
		connections    = connectionStore.New(db)
		accountService = account.NewService(accountStore.New(db))
		txService      = transaction.NewService(txStore.New(db), category.NewEngine(rules))
		syncService    = syncer.NewService(
			registry,
			accountService,
			txService,
			connections,
			metrics.New(prometheus.DefaultRegisterer),
			cfg.Sync.LookbackDays,
		)
	)

	nightly, err := scheduler.New(cfg.Sync.NightlySchedule, cfg.Sync.Timezone, syncService, connections)
	if err != nil {
		slog.Error("failed to set up nightly sync", "error", err)
		os.Exit(1)
	}

	nightly.Start()
	defer nightly.Stop()

	router := banksyncHttp.New(
		syncHandler.NewHandler(syncService, connections),
		providerHandler.NewHandler(),
		cfg.Auth.JWTSecret,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
