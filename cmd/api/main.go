package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"holistic-daily/config"
	_ "holistic-daily/docs" // Swagger docs
	"holistic-daily/internal/catalog"
	"holistic-daily/internal/dailytask/repository"
	"holistic-daily/internal/dailytask/repository/postgre"
	"holistic-daily/internal/dailytask/repository/sqlite"
	"holistic-daily/internal/dailytask/repository/supabase"
	"holistic-daily/internal/httpserver"
	"holistic-daily/internal/support"
	supportTelegram "holistic-daily/internal/support/delivery/telegram"
	"holistic-daily/internal/support/provider/keyword"
	"holistic-daily/internal/support/provider/llm"
	"holistic-daily/pkg/datemath"
	"holistic-daily/pkg/jwt"
	"holistic-daily/pkg/llmprovider"
	"holistic-daily/pkg/log"
	"holistic-daily/pkg/telegram"
)

// @title       Holistic Daily API
// @description Daily wellness tasks across nutrition, movement and mental stimulation, with onboarding and a support assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Holistic Daily...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server exited with error: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Task store
	repo, closeStore, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	defer closeStore()
	logger.Infof(ctx, "Task store: %s", cfg.Store.Driver)

	// 4. Catalog, calendar and generator
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	parser, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.App.Timezone, err)
		parser, _ = datemath.NewParser("UTC")
	}

	generator := catalog.NewGenerator(cat, parser, cfg.Catalog.PlaceholderUserID, repo)

	// 5. Support provider
	provider, err := newSupportProvider(ctx, cfg, cat, logger)
	if err != nil {
		return fmt.Errorf("support provider: %w", err)
	}

	// 6. Telegram (optional)
	var bot supportTelegram.Sender
	if cfg.Telegram.BotToken != "" {
		tg := telegram.NewBot(cfg.Telegram.BotToken)
		if cfg.Telegram.WebhookURL != "" {
			if err := tg.SetWebhook(ctx, cfg.Telegram.WebhookURL); err != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
		bot = tg
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	srv, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		JWTManager:      jwt.New(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
		RateLimitPerMin: cfg.Support.RateLimitPerMin,
		TaskRepo:        repo,
		Generator:       generator,
		Calendar:        parser,
		ShareOrigin:     cfg.App.ShareOrigin,
		SessionTTL:      cfg.Session.TTL,
		SessionSize:     cfg.Session.Size,
		SupportProvider: provider,
		TelegramBot:     bot,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 8. Run
	return srv.Run(ctx)
}

// openStore builds the repository for the configured driver and returns its closer.
func openStore(ctx context.Context, cfg config.StoreConfig, logger log.Logger) (repository.Repository, func(), error) {
	switch cfg.Driver {
	case config.StoreDriverPostgres:
		db, err := postgre.Open(cfg.Postgres.DSN())
		if err != nil {
			return nil, nil, err
		}
		if err := postgre.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgre.New(db, logger), func() { db.Close() }, nil

	case config.StoreDriverSupabase:
		client := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.APIKey)
		return supabase.New(client, logger), func() {}, nil

	default:
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return sqlite.New(db, logger), closer, nil
	}
}

func newSupportProvider(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, logger log.Logger) (support.Provider, error) {
	if cfg.Support.Provider != config.SupportProviderLLM {
		return keyword.New(cat.SupportTopics), nil
	}

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return nil, err
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	manager := llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), logger)
	return llm.New(manager), nil
}
