package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/config"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/publisher"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/scheduler"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/service"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/source/sanity"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single sync and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if !cfg.CMS.Configured() {
		logger.Error("cms is not configured, nothing to mirror", "hint", "set SANITY_PROJECT_ID")
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	articleStore := postgres.NewArticleStore(db)
	tagStore := postgres.NewTagStore(db)
	syncStateStore := postgres.NewSyncStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	cms := sanity.New(sanity.Config{
		ProjectID:      cfg.CMS.ProjectID,
		Dataset:        cfg.CMS.Dataset,
		APIVersion:     cfg.CMS.APIVersion,
		Token:          cfg.CMS.Token,
		UseCDN:         cfg.CMS.UseCDN,
		Timeout:        cfg.CMS.Timeout,
		MaxAttempts:    cfg.CMS.Retry.MaxAttempts,
		InitialBackoff: cfg.CMS.Retry.InitialBackoff,
		MaxBackoff:     cfg.CMS.Retry.MaxBackoff,
	}, logger)

	syncService := service.NewSyncService(
		cms,
		articleStore,
		tagStore,
		syncStateStore,
		txManager,
		rabbitMQ,
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *once {
		if _, err := sched.RunOnce(ctx); err != nil {
			logger.Error("sync failed", "error", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("starting content mirror",
		"source", cms.ID(),
		"project", cfg.CMS.ProjectID,
		"dataset", cfg.CMS.Dataset,
		"interval", cfg.Sync.Interval,
		"limit", cfg.Sync.Limit,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
	logger.Info("content mirror stopped")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
