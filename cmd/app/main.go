package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tamilpanchangam/panchangam/internal/auspicious"
	"github.com/tamilpanchangam/panchangam/internal/bootstrap"
	"github.com/tamilpanchangam/panchangam/internal/config"
	"github.com/tamilpanchangam/panchangam/internal/database"
	"github.com/tamilpanchangam/panchangam/internal/panchangam"
	"github.com/tamilpanchangam/panchangam/internal/personal"
	"github.com/tamilpanchangam/panchangam/internal/server"
)

// ShutdownTimeout bounds how long graceful shutdown may take before the
// process exits anyway.
const ShutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStartingService, "port", cfg.Port)

	if err := config.ValidateEnv(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	if warnings, _ := config.ValidateEnvWithWarnings(); len(warnings) > 0 {
		for _, warning := range warnings {
			slog.Warn("Environment warning", "detail", warning)
		}
	}

	dbPool, err := database.NewPool(context.Background(), cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	slog.Info(bootstrap.LogMsgDatabaseConnected, "host", cfg.DBHost, "database", cfg.DBName)

	if cfg.RunMigration {
		if err := database.Migrate(context.Background(), dbPool); err != nil {
			slog.Error("Migration failed", "error", err)
			os.Exit(1)
		}
		slog.Info(bootstrap.LogMsgMigrationsApplied)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	panchangamService := panchangam.NewService(repos.Panchangam, repos.Scores)
	auspiciousService := auspicious.NewService(repos.Panchangam)
	personalService := personal.NewService(repos.Panchangam, repos.Scores, cfg.ScoreWorkers)

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		cfg.TrustedProxies,
		dbPool,
		panchangamService,
		auspiciousService,
		personalService,
		repos.Preferences,
	)

	// Run the server in the background so signals can be handled here
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
