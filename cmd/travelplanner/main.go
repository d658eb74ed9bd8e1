// Package main is the entry point for the travel planner web server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver for goose
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pkordes/travelplanner/internal/config"
	"github.com/pkordes/travelplanner/internal/handler"
	"github.com/pkordes/travelplanner/internal/kv"
	"github.com/pkordes/travelplanner/internal/metrics"
	"github.com/pkordes/travelplanner/internal/render"
	"github.com/pkordes/travelplanner/internal/repo"
	"github.com/pkordes/travelplanner/internal/service"
	"github.com/pkordes/travelplanner/internal/storage"
	"github.com/pkordes/travelplanner/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Metrics ----------------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// --- Storage ----------------------------------------------------------
	store, closeStore, err := openStore(context.Background(), cfg, logger)
	if err != nil {
		slog.Error("failed to open storage", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// --- Services ---------------------------------------------------------
	adapter := storage.NewAdapter(store, logger, m)
	trips := service.NewTripService(repo.NewTripRepo(adapter), m)
	session := service.NewSessionService(repo.NewSessionRepo(adapter))
	export := service.NewExportService(trips)

	details := handler.DetailOpenerFunc(func(ctx context.Context, id string) (handler.TripDetailer, error) {
		d, err := trips.OpenDetail(ctx, id)
		if err != nil {
			return nil, err
		}
		return d, nil
	})

	pages, err := render.NewRenderer()
	if err != nil {
		slog.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	// --- Router -----------------------------------------------------------
	srv := handler.NewServer(trips, details, session, export, pages, logger)
	router := handler.NewRouter(srv, handler.RouterOptions{
		Logger:       logger,
		Metrics:      m,
		CORSOrigins:  cfg.CORSOrigins,
		MaxBodyBytes: cfg.MaxBodyBytes,
		CookieSecure: cfg.CookieSecure,
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr, "storage", cfg.StorageBackend)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStore builds the configured kv.Store and a func that releases it.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (kv.Store, func(), error) {
	if cfg.StorageBackend != config.BackendPostgres {
		logger.Warn("using in-memory storage; data is lost on restart")
		return kv.NewMemoryStore(), func() {}, nil
	}

	if cfg.MigrateOnStart {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		err = migrations.Up(ctx, db, logger)
		_ = db.Close()
		if err != nil {
			return nil, nil, err
		}
	}

	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	logger.Info("database connection established")
	return kv.NewPostgresStore(pool), pool.Close, nil
}
