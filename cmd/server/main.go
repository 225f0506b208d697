package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/config"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/dataset"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/handlers"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/middleware"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/repository"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/service"
	"github.com/Lixing-Zhang/pavilion-catalog/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load() // Load .env file if it exists

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewWithConfig(logger.Config{
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		Development:       cfg.Logger.Encoding == "console",
		DisableStacktrace: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	log.Info("server stopped gracefully")
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting pavilion catalog api",
		zap.String("address", cfg.Server.Address()),
		zap.Strings("catalog_files", cfg.Catalog.Files),
		zap.Bool("catalog_watch", cfg.Catalog.Watch),
	)

	// Load the initial snapshot; the server does not start without one
	provider := dataset.NewProvider(dataset.NewLoader(cfg.Catalog.LoadTimeout), cfg.Catalog.Files)
	repo := repository.NewInMemoryCatalogRepository(nil)
	watcher := dataset.NewWatcher(provider, repo, log.Named("dataset"), cfg.Catalog.WatchDebounce)

	initial, err := watcher.Reload(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("catalog loaded",
		zap.String("version", initial.Version),
		zap.Int("categories", len(initial.Categories)),
		zap.Int("brands", len(initial.Brands)),
		zap.Int("products", len(initial.Products)),
	)

	catalogService := service.NewCatalogService(repo)

	healthHandler := handlers.NewHealthHandler(repo, log)
	catalogHandler := handlers.NewCatalogHandler(catalogService, log)
	adminHandler := handlers.NewAdminHandler(watcher, log)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log.Named("http")))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.APIKeyHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	api := catalogHandler.Routes()
	api.With(middleware.APIKeyAuth(cfg.Auth)).Post("/admin/reload", adminHandler.Reload)
	r.Mount("/api", api)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	if cfg.Catalog.Watch {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
