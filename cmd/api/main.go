package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"drawer-cabinet/internal/config"
	"drawer-cabinet/internal/http"
	"drawer-cabinet/internal/printer"
	"drawer-cabinet/internal/service"
	"drawer-cabinet/internal/storage"
)

// stores bundles the persistence backends selected by configuration.
type stores struct {
	drawers storage.DrawerStore
	printer storage.PrinterConfigStore
	close   func() error
}

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Exited with error", "error", err)
		stop()
		os.Exit(1)
	}
	slog.Info("Stopped")
}

// run serves the API until ctx is cancelled, then drains the server and
// writes any pending layout change.
func run(ctx context.Context, cfg *config.Config) error {
	st, err := openStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.close(); err != nil {
			slog.Error("Failed to close store", "error", err)
		}
	}()

	layout := service.NewLayoutService(st.drawers, cfg.SaveDebounce)
	stats, err := layout.Load(ctx)
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	for _, skipped := range stats.Skipped {
		slog.Warn("Skipped stored drawer", "id", skipped.ID, "reason", skipped.Reason)
	}
	slog.Info("Layout ready",
		"loaded", stats.Loaded,
		"filled", stats.Filled,
		"seeded", stats.Seeded,
	)

	printing := service.NewPrintService(layout, st.printer, printer.NewClient(cfg.PrinterTimeout))

	router := http.NewRouter(&http.Deps{
		Layout:   layout,
		Printing: printing,
		Store:    st.drawers,
	})

	addr := ":" + cfg.APIPort
	srv := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Starting API server", "addr", addr, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("API server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown: %w", err))
		}
		// Write the last layout change before the store goes away.
		if err := layout.Close(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("final layout save: %w", err))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

// openStores opens the drawer and printer config stores for the configured backend.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		client, err := storage.OpenRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		rs := storage.NewRedisStore(client, cfg.RedisKeyPrefix)
		slog.Info("Redis store initialized", "addr", cfg.RedisAddr, "prefix", cfg.RedisKeyPrefix)
		return &stores{drawers: rs, printer: rs.Printer(), close: client.Close}, nil
	default:
		db, err := storage.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := storage.Migrate(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		slog.Info("Database initialized", "path", cfg.DBPath)
		return &stores{
			drawers: storage.NewDrawerRepo(db),
			printer: storage.NewPrinterConfigRepo(db),
			close:   db.Close,
		}, nil
	}
}
