package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_printer_config_store.go -package=mocks drawer-cabinet/internal/storage PrinterConfigStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PrinterConfigStore defines the interface for printer configuration storage.
type PrinterConfigStore interface {
	// Get returns the stored printer configuration.
	Get(ctx context.Context) (PrinterConfig, error)
	// Save replaces the stored printer configuration.
	Save(ctx context.Context, cfg PrinterConfig) error
}

// PrinterConfigRepo stores the printer configuration in a single row.
type PrinterConfigRepo struct {
	db *sql.DB
}

var _ PrinterConfigStore = (*PrinterConfigRepo)(nil)

// NewPrinterConfigRepo creates a new PrinterConfigRepo.
func NewPrinterConfigRepo(db *sql.DB) *PrinterConfigRepo {
	return &PrinterConfigRepo{db: db}
}

// Get returns the printer configuration. A database without a config row
// yields the defaults: no server, virtual printing on.
func (r *PrinterConfigRepo) Get(ctx context.Context) (PrinterConfig, error) {
	var (
		cfg          PrinterConfig
		updatedAtStr sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT cups_server, queue_name, virtual_printing, updated_at FROM printer_config WHERE id = 1",
	).Scan(&cfg.CUPSServer, &cfg.QueueName, &cfg.VirtualPrinting, &updatedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return PrinterConfig{VirtualPrinting: true}, nil
	}
	if err != nil {
		return PrinterConfig{}, fmt.Errorf("failed to query printer config: %w", err)
	}
	if updatedAtStr.Valid {
		cfg.UpdatedAt, _ = parseTimestamp(updatedAtStr.String)
	}
	return cfg, nil
}

// Save upserts the printer configuration row.
func (r *PrinterConfigRepo) Save(ctx context.Context, cfg PrinterConfig) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO printer_config (id, cups_server, queue_name, virtual_printing, updated_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			cups_server = excluded.cups_server,
			queue_name = excluded.queue_name,
			virtual_printing = excluded.virtual_printing,
			updated_at = CURRENT_TIMESTAMP`,
		cfg.CUPSServer, cfg.QueueName, cfg.VirtualPrinting,
	)
	if err != nil {
		return fmt.Errorf("failed to save printer config: %w", err)
	}
	return nil
}

// parseTimestamp parses a SQLite DATETIME value.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		// SQLite might use a different format
		t, err = time.Parse(time.RFC3339, s)
	}
	return t, err
}
