package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_drawer_store.go -package=mocks drawer-cabinet/internal/storage DrawerStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"drawer-cabinet/internal/cabinet"
	"drawer-cabinet/internal/contextutil"
)

// DrawerStore defines the interface for drawer layout persistence.
type DrawerStore interface {
	// LoadAll reads every stored drawer. Records that cannot be parsed are
	// reported in LoadResult.Skipped and do not fail the call.
	LoadAll(ctx context.Context) (LoadResult, error)
	// ReplaceAll atomically replaces the stored layout with drawers.
	// On failure the previous layout is kept.
	ReplaceAll(ctx context.Context, drawers []cabinet.Drawer) error
	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}

// DrawerRepo provides methods for drawer operations.
// It implements the DrawerStore interface.
type DrawerRepo struct {
	db *sql.DB
}

// Compile-time check that DrawerRepo implements DrawerStore.
var _ DrawerStore = (*DrawerRepo)(nil)

// NewDrawerRepo creates a new DrawerRepo.
func NewDrawerRepo(db *sql.DB) *DrawerRepo {
	return &DrawerRepo{db: db}
}

const drawerColumns = "id, size, title, name, positions, is_right_section, keywords, spacing"

// Rows sort by letter, then numerically by starting column.
const drawerOrder = "ORDER BY substr(id, 1, 1), CAST(substr(id, 2) AS INTEGER)"

// LoadAll reads every drawer ordered by row and starting column.
func (r *DrawerRepo) LoadAll(ctx context.Context) (LoadResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	rows, err := r.db.QueryContext(ctx, "SELECT "+drawerColumns+" FROM drawer "+drawerOrder)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to query drawers: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result LoadResult
	for rows.Next() {
		rec, err := scanDrawer(rows)
		if err == nil {
			var d cabinet.Drawer
			if d, err = rec.Drawer(); err == nil {
				result.Drawers = append(result.Drawers, d)
				continue
			}
		}
		if errors.Is(err, errScan) {
			return LoadResult{}, err
		}
		logger.WarnContext(ctx, "skipping malformed drawer", "id", rec.ID, "error", err)
		result.Skipped = append(result.Skipped, SkippedRecord{ID: rec.ID, Reason: err.Error()})
	}

	if err := rows.Err(); err != nil {
		return LoadResult{}, fmt.Errorf("failed to iterate drawers: %w", err)
	}

	return result, nil
}

// ReplaceAll deletes every stored drawer and inserts drawers in a single
// transaction.
func (r *DrawerRepo) ReplaceAll(ctx context.Context, drawers []cabinet.Drawer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := replaceDrawers(ctx, tx, drawers); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func replaceDrawers(ctx context.Context, tx *sql.Tx, drawers []cabinet.Drawer) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM drawer"); err != nil {
		return fmt.Errorf("failed to clear drawers: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO drawer (id, size, title, name, positions, is_right_section, keywords, spacing, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, d := range drawers {
		rec := cabinet.RecordOf(d)
		positions, err := encodeInts(rec.Positions)
		if err != nil {
			return fmt.Errorf("failed to encode positions of %s: %w", rec.ID, err)
		}
		keywords, err := encodeStrings(rec.Keywords)
		if err != nil {
			return fmt.Errorf("failed to encode keywords of %s: %w", rec.ID, err)
		}
		var name sql.NullString
		if rec.Name != "" {
			name = sql.NullString{String: rec.Name, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			rec.ID, rec.Size, rec.Title, name, positions, rec.IsRightSection, keywords, rec.Spacing,
		); err != nil {
			return fmt.Errorf("failed to insert drawer %s: %w", rec.ID, err)
		}
	}
	return nil
}

// Ping checks the database connection.
func (r *DrawerRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// errScan marks failures reading a row, as opposed to decoding its content.
var errScan = errors.New("failed to scan drawer")

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDrawer(s rowScanner) (cabinet.Record, error) {
	var (
		rec       cabinet.Record
		name      sql.NullString
		positions string
		isRight   sql.NullString
		keywords  sql.NullString
		spacing   sql.NullString
	)
	// SQLite column affinity lets any value through, so the integer columns
	// are read as text and checked like the JSON columns.
	if err := s.Scan(&rec.ID, &rec.Size, &rec.Title, &name, &positions, &isRight, &keywords, &spacing); err != nil {
		return rec, fmt.Errorf("%w: %w", errScan, err)
	}
	rec.Name = name.String

	var err error
	if rec.Positions, err = decodeInts(positions); err != nil {
		return rec, fmt.Errorf("%w: %s positions: %w", cabinet.ErrMalformedRecord, rec.ID, err)
	}
	if rec.IsRightSection, err = strconv.ParseBool(isRight.String); err != nil {
		return rec, fmt.Errorf("%w: %s is_right_section: %w", cabinet.ErrMalformedRecord, rec.ID, err)
	}
	if rec.Keywords, err = decodeStrings(keywords.String); err != nil {
		return rec, fmt.Errorf("%w: %s keywords: %w", cabinet.ErrMalformedRecord, rec.ID, err)
	}
	if rec.Spacing, err = strconv.Atoi(spacing.String); err != nil {
		return rec, fmt.Errorf("%w: %s spacing: %w", cabinet.ErrMalformedRecord, rec.ID, err)
	}
	return rec, nil
}
