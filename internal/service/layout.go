package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_layout_service.go -package=mocks -mock_names=LayoutService=MockLayoutService drawer-cabinet/internal/service LayoutService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"drawer-cabinet/internal/cabinet"
	"drawer-cabinet/internal/contextutil"
	"drawer-cabinet/internal/debounce"
	"drawer-cabinet/internal/storage"
)

// MaxNameLength is the longest drawer name accepted, in characters.
const MaxNameLength = 120

// LoadStats describes what Load found in the store.
type LoadStats struct {
	// Loaded is the number of stored drawers kept.
	Loaded int
	// Skipped lists stored records that could not be parsed.
	Skipped []storage.SkippedRecord
	// Dropped lists parsed drawers that overlapped a drawer already placed.
	Dropped []string
	// Filled is the number of default drawers added to cover gaps.
	Filled int
	// Seeded is true when the store was empty and the default layout was written.
	Seeded bool
}

// SaveStatus reports the state of layout persistence.
type SaveStatus struct {
	LastSavedAt time.Time
	LastError   error
	Pending     bool
}

// LayoutStats combines drawer counts with the persistence state.
type LayoutStats struct {
	cabinet.Summary
	Save SaveStatus
}

// LayoutService owns the cabinet layout. Reads are served from memory; every
// change is persisted in the background after a quiet period.
type LayoutService interface {
	// Load reads the layout from the store, seeding or repairing it as needed.
	Load(ctx context.Context) (LoadStats, error)
	// List returns every drawer ordered by row, then column.
	List(ctx context.Context) []cabinet.Drawer
	// Get returns a single drawer.
	Get(ctx context.Context, id string) (cabinet.Drawer, error)
	// AllowedSizes lists the sizes a drawer could be resized to right now.
	AllowedSizes(ctx context.Context, id string) ([]cabinet.Size, error)
	// Resize changes a drawer's size. A refused request returns ErrRejected.
	Resize(ctx context.Context, id string, size cabinet.Size) (cabinet.ResizeResult, error)
	// UpdateLabel sets a drawer's name and keywords.
	UpdateLabel(ctx context.Context, id, name string, keywords []string) (cabinet.Drawer, error)
	// ReplaceAll validates and stores a complete layout, returning the drawer count.
	ReplaceAll(ctx context.Context, records []cabinet.Record) (int, error)
	// Search flags each drawer as matching the query or not.
	Search(ctx context.Context, query string) []cabinet.Match
	// Stats summarises the layout.
	Stats(ctx context.Context) LayoutStats
	// SaveStatus reports the state of background persistence.
	SaveStatus() SaveStatus
	// Flush writes any pending change now.
	Flush(ctx context.Context) error
	// Close flushes pending changes and stops accepting new ones.
	Close(ctx context.Context) error
}

// layoutService implements LayoutService.
type layoutService struct {
	store  storage.DrawerStore
	saver  *debounce.Debouncer
	logger *slog.Logger

	mu   sync.RWMutex
	grid cabinet.Grid

	statusMu    sync.Mutex
	lastSavedAt time.Time
	lastSaveErr error
}

// NewLayoutService creates a LayoutService that persists changes to store
// once no change has happened for saveDelay. It starts with the default
// layout until Load is called.
func NewLayoutService(store storage.DrawerStore, saveDelay time.Duration) LayoutService {
	s := &layoutService{
		store:  store,
		logger: slog.Default(),
		grid:   cabinet.DefaultGrid(),
	}
	s.saver = debounce.New(saveDelay, func(err error) {
		s.logger.Error("failed to save layout", "error", err)
	})
	return s
}

// Load reads the stored layout. An empty store is seeded with the default
// layout. Unreadable or overlapping records are dropped and the gaps filled
// with default drawers; the repaired layout is then saved in the background.
func (s *layoutService) Load(ctx context.Context) (LoadStats, error) {
	logger := contextutil.LoggerFromContext(ctx)

	result, err := s.store.LoadAll(ctx)
	if err != nil {
		return LoadStats{}, WrapError(err, "failed to load layout")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(result.Drawers) == 0 && len(result.Skipped) == 0 {
		grid := cabinet.DefaultGrid()
		if err := s.store.ReplaceAll(ctx, grid.Flatten()); err != nil {
			return LoadStats{}, WrapError(err, "failed to seed default layout")
		}
		s.recordSave(nil)
		s.grid = grid
		logger.InfoContext(ctx, "seeded default layout", "drawers", grid.Len())
		return LoadStats{Seeded: true, Filled: grid.Len()}, nil
	}

	grid, dropped := cabinet.Repair(result.Drawers)
	stats := LoadStats{
		Loaded:  len(result.Drawers) - len(dropped),
		Skipped: result.Skipped,
		Dropped: dropped,
	}
	stats.Filled = grid.Len() - stats.Loaded
	s.grid = grid

	if stats.Filled > 0 || len(dropped) > 0 || len(result.Skipped) > 0 {
		logger.WarnContext(ctx, "repaired stored layout",
			"skipped", len(result.Skipped),
			"dropped", len(dropped),
			"filled", stats.Filled,
		)
		s.scheduleSaveLocked(ctx)
	}

	logger.InfoContext(ctx, "layout loaded", "drawers", grid.Len())
	return stats, nil
}

// List returns every drawer.
func (s *layoutService) List(ctx context.Context) []cabinet.Drawer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Flatten()
}

// Get returns the drawer with the given id.
func (s *layoutService) Get(ctx context.Context, id string) (cabinet.Drawer, error) {
	if err := validateID(id); err != nil {
		return cabinet.Drawer{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.grid.Find(id)
	if !ok {
		return cabinet.Drawer{}, drawerNotFound(id)
	}
	return d, nil
}

// AllowedSizes reports the sizes Resize would accept for the drawer.
func (s *layoutService) AllowedSizes(ctx context.Context, id string) ([]cabinet.Size, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.grid.Find(id)
	if !ok {
		return nil, drawerNotFound(id)
	}
	return cabinet.AllowedSizes(s.grid[d.Row()], d), nil
}

// Resize applies a resize through the layout engine.
func (s *layoutService) Resize(ctx context.Context, id string, size cabinet.Size) (cabinet.ResizeResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateID(id); err != nil {
		return cabinet.ResizeResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.grid.Find(id); !ok {
		return cabinet.ResizeResult{}, drawerNotFound(id)
	}

	result, err := s.grid.Resize(id, size)
	if errors.Is(err, cabinet.ErrRejectedResize) {
		logger.InfoContext(ctx, "resize rejected", "id", id, "size", size, "reason", err)
		return result, fmt.Errorf("%w: %w", ErrRejected, err)
	}
	if err != nil {
		return result, err
	}

	if result.Outcome == cabinet.Applied {
		logger.InfoContext(ctx, "drawer resized",
			"id", id,
			"size", size,
			"removed", result.Removed,
			"created", result.Created,
		)
		s.scheduleSaveLocked(ctx)
	}
	return result, nil
}

// UpdateLabel replaces the name and keywords of a drawer.
func (s *layoutService) UpdateLabel(ctx context.Context, id, name string, keywords []string) (cabinet.Drawer, error) {
	if err := validateID(id); err != nil {
		return cabinet.Drawer{}, err
	}
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		return cabinet.Drawer{}, &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must be at most %d characters", MaxNameLength),
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.grid.Find(id)
	if !ok {
		return cabinet.Drawer{}, drawerNotFound(id)
	}
	updated := d.WithName(name).WithKeywords(keywords)
	if cabinet.Equal(d, updated) {
		return d, nil
	}
	s.grid.Replace(updated)
	s.scheduleSaveLocked(ctx)
	return updated, nil
}

// ReplaceAll validates records as a complete layout and stores it
// synchronously. The in-memory layout only changes once the store accepted it.
func (s *layoutService) ReplaceAll(ctx context.Context, records []cabinet.Record) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)

	drawers := make([]cabinet.Drawer, 0, len(records))
	for i, rec := range records {
		field := fmt.Sprintf("drawers[%d]", i)
		if rec.Spacing < 0 {
			return 0, &ValidationError{Field: field + ".spacing", Message: "must be a non-negative number"}
		}
		d, err := rec.Drawer()
		if err != nil {
			return 0, &ValidationError{Field: field, Message: err.Error()}
		}
		drawers = append(drawers, d)
	}

	grid := cabinet.GroupByRow(drawers)
	if err := grid.Check(); err != nil {
		return 0, &ValidationError{Field: "drawers", Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flat := grid.Flatten()
	if err := s.saver.Schedule(s.saveTask(flat)); err != nil {
		return 0, WrapError(err, "failed to save layout")
	}
	if err := s.saver.Flush(ctx); err != nil {
		// Keep the stored copy in step with what is still in memory.
		s.scheduleSaveLocked(ctx)
		return 0, WrapError(err, "failed to save layout")
	}

	s.grid = grid
	logger.InfoContext(ctx, "layout replaced", "drawers", len(flat))
	return len(flat), nil
}

// Search evaluates query against every drawer.
func (s *layoutService) Search(ctx context.Context, query string) []cabinet.Match {
	return cabinet.Highlight(s.List(ctx), query)
}

// Stats summarises the layout and its persistence state.
func (s *layoutService) Stats(ctx context.Context) LayoutStats {
	return LayoutStats{
		Summary: cabinet.Summarize(s.List(ctx)),
		Save:    s.SaveStatus(),
	}
}

func (s *layoutService) SaveStatus() SaveStatus {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	return SaveStatus{
		LastSavedAt: s.lastSavedAt,
		LastError:   s.lastSaveErr,
		Pending:     s.saver.Pending(),
	}
}

func (s *layoutService) Flush(ctx context.Context) error {
	return s.saver.Flush(ctx)
}

func (s *layoutService) Close(ctx context.Context) error {
	return s.saver.Close(ctx)
}

// scheduleSaveLocked queues a save of the current layout. s.mu must be held
// so saves are queued in the same order as the changes they capture.
func (s *layoutService) scheduleSaveLocked(ctx context.Context) {
	if err := s.saver.Schedule(s.saveTask(s.grid.Flatten())); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "layout save not scheduled", "error", err)
	}
}

func (s *layoutService) saveTask(drawers []cabinet.Drawer) debounce.Task {
	return func(ctx context.Context) error {
		err := s.store.ReplaceAll(ctx, drawers)
		s.recordSave(err)
		return err
	}
}

func (s *layoutService) recordSave(err error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.lastSaveErr = err
	if err == nil {
		s.lastSavedAt = time.Now()
	}
}

func validateID(id string) error {
	if _, _, err := cabinet.ParseID(id); err != nil {
		return &ValidationError{Field: "id", Message: err.Error()}
	}
	return nil
}
