package storage

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"drawer-cabinet/internal/cabinet"
	"drawer-cabinet/internal/contextutil"
)

// RedisStore keeps the layout and printer configuration in Redis. Drawers
// live in the hash {prefix}:drawers keyed by id, the printer configuration in
// the hash {prefix}:printer. It implements DrawerStore and PrinterConfigStore.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

var (
	_ DrawerStore        = (*RedisStore)(nil)
	_ PrinterConfigStore = printerStore{}
)

// NewRedisStore creates a RedisStore using keys under prefix.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// OpenRedis connects to the Redis server at addr and verifies the connection.
func OpenRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

func (s *RedisStore) drawersKey() string { return s.prefix + ":drawers" }
func (s *RedisStore) printerKey() string { return s.prefix + ":printer" }

type redisDrawer struct {
	ID             string   `json:"id"`
	Size           string   `json:"size"`
	Title          string   `json:"title"`
	Name           string   `json:"name,omitempty"`
	Positions      []int    `json:"positions"`
	IsRightSection bool     `json:"is_right_section"`
	Keywords       []string `json:"keywords"`
	Spacing        int      `json:"spacing"`
}

// LoadAll reads every drawer from the drawers hash.
func (s *RedisStore) LoadAll(ctx context.Context) (LoadResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	fields, err := s.client.HGetAll(ctx, s.drawersKey()).Result()
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to read drawers: %w", err)
	}

	var result LoadResult
	for id, raw := range fields {
		d, err := decodeRedisDrawer(id, raw)
		if err != nil {
			logger.WarnContext(ctx, "skipping malformed drawer", "id", id, "error", err)
			result.Skipped = append(result.Skipped, SkippedRecord{ID: id, Reason: err.Error()})
			continue
		}
		result.Drawers = append(result.Drawers, d)
	}

	slices.SortFunc(result.Drawers, func(a, b cabinet.Drawer) int {
		return cmp.Or(cmp.Compare(a.Row(), b.Row()), cmp.Compare(a.Start(), b.Start()))
	})
	slices.SortFunc(result.Skipped, func(a, b SkippedRecord) int { return cmp.Compare(a.ID, b.ID) })
	return result, nil
}

func decodeRedisDrawer(id, raw string) (cabinet.Drawer, error) {
	var v redisDrawer
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return cabinet.Drawer{}, fmt.Errorf("%w: %s: %w", cabinet.ErrMalformedRecord, id, err)
	}
	if v.ID != id {
		return cabinet.Drawer{}, fmt.Errorf("%w: field %s holds drawer %s", cabinet.ErrMalformedRecord, id, v.ID)
	}
	return cabinet.Record{
		ID:             v.ID,
		Size:           v.Size,
		Title:          v.Title,
		Name:           v.Name,
		Positions:      v.Positions,
		IsRightSection: v.IsRightSection,
		Keywords:       v.Keywords,
		Spacing:        v.Spacing,
	}.Drawer()
}

// ReplaceAll swaps the drawers hash inside a MULTI/EXEC transaction.
func (s *RedisStore) ReplaceAll(ctx context.Context, drawers []cabinet.Drawer) error {
	values := make(map[string]any, len(drawers))
	for _, d := range drawers {
		rec := cabinet.RecordOf(d)
		raw, err := json.Marshal(redisDrawer{
			ID:             rec.ID,
			Size:           rec.Size,
			Title:          rec.Title,
			Name:           rec.Name,
			Positions:      rec.Positions,
			IsRightSection: rec.IsRightSection,
			Keywords:       rec.Keywords,
			Spacing:        rec.Spacing,
		})
		if err != nil {
			return fmt.Errorf("failed to encode drawer %s: %w", rec.ID, err)
		}
		values[rec.ID] = string(raw)
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.drawersKey())
		if len(values) > 0 {
			pipe.HSet(ctx, s.drawersKey(), values)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace drawers: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// printerStore adapts the printer hash to PrinterConfigStore.
type printerStore struct{ *RedisStore }

// Printer returns the printer configuration view of the store.
func (s *RedisStore) Printer() PrinterConfigStore { return printerStore{s} }

func (p printerStore) Get(ctx context.Context) (PrinterConfig, error) {
	fields, err := p.client.HGetAll(ctx, p.printerKey()).Result()
	if err != nil {
		return PrinterConfig{}, fmt.Errorf("failed to read printer config: %w", err)
	}
	if len(fields) == 0 {
		return PrinterConfig{VirtualPrinting: true}, nil
	}
	cfg := PrinterConfig{
		CUPSServer: fields["cups_server"],
		QueueName:  fields["queue_name"],
	}
	cfg.VirtualPrinting, _ = strconv.ParseBool(fields["virtual_printing"])
	cfg.UpdatedAt, _ = time.Parse(time.RFC3339, fields["updated_at"])
	return cfg, nil
}

func (p printerStore) Save(ctx context.Context, cfg PrinterConfig) error {
	err := p.client.HSet(ctx, p.printerKey(), map[string]any{
		"cups_server":      cfg.CUPSServer,
		"queue_name":       cfg.QueueName,
		"virtual_printing": strconv.FormatBool(cfg.VirtualPrinting),
		"updated_at":       time.Now().UTC().Format(time.RFC3339),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to save printer config: %w", err)
	}
	return nil
}
