package storage

import (
	"time"

	"drawer-cabinet/internal/cabinet"
)

// PrinterConfig is the single-row label printer configuration.
type PrinterConfig struct {
	CUPSServer      string
	QueueName       string
	VirtualPrinting bool
	UpdatedAt       time.Time
}

// SkippedRecord names a stored drawer that could not be loaded.
type SkippedRecord struct {
	ID     string
	Reason string
}

// LoadResult holds the drawers read from a store. Malformed records are
// listed in Skipped instead of failing the load.
type LoadResult struct {
	Drawers []cabinet.Drawer
	Skipped []SkippedRecord
}
