package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_label_printer.go -package=mocks drawer-cabinet/internal/service LabelPrinter
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_print_service.go -package=mocks -mock_names=PrintService=MockPrintService drawer-cabinet/internal/service PrintService

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"drawer-cabinet/internal/contextutil"
	"drawer-cabinet/internal/storage"
)

// LabelJobName is the job name sent with every label.
const LabelJobName = "drawer-label"

// LabelPrinter sends print jobs to a CUPS queue.
// This interface is defined from the service layer's perspective (consumer-first).
type LabelPrinter interface {
	// Check verifies that queue exists on server.
	Check(ctx context.Context, server, queue string) error
	// Print submits text as a plain-text job.
	Print(ctx context.Context, server, queue, jobName, text string) error
}

// PrintRequest asks for a label. DrawerID takes precedence over Text.
type PrintRequest struct {
	DrawerID string
	Text     string
}

// PrintResult describes a submitted or previewed label job.
type PrintResult struct {
	JobID   string
	Text    string
	Server  string
	Queue   string
	Virtual bool // The job was previewed, not sent
}

// PrintService prints drawer labels and manages the printer configuration.
type PrintService interface {
	// Print sends a label to the configured printer, or returns a preview
	// when virtual printing is enabled.
	Print(ctx context.Context, req PrintRequest) (PrintResult, error)
	// GetConfig returns the printer configuration.
	GetConfig(ctx context.Context) (storage.PrinterConfig, error)
	// SaveConfig validates and stores the printer configuration.
	SaveConfig(ctx context.Context, cfg storage.PrinterConfig) (storage.PrinterConfig, error)
}

// printService implements PrintService.
type printService struct {
	layout  LayoutService
	configs storage.PrinterConfigStore
	printer LabelPrinter
}

// NewPrintService creates a new PrintService.
func NewPrintService(layout LayoutService, configs storage.PrinterConfigStore, printer LabelPrinter) PrintService {
	return &printService{
		layout:  layout,
		configs: configs,
		printer: printer,
	}
}

// Print resolves the label text and submits it.
func (s *printService) Print(ctx context.Context, req PrintRequest) (PrintResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	text := strings.TrimSpace(req.Text)
	if req.DrawerID != "" {
		d, err := s.layout.Get(ctx, req.DrawerID)
		if err != nil {
			return PrintResult{}, err
		}
		text = d.DisplayText()
	}
	if text == "" {
		return PrintResult{}, &ValidationError{Field: "text", Message: "cannot be empty"}
	}

	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return PrintResult{}, WrapError(err, "failed to load printer config")
	}

	result := PrintResult{
		JobID:   uuid.NewString(),
		Text:    text,
		Server:  cfg.CUPSServer,
		Queue:   cfg.QueueName,
		Virtual: cfg.VirtualPrinting,
	}
	if cfg.VirtualPrinting {
		logger.InfoContext(ctx, "virtual print", "job_id", result.JobID, "text", text)
		return result, nil
	}

	if err := validatePrinterTarget(cfg); err != nil {
		return PrintResult{}, err
	}
	if err := s.printer.Check(ctx, cfg.CUPSServer, cfg.QueueName); err != nil {
		return PrintResult{}, fmt.Errorf("%w: printer %s not available: %w", ErrExternalService, cfg.QueueName, err)
	}
	if err := s.printer.Print(ctx, cfg.CUPSServer, cfg.QueueName, LabelJobName, text); err != nil {
		return PrintResult{}, fmt.Errorf("%w: print failed: %w", ErrExternalService, err)
	}

	logger.InfoContext(ctx, "label printed", "job_id", result.JobID, "queue", cfg.QueueName)
	return result, nil
}

func (s *printService) GetConfig(ctx context.Context) (storage.PrinterConfig, error) {
	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return storage.PrinterConfig{}, WrapError(err, "failed to load printer config")
	}
	return cfg, nil
}

// SaveConfig stores cfg. A server and queue are only required when labels
// are sent to a real printer.
func (s *printService) SaveConfig(ctx context.Context, cfg storage.PrinterConfig) (storage.PrinterConfig, error) {
	cfg.CUPSServer = strings.TrimSpace(cfg.CUPSServer)
	cfg.QueueName = strings.TrimSpace(cfg.QueueName)

	if cfg.CUPSServer != "" || !cfg.VirtualPrinting {
		if err := validatePrinterTarget(cfg); err != nil {
			return storage.PrinterConfig{}, err
		}
	}

	if err := s.configs.Save(ctx, cfg); err != nil {
		return storage.PrinterConfig{}, WrapError(err, "failed to save printer config")
	}
	return s.GetConfig(ctx)
}

func validatePrinterTarget(cfg storage.PrinterConfig) error {
	if cfg.CUPSServer == "" {
		return &ValidationError{Field: "cups_server", Message: "is required"}
	}
	if strings.Contains(cfg.CUPSServer, "/") {
		return &ValidationError{Field: "cups_server", Message: "must be host or host:port"}
	}
	if host, port, err := net.SplitHostPort(cfg.CUPSServer); err == nil {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 || host == "" {
			return &ValidationError{Field: "cups_server", Message: "port must be a number between 1 and 65535"}
		}
	}
	if cfg.QueueName == "" {
		return &ValidationError{Field: "queue_name", Message: "is required"}
	}
	if strings.ContainsAny(cfg.QueueName, "/ \t#") {
		return &ValidationError{Field: "queue_name", Message: "must not contain spaces, '/' or '#'"}
	}
	return nil
}
