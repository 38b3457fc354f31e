package handlers

import (
	"net/http"
	"time"

	"drawer-cabinet/internal/api"
	"drawer-cabinet/internal/service"
	"drawer-cabinet/internal/storage"
)

func toPrinterConfigJSON(cfg storage.PrinterConfig) api.PrinterConfigJSON {
	out := api.PrinterConfigJSON{
		CUPSServer:      cfg.CUPSServer,
		QueueName:       cfg.QueueName,
		VirtualPrinting: cfg.VirtualPrinting,
	}
	if !cfg.UpdatedAt.IsZero() {
		out.UpdatedAt = cfg.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

// PrinterHandler reads and updates the printer configuration.
type PrinterHandler struct {
	printing service.PrintService
}

// NewPrinterHandler creates a new PrinterHandler.
func NewPrinterHandler(printing service.PrintService) *PrinterHandler {
	return &PrinterHandler{printing: printing}
}

func (h *PrinterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		cfg, err := h.printing.GetConfig(ctx)
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to load printer config")
			return
		}
		writeJSON(ctx, w, http.StatusOK, toPrinterConfigJSON(cfg))
	case http.MethodPut:
		var req api.PrinterConfigJSON
		if err := decodeJSON(r, &req); err != nil {
			getLogger(ctx).WarnContext(ctx, "invalid request body", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		cfg, err := h.printing.SaveConfig(ctx, storage.PrinterConfig{
			CUPSServer:      req.CUPSServer,
			QueueName:       req.QueueName,
			VirtualPrinting: req.VirtualPrinting,
		})
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to save printer config")
			return
		}
		writeJSON(ctx, w, http.StatusOK, toPrinterConfigJSON(cfg))
	default:
		methodNotAllowed(ctx, w, r)
	}
}

// PrintHandler submits label jobs.
type PrintHandler struct {
	printing service.PrintService
}

// NewPrintHandler creates a new PrintHandler.
func NewPrintHandler(printing service.PrintService) *PrintHandler {
	return &PrintHandler{printing: printing}
}

// ServeHTTP prints a label. With virtual printing enabled the label is only
// previewed.
func (h *PrintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodPost {
		methodNotAllowed(ctx, w, r)
		return
	}

	var req api.PrintRequest
	if err := decodeJSON(r, &req); err != nil {
		getLogger(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.printing.Print(ctx, service.PrintRequest{
		DrawerID: req.DrawerID,
		Text:     req.Text,
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to print label")
		return
	}

	writeJSON(ctx, w, http.StatusOK, api.PrintResponse{
		Success: true,
		JobID:   result.JobID,
		Text:    result.Text,
		Server:  result.Server,
		Queue:   result.Queue,
		Virtual: result.Virtual,
	})
}
