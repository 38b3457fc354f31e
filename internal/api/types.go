package api

import "drawer-cabinet/internal/cabinet"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReplaceResponse is returned after a full layout replace.
type ReplaceResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// LabelRequest updates the label of one drawer. Omitted fields keep their
// current value.
type LabelRequest struct {
	Name     *string     `json:"name"`
	Keywords KeywordList `json:"keywords"`
}

// ResizeRequest asks for a new drawer size.
type ResizeRequest struct {
	Size string `json:"size"`
}

// ResizeResponse describes the row after a resize.
type ResizeResponse struct {
	Outcome string       `json:"outcome"`
	Drawer  DrawerJSON   `json:"drawer"`
	Removed []string     `json:"removed"`
	Created []string     `json:"created"`
	Row     []DrawerJSON `json:"row"`
}

// SearchResult is a drawer flagged as matching the query or not.
type SearchResult struct {
	DrawerJSON
	Visible bool `json:"visible"`
}

// SearchResponse lists every drawer with its visibility for a query.
type SearchResponse struct {
	Query   string         `json:"query"`
	Matches int            `json:"matches"`
	Drawers []SearchResult `json:"drawers"`
}

// StatsResponse summarises the layout and its persistence state.
type StatsResponse struct {
	cabinet.Summary
	LastSavedAt *string `json:"last_saved_at"`
	LastError   *string `json:"last_error"`
	SavePending bool    `json:"save_pending"`
}

// PrinterConfigJSON is the wire form of the printer configuration.
type PrinterConfigJSON struct {
	CUPSServer      string `json:"cups_server"`
	QueueName       string `json:"queue_name"`
	VirtualPrinting bool   `json:"virtual_printing"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

// PrintRequest asks for a label, either for a drawer or for free text.
type PrintRequest struct {
	Text     string `json:"text,omitempty"`
	DrawerID string `json:"drawer_id,omitempty"`
}

// PrintResponse reports a submitted or previewed label.
type PrintResponse struct {
	Success bool   `json:"success"`
	JobID   string `json:"job_id"`
	Text    string `json:"text"`
	Server  string `json:"server,omitempty"`
	Queue   string `json:"queue,omitempty"`
	Virtual bool   `json:"virtual"`
}
