// Package client talks to the drawer cabinet HTTP API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"drawer-cabinet/internal/api"
)

// Client is a typed client for the cabinet API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL (e.g. "http://localhost:9000").
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// --- Drawers ---

func (c *Client) ListDrawers(ctx context.Context) ([]api.DrawerJSON, error) {
	var drawers []api.DrawerJSON
	if err := c.doJSON(ctx, http.MethodGet, "/api/drawers", nil, &drawers); err != nil {
		return nil, err
	}
	return drawers, nil
}

// ReplaceDrawers uploads a complete layout and returns the stored count.
func (c *Client) ReplaceDrawers(ctx context.Context, drawers []api.DrawerJSON) (int, error) {
	var resp api.ReplaceResponse
	if err := c.doJSON(ctx, http.MethodPut, "/api/drawers", drawers, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// GetDrawer returns a drawer with the sizes it can currently be resized to.
func (c *Client) GetDrawer(ctx context.Context, id string) (api.DrawerDetail, error) {
	var d api.DrawerDetail
	if err := c.doJSON(ctx, http.MethodGet, "/api/drawers/"+url.PathEscape(id), nil, &d); err != nil {
		return api.DrawerDetail{}, err
	}
	return d, nil
}

// UpdateLabel changes a drawer's name and keywords. A nil name or nil
// keywords leaves that part of the label as it is.
func (c *Client) UpdateLabel(ctx context.Context, id string, name *string, keywords []string) (api.DrawerJSON, error) {
	body := api.LabelRequest{Name: name, Keywords: keywords}
	var d api.DrawerJSON
	if err := c.doJSON(ctx, http.MethodPut, "/api/drawers/"+url.PathEscape(id), body, &d); err != nil {
		return api.DrawerJSON{}, err
	}
	return d, nil
}

// Resize asks for a new drawer size. A refused resize is an *APIError with
// status 409.
func (c *Client) Resize(ctx context.Context, id, size string) (api.ResizeResponse, error) {
	var resp api.ResizeResponse
	path := "/api/drawers/" + url.PathEscape(id) + "/resize"
	if err := c.doJSON(ctx, http.MethodPost, path, api.ResizeRequest{Size: size}, &resp); err != nil {
		return api.ResizeResponse{}, err
	}
	return resp, nil
}

func (c *Client) Search(ctx context.Context, query string) (api.SearchResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	var resp api.SearchResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/search?"+q.Encode(), nil, &resp); err != nil {
		return api.SearchResponse{}, err
	}
	return resp, nil
}

func (c *Client) Stats(ctx context.Context) (api.StatsResponse, error) {
	var resp api.StatsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/stats", nil, &resp); err != nil {
		return api.StatsResponse{}, err
	}
	return resp, nil
}

// --- Printing ---

func (c *Client) PrinterConfig(ctx context.Context) (api.PrinterConfigJSON, error) {
	var cfg api.PrinterConfigJSON
	if err := c.doJSON(ctx, http.MethodGet, "/api/printer", nil, &cfg); err != nil {
		return api.PrinterConfigJSON{}, err
	}
	return cfg, nil
}

func (c *Client) SetPrinterConfig(ctx context.Context, cfg api.PrinterConfigJSON) (api.PrinterConfigJSON, error) {
	var saved api.PrinterConfigJSON
	if err := c.doJSON(ctx, http.MethodPut, "/api/printer", cfg, &saved); err != nil {
		return api.PrinterConfigJSON{}, err
	}
	return saved, nil
}

func (c *Client) Print(ctx context.Context, req api.PrintRequest) (api.PrintResponse, error) {
	var resp api.PrintResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/print", req, &resp); err != nil {
		return api.PrintResponse{}, err
	}
	return resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp api.ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
