// Package printer talks to a CUPS server over HTTP.
package printer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client submits plain-text label jobs to CUPS queues.
type Client struct {
	// Scheme is the URL scheme used to reach servers. Defaults to http.
	Scheme string
	client *http.Client
}

// NewClient creates a new printer client. Requests time out after timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Scheme: "http",
		client: &http.Client{Timeout: timeout},
	}
}

func (c *Client) queueURL(server, queue string) string {
	return fmt.Sprintf("%s://%s/printers/%s", c.Scheme, server, url.PathEscape(queue))
}

// Check verifies that queue exists on server.
func (c *Client) Check(ctx context.Context, server, queue string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queueURL(server, queue), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req)
}

// Print submits text to queue as a plain-text job named jobName.
func (c *Client) Print(ctx context.Context, server, queue, jobName, text string) error {
	form := url.Values{
		"job-name":         {jobName},
		"document-format":  {"text/plain"},
		"document-content": {text},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queueURL(server, queue)+"/jobs", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) do(req *http.Request) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
