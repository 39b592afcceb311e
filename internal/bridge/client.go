// Package bridge delivers serialized message bodies to the bridge inbound
// endpoint.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/globekeeper/bridges-as/internal/config"
	"github.com/globekeeper/bridges-as/internal/logging"
)

// Sender delivers a built message body. It exists so commands can be tested
// without a live endpoint.
type Sender interface {
	Send(ctx context.Context, body any) error
}

// Client posts message bodies to the bridge over HTTP.
type Client struct {
	httpClient *http.Client
	url        string
	token      string
}

// NewClient creates a bridge client from environment configuration.
func NewClient() (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.ValidateBridgeConfig(cfg); err != nil {
		return nil, err
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        cfg.Bridge.URL,
		token:      cfg.Bridge.Token,
	}, nil
}

// Send serializes body and posts it to the bridge. The body is delivered
// exactly once; retrying a failed delivery is the caller's decision.
func (c *Client) Send(ctx context.Context, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build bridge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver message body: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("bridge rejected message body: status %d: %s", resp.StatusCode, detail)
	}

	logging.Debug("delivered message body",
		"status_code", resp.StatusCode,
		"bytes", len(payload))

	return nil
}
