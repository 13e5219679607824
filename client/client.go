// Package client is the Go SDK for the notification API. It pairs a thin
// REST client with an in-memory State that mirrors the panel widget:
// optimistic local updates backed by fire-and-forget server calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stockadmin/internal/domain"
)

// Client is a thin HTTP client for the notification endpoints. It handles
// Bearer token authentication and JSON (de)serialization.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListNotifications fetches the viewer's visible notifications, newest
// first, capped server-side.
func (c *Client) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	var result struct {
		Notifications []domain.Notification `json:"notifications"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/notifications/", nil, &result); err != nil {
		return nil, err
	}
	return result.Notifications, nil
}

func (c *Client) MarkRead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/notifications/%d/read", id), nil, nil)
}

func (c *Client) MarkAllRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/api/v1/notifications/mark-all-read", nil, nil)
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/notifications/%d", id), nil, nil)
}

func (c *Client) ClearAll(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/notifications/clear-all", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if result == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(result)
}
