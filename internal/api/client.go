package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/idilsaglam/items/internal/model"
)

// Client talks to the item service. All four operations map onto a single
// resource path; any transport failure or non-2xx status comes back as a
// plain error with a human-readable message, so callers only ever branch
// on success vs failure.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New builds a client for the service at baseURL. A zero timeout falls back
// to 10s; the view-model itself never enforces deadlines, so this is the
// only place a slow server gets cut off.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// SetToken attaches a bearer token to every subsequent request.
func (c *Client) SetToken(token string) { c.token = token }

type namePayload struct {
	Name string `json:"name"`
}

// List fetches the full collection in server order.
func (c *Client) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := c.do(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Create asks the server to mint a new item with the given name.
func (c *Client) Create(ctx context.Context, name string) (model.Item, error) {
	var it model.Item
	err := c.do(ctx, http.MethodPost, "/items", namePayload{Name: name}, &it)
	return it, err
}

// Update renames the item with the given id and returns the server's record,
// which is the source of truth for name and createdAt.
func (c *Client) Update(ctx context.Context, id int64, name string) (model.Item, error) {
	var it model.Item
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/items/%d", id), namePayload{Name: name}, &it)
	return it, err
}

// Delete removes the item with the given id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError turns a non-2xx response into a readable error, preferring the
// server's own {"error": ...} message when one is present.
func statusError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(b, &payload) == nil && payload.Error != "" {
		return fmt.Errorf("%s: %s", resp.Status, payload.Error)
	}
	return fmt.Errorf("server returned %s", resp.Status)
}
