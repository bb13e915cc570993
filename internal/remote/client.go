package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when the remote store has no record at the path.
	ErrNotFound = errors.New("remote record not found")

	// ErrUnavailable is returned for transport-level failures. Calls are never
	// retried; the caller logs and surfaces an inert error state.
	ErrUnavailable = errors.New("remote store unavailable")

	// ErrUnexpectedStatus is returned for non-2xx responses other than 404.
	ErrUnexpectedStatus = errors.New("unexpected remote status")

	// ErrDecode is returned when a response body cannot be decoded.
	ErrDecode = errors.New("failed to decode remote response")
)

// Client talks to the remote REST store that owns every entity collection.
// The contract per entity is list, create, update (full replace by id) and
// delete by id over a uniform resource path; reads may carry filter query
// parameters. No pagination, patch or conditional requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL, e.g.
// "http://localhost:8000/api".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// resourceURL builds "<base>/<resource>/" or "<base>/<resource>/<id>/".
// The remote store requires the trailing slash.
func (c *Client) resourceURL(resource string, id *int64) string {
	if id != nil {
		return fmt.Sprintf("%s/%s/%d/", c.baseURL, resource, *id)
	}
	return fmt.Sprintf("%s/%s/", c.baseURL, resource)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request for %s %s: %w", method, rawURL, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return fmt.Errorf("building request for %s %s: %w", method, rawURL, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, rawURL, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, rawURL)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s returned %d: %s", ErrUnexpectedStatus, method, rawURL, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecode, method, rawURL, err)
	}
	return nil
}

// List fetches a collection, optionally filtered (e.g. by username or branch).
func (c *Client) List(ctx context.Context, resource string, query url.Values, out interface{}) error {
	rawURL := c.resourceURL(resource, nil)
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, rawURL, nil, out)
}

// Get fetches one record by id.
func (c *Client) Get(ctx context.Context, resource string, id int64, out interface{}) error {
	return c.do(ctx, http.MethodGet, c.resourceURL(resource, &id), nil, out)
}

// Create posts a new record and decodes the stored result (with its id and
// server-assigned timestamps) into out.
func (c *Client) Create(ctx context.Context, resource string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, c.resourceURL(resource, nil), body, out)
}

// Update fully replaces the record with the given id.
func (c *Client) Update(ctx context.Context, resource string, id int64, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, c.resourceURL(resource, &id), body, out)
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, resource string, id int64) error {
	return c.do(ctx, http.MethodDelete, c.resourceURL(resource, &id), nil, nil)
}

// GetPath fetches an arbitrary collection endpoint that is not a plain
// resource, such as historical-data.
func (c *Client) GetPath(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, c.baseURL+"/"+strings.TrimLeft(path, "/"), nil, out)
}
