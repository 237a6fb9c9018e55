package inventoryapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"

	"vehicle-inventory-frontend/internal/config"
	"vehicle-inventory-frontend/internal/core/domain"
	"vehicle-inventory-frontend/internal/requestid"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	contentTypeJSON  = "application/json"
	maxResponseBytes = 8 << 20
	maxListPages     = 100
)

// Client talks to the inventory REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new inventory API client adapter
func NewClient(cfg *config.APIConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultAPIBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the API root every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping checks that the API root answers with anything below 500.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "", nil, "")
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ping: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("ping: %w", &StatusError{StatusCode: resp.StatusCode, kind: domain.ErrUpstreamUnavailable})
	}
	return nil
}

// resolve joins path onto the base URL. Absolute URLs (pagination
// "next" links) are used as-is.
func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path == "" {
		return c.baseURL + "/"
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return nil, fmt.Errorf("create api request: %w", err)
	}

	req.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}
	return req, nil
}

// call performs one request and decodes a JSON answer into out (when
// non-nil). A 404 is reported as notFound.
func (c *Client) call(ctx context.Context, method, path string, body io.Reader, contentType string, notFound error, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"method":     method,
		"url":        req.URL.String(),
		"request_id": req.Header.Get(requestid.Header),
	}).Debug("calling inventory api")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w: %w", method, path, domain.ErrUpstreamUnavailable, err)
	}

	if err := checkStatus(resp.StatusCode, raw, notFound); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) callJSON(ctx context.Context, method, path string, in interface{}, notFound error, out interface{}) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
		contentType = contentTypeJSON
	}
	return c.call(ctx, method, path, body, contentType, notFound, out)
}

// getList follows DRF pagination until the last page. Unpaginated
// endpoints answer with a bare array and stop after one request. A list
// that cannot be read to the end is an error: callers such as the
// modelo in-use check rely on seeing every item.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	next := path
	for page := 0; next != ""; page++ {
		if page == maxListPages {
			return nil, fmt.Errorf("list %s: more than %d pages: %w", path, maxListPages, domain.ErrUpstreamUnavailable)
		}
		if page > 0 {
			if err := c.checkNext(next); err != nil {
				return nil, fmt.Errorf("list %s: %w", path, err)
			}
		}

		var l listPage[T]
		if err := c.call(ctx, http.MethodGet, next, nil, "", nil, &l); err != nil {
			return nil, err
		}
		items = append(items, l.Items...)
		next = l.Next
	}
	return items, nil
}

// checkNext only lets pagination links point back at the API host, so
// the request id and the follow-up requests never leave it.
func (c *Client) checkNext(next string) error {
	target, err := url.Parse(next)
	if err != nil {
		return fmt.Errorf("next page %q: %w: %w", next, domain.ErrUpstreamUnavailable, err)
	}
	if !target.IsAbs() {
		return nil
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("base url %q: %w", c.baseURL, err)
	}
	if !strings.EqualFold(target.Scheme, base.Scheme) || !strings.EqualFold(target.Host, base.Host) {
		return fmt.Errorf("next page %q is not on %s: %w", next, base.Host, domain.ErrUpstreamUnavailable)
	}
	return nil
}
