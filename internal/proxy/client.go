package proxy

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"vehicle-inventory-frontend/internal/core/domain"
	"vehicle-inventory-frontend/internal/requestid"
)

// forwardHeaders are the request headers passed on to the origin.
var forwardHeaders = []string{
	"Accept",
	"If-None-Match",
	"If-Modified-Since",
	"Range",
	requestid.Header,
}

// Client fetches uploaded files from the inventory API origin.
type Client struct {
	httpClient *http.Client
	origin     string
}

func NewClient(origin string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		origin: strings.TrimRight(origin, "/"),
	}
}

// Forward issues a GET for path on the origin and returns the response
// unread. The caller closes the body. Only paths under /media/ are
// forwarded; anything else fails with domain.ErrInvalidMediaPath.
func (c *Client) Forward(ctx context.Context, path string, headers http.Header) (*http.Response, error) {
	cleaned, err := domain.CleanMediaPath(path)
	if err != nil {
		return nil, fmt.Errorf("forward %q: %w", path, err)
	}
	target := c.origin + (&url.URL{Path: cleaned}).EscapedPath()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create upstream request: %w", err)
	}

	for _, key := range forwardHeaders {
		if v := headers.Get(key); v != "" {
			req.Header.Set(key, v)
		}
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	log.WithFields(log.Fields{
		"method": http.MethodGet,
		"url":    target,
	}).Debug("forwarding media request to upstream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w: %w", domain.ErrUpstreamUnavailable, err)
	}

	return resp, nil
}
