package proxy

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-inventory-frontend/internal/core/domain"
	"vehicle-inventory-frontend/internal/requestid"
)

func TestForward(t *testing.T) {
	var gotPath, gotETag, gotCookie, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotETag = r.Header.Get("If-None-Match")
		gotCookie = r.Header.Get("Cookie")
		gotRequestID = r.Header.Get(requestid.Header)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png"))
	}))
	defer srv.Close()

	headers := http.Header{}
	headers.Set("If-None-Match", `"abc"`)
	headers.Set("Cookie", "session=secret")
	ctx := requestid.NewContext(context.Background(), "req-1")

	resp, err := NewClient(srv.URL+"/", time.Second).Forward(ctx, "/media/carros/1.png", headers)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "png", string(body))
	assert.Equal(t, "/media/carros/1.png", gotPath)
	assert.Equal(t, `"abc"`, gotETag)
	assert.Empty(t, gotCookie)
	assert.Equal(t, "req-1", gotRequestID)
}

func TestForward_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	origin := srv.URL
	srv.Close()

	_, err := NewClient(origin, time.Second).Forward(context.Background(), "/media/x.png", http.Header{})

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestForward_EscapesCleanedPath(t *testing.T) {
	var gotPath, gotRawPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRawPath = r.URL.EscapedPath()
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, time.Second).Forward(context.Background(), "/media/carros//foto%20um.png", http.Header{})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "/media/carros/foto um.png", gotPath)
	assert.Equal(t, "/media/carros/foto%20um.png", gotRawPath)
}

func TestForward_RejectsPathsOutsideMedia(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	for _, path := range []string{
		"/media/../admin/",
		"/media/%2e%2e/api/v1/carros/",
		"/media/..%2fadmin/",
		"/api/v1/carros/",
	} {
		resp, err := client.Forward(context.Background(), path, http.Header{})
		assert.ErrorIs(t, err, domain.ErrInvalidMediaPath, path)
		assert.Nil(t, resp, path)
	}
	assert.Zero(t, hits)
}
