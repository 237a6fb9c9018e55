package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"vehicle-inventory-frontend/internal/core/domain"
)

// MediaSource fetches uploaded files from the inventory API origin.
type MediaSource interface {
	Forward(ctx context.Context, path string, headers http.Header) (*http.Response, error)
}

// mediaHeaders are copied from the origin response.
var mediaHeaders = []string{
	"Cache-Control",
	"ETag",
	"Last-Modified",
	"Content-Range",
	"Accept-Ranges",
}

// Media streams /media/* from the API origin so image URLs work even when
// the browser cannot reach the API directly. Paths that would leave
// /media/ on the origin are answered with 404 and never forwarded.
func (h *Handler) Media(c *gin.Context) {
	mediaPath, err := domain.CleanMediaPath(c.Request.URL.EscapedPath())
	if err != nil {
		log.WithField("path", c.Request.URL.EscapedPath()).Debug("Rejected media path")
		c.Status(http.StatusNotFound)
		return
	}

	resp, err := h.media.Forward(c.Request.Context(), mediaPath, c.Request.Header)
	if err != nil {
		log.WithError(err).WithField("path", c.Request.URL.Path).Warn("Failed to fetch media")
		c.Status(http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	extra := make(map[string]string, len(mediaHeaders))
	for _, key := range mediaHeaders {
		if v := resp.Header.Get(key); v != "" {
			extra[key] = v
		}
	}

	c.DataFromReader(resp.StatusCode, resp.ContentLength, resp.Header.Get("Content-Type"), resp.Body, extra)
}
