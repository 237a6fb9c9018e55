package domain

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// MediaPrefix is the URL path uploaded files are served under.
const MediaPrefix = "/media/"

// CleanMediaPath decodes an escaped request path and returns it cleaned.
// Paths with dot segments, in any encoding, or that leave MediaPrefix
// are rejected with ErrInvalidMediaPath.
func CleanMediaPath(escaped string) (string, error) {
	decoded, err := url.PathUnescape(escaped)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidMediaPath, err)
	}
	// A "%" left after one decode means the path was encoded twice.
	if strings.ContainsAny(decoded, "\\%\x00") {
		return "", ErrInvalidMediaPath
	}
	for _, seg := range strings.Split(decoded, "/") {
		if seg == "." || seg == ".." {
			return "", ErrInvalidMediaPath
		}
	}

	cleaned := path.Clean(decoded)
	if !strings.HasPrefix(cleaned, MediaPrefix) {
		return "", ErrInvalidMediaPath
	}
	return cleaned, nil
}
