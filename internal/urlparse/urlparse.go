// Package urlparse decomposes absolute URLs into their parts.
package urlparse

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

var (
	// ErrInvalidURL is returned when the input cannot be parsed.
	ErrInvalidURL = errors.New("invalid URL format")
	// ErrNotAbsolute is returned when the URL has no scheme or host.
	ErrNotAbsolute = errors.New("URL must be absolute")
)

// defaultPorts maps schemes to their well-known port.
var defaultPorts = map[string]int{
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
	"ftp":   21,
}

// Parts holds the components of an absolute URL.
// Query and Fragment keep their leading '?' and '#'; empty when absent.
type Parts struct {
	Protocol string `json:"protocol"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Path     string `json:"path"`
	Query    string `json:"query"`
	Fragment string `json:"fragment"`
}

// Parse splits raw into Parts. Port is the explicit port, the scheme's
// default port, or -1 when the scheme has none.
func Parse(raw string) (Parts, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Parts{}, ErrInvalidURL
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return Parts{}, ErrNotAbsolute
	}

	scheme := strings.ToLower(u.Scheme)
	parts := Parts{
		Protocol: scheme,
		Host:     strings.ToLower(u.Hostname()),
		Port:     -1,
		Path:     u.EscapedPath(),
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return Parts{}, ErrInvalidURL
		}
		parts.Port = port
	} else if port, ok := defaultPorts[scheme]; ok {
		parts.Port = port
	}

	if parts.Path == "" {
		parts.Path = "/"
	}
	if u.RawQuery != "" {
		parts.Query = "?" + u.RawQuery
	}
	if u.Fragment != "" {
		parts.Fragment = "#" + u.EscapedFragment()
	}

	return parts, nil
}
