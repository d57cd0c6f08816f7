// Package fetch retrieves raw HTML from a URL or a local file.
package fetch

import (
	"context"
	"strings"
	"time"
)

// DefaultUserAgent is the identification header sent with remote requests.
const DefaultUserAgent = "Mozilla/5.0"

// Fetcher retrieves the HTML text behind a source.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (string, error)
}

// IsRemote reports whether source names a network resource. Only the literal
// "http" prefix counts; anything else is a local path, even if it contains
// "http" further in.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http")
}

// Config configures the fetchers behind a Router.
type Config struct {
	// UserAgent is sent as the User-Agent header. Defaults to DefaultUserAgent.
	UserAgent string
	// Timeout bounds a remote fetch. Zero means no timeout.
	Timeout time.Duration
	// Render loads remote pages in a headless browser instead of a plain GET.
	Render bool
}

// Router dispatches a source to the remote or local fetcher.
type Router struct {
	Remote Fetcher
	Local  Fetcher
}

// New builds a Router from cfg.
func New(cfg Config) *Router {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	var remote Fetcher
	if cfg.Render {
		remote = NewChromedpFetcher(cfg.UserAgent, cfg.Timeout)
	} else {
		remote = NewCollyFetcher(cfg.UserAgent, cfg.Timeout)
	}

	return &Router{
		Remote: remote,
		Local:  NewFileFetcher(),
	}
}

// Fetch implements Fetcher.
func (r *Router) Fetch(ctx context.Context, source string) (string, error) {
	if IsRemote(source) {
		return r.Remote.Fetch(ctx, source)
	}
	return r.Local.Fetch(ctx, source)
}
