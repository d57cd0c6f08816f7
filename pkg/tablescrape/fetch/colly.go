package fetch

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher performs a single GET per source using colly.
type CollyFetcher struct {
	userAgent string
	timeout   time.Duration
}

// NewCollyFetcher creates a new CollyFetcher.
func NewCollyFetcher(userAgent string, timeout time.Duration) *CollyFetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &CollyFetcher{
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// Fetch implements Fetcher. Non-2xx responses are returned as errors.
func (cf *CollyFetcher) Fetch(ctx context.Context, url string) (string, error) {
	// A fresh collector per call keeps colly's visited-URL memory out of the way.
	c := colly.NewCollector(
		colly.UserAgent(cf.userAgent),
		colly.MaxBodySize(0),
		colly.StdlibContext(ctx),
	)
	c.WithTransport(rawCharsetTransport{base: http.DefaultTransport})
	if cf.timeout > 0 {
		c.SetRequestTimeout(cf.timeout)
	}

	var body []byte
	received := false
	statusCode := 0
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
		received = true
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			statusCode = r.StatusCode
		}
	})

	if err := c.Visit(url); err != nil {
		return "", NewFetchError(url, true, statusCode, err)
	}
	c.Wait()

	if !received {
		return "", NewFetchError(url, true, statusCode, errors.New("no response received"))
	}

	content, err := readUTF8(bytes.NewReader(body))
	if err != nil {
		return "", NewFetchError(url, true, 0, err)
	}
	return content, nil
}

// rawCharsetTransport drops the charset parameter from the Content-Type of
// every response, so colly leaves the body bytes as sent and readUTF8 sees
// what the server wrote.
type rawCharsetTransport struct {
	base http.RoundTripper
}

func (t rawCharsetTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	stripCharset(resp.Header)
	return resp, nil
}

func stripCharset(h http.Header) {
	contentType := h.Get("Content-Type")
	if contentType == "" {
		return
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		// unparsable, but it may still name a charset
		h.Del("Content-Type")
		return
	}
	if _, ok := params["charset"]; !ok {
		return
	}
	delete(params, "charset")
	h.Set("Content-Type", mime.FormatMediaType(mediaType, params))
}
