package fetch

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// ChromedpFetcher loads a page in headless Chrome and returns the rendered
// document, for tables built by JavaScript.
type ChromedpFetcher struct {
	userAgent string
	timeout   time.Duration
}

// NewChromedpFetcher creates a new ChromedpFetcher.
func NewChromedpFetcher(userAgent string, timeout time.Duration) *ChromedpFetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &ChromedpFetcher{
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// allocatorOptions returns the exec allocator flags for one browser run.
func (cf *ChromedpFetcher) allocatorOptions() []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(cf.userAgent),
	)
}

// Fetch implements Fetcher.
func (cf *ChromedpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, cf.allocatorOptions()...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	if cf.timeout > 0 {
		var cancelTimeout context.CancelFunc
		taskCtx, cancelTimeout = context.WithTimeout(taskCtx, cf.timeout)
		defer cancelTimeout()
	}

	var htmlContent string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &htmlContent, chromedp.ByQuery),
	)
	if err != nil {
		return "", NewFetchError(url, true, 0, err)
	}
	return htmlContent, nil
}
