// Package render runs short-lived headless browser sessions for pages that
// only populate their result lists from script.
package render

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// Config carries the session options shared by all rendered fetches.
type Config struct {
	UserAgent string
	// Timeout bounds the whole session: navigation, selector wait, and
	// capture. Zero means 30 seconds.
	Timeout time.Duration
}

// Do runs fn inside a dedicated headless browser session. The allocator and
// browser contexts are released when Do returns, on every path, so a failed
// fetch can not leak a browser process.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(1920, 1080),
		chromedp.Flag("lang", "ko-KR"),
	)
	if cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()
	return fn(runCtx)
}

// CaptureHTML navigates to a URL, waits for sel to appear, scrolls to the
// bottom `scrolls` times to trigger lazy loading, and returns the rendered
// document HTML.
func CaptureHTML(ctx context.Context, pageURL, sel string, scrolls int) (string, error) {
	actions := []chromedp.Action{
		chromedp.Navigate(pageURL),
		chromedp.WaitReady(sel, chromedp.ByQuery),
	}
	for i := 0; i < scrolls; i++ {
		actions = append(actions,
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
			chromedp.Sleep(2*time.Second),
		)
	}
	var html string
	actions = append(actions, chromedp.OuterHTML("html", &html, chromedp.ByQuery))
	if err := chromedp.Run(ctx, actions...); err != nil {
		return "", err
	}
	return html, nil
}
