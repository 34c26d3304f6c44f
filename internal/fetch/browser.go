package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinPostingTextLength is the shortest extracted text accepted from a static
// fetch. Job boards built as single-page apps serve a nearly empty HTML
// shell, so anything shorter is assumed to need a real render.
const MinPostingTextLength = 500

// ShouldRenderInBrowser reports whether statically extracted text is too
// short to be the actual posting body.
func ShouldRenderInBrowser(text string) bool {
	return len(strings.TrimSpace(text)) < MinPostingTextLength
}

// renderHTML is indirected so tests can exercise the fallback decision
// without a browser install.
var renderHTML = RenderedHTML

// RenderedHTML loads a page in headless Chrome and returns the DOM after
// client-side scripts have run. Requires a Chrome or Chromium binary on the
// host.
func RenderedHTML(ctx context.Context, urlStr string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		// Give client-side frameworks time to paint the posting body.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}
	return html, nil
}
