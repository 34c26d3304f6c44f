// Package fetch retrieves job posting pages over HTTP and converts them to
// plain text for the similarity scorer.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; InternMatch/1.0)"

// noiseSelectors are elements stripped before text extraction.
var noiseSelectors = []string{"script", "style", "nav", "header", "footer", "iframe", "noscript"}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior. UseBrowser enables a headless
// Chrome fallback for pages whose static HTML carries too little text.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// PostingText fetches a job posting page and returns its visible text.
func PostingText(ctx context.Context, urlStr string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	text, err := HTMLToText(string(body))
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}

	// Single-page-app job boards return a shell document with the posting
	// rendered client-side. Fall back to a headless render when the static
	// text is too short; if the render fails, the static text still stands.
	if opts.UseBrowser && ShouldRenderInBrowser(text) {
		if rendered, rerr := renderHTML(ctx, urlStr, opts.Timeout); rerr == nil {
			if renderedText, terr := HTMLToText(rendered); terr == nil {
				text = renderedText
			}
		}
	}
	return text, nil
}

// HTMLToText parses HTML and returns the visible body text with noise
// elements removed and whitespace collapsed.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, selector := range noiseSelectors {
		doc.Find(selector).Remove()
	}

	text := doc.Find("body").Text()
	return strings.Join(strings.Fields(text), " "), nil
}
