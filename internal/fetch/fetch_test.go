package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToText(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head><body>
		<nav>Home About</nav>
		<h1>Backend   Intern</h1>
		<p>We use Go and Postgres.</p>
		<script>alert("hi")</script>
		<footer>Copyright</footer>
	</body></html>`

	text, err := HTMLToText(html)
	require.NoError(t, err)
	assert.Equal(t, "Backend Intern We use Go and Postgres.", text)
}

func TestHTMLToText_Empty(t *testing.T) {
	text, err := HTMLToText("")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestPostingText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`<html><body><p>Data Intern</p><p>SQL required</p></body></html>`))
	}))
	defer srv.Close()

	text, err := PostingText(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Data Intern SQL required", text)
}

func TestPostingText_InvalidURL(t *testing.T) {
	_, err := PostingText(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "not-a-url", fetchErr.URL)
}

func TestPostingText_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := PostingText(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP status 404")
}

func TestShouldRenderInBrowser(t *testing.T) {
	assert.True(t, ShouldRenderInBrowser(""))
	assert.True(t, ShouldRenderInBrowser("   \n\t  "))
	assert.True(t, ShouldRenderInBrowser("Apply now"))
	assert.False(t, ShouldRenderInBrowser(strings.Repeat("Go developer wanted. ", 30)))
}

func TestPostingText_BrowserFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="root"></div></body></html>`))
	}))
	defer srv.Close()

	rendered := "<html><body><h1>Platform Intern</h1><p>" +
		strings.Repeat("Kubernetes and Go experience. ", 30) + "</p></body></html>"
	orig := renderHTML
	renderHTML = func(ctx context.Context, urlStr string, timeout time.Duration) (string, error) {
		assert.Equal(t, srv.URL, urlStr)
		return rendered, nil
	}
	defer func() { renderHTML = orig }()

	opts := DefaultOptions()
	opts.UseBrowser = true
	text, err := PostingText(context.Background(), srv.URL, opts)
	require.NoError(t, err)
	assert.Contains(t, text, "Platform Intern")
	assert.Contains(t, text, "Kubernetes and Go experience.")
}

func TestPostingText_BrowserFallbackErrorKeepsStaticText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Apply via portal</p></body></html>`))
	}))
	defer srv.Close()

	orig := renderHTML
	renderHTML = func(ctx context.Context, urlStr string, timeout time.Duration) (string, error) {
		return "", errors.New("chrome binary not found")
	}
	defer func() { renderHTML = orig }()

	opts := DefaultOptions()
	opts.UseBrowser = true
	text, err := PostingText(context.Background(), srv.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, "Apply via portal", text)
}

func TestPostingText_NoBrowserFallbackWhenDisabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Short posting</p></body></html>`))
	}))
	defer srv.Close()

	rendered := false
	orig := renderHTML
	renderHTML = func(ctx context.Context, urlStr string, timeout time.Duration) (string, error) {
		rendered = true
		return "", nil
	}
	defer func() { renderHTML = orig }()

	text, err := PostingText(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Short posting", text)
	assert.False(t, rendered)
}

func TestPostingText_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	opts := &Options{Timeout: 20 * time.Millisecond, UserAgent: DefaultUserAgent}
	_, err := PostingText(context.Background(), srv.URL, opts)
	require.Error(t, err)
}
