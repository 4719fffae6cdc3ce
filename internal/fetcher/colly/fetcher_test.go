package collyfetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookuply/webcrawler/internal/crawler"
)

func TestFetchReturnsBodyAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TestBot/1.0", r.UserAgent())
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	f := New(Config{UserAgent: "TestBot/1.0"})
	meta := crawler.RequestMeta{Depth: 2, Referrer: "https://ref.example/", TargetLanguage: "fr"}
	resp, err := f.Fetch(context.Background(), crawler.FetchRequest{URL: srv.URL, Meta: meta})

	require.NoError(t, err)
	assert.Equal(t, srv.URL, resp.URL)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "hello")
	assert.Equal(t, "text/html; charset=iso-8859-1", resp.Headers.Get("Content-Type"))
	assert.Equal(t, "iso-8859-1", resp.Encoding)
	assert.Equal(t, meta, resp.Meta)
}

func TestFetchFollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("landed"))
	})

	f := New(Config{})
	resp, err := f.Fetch(context.Background(), crawler.FetchRequest{URL: srv.URL + "/start"})

	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/start", resp.URL)
	assert.Equal(t, srv.URL+"/final", resp.FinalURL)
	assert.Equal(t, "landed", string(resp.Body))
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := New(Config{})
	_, err := f.Fetch(context.Background(), crawler.FetchRequest{URL: srv.URL})

	assert.Error(t, err)
}

func TestFetchCanceledContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	f := New(Config{Timeout: 10 * time.Second})
	_, err := f.Fetch(ctx, crawler.FetchRequest{URL: srv.URL})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCharsetOf(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"text/html; charset=utf-8", "utf-8"},
		{"text/html", ""},
		{"", ""},
		{"garbage;;;", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, charsetOf(tc.contentType), tc.contentType)
	}
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(200))
	assert.Equal(t, "3xx", statusClass(301))
	assert.Equal(t, "5xx", statusClass(503))
	assert.Equal(t, "unknown", statusClass(0))
}
