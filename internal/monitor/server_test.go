package monitor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lookuply/webcrawler/internal/crawler"
	"github.com/lookuply/webcrawler/internal/pipeline"
)

func newTestServer(t *testing.T) (*Server, *pipeline.Stats) {
	t.Helper()
	stats := pipeline.NewStats()
	return NewServer("127.0.0.1:0", stats, zap.NewNop()), stats
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStatsEndpoint(t *testing.T) {
	srv, stats := newTestServer(t)

	text := strings.Repeat("contenu ", 40)
	_, err := stats.Process(&crawler.PageRecord{
		URL:          "https://exemple.fr/a",
		Domain:       "exemple.fr",
		Text:         text,
		TextLength:   len(text),
		LanguageCode: "fr",
	})
	require.NoError(t, err)
	stats.RecordDrop()

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var snap pipeline.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 1, snap.TotalAccepted)
	assert.Equal(t, 1, snap.TotalDropped)
	assert.Equal(t, 1, snap.ByLanguage["fr"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
