package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/lookuply/webcrawler/internal/crawler"
)

// JSONLSink appends each record as one JSON line to a per-language output
// file at {dir}/{languageCode}.jsonl. Files are opened lazily on the first
// record for a language and kept open until Close. Writes are serialized
// so lines never interleave.
type JSONLSink struct {
	dir    string
	logger *zap.Logger

	mu    sync.Mutex
	files map[string]*os.File
}

func NewJSONLSink(dir string, logger *zap.Logger) (*JSONLSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return &JSONLSink{
		dir:    dir,
		logger: logger,
		files:  make(map[string]*os.File),
	}, nil
}

func (s *JSONLSink) Name() string { return "sink" }

func (s *JSONLSink) Process(record *crawler.PageRecord) (string, error) {
	line, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshaling record for %s: %w", record.URL, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.file(record.LanguageCode)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		return "", fmt.Errorf("writing record to %s: %w", f.Name(), err)
	}
	return "", nil
}

// file returns the open handle for code, opening it on first use. Callers
// must hold s.mu.
func (s *JSONLSink) file(code string) (*os.File, error) {
	if code == "" {
		code = "unknown"
	}
	if f, ok := s.files[code]; ok {
		return f, nil
	}
	path := filepath.Join(s.dir, code+".jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening output file %s: %w", path, err)
	}
	s.logger.Info("opened output file", zap.String("path", path), zap.String("language", code))
	s.files[code] = f
	return f, nil
}

// Close closes every open output file. Safe to call once at shutdown.
func (s *JSONLSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for code, f := range s.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing output file for %s: %w", code, err)
		}
		delete(s.files, code)
	}
	return firstErr
}
