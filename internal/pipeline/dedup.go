package pipeline

import (
	"sync"

	"github.com/lookuply/webcrawler/internal/crawler"
)

// Dedup drops records whose normalized URL has already been accepted this
// run. It keeps its own hash set, separate from the frontier's pre-fetch
// dedup, so redirects and re-discovered URLs that slipped past the
// frontier are still caught.
type Dedup struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewDedup() *Dedup {
	return &Dedup{seen: make(map[string]struct{})}
}

func (d *Dedup) Name() string { return "dedup" }

func (d *Dedup) Process(record *crawler.PageRecord) (string, error) {
	hash, err := crawler.HashURL(record.URL)
	if err != nil {
		return "unnormalizable url", nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, dup := d.seen[hash]; dup {
		return "already accepted", nil
	}
	d.seen[hash] = struct{}{}
	return "", nil
}
