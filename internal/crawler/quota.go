package crawler

import "sync"

// QuotaTracker counts accepted pages per language against a shared limit.
// A limit of zero means unlimited. Readers may observe slightly stale
// counts; overshoot is bounded by the in-flight concurrency per language.
type QuotaTracker struct {
	mu       sync.Mutex
	limit    int
	accepted map[string]int
	targets  []string
}

// NewQuotaTracker creates a tracker for the given target languages.
func NewQuotaTracker(limit int, targets []string) *QuotaTracker {
	accepted := make(map[string]int, len(targets))
	for _, code := range targets {
		accepted[code] = 0
	}
	return &QuotaTracker{
		limit:    limit,
		accepted: accepted,
		targets:  append([]string(nil), targets...),
	}
}

// Accept records one accepted page for the language and returns the new
// count.
func (q *QuotaTracker) Accept(languageCode string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.accepted[languageCode]++
	return q.accepted[languageCode]
}

// Reached reports whether the language's quota has been met. Languages
// outside the configured targets never report a reached quota because they
// are filtered elsewhere.
func (q *QuotaTracker) Reached(languageCode string) bool {
	if q.limit <= 0 {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.accepted[languageCode] >= q.limit
}

// AllReached reports whether every target language has met its quota.
func (q *QuotaTracker) AllReached() bool {
	if q.limit <= 0 {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, code := range q.targets {
		if q.accepted[code] < q.limit {
			return false
		}
	}
	return true
}

// Counts returns a copy of the per-language accepted counts.
func (q *QuotaTracker) Counts() map[string]int {
	q.mu.Lock()
	defer q.mu.Unlock()
	counts := make(map[string]int, len(q.accepted))
	for code, n := range q.accepted {
		counts[code] = n
	}
	return counts
}
