package pipeline

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/lookuply/webcrawler/internal/crawler"
	"github.com/lookuply/webcrawler/internal/languages"
)

// Stats accumulates running aggregates over accepted records. It never
// drops a record.
type Stats struct {
	mu            sync.Mutex
	totalAccepted int
	totalDropped  int
	byLanguage    map[string]int
	byDomain      map[string]int
	totalTextLen  int64
}

// DomainCount pairs a domain with its accepted-page count.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// Snapshot is a consistent copy of the aggregates, shaped for JSON
// reporting.
type Snapshot struct {
	TotalAccepted int            `json:"total_accepted"`
	TotalDropped  int            `json:"total_dropped"`
	ByLanguage    map[string]int `json:"by_language"`
	TopDomains    []DomainCount  `json:"top_domains"`
	AvgTextLength float64        `json:"avg_text_length"`
}

func NewStats() *Stats {
	return &Stats{
		byLanguage: make(map[string]int),
		byDomain:   make(map[string]int),
	}
}

func (s *Stats) Name() string { return "stats" }

func (s *Stats) Process(record *crawler.PageRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalAccepted++
	s.byLanguage[record.LanguageCode]++
	s.byDomain[record.Domain]++
	s.totalTextLen += int64(record.TextLength)
	return "", nil
}

// RecordDrop counts a record dropped by an earlier stage. Drops do not
// feed the per-language or per-domain aggregates.
func (s *Stats) RecordDrop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalDropped++
}

// Snapshot returns a copy of the current aggregates with the domain
// breakdown limited to the busiest ten domains.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	byLanguage := make(map[string]int, len(s.byLanguage))
	for code, n := range s.byLanguage {
		byLanguage[code] = n
	}

	domains := make([]DomainCount, 0, len(s.byDomain))
	for domain, n := range s.byDomain {
		domains = append(domains, DomainCount{Domain: domain, Count: n})
	}
	sort.Slice(domains, func(i, j int) bool {
		if domains[i].Count != domains[j].Count {
			return domains[i].Count > domains[j].Count
		}
		return domains[i].Domain < domains[j].Domain
	})
	if len(domains) > 10 {
		domains = domains[:10]
	}

	avg := 0.0
	if s.totalAccepted > 0 {
		avg = float64(s.totalTextLen) / float64(s.totalAccepted)
	}

	return Snapshot{
		TotalAccepted: s.totalAccepted,
		TotalDropped:  s.totalDropped,
		ByLanguage:    byLanguage,
		TopDomains:    domains,
		AvgTextLength: avg,
	}
}

// LogSummary writes the end-of-run summary. Per-language lines use the
// registry's display names so the report reads cleanly.
func (s *Stats) LogSummary(logger *zap.Logger) {
	snap := s.Snapshot()

	logger.Info("crawl summary",
		zap.Int("total_accepted", snap.TotalAccepted),
		zap.Int("total_dropped", snap.TotalDropped),
		zap.Float64("avg_text_length", snap.AvgTextLength),
	)

	codes := make([]string, 0, len(snap.ByLanguage))
	for code := range snap.ByLanguage {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if snap.ByLanguage[codes[i]] != snap.ByLanguage[codes[j]] {
			return snap.ByLanguage[codes[i]] > snap.ByLanguage[codes[j]]
		}
		return codes[i] < codes[j]
	})
	for _, code := range codes {
		logger.Info("language total",
			zap.String("code", code),
			zap.String("name", languages.Name(code)),
			zap.Int("pages", snap.ByLanguage[code]),
		)
	}
	for _, dc := range snap.TopDomains {
		logger.Info("domain total",
			zap.String("domain", dc.Domain),
			zap.Int("pages", dc.Count),
		)
	}
}
