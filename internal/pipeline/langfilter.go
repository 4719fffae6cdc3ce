package pipeline

import (
	"fmt"

	"github.com/lookuply/webcrawler/internal/crawler"
)

// LanguageFilter drops records whose detected language is below the
// confidence threshold or outside the configured allow-list. An empty
// allow-list admits every language.
type LanguageFilter struct {
	minConfidence float64
	allowed       map[string]struct{}
}

func NewLanguageFilter(minConfidence float64, allowedCodes []string) *LanguageFilter {
	var allowed map[string]struct{}
	if len(allowedCodes) > 0 {
		allowed = make(map[string]struct{}, len(allowedCodes))
		for _, code := range allowedCodes {
			allowed[code] = struct{}{}
		}
	}
	return &LanguageFilter{minConfidence: minConfidence, allowed: allowed}
}

func (f *LanguageFilter) Name() string { return "language_filter" }

func (f *LanguageFilter) Process(record *crawler.PageRecord) (string, error) {
	if record.LanguageConfidence < f.minConfidence {
		return fmt.Sprintf("low confidence %.2f for %q", record.LanguageConfidence, record.LanguageCode), nil
	}
	if f.allowed != nil {
		if _, ok := f.allowed[record.LanguageCode]; !ok {
			return fmt.Sprintf("language %q not requested", record.LanguageCode), nil
		}
	}
	return "", nil
}
