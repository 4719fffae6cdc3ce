package pipeline

import (
	"fmt"

	"github.com/lookuply/webcrawler/internal/crawler"
)

// Validation drops records that are structurally unusable: no URL, or
// text below the minimum length.
type Validation struct {
	minTextLength int
}

func NewValidation(minTextLength int) *Validation {
	return &Validation{minTextLength: minTextLength}
}

func (v *Validation) Name() string { return "validation" }

func (v *Validation) Process(record *crawler.PageRecord) (string, error) {
	if record.URL == "" {
		return "missing url", nil
	}
	if record.Text == "" || record.TextLength < v.minTextLength {
		return fmt.Sprintf("text too short (%d < %d)", record.TextLength, v.minTextLength), nil
	}
	return "", nil
}
