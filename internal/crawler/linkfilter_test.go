package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFilter() *LinkFilter {
	return NewLinkFilter(
		[]string{"spam-site.com"},
		[]string{"pdf", "zip", "jpg"},
		map[string][]string{"fr": {".fr", "wikipedia.org"}},
	)
}

func TestLinkFilterEligible(t *testing.T) {
	f := newTestFilter()

	cases := []struct {
		name   string
		url    string
		ok     bool
		reason string
	}{
		{"plain https", "https://example.com/page", true, ""},
		{"plain http", "http://example.com/page", true, ""},
		{"ftp scheme", "ftp://example.com/file", false, RejectScheme},
		{"mailto scheme", "mailto:someone@example.com", false, RejectScheme},
		{"pdf rejected regardless of depth or quota", "https://example.com/docs/report.pdf", false, RejectExtension},
		{"zip rejected", "https://example.com/a.zip", false, RejectExtension},
		{"uppercase extension rejected", "https://example.com/IMAGE.JPG", false, RejectExtension},
		{"html extension fine", "https://example.com/page.html", true, ""},
		{"blocked domain substring", "https://cdn.spam-site.com/page", false, RejectBlockedDomain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := f.Eligible(tc.url)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.reason, reason)
		})
	}
}

func TestLinkFilterPreferred(t *testing.T) {
	f := newTestFilter()

	assert.True(t, f.Preferred("https://www.lemonde.fr/article", "fr"))
	assert.True(t, f.Preferred("https://fr.wikipedia.org/wiki/Go", "fr"))
	assert.False(t, f.Preferred("https://example.com/", "fr"))
	assert.False(t, f.Preferred("https://www.lemonde.fr/article", "de"))
}
