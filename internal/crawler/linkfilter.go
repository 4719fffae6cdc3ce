package crawler

import (
	"net/url"
	"strings"
)

// Rejection reasons reported by the LinkFilter and Frontier, in check order.
const (
	RejectScheme        = "scheme"
	RejectExtension     = "extension"
	RejectBlockedDomain = "blocked-domain"
	RejectDepth         = "depth"
	RejectDuplicate     = "duplicate"
	RejectQuota         = "quota"
)

// LinkFilter decides whether a discovered URL is structurally eligible to
// be fetched: scheme, path extension, and domain policy. Depth, dedup, and
// quota are the Frontier's concern.
type LinkFilter struct {
	blockedDomains    []string
	blockedExtensions map[string]struct{}
	preferredDomains  map[string][]string
}

// NewLinkFilter builds a LinkFilter from the global blocklists and the
// per-language preferred-domain hints.
func NewLinkFilter(blockedDomains, blockedExtensions []string, preferred map[string][]string) *LinkFilter {
	exts := make(map[string]struct{}, len(blockedExtensions))
	for _, ext := range blockedExtensions {
		exts[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	lowered := make([]string, 0, len(blockedDomains))
	for _, d := range blockedDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			lowered = append(lowered, d)
		}
	}
	return &LinkFilter{
		blockedDomains:    lowered,
		blockedExtensions: exts,
		preferredDomains:  preferred,
	}
}

// Eligible runs the structural checks in fixed order and reports the first
// failing one. The reason is empty when the URL survives all checks.
func (f *LinkFilter) Eligible(rawURL string) (bool, string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false, RejectScheme
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, RejectScheme
	}

	path := strings.ToLower(u.Path)
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		if _, blocked := f.blockedExtensions[path[idx+1:]]; blocked {
			return false, RejectExtension
		}
	}

	host := strings.ToLower(u.Host)
	for _, blocked := range f.blockedDomains {
		if strings.Contains(host, blocked) {
			return false, RejectBlockedDomain
		}
	}

	return true, ""
}

// Preferred reports whether the URL's host matches one of the
// preferred-domain hints for the given language. This is a scheduling
// hint only; it never overrides a rejection.
func (f *LinkFilter) Preferred(rawURL, languageCode string) bool {
	hints := f.preferredDomains[languageCode]
	if len(hints) == 0 {
		return false
	}
	host := Domain(rawURL)
	if host == "" {
		return false
	}
	for _, hint := range hints {
		if strings.Contains(host, strings.ToLower(hint)) {
			return true
		}
	}
	return false
}
