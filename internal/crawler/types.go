// Package crawler defines the core types and decision logic shared across
// the crawl pipeline: page records, fetch requests, URL normalization,
// link filtering, quotas, and the frontier.
package crawler

import (
	"net/http"
	"time"
)

// Heading is one document heading with its level (1-6).
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is one outbound link discovered on a page.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
	Type string `json:"type"` // "internal" or "external"
}

// Link classification values.
const (
	LinkInternal = "internal"
	LinkExternal = "external"
)

// PageRecord is the structured result of one successfully fetched and
// parsed page. It is built once per response and never mutated afterwards;
// pipeline stages return decisions about it instead of modifying it.
//
// Every field serializes on every line so the per-language output streams
// keep a stable schema.
type PageRecord struct {
	URL          string `json:"url"`
	Domain       string `json:"domain"`
	CanonicalURL string `json:"canonical_url"`

	Title       string    `json:"title"`
	Description string    `json:"description"`
	Text        string    `json:"text"`
	TextLength  int       `json:"text_length"`
	Paragraphs  []string  `json:"paragraphs"`
	Headings    []Heading `json:"headings"`

	LanguageCode       string  `json:"language_code"`
	LanguageConfidence float64 `json:"language_confidence"`
	LanguageName       string  `json:"language_name"`
	IsTargetLanguage   bool    `json:"is_target_language"`

	Keywords      []string          `json:"keywords"`
	Author        string            `json:"author"`
	PublishedDate string            `json:"published_date"`
	ModifiedDate  string            `json:"modified_date"`
	OpenGraph     map[string]string `json:"open_graph"`
	TwitterCard   map[string]string `json:"twitter_card"`
	Favicon       string            `json:"favicon"`

	Links              []Link `json:"links"`
	InternalLinksCount int    `json:"internal_links_count"`
	ExternalLinksCount int    `json:"external_links_count"`

	StatusCode  int       `json:"status_code"`
	ContentType string    `json:"content_type"`
	Encoding    string    `json:"encoding"`
	CrawledAt   time.Time `json:"crawled_at"`
	CrawlDepth  int       `json:"crawl_depth"`
	Referrer    string    `json:"referrer"`

	IsValid bool `json:"is_valid"`
}

// RequestMeta carries crawl context from one request into the response and
// the follow-up requests it produces.
type RequestMeta struct {
	Depth          int
	Referrer       string
	TargetLanguage string
}

// FetchRequest captures everything the transport needs to fetch a URL.
// DomainKey is the host the transport should throttle on.
type FetchRequest struct {
	URL       string
	DomainKey string
	Preferred bool
	Meta      RequestMeta
}

// FetchResponse is what the transport hands back for one request. A failed
// fetch produces no response at all; the core never sees transport errors
// beyond "no usable response".
type FetchResponse struct {
	URL        string
	FinalURL   string
	StatusCode int
	Headers    http.Header
	Body       []byte
	Encoding   string
	Meta       RequestMeta
}

// Clock returns the current time (injectable for testing).
type Clock interface {
	Now() time.Time
}
