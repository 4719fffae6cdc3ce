package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Metadata holds the descriptive fields pulled from a page's head and
// social-card tags. Absent fields stay at their zero value.
type Metadata struct {
	Title         string
	Description   string
	Author        string
	Language      string
	CanonicalURL  string
	Keywords      []string
	PublishedDate string
	ModifiedDate  string
	OpenGraph     map[string]string
	TwitterCard   map[string]string
	Favicon       string
}

// MetadataExtractor extracts page metadata with a first-non-empty-wins
// resolution order per field.
type MetadataExtractor struct{}

func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// Extract parses rawHTML and resolves each metadata field. pageURL is the
// URL the page was fetched from; it backs the canonical-URL and favicon
// fallbacks.
func (e *MetadataExtractor) Extract(rawHTML, pageURL string) Metadata {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return Metadata{
			CanonicalURL: pageURL,
			Keywords:     []string{},
			OpenGraph:    map[string]string{},
			TwitterCard:  map[string]string{},
			Favicon:      fallbackFavicon(pageURL),
		}
	}

	og := collectPrefixed(doc, "meta[property]", "property", "og:")
	tw := collectPrefixed(doc, "meta[name]", "name", "twitter:")

	meta := Metadata{
		OpenGraph:   og,
		TwitterCard: tw,
	}

	meta.Title = firstNonEmpty(
		og["title"],
		strings.TrimSpace(doc.Find("title").First().Text()),
		strings.TrimSpace(doc.Find("h1").First().Text()),
	)
	meta.Description = firstNonEmpty(
		og["description"],
		metaContent(doc, `meta[name="description"]`),
	)
	meta.Author = firstNonEmpty(
		metaContent(doc, `meta[name="author"]`),
		metaContent(doc, `meta[property="article:author"]`),
	)
	meta.Language = firstNonEmpty(
		strings.TrimSpace(doc.Find("html").AttrOr("lang", "")),
		og["locale"],
		metaContent(doc, `meta[http-equiv="content-language"]`),
	)
	meta.CanonicalURL = firstNonEmpty(
		strings.TrimSpace(doc.Find(`link[rel="canonical"]`).First().AttrOr("href", "")),
		og["url"],
		pageURL,
	)
	meta.PublishedDate = firstNonEmpty(
		metaContent(doc, `meta[property="article:published_time"]`),
		metaContent(doc, `meta[itemprop="datePublished"]`),
	)
	meta.ModifiedDate = firstNonEmpty(
		metaContent(doc, `meta[property="article:modified_time"]`),
		metaContent(doc, `meta[itemprop="dateModified"]`),
	)
	meta.Keywords = splitKeywords(metaContent(doc, `meta[name="keywords"]`))
	meta.Favicon = resolveFavicon(doc, pageURL)

	return meta
}

func metaContent(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
}

func collectPrefixed(doc *goquery.Document, selector, attr, prefix string) map[string]string {
	out := map[string]string{}
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		key := strings.ToLower(strings.TrimSpace(s.AttrOr(attr, "")))
		if !strings.HasPrefix(key, prefix) {
			return
		}
		content := strings.TrimSpace(s.AttrOr("content", ""))
		if content == "" {
			return
		}
		out[strings.TrimPrefix(key, prefix)] = content
	})
	return out
}

func splitKeywords(raw string) []string {
	keywords := []string{}
	for _, part := range strings.Split(raw, ",") {
		kw := strings.TrimSpace(part)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

func resolveFavicon(doc *goquery.Document, pageURL string) string {
	href := strings.TrimSpace(doc.Find(`link[rel*="icon"]`).First().AttrOr("href", ""))
	if href == "" {
		return fallbackFavicon(pageURL)
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return fallbackFavicon(pageURL)
	}
	return base.ResolveReference(ref).String()
}

func fallbackFavicon(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host + "/favicon.ico"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
