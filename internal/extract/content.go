// Package extract turns raw HTML into clean text, structure, and metadata.
package extract

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/lookuply/webcrawler/internal/crawler"
)

// boilerplateSelector matches tags that carry navigation, scripts, and
// other non-article chrome.
const boilerplateSelector = "script, style, nav, header, footer, aside, noscript, iframe, form, button"

// boilerplatePatterns flag elements whose class or id marks them as
// non-content (case-insensitive substring match).
var boilerplatePatterns = []string{
	"nav", "menu", "sidebar", "footer", "header", "advertisement",
	"ad-", "ads", "cookie", "popup", "modal", "social", "share",
	"comment", "related", "recommended", "trending",
}

var mainContentPattern = regexp.MustCompile(`(?i)main|content|article|post`)

// ContentResult is the outcome of content extraction for one page.
type ContentResult struct {
	Text       string
	TextLength int
	Paragraphs []string
	Headings   []crawler.Heading
	Links      []crawler.Link
	IsValid    bool
}

// ContentExtractor extracts clean article text from HTML, stripping
// boilerplate and locating the main content subtree. It never returns an
// error: unparseable input yields an empty, invalid result.
type ContentExtractor struct {
	minTextLength   int
	maxTextLength   int
	minParagraphLen int
	maxLinks        int
}

// Extraction bounds applied when the corresponding config value is unset.
const (
	DefaultMinTextLength   = 100
	DefaultMaxTextLength   = 50000
	DefaultMinParagraphLen = 50
	DefaultMaxLinks        = 100
)

// NewContentExtractor creates an extractor with the given bounds; zero
// values fall back to the defaults.
func NewContentExtractor(minTextLength, maxTextLength, minParagraphLen, maxLinks int) *ContentExtractor {
	if minTextLength <= 0 {
		minTextLength = DefaultMinTextLength
	}
	if maxTextLength <= 0 {
		maxTextLength = DefaultMaxTextLength
	}
	if minParagraphLen <= 0 {
		minParagraphLen = DefaultMinParagraphLen
	}
	if maxLinks <= 0 {
		maxLinks = DefaultMaxLinks
	}
	return &ContentExtractor{
		minTextLength:   minTextLength,
		maxTextLength:   maxTextLength,
		minParagraphLen: minParagraphLen,
		maxLinks:        maxLinks,
	}
}

// Extract parses rawHTML and returns the cleaned text, paragraphs,
// headings, and outbound links, with relative hrefs resolved against
// baseURL.
func (e *ContentExtractor) Extract(rawHTML, baseURL string) ContentResult {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ContentResult{Paragraphs: []string{}, Headings: []crawler.Heading{}, Links: []crawler.Link{}}
	}

	removeBoilerplate(doc)
	content := findMainContent(doc)

	text := truncateRunes(normalizeText(content.Text()), e.maxTextLength)
	textLength := utf8.RuneCountInString(text)

	result := ContentResult{
		Text:       text,
		TextLength: textLength,
		Paragraphs: e.extractParagraphs(content),
		Headings:   extractHeadings(content),
		Links:      e.extractLinks(content, baseURL),
		IsValid:    textLength >= e.minTextLength,
	}
	return result
}

func removeBoilerplate(doc *goquery.Document) {
	doc.Find(boilerplateSelector).Remove()

	removeComments(doc)

	doc.Find("[class],[id]").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		marker := strings.ToLower(class + " " + id)
		for _, pattern := range boilerplatePatterns {
			if strings.Contains(marker, pattern) {
				s.Remove()
				return
			}
		}
	})
}

func removeComments(doc *goquery.Document) {
	var strip func(n *html.Node)
	strip = func(n *html.Node) {
		child := n.FirstChild
		for child != nil {
			next := child.NextSibling
			if child.Type == html.CommentNode {
				n.RemoveChild(child)
			} else {
				strip(child)
			}
			child = next
		}
	}
	for _, n := range doc.Nodes {
		strip(n)
	}
}

// findMainContent tries the common content containers in order and falls
// back to body, then the whole document. First match wins; no scoring.
func findMainContent(doc *goquery.Document) *goquery.Selection {
	if s := doc.Find("article").First(); s.Length() > 0 {
		return s
	}
	if s := doc.Find("main").First(); s.Length() > 0 {
		return s
	}

	var match *goquery.Selection
	doc.Find("div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		if mainContentPattern.MatchString(class) || mainContentPattern.MatchString(id) {
			match = s
			return false
		}
		return true
	})
	if match != nil {
		return match
	}

	if s := doc.Find("body").First(); s.Length() > 0 {
		return s
	}
	return doc.Selection
}

// normalizeText collapses runs of whitespace within lines, drops empty
// lines, and rejoins with newlines.
func normalizeText(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, strings.Join(fields, " "))
	}
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

func (e *ContentExtractor) extractParagraphs(content *goquery.Selection) []string {
	paragraphs := []string{}
	content.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) > e.minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs
}

func extractHeadings(content *goquery.Selection) []crawler.Heading {
	headings := []crawler.Heading{}
	content.Find("h1,h2,h3,h4,h5,h6").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		level := int(goquery.NodeName(s)[1] - '0')
		headings = append(headings, crawler.Heading{Level: level, Text: text})
	})
	return headings
}

func (e *ContentExtractor) extractLinks(content *goquery.Selection, baseURL string) []crawler.Link {
	links := []crawler.Link{}
	base, baseErr := url.Parse(baseURL)

	content.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(links) >= e.maxLinks {
			return false
		}
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") {
			return true
		}

		resolved := href
		if baseErr == nil {
			ref, err := url.Parse(href)
			if err != nil {
				return true
			}
			resolved = base.ResolveReference(ref).String()
		}

		parsed, err := url.Parse(resolved)
		if err != nil {
			return true
		}
		scheme := strings.ToLower(parsed.Scheme)
		if scheme != "http" && scheme != "https" {
			return true
		}

		linkType := crawler.LinkExternal
		if baseErr == nil && strings.EqualFold(parsed.Hostname(), base.Hostname()) {
			linkType = crawler.LinkInternal
		}
		links = append(links, crawler.Link{
			URL:  resolved,
			Text: strings.TrimSpace(s.Text()),
			Type: linkType,
		})
		return true
	})
	return links
}
