package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookuply/webcrawler/internal/crawler"
)

func TestExtractStripsBoilerplate(t *testing.T) {
	page := `<html><body>
		<nav>NAVPHRASE-12345</nav>
		<script>SCRIPTPHRASE-12345</script>
		<footer>FOOTERPHRASE-12345</footer>
		<div class="sidebar">SIDEBARPHRASE-12345</div>
		<!-- COMMENTPHRASE-12345 -->
		<article><p>` + strings.Repeat("real article content ", 10) + `</p></article>
	</body></html>`

	e := NewContentExtractor(10, 0, 0, 0)
	result := e.Extract(page, "https://example.com/post")

	assert.Contains(t, result.Text, "real article content")
	assert.NotContains(t, result.Text, "NAVPHRASE-12345")
	assert.NotContains(t, result.Text, "SCRIPTPHRASE-12345")
	assert.NotContains(t, result.Text, "FOOTERPHRASE-12345")
	assert.NotContains(t, result.Text, "SIDEBARPHRASE-12345")
	assert.NotContains(t, result.Text, "COMMENTPHRASE-12345")
}

func TestExtractArticleScenario(t *testing.T) {
	paragraph := "This is a sufficiently long paragraph about privacy and data, well over sixty characters."
	page := `<html><body>
		<nav>skip this navigation phrase</nav>
		<article><h1>Title</h1><p>` + paragraph + `</p></article>
	</body></html>`

	e := NewContentExtractor(10, 0, 0, 0)
	result := e.Extract(page, "https://example.com/")

	assert.Contains(t, result.Text, "Title")
	assert.Contains(t, result.Text, paragraph)
	assert.NotContains(t, result.Text, "skip this navigation phrase")
	require.Len(t, result.Headings, 1)
	assert.Equal(t, crawler.Heading{Level: 1, Text: "Title"}, result.Headings[0])
	require.Len(t, result.Paragraphs, 1)
	assert.Equal(t, paragraph, result.Paragraphs[0])
	assert.True(t, result.IsValid)
}

func TestExtractMainContentFallbacks(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "article wins over main",
			html: `<body><main>from main</main><article>from article</article></body>`,
			want: "from article",
		},
		{
			name: "main when no article",
			html: `<body><div>loose</div><main>from main</main></body>`,
			want: "from main",
		},
		{
			name: "content div when no article or main",
			html: `<body><div class="page-content">from content div</div><div>loose</div></body>`,
			want: "from content div",
		},
		{
			name: "body fallback",
			html: `<body><span>from body</span></body>`,
			want: "from body",
		},
	}

	e := NewContentExtractor(1, 0, 0, 0)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := e.Extract("<html>"+tc.html+"</html>", "https://example.com/")
			assert.Contains(t, result.Text, tc.want)
		})
	}
}

func TestExtractHeadingsInDocumentOrder(t *testing.T) {
	page := `<html><body><article>
		<h2>Second level first</h2>
		<h1>Top level after</h1>
		<h3></h3>
		<h3>Third</h3>
	</article></body></html>`

	e := NewContentExtractor(1, 0, 0, 0)
	result := e.Extract(page, "https://example.com/")

	require.Len(t, result.Headings, 3)
	assert.Equal(t, 2, result.Headings[0].Level)
	assert.Equal(t, "Second level first", result.Headings[0].Text)
	assert.Equal(t, 1, result.Headings[1].Level)
	assert.Equal(t, 3, result.Headings[2].Level)
}

func TestExtractLinks(t *testing.T) {
	page := `<html><body><article>
		<a href="/local/page">internal relative</a>
		<a href="https://example.com/other">internal absolute</a>
		<a href="https://other.org/page">external</a>
		<a href="#section">fragment only</a>
		<a href="mailto:someone@example.com">mail</a>
		<a href="ftp://files.example.com/a">ftp</a>
	</article></body></html>`

	e := NewContentExtractor(1, 0, 0, 0)
	result := e.Extract(page, "https://example.com/base/")

	require.Len(t, result.Links, 3)
	assert.Equal(t, "https://example.com/local/page", result.Links[0].URL)
	assert.Equal(t, crawler.LinkInternal, result.Links[0].Type)
	assert.Equal(t, crawler.LinkInternal, result.Links[1].Type)
	assert.Equal(t, "https://other.org/page", result.Links[2].URL)
	assert.Equal(t, crawler.LinkExternal, result.Links[2].Type)
}

func TestExtractLinkCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body><article>")
	for i := 0; i < 150; i++ {
		fmt.Fprintf(&b, `<a href="https://example.com/p%d">link %d</a>`, i, i)
	}
	b.WriteString("</article></body></html>")

	e := NewContentExtractor(1, 0, 0, 100)
	result := e.Extract(b.String(), "https://example.com/")

	assert.Len(t, result.Links, 100)
}

func TestExtractTextTruncation(t *testing.T) {
	page := `<html><body><article><p>` + strings.Repeat("x", 2000) + `</p></article></body></html>`

	e := NewContentExtractor(1, 500, 0, 0)
	result := e.Extract(page, "https://example.com/")

	assert.Equal(t, 500, result.TextLength)
	assert.Len(t, result.Text, 500)
}

func TestExtractShortTextInvalid(t *testing.T) {
	e := NewContentExtractor(100, 0, 0, 0)
	result := e.Extract(`<html><body><article>tiny</article></body></html>`, "https://example.com/")

	assert.False(t, result.IsValid)
	assert.Equal(t, "tiny", result.Text)
}

func TestExtractParagraphMinimumLength(t *testing.T) {
	long := strings.Repeat("long enough paragraph ", 4)
	page := `<html><body><article><p>short</p><p>` + long + `</p></article></body></html>`

	e := NewContentExtractor(1, 0, 50, 0)
	result := e.Extract(page, "https://example.com/")

	require.Len(t, result.Paragraphs, 1)
	assert.Equal(t, strings.TrimSpace(long), result.Paragraphs[0])
}
