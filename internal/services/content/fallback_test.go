package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackBuilderDeterministic(t *testing.T) {
	req := &ContentRequest{
		Title:     "Cách mua hàng từ Indo về VN",
		Keywords:  []string{"mua hàng Indonesia"},
		Language:  "vi",
		Tone:      "professional",
		WordCount: 800,
	}

	var b FallbackBuilder
	first := b.Build(req, "Informational")
	second := b.Build(req, "Informational")

	assert.Equal(t, first, second)
}

func TestFallbackBuilderVietnameseArticle(t *testing.T) {
	req := &ContentRequest{
		Title:     "Cách mua hàng từ Indo về VN",
		Keywords:  []string{"mua hàng Indonesia"},
		Language:  "vi",
		Tone:      "professional",
		WordCount: 800,
	}

	var b FallbackBuilder
	got := b.Build(req, "Informational")

	assert.Contains(t, got.Content, "<h1")
	assert.Contains(t, got.Content, req.Title)
	assert.Contains(t, got.Content, "FAQ - Câu hỏi thường gặp")
	assert.GreaterOrEqual(t, strings.Count(got.Content, "<h3>"), 3)
	assert.Contains(t, got.Content, `class="toc"`)
	assert.Contains(t, got.Content, "mua hàng Indonesia")

	assert.Equal(t, fallbackSEOScore, got.SEOScore)
	require.NotEmpty(t, got.Headings)
	assert.Equal(t, req.Title, got.Headings[0])
	assert.GreaterOrEqual(t, len(got.Headings), 4)
	assert.LessOrEqual(t, len(got.Headings), 10)
	assert.NotEmpty(t, got.MetaDescription)
	assert.NotEmpty(t, got.KeywordDensity)
}

func TestFallbackBuilderKeywordCap(t *testing.T) {
	req := &ContentRequest{
		Title: "Keyword heavy",
		Keywords: []string{
			"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9", "k10",
		},
	}

	var b FallbackBuilder
	got := b.Build(req, "Informational")

	assert.Equal(t, maxFallbackKeywords, strings.Count(got.Content, "Understanding "))
	assert.NotContains(t, got.Content, "k9")
}

func TestFallbackBuilderOutlineSplice(t *testing.T) {
	req := &ContentRequest{
		Title:   "Spliced",
		Outline: []string{"Alpha", "Beta"},
	}

	var b FallbackBuilder
	got := b.Build(req, "Informational")

	assert.Equal(t, []string{"Spliced", "Alpha", "Beta", "FAQ", "Conclusion"}, got.Headings)
	assert.Contains(t, got.Content, `<h2 id="alpha">Alpha</h2>`)
	assert.Contains(t, got.Content, `<a href="#beta">Beta</a>`)
	assert.NotContains(t, got.Content, "Suggested Process")
}

func TestFallbackBuilderAnchorsMatchSlugs(t *testing.T) {
	req := &ContentRequest{Title: "Anchors", Language: "en"}

	var b FallbackBuilder
	got := b.Build(req, "Informational")

	// Every TOC link target exists as a heading id.
	assert.Contains(t, got.Content, `<a href="#introduction">`)
	assert.Contains(t, got.Content, `<h2 id="introduction">`)
	assert.Contains(t, got.Content, `<a href="#conclusion">`)
	assert.Contains(t, got.Content, `<h2 id="conclusion">`)
}
