package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTruncatesMetaDescription(t *testing.T) {
	c := &GeneratedContent{
		MetaDescription: strings.Repeat("à", 200),
		Headings:        []string{"a", "b", "c", "d"},
		SEOScore:        50,
	}
	Normalize(c)

	assert.Equal(t, maxMetaDescription, len([]rune(c.MetaDescription)))
}

func TestNormalizeClampsSEOScore(t *testing.T) {
	low := &GeneratedContent{SEOScore: -5, Headings: []string{"a", "b", "c", "d"}}
	Normalize(low)
	assert.Equal(t, 0, low.SEOScore)

	high := &GeneratedContent{SEOScore: 150, Headings: []string{"a", "b", "c", "d"}}
	Normalize(high)
	assert.Equal(t, 100, high.SEOScore)

	ok := &GeneratedContent{SEOScore: 86, Headings: []string{"a", "b", "c", "d"}}
	Normalize(ok)
	assert.Equal(t, 86, ok.SEOScore)
}

func TestNormalizeDerivesHeadingsFromHTML(t *testing.T) {
	c := &GeneratedContent{
		Content: `<h1>One</h1><p>x</p><h2 id="two">Two</h2><h3>Three</h3><h2>Four</h2><h2>Five</h2>`,
	}
	Normalize(c)

	assert.Equal(t, []string{"One", "Two", "Three", "Four", "Five"}, c.Headings)
}

func TestNormalizeDerivesHeadingsFromMarkdown(t *testing.T) {
	c := &GeneratedContent{
		Content: "# One\ntext\n## Two\n### Three\n## Four\nmore text",
	}
	Normalize(c)

	assert.Equal(t, []string{"One", "Two", "Three", "Four"}, c.Headings)
}

func TestNormalizeKeepsSufficientHeadings(t *testing.T) {
	headings := []string{"a", "b", "c", "d", "e"}
	c := &GeneratedContent{Content: "<h2>Other</h2>", Headings: headings}
	Normalize(c)

	assert.Equal(t, headings, c.Headings)
}

func TestNormalizeTruncatesHeadingsAtTen(t *testing.T) {
	var headings []string
	for _, h := range strings.Split("a b c d e f g h i j k l", " ") {
		headings = append(headings, h)
	}
	c := &GeneratedContent{Headings: headings}
	Normalize(c)

	assert.Len(t, c.Headings, 10)
}

func TestNormalizeKeepsExistingWhenNothingToDerive(t *testing.T) {
	c := &GeneratedContent{Content: "<p>no headings here</p>", Headings: []string{"x", "y"}}
	Normalize(c)

	assert.Equal(t, []string{"x", "y"}, c.Headings)
}
