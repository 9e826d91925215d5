package content

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceGenerateFallbackEnvelope(t *testing.T) {
	s := NewService(newTestGateway())
	req := &ContentRequest{
		Title:     "Cách mua hàng từ Indo về VN",
		Keywords:  []string{"mua hàng Indonesia"},
		Language:  "vi",
		Tone:      "professional",
		WordCount: 800,
	}

	got := s.Generate(context.Background(), req, "req-1")

	assert.True(t, got.Success)
	assert.Equal(t, ProviderFallback, got.ProviderUsed)
	assert.Equal(t, "req-1", got.RequestID)
	assert.NotEmpty(t, got.Timestamp)
	require.NotNil(t, got.IntentAnalysis)
	assert.NotEmpty(t, got.IntentAnalysis.PrimaryIntent)

	c := got.Content
	require.NotNil(t, c)
	assert.Contains(t, c.Content, "<h1")
	assert.Contains(t, c.Content, req.Title)
	assert.Contains(t, c.Content, "FAQ")
	assert.GreaterOrEqual(t, strings.Count(c.Content, "<h3>"), 3)
	assert.LessOrEqual(t, len([]rune(c.MetaDescription)), 160)
	assert.GreaterOrEqual(t, c.SEOScore, 0)
	assert.LessOrEqual(t, c.SEOScore, 100)
	assert.GreaterOrEqual(t, len(c.Headings), 4)
	assert.LessOrEqual(t, len(c.Headings), 10)
}

func TestServiceStrictOutlineSkipsEnrichment(t *testing.T) {
	// Default intent is informational, which would normally inject TOC and
	// FAQ blocks; strict mode must leave the heading sequence untouched.
	s := NewService(newTestGateway())
	req := &ContentRequest{
		Title:         "Strict Topic",
		Outline:       []string{"A", "B", "C"},
		StrictOutline: true,
	}

	got := s.Generate(context.Background(), req, "req-2")

	c := got.Content
	require.NotNil(t, c)
	assert.Equal(t, []string{"Strict Topic", "A", "B", "C"}, c.Headings)
	assert.Equal(t, 3, strings.Count(c.Content, "<h2"))
	assert.NotContains(t, c.Content, `class="toc"`)
	assert.NotContains(t, c.Content, "Internal Links")
}

func TestServiceNonStrictOutlineIsEnriched(t *testing.T) {
	s := NewService(newTestGateway())
	req := &ContentRequest{
		Title:   "Loose Topic",
		Outline: []string{"A", "B", "C", "D"},
	}

	got := s.Generate(context.Background(), req, "req-3")

	// Fallback content for an informational default intent carries both a
	// table of contents and an FAQ block.
	assert.Contains(t, got.Content.Content, `class="toc"`)
	assert.Contains(t, strings.ToLower(got.Content.Content), "faq")
}

func TestServiceRegenerateSectionShortCircuits(t *testing.T) {
	s := NewService(newTestGateway())
	req := &ContentRequest{
		Title:             "T",
		RegenerateSection: "Kết luận",
		RegenerateAction:  ActionCTA,
		Language:          "vi",
	}

	got := s.RegenerateSection(context.Background(), req, "req-4")

	assert.True(t, got.Success)
	assert.Equal(t, "req-4", got.RequestID)
	assert.Contains(t, got.SectionHTML, "<a href=")
	assert.Contains(t, got.SectionHTML, "<li>")
}
