package content

import (
	"regexp"
)

const (
	maxMetaDescription = 160
	minHeadings        = 4
	maxHeadings        = 10
)

var (
	htmlHeadingRe     = regexp.MustCompile(`(?is)<h[1-3][^>]*>(.*?)</h[1-3]>`)
	markdownHeadingRe = regexp.MustCompile(`(?m)^#{1,3}\s+(.+)$`)
)

// Normalize clamps and repairs the final payload so every response honors
// the SEO invariants regardless of what the upstream path produced.
func Normalize(c *GeneratedContent) {
	c.MetaDescription = truncateRunes(c.MetaDescription, maxMetaDescription)

	if c.SEOScore < 0 {
		c.SEOScore = 0
	} else if c.SEOScore > 100 {
		c.SEOScore = 100
	}

	if len(c.Headings) < minHeadings {
		if derived := deriveHeadings(c.Content); len(derived) > len(c.Headings) {
			c.Headings = derived
		}
	}
	if len(c.Headings) > maxHeadings {
		c.Headings = c.Headings[:maxHeadings]
	}
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// deriveHeadings scans HTML h1-h3 tags, then markdown-style #/##/### lines
// as a secondary pattern, collecting up to maxHeadings entries.
func deriveHeadings(content string) []string {
	var out []string
	for _, m := range htmlHeadingRe.FindAllStringSubmatch(content, -1) {
		if text := headingText(m[1]); text != "" {
			out = append(out, text)
		}
		if len(out) == maxHeadings {
			return out
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, m := range markdownHeadingRe.FindAllStringSubmatch(content, -1) {
		if text := headingText(m[1]); text != "" {
			out = append(out, text)
		}
		if len(out) == maxHeadings {
			break
		}
	}
	return out
}
