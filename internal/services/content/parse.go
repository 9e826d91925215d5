package content

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// stripCodeFences removes leading/trailing markdown fences (``` or ```json)
// that models sometimes wrap around JSON despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// articlePayload mirrors the JSON contract of the full-article prompt.
// SEOScore is decoded as float64 because models return either form.
type articlePayload struct {
	Title           string   `json:"title"`
	MetaDescription string   `json:"metaDescription"`
	Content         string   `json:"content"`
	Headings        []string `json:"headings"`
	KeywordDensity  string   `json:"keywordDensity"`
	SEOScore        float64  `json:"seoScore"`
}

func parseArticleJSON(raw string) (*GeneratedContent, error) {
	var p articlePayload
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &p); err != nil {
		return nil, fmt.Errorf("article response is not valid JSON: %w", err)
	}
	if p.Content == "" {
		return nil, fmt.Errorf("article response has no content field")
	}
	return &GeneratedContent{
		Title:           p.Title,
		MetaDescription: p.MetaDescription,
		Content:         p.Content,
		Headings:        p.Headings,
		KeywordDensity:  p.KeywordDensity,
		SEOScore:        int(math.Round(p.SEOScore)),
	}, nil
}

type sectionPayload struct {
	SectionHTML string `json:"sectionHtml"`
}

func parseSectionJSON(raw string) (string, error) {
	var p sectionPayload
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &p); err != nil {
		return "", fmt.Errorf("section response is not valid JSON: %w", err)
	}
	if p.SectionHTML == "" {
		return "", fmt.Errorf("section response has no sectionHtml field")
	}
	return p.SectionHTML, nil
}

func parseIntentJSON(raw string) (*IntentAnalysis, error) {
	var a IntentAnalysis
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &a); err != nil {
		return nil, fmt.Errorf("intent response is not valid JSON: %w", err)
	}
	if len(a.Intents) == 0 {
		return nil, fmt.Errorf("intent response has no intents")
	}
	if a.PrimaryIntent == "" {
		top := a.Intents[0]
		for _, in := range a.Intents[1:] {
			if in.Confidence > top.Confidence {
				top = in
			}
		}
		a.PrimaryIntent = top.Type
	}
	return &a, nil
}
