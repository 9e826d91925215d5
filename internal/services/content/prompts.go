package content

import (
	"fmt"
	"strings"
)

const intentSystemPrompt = "You are an SEO strategist. You answer with a single JSON object and nothing else: no markdown fences, no commentary."

const articleSystemPrompt = "You are an expert SEO content writer. You answer with a single JSON object and nothing else: no markdown fences, no commentary."

// paragraphHint maps section depth to the paragraphs-per-section wording used
// in every generation prompt.
func paragraphHint(depth string) string {
	switch depth {
	case DepthBasic:
		return "1-2"
	case DepthDeep:
		return "3-5"
	default:
		return "2-3"
	}
}

// brandVoiceText returns the style instructions appended verbatim to every
// generation prompt, or "" when the request carries none.
func brandVoiceText(req *ContentRequest) string {
	var parts []string
	if req.BrandVoicePreset != "" {
		parts = append(parts, fmt.Sprintf("Brand voice preset: %s.", req.BrandVoicePreset))
	}
	if req.BrandCustomStyle != "" {
		parts = append(parts, fmt.Sprintf("Custom style notes: %s.", req.BrandCustomStyle))
	}
	if len(parts) == 0 {
		return ""
	}
	return "\n" + strings.Join(parts, "\n")
}

func targetWordCount(req *ContentRequest) int {
	if req.WordCount > 0 {
		return req.WordCount
	}
	return 1000
}

func buildIntentPrompt(req *ContentRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the search intent behind this article topic.\n\nTitle: %q\n", req.Title)
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(req.Keywords, ", "))
	}
	if req.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", req.Language)
	}
	b.WriteString(`
Return a JSON object with exactly this shape:
{
  "intents": [
    {"type": "Informational", "confidence": <integer 0-100>, "description": "<one sentence>"},
    {"type": "Commercial", "confidence": <integer 0-100>, "description": "<one sentence>"},
    {"type": "Transactional", "confidence": <integer 0-100>, "description": "<one sentence>"},
    {"type": "Navigational", "confidence": <integer 0-100>, "description": "<one sentence>"},
    {"type": "Local", "confidence": <integer 0-100>, "description": "<one sentence>"}
  ],
  "primaryIntent": "<the type with the highest confidence>",
  "keywordClusters": ["<related keyword group>", ...],
  "seoRecommendations": ["<actionable recommendation>", ...]
}
All five intent types must be present. Confidences should sum to roughly 100.`)
	return b.String()
}

func buildArticlePrompt(req *ContentRequest, analysis *IntentAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a complete SEO-optimized HTML article (not an outline).\n\nTitle: %q\n", req.Title)
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "Target keywords: %s\n", strings.Join(req.Keywords, ", "))
	}
	if req.Language != "" {
		fmt.Fprintf(&b, "Write in language: %s\n", req.Language)
	}
	if req.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	}
	fmt.Fprintf(&b, "Target length: about %d words.\n", targetWordCount(req))
	fmt.Fprintf(&b, "Primary search intent: %s.\n", analysis.PrimaryIntent)
	fmt.Fprintf(&b, "Each section should have %s paragraphs.\n", paragraphHint(req.SectionDepth))

	if len(req.Outline) > 0 {
		b.WriteString("\nStructure requirements:\n- Start with a single <h1> for the title.\n- Use exactly these section headings as <h2>, verbatim and in order, with no extra top-level headings:\n")
		for _, h := range req.Outline {
			fmt.Fprintf(&b, "  - %s\n", h)
		}
	} else {
		b.WriteString(`
Structure requirements:
- Start with a single <h1> for the title.
- An introduction paragraph that naturally includes the primary keyword.
- 3 to 6 <h2> sections (use <h3> subsections where useful).
- An FAQ section with at least 3 question/answer pairs.
- A conclusion section ending with a call-to-action.
`)
	}

	b.WriteString(brandVoiceText(req))

	b.WriteString(`
Return a single JSON object, with no markdown fences:
{
  "title": "<final article title>",
  "metaDescription": "<max 160 characters>",
  "content": "<the full HTML article>",
  "headings": ["<4 to 10 heading strings>"],
  "keywordDensity": "<e.g. 1.5%>",
  "seoScore": <integer 0-100>
}`)
	return b.String()
}

func buildSectionPrompt(req *ContentRequest, heading string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write one section of an article titled %q.\n\n", req.Title)
	fmt.Fprintf(&b, "The section heading is %q. Begin the HTML with exactly:\n<h2 id=%q>%s</h2>\n", heading, Slugify(heading), heading)
	fmt.Fprintf(&b, "Follow the heading with %s paragraphs. Do not add any other <h1> or <h2>.\n", paragraphHint(req.SectionDepth))
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "Work in these keywords where natural: %s\n", strings.Join(req.Keywords, ", "))
	}
	if req.Language != "" {
		fmt.Fprintf(&b, "Write in language: %s\n", req.Language)
	}
	if req.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	}
	b.WriteString(brandVoiceText(req))
	b.WriteString("\nReturn a single JSON object, with no markdown fences: {\"sectionHtml\": \"<the section HTML>\"}")
	return b.String()
}

var regenerateDirectives = map[string]string{
	ActionExpand:   "Expand the section with added depth and detail. Do not repeat sentences that a previous version would already contain.",
	ActionShorten:  "Condense the section to 1-2 tight paragraphs, keeping the key points.",
	ActionExamples: "Rewrite the section around concrete illustrative examples, presented as bullet points.",
	ActionData:     "Support the section with 2-3 relevant statistics, each attributed to a named source (text only, no links required).",
	ActionCTA:      "End the section with a styled call-to-action link plus 2-3 bullet points justifying the action.",
}

func buildRegeneratePrompt(req *ContentRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Regenerate a single section of an article titled %q.\n\n", req.Title)
	fmt.Fprintf(&b, "The section heading is %q. Begin the HTML with exactly:\n<h2 id=%q>%s</h2>\n", req.RegenerateSection, Slugify(req.RegenerateSection), req.RegenerateSection)

	directive, ok := regenerateDirectives[req.RegenerateAction]
	if !ok {
		directive = regenerateDirectives[ActionExpand]
	}
	b.WriteString(directive + "\n")

	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "Work in these keywords where natural: %s\n", strings.Join(req.Keywords, ", "))
	}
	if req.Language != "" {
		fmt.Fprintf(&b, "Write in language: %s\n", req.Language)
	}
	if req.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	}
	b.WriteString(brandVoiceText(req))
	b.WriteString("\nReturn a single JSON object, with no markdown fences: {\"sectionHtml\": \"<the section HTML>\"}")
	return b.String()
}
