package content

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog/log"

	"seo-content-engine/internal/services/llm"
)

// strictOutlineSEOScore is the heuristic score for section-by-section
// output, where the model never reports one.
const strictOutlineSEOScore = 84

// Generator produces article content in one of three modes. Provider
// failures never surface: full-article mode defers to the fallback builder
// and the per-section modes emit deterministic skeletons.
type Generator struct {
	gateway  *llm.Gateway
	fallback FallbackBuilder
}

func NewGenerator(gateway *llm.Gateway) *Generator {
	return &Generator{gateway: gateway}
}

// FullArticle generates a complete article in one call. The second return
// value is the provider that produced the payload, or ProviderFallback.
func (g *Generator) FullArticle(ctx context.Context, req *ContentRequest, analysis *IntentAnalysis) (*GeneratedContent, string) {
	comp, err := g.gateway.Complete(ctx, llm.CompletionRequest{
		Prompt: buildArticlePrompt(req, analysis),
		System: articleSystemPrompt,
	})
	if err != nil {
		log.Warn().Err(err).Str("title", req.Title).Msg("Article generation failed, using fallback builder")
		return g.fallback.Build(req, analysis.PrimaryIntent), ProviderFallback
	}

	generated, err := parseArticleJSON(comp.Text)
	if err != nil {
		log.Warn().Err(err).Str("provider", comp.Provider).Msg("Article response unparsable, using fallback builder")
		return g.fallback.Build(req, analysis.PrimaryIntent), ProviderFallback
	}

	if generated.Title == "" {
		generated.Title = req.Title
	}
	if generated.KeywordDensity == "" {
		generated.KeywordDensity = estimateKeywordDensity(req.Keywords)
	}
	return generated, comp.Provider
}

// StrictOutline generates one section per caller-supplied heading,
// sequentially, and concatenates them under a synthesized <h1>. A failed
// section becomes a minimal skeleton instead of aborting the request.
func (g *Generator) StrictOutline(ctx context.Context, req *ContentRequest, analysis *IntentAnalysis) (*GeneratedContent, string) {
	loc := localeFor(req.Language)

	var b strings.Builder
	fmt.Fprintf(&b, "<h1 id=%q>%s</h1>\n", Slugify(req.Title), html.EscapeString(req.Title))

	provider := ProviderFallback
	for _, heading := range req.Outline {
		fragment, p := g.generateSection(ctx, req, heading)
		if p != "" && provider == ProviderFallback {
			provider = p
		}
		b.WriteString(fragment)
		b.WriteString("\n")
	}

	headings := make([]string, 0, len(req.Outline)+1)
	headings = append(headings, req.Title)
	headings = append(headings, req.Outline...)

	return &GeneratedContent{
		Title:           req.Title,
		MetaDescription: buildMetaDescription(req, loc),
		Content:         b.String(),
		Headings:        headings,
		KeywordDensity:  estimateKeywordDensity(req.Keywords),
		SEOScore:        strictOutlineSEOScore,
	}, provider
}

// generateSection returns the HTML fragment for one outline heading and the
// provider that produced it ("" when the skeleton was used).
func (g *Generator) generateSection(ctx context.Context, req *ContentRequest, heading string) (string, string) {
	comp, err := g.gateway.Complete(ctx, llm.CompletionRequest{
		Prompt: buildSectionPrompt(req, heading),
		System: articleSystemPrompt,
	})
	if err != nil {
		log.Warn().Err(err).Str("heading", heading).Msg("Section generation failed, using skeleton")
		return sectionSkeleton(heading, req.Language), ""
	}

	fragment, err := parseSectionJSON(comp.Text)
	if err != nil {
		log.Warn().Err(err).Str("heading", heading).Str("provider", comp.Provider).Msg("Section response unparsable, using skeleton")
		return sectionSkeleton(heading, req.Language), ""
	}

	// The prompt pins the anchored heading; repair when the model drops it.
	if !strings.Contains(strings.ToLower(fragment), "<h2") {
		fragment = anchoredHeading(heading) + "\n" + fragment
	}
	return fragment, comp.Provider
}

// RegenerateSection produces the HTML for a single heading, modulated by
// the requested action. It never fails.
func (g *Generator) RegenerateSection(ctx context.Context, req *ContentRequest) string {
	comp, err := g.gateway.Complete(ctx, llm.CompletionRequest{
		Prompt: buildRegeneratePrompt(req),
		System: articleSystemPrompt,
	})
	if err == nil {
		if fragment, perr := parseSectionJSON(comp.Text); perr == nil {
			return fragment
		} else {
			log.Warn().Err(perr).Str("provider", comp.Provider).Msg("Regenerated section unparsable, using fallback fragment")
		}
	} else {
		log.Warn().Err(err).Str("heading", req.RegenerateSection).Msg("Section regeneration failed, using fallback fragment")
	}
	return fallbackSectionHTML(req.RegenerateSection, req.RegenerateAction, req.Language)
}

func anchoredHeading(heading string) string {
	return fmt.Sprintf("<h2 id=%q>%s</h2>", Slugify(heading), html.EscapeString(heading))
}

func sectionSkeleton(heading, lang string) string {
	placeholder := "Content for this section is being prepared."
	if isVietnamese(lang) {
		placeholder = "Nội dung cho phần này đang được cập nhật."
	}
	return anchoredHeading(heading) + "\n<p>" + placeholder + "</p>"
}

// fallbackSectionHTML is the deterministic fragment returned when no
// provider can regenerate a section.
func fallbackSectionHTML(heading, action, lang string) string {
	loc := localeFor(lang)
	vi := isVietnamese(lang)

	var b strings.Builder
	b.WriteString(anchoredHeading(heading))
	b.WriteString("\n")

	switch action {
	case ActionCTA:
		bullets := []string{
			"Start in minutes, no setup required",
			"Cancel anytime",
			"Support available when you need it",
		}
		if vi {
			bullets = []string{
				"Bắt đầu trong vài phút, không cần cài đặt",
				"Hủy bất cứ lúc nào",
				"Hỗ trợ khi bạn cần",
			}
		}
		fmt.Fprintf(&b, "<p><a href=\"#\" style=\"display:inline-block;padding:12px 24px;background:#2563eb;color:#ffffff;border-radius:6px;text-decoration:none;font-weight:bold;\">%s</a></p>\n<ul>\n", loc.CTALink)
		for _, bu := range bullets {
			fmt.Fprintf(&b, "<li>%s</li>\n", bu)
		}
		b.WriteString("</ul>")
	case ActionExamples:
		items := []string{"Example 1: a small-scale application", "Example 2: a common real-world scenario", "Example 3: an advanced variation"}
		if vi {
			items = []string{"Ví dụ 1: ứng dụng ở quy mô nhỏ", "Ví dụ 2: tình huống thực tế thường gặp", "Ví dụ 3: biến thể nâng cao"}
		}
		b.WriteString("<ul>\n")
		for _, it := range items {
			fmt.Fprintf(&b, "<li>%s</li>\n", it)
		}
		b.WriteString("</ul>")
	case ActionData:
		if vi {
			fmt.Fprintf(&b, "<p>Các số liệu cập nhật về %s sẽ được bổ sung kèm nguồn tham khảo cụ thể.</p>", html.EscapeString(heading))
		} else {
			fmt.Fprintf(&b, "<p>Up-to-date statistics on %s will be added here with named sources.</p>", html.EscapeString(heading))
		}
	default:
		if vi {
			fmt.Fprintf(&b, "<p>Nội dung chi tiết cho phần %s đang được cập nhật.</p>", html.EscapeString(heading))
		} else {
			fmt.Fprintf(&b, "<p>Detailed content for %s is being prepared.</p>", html.EscapeString(heading))
		}
	}
	return b.String()
}
