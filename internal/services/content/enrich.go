package content

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	h2TagRe    = regexp.MustCompile(`(?is)<h2([^>]*)>(.*?)</h2>`)
	h1CloseRe  = regexp.MustCompile(`(?is)</h1>`)
	innerTagRe = regexp.MustCompile(`(?s)<[^>]+>`)
)

var ctaMarkers = []string{
	"call-to-action", "cta", "buy now", "sign up", "get started",
	"đăng ký", "mua ngay", "bắt đầu ngay",
}

// EnsureIntentFeatures guarantees intent-specific structural blocks on
// full-article output. It is additive only: existing content is never
// removed or reordered, missing anchors are repaired and missing sections
// appended.
func EnsureIntentFeatures(htmlContent, primaryIntent, lang string) string {
	loc := localeFor(lang)
	htmlContent = repairAnchors(htmlContent)

	headings := extractH2Texts(htmlContent)
	lower := strings.ToLower(htmlContent)
	intent := strings.ToLower(primaryIntent)

	if strings.Contains(intent, "informational") {
		if !hasTOC(lower) && len(headings) >= 4 {
			htmlContent = insertTOC(htmlContent, headings, loc)
		}
		if !hasFAQ(lower) {
			htmlContent += renderFAQBlock(lang, loc)
		}
	}

	if strings.Contains(intent, "commercial") && !strings.Contains(lower, "<table") {
		htmlContent += renderComparisonTable(lang, loc)
	}

	if strings.Contains(intent, "transactional") && !hasCTA(lower) {
		htmlContent += renderCTABlock(lang, loc)
	}

	if !hasInternalLinks(lower) && len(headings) >= 3 {
		htmlContent += renderInternalLinks(headings[:3], loc)
	}

	return htmlContent
}

func hasTOC(lower string) bool {
	return strings.Contains(lower, `class="toc"`) ||
		strings.Contains(lower, "table of contents") ||
		strings.Contains(lower, "mục lục")
}

func hasFAQ(lower string) bool {
	return strings.Contains(lower, "faq") || strings.Contains(lower, "câu hỏi thường gặp")
}

func hasCTA(lower string) bool {
	for _, m := range ctaMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func hasInternalLinks(lower string) bool {
	return strings.Contains(lower, "internal links") || strings.Contains(lower, "liên kết nội bộ")
}

// repairAnchors gives every id-less <h2> a slug id derived from its text.
func repairAnchors(htmlContent string) string {
	return h2TagRe.ReplaceAllStringFunc(htmlContent, func(tag string) string {
		m := h2TagRe.FindStringSubmatch(tag)
		attrs, inner := m[1], m[2]
		if strings.Contains(strings.ToLower(attrs), "id=") {
			return tag
		}
		slug := Slugify(headingText(inner))
		if slug == "" {
			return tag
		}
		return fmt.Sprintf("<h2%s id=%q>%s</h2>", attrs, slug, inner)
	})
}

func headingText(inner string) string {
	return strings.TrimSpace(html.UnescapeString(innerTagRe.ReplaceAllString(inner, "")))
}

func extractH2Texts(htmlContent string) []string {
	var out []string
	for _, m := range h2TagRe.FindAllStringSubmatch(htmlContent, -1) {
		if text := headingText(m[2]); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// insertTOC places the table of contents right after the opening <h1>, or
// at the top when there is none.
func insertTOC(htmlContent string, headings []string, loc locale) string {
	var b strings.Builder
	b.WriteString("\n<nav class=\"toc\">\n")
	fmt.Fprintf(&b, "<h2 id=%q>%s</h2>\n<ul>\n", Slugify(loc.TOC), loc.TOC)
	for _, h := range headings {
		fmt.Fprintf(&b, "<li><a href=\"#%s\">%s</a></li>\n", Slugify(h), html.EscapeString(h))
	}
	b.WriteString("</ul>\n</nav>\n")
	toc := b.String()

	if pos := h1CloseRe.FindStringIndex(htmlContent); pos != nil {
		return htmlContent[:pos[1]] + toc + htmlContent[pos[1]:]
	}
	return toc + htmlContent
}

func renderFAQBlock(lang string, loc locale) string {
	var faq []faqItem
	if isVietnamese(lang) {
		faq = []faqItem{
			{Question: "Chủ đề này phù hợp với ai?", Answer: "Bất kỳ ai muốn tìm hiểu và áp dụng nội dung trong bài viết."},
			{Question: "Nên bắt đầu từ đâu?", Answer: "Đọc lần lượt các phần theo mục lục, sau đó áp dụng từng bước."},
			{Question: "Có cần kiến thức nền không?", Answer: "Không bắt buộc, bài viết trình bày từ cơ bản đến nâng cao."},
		}
	} else {
		faq = []faqItem{
			{Question: "Who is this topic for?", Answer: "Anyone who wants to understand and apply what this article covers."},
			{Question: "Where should I start?", Answer: "Read the sections in order, then apply them step by step."},
			{Question: "Do I need prior knowledge?", Answer: "No, the article builds up from the basics."},
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n<h2 id=%q>%s</h2>\n", Slugify(loc.FAQ), loc.FAQ)
	for _, f := range faq {
		fmt.Fprintf(&b, "<h3>%s</h3>\n<p>%s</p>\n", f.Question, f.Answer)
	}
	return b.String()
}

func renderComparisonTable(lang string, loc locale) string {
	criteria, optionA, optionB := "Criteria", "Option A", "Option B"
	rows := [][2]string{
		{"Cost", "Lower upfront, fewer features"},
		{"Ease of use", "Quick to start"},
		{"Scalability", "Better for long-term growth"},
	}
	if isVietnamese(lang) {
		criteria, optionA, optionB = "Tiêu chí", "Lựa chọn A", "Lựa chọn B"
		rows = [][2]string{
			{"Chi phí", "Thấp hơn ban đầu, ít tính năng hơn"},
			{"Dễ sử dụng", "Bắt đầu nhanh chóng"},
			{"Khả năng mở rộng", "Phù hợp cho phát triển dài hạn"},
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n<h2 id=%q>%s</h2>\n<table>\n", Slugify(loc.Comparison), loc.Comparison)
	fmt.Fprintf(&b, "<thead><tr><th>%s</th><th>%s / %s</th></tr></thead>\n<tbody>\n", criteria, optionA, optionB)
	for _, r := range rows {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>\n", r[0], r[1])
	}
	b.WriteString("</tbody>\n</table>\n")
	return b.String()
}

func renderCTABlock(lang string, loc locale) string {
	bullets := []string{
		"Start in minutes, no setup required",
		"Cancel anytime",
		"Support available when you need it",
	}
	if isVietnamese(lang) {
		bullets = []string{
			"Bắt đầu trong vài phút, không cần cài đặt",
			"Hủy bất cứ lúc nào",
			"Hỗ trợ khi bạn cần",
		}
	}

	var b strings.Builder
	b.WriteString("\n<div class=\"cta\">\n")
	fmt.Fprintf(&b, "<h2 id=%q>%s</h2>\n", Slugify(loc.CTAHeading), loc.CTAHeading)
	fmt.Fprintf(&b, "<p><a href=\"#\" style=\"display:inline-block;padding:12px 24px;background:#2563eb;color:#ffffff;border-radius:6px;text-decoration:none;font-weight:bold;\">%s</a></p>\n<ul>\n", loc.CTALink)
	for _, bu := range bullets {
		fmt.Fprintf(&b, "<li>%s</li>\n", bu)
	}
	b.WriteString("</ul>\n</div>\n")
	return b.String()
}

func renderInternalLinks(headings []string, loc locale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n<h2 id=%q>%s</h2>\n<ul>\n", Slugify(loc.InternalLinks), loc.InternalLinks)
	for _, h := range headings {
		fmt.Fprintf(&b, "<li><a href=\"#%s\">%s: %s</a></li>\n", Slugify(h), loc.ReadMore, html.EscapeString(h))
	}
	b.WriteString("</ul>\n")
	return b.String()
}
