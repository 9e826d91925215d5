package content

import (
	"fmt"
	"html"
	"strings"
)

// fallbackSEOScore is the fixed heuristic score for provider-free articles.
const fallbackSEOScore = 86

const maxFallbackKeywords = 8

type sectionKind int

const (
	kindParagraph sectionKind = iota
	kindList
	kindSteps
	kindFAQ
)

type faqItem struct {
	Question string
	Answer   string
}

// articleSection is the typed outline model the fallback article is built
// from; markup is only produced at render time.
type articleSection struct {
	Heading    string
	Kind       sectionKind
	Paragraphs []string
	Items      []string
	FAQ        []faqItem
}

// FallbackBuilder assembles a complete article skeleton with no external
// calls. It is a pure function of the request: identical inputs always
// produce identical output.
type FallbackBuilder struct{}

func (FallbackBuilder) Build(req *ContentRequest, primaryIntent string) *GeneratedContent {
	loc := localeFor(req.Language)

	var sections []articleSection
	if len(req.Outline) > 0 {
		sections = outlineSections(req, loc)
	} else {
		sections = genericSections(req, primaryIntent, loc)
	}

	headings := make([]string, 0, len(sections)+1)
	headings = append(headings, req.Title)
	for _, s := range sections {
		headings = append(headings, s.Heading)
	}

	return &GeneratedContent{
		Title:           req.Title,
		MetaDescription: buildMetaDescription(req, loc),
		Content:         renderArticle(req.Title, loc, sections),
		Headings:        headings,
		KeywordDensity:  estimateKeywordDensity(req.Keywords),
		SEOScore:        fallbackSEOScore,
	}
}

func genericSections(req *ContentRequest, primaryIntent string, loc locale) []articleSection {
	vi := isVietnamese(req.Language)
	title := req.Title
	wc := targetWordCount(req)

	intro := articleSection{Heading: loc.Intro, Kind: kindParagraph}
	if vi {
		p := fmt.Sprintf("%s là chủ đề được nhiều người quan tâm. Bài viết này tổng hợp thông tin thực tế giúp bạn nắm được bức tranh đầy đủ về chủ đề.", title)
		if req.Tone != "" {
			p += fmt.Sprintf(" Nội dung được trình bày theo phong cách %s.", req.Tone)
		}
		intro.Paragraphs = []string{p}
	} else {
		p := fmt.Sprintf("%s is a topic many readers care about. This article brings together practical information so you get the full picture.", title)
		if req.Tone != "" {
			p += fmt.Sprintf(" The content follows a %s tone.", req.Tone)
		}
		intro.Paragraphs = []string{p}
	}
	if strings.Contains(strings.ToLower(primaryIntent), "commercial") {
		if vi {
			intro.Paragraphs = append(intro.Paragraphs, "Bài viết cũng so sánh các lựa chọn phổ biến để bạn dễ ra quyết định.")
		} else {
			intro.Paragraphs = append(intro.Paragraphs, "It also compares the common options so you can decide with confidence.")
		}
	}

	overview := articleSection{Heading: loc.Overview, Kind: kindList}
	kws := req.Keywords
	if len(kws) > maxFallbackKeywords {
		kws = kws[:maxFallbackKeywords]
	}
	if len(kws) > 0 {
		for _, kw := range kws {
			if vi {
				overview.Items = append(overview.Items, fmt.Sprintf("Tìm hiểu về %s", kw))
			} else {
				overview.Items = append(overview.Items, fmt.Sprintf("Understanding %s", kw))
			}
		}
	} else if vi {
		overview.Items = []string{"Khái niệm cơ bản", "Lợi ích chính", "Những lưu ý quan trọng"}
	} else {
		overview.Items = []string{"Core concepts", "Key benefits", "Important caveats"}
	}

	process := articleSection{Heading: loc.Process, Kind: kindSteps}
	if vi {
		process.Items = []string{
			"Xác định mục tiêu và phạm vi",
			"Nghiên cứu và thu thập thông tin",
			"Lập kế hoạch chi tiết",
			"Triển khai từng bước",
			"Theo dõi và tối ưu kết quả",
		}
	} else {
		process.Items = []string{
			"Define the goal and scope",
			"Research and gather information",
			"Draft a detailed plan",
			"Execute step by step",
			"Measure and optimize the results",
		}
	}

	checklist := articleSection{Heading: loc.Checklist, Kind: kindList}
	if vi {
		checklist.Items = []string{
			fmt.Sprintf("Đảm bảo bài viết khoảng %d từ", wc),
			"Chèn từ khóa chính vào tiêu đề và đoạn mở đầu",
			"Thêm liên kết nội bộ tới bài viết liên quan",
			"Tối ưu thẻ meta description dưới 160 ký tự",
			"Kiểm tra tốc độ tải trang và hiển thị di động",
		}
	} else {
		checklist.Items = []string{
			fmt.Sprintf("Keep the article around %d words", wc),
			"Place the primary keyword in the title and opening paragraph",
			"Add internal links to related articles",
			"Keep the meta description under 160 characters",
			"Check page speed and mobile rendering",
		}
	}

	faq := articleSection{Heading: loc.FAQ, Kind: kindFAQ}
	if vi {
		faq.FAQ = []faqItem{
			{Question: fmt.Sprintf("%s là gì?", title), Answer: "Phần tổng quan ở trên tóm tắt khái niệm và bối cảnh chính của chủ đề."},
			{Question: "Nên bắt đầu từ đâu?", Answer: "Làm theo quy trình 5 bước được đề xuất trong bài viết."},
			{Question: "Mất bao lâu để thấy kết quả?", Answer: "Tùy phạm vi triển khai, thường từ vài tuần đến vài tháng."},
		}
	} else {
		faq.FAQ = []faqItem{
			{Question: fmt.Sprintf("What is %s about?", title), Answer: "The overview section above summarizes the core concepts and context."},
			{Question: "Where should I start?", Answer: "Follow the five-step process suggested in this article."},
			{Question: "How long until I see results?", Answer: "It depends on scope; typically a few weeks to a few months."},
		}
	}

	conclusion := articleSection{Heading: loc.Conclusion, Kind: kindParagraph}
	if vi {
		conclusion.Paragraphs = []string{fmt.Sprintf("%s mang lại nhiều cơ hội nếu được triển khai bài bản. Hãy áp dụng checklist ở trên và bắt đầu ngay hôm nay.", title)}
	} else {
		conclusion.Paragraphs = []string{fmt.Sprintf("%s offers real opportunities when approached methodically. Apply the checklist above and get started today.", title)}
	}

	return []articleSection{intro, overview, process, checklist, faq, conclusion}
}

// outlineSections splices caller-supplied headings in place of the generic
// structure. The FAQ and conclusion are kept so the article stays complete
// even with a short outline.
func outlineSections(req *ContentRequest, loc locale) []articleSection {
	vi := isVietnamese(req.Language)
	sections := make([]articleSection, 0, len(req.Outline)+2)
	for _, h := range req.Outline {
		s := articleSection{Heading: h, Kind: kindParagraph}
		if vi {
			s.Paragraphs = []string{fmt.Sprintf("Phần này trình bày về %s trong khuôn khổ chủ đề %s.", h, req.Title)}
		} else {
			s.Paragraphs = []string{fmt.Sprintf("This section covers %s in the context of %s.", h, req.Title)}
		}
		sections = append(sections, s)
	}

	generic := genericSections(req, "", loc)
	// Last two generic sections are FAQ and conclusion.
	sections = append(sections, generic[len(generic)-2], generic[len(generic)-1])
	return sections
}

func buildMetaDescription(req *ContentRequest, loc locale) string {
	if isVietnamese(req.Language) {
		if len(req.Keywords) > 0 {
			return fmt.Sprintf("%s: hướng dẫn chi tiết về %s, kèm checklist tối ưu và câu hỏi thường gặp.", req.Title, req.Keywords[0])
		}
		return fmt.Sprintf("%s: hướng dẫn chi tiết, kèm checklist tối ưu và câu hỏi thường gặp.", req.Title)
	}
	if len(req.Keywords) > 0 {
		return fmt.Sprintf("%s: a practical guide to %s with an optimization checklist and FAQ.", req.Title, req.Keywords[0])
	}
	return fmt.Sprintf("%s: a practical guide with an optimization checklist and FAQ.", req.Title)
}

func estimateKeywordDensity(keywords []string) string {
	n := len(keywords)
	if n > 6 {
		n = 6
	}
	return fmt.Sprintf("%.1f%%", 0.8+0.2*float64(n))
}

func renderArticle(title string, loc locale, sections []articleSection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1 id=%q>%s</h1>\n", Slugify(title), html.EscapeString(title))

	b.WriteString("<nav class=\"toc\">\n")
	fmt.Fprintf(&b, "<h2 id=%q>%s</h2>\n<ul>\n", Slugify(loc.TOC), loc.TOC)
	for _, s := range sections {
		fmt.Fprintf(&b, "<li><a href=\"#%s\">%s</a></li>\n", Slugify(s.Heading), html.EscapeString(s.Heading))
	}
	b.WriteString("</ul>\n</nav>\n")

	for _, s := range sections {
		renderSection(&b, s)
	}
	return b.String()
}

func renderSection(b *strings.Builder, s articleSection) {
	fmt.Fprintf(b, "<h2 id=%q>%s</h2>\n", Slugify(s.Heading), html.EscapeString(s.Heading))
	for _, p := range s.Paragraphs {
		fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(p))
	}
	if len(s.Items) > 0 {
		tag := "ul"
		if s.Kind == kindSteps {
			tag = "ol"
		}
		fmt.Fprintf(b, "<%s>\n", tag)
		for _, it := range s.Items {
			fmt.Fprintf(b, "<li>%s</li>\n", html.EscapeString(it))
		}
		fmt.Fprintf(b, "</%s>\n", tag)
	}
	for _, f := range s.FAQ {
		fmt.Fprintf(b, "<h3>%s</h3>\n<p>%s</p>\n", html.EscapeString(f.Question), html.EscapeString(f.Answer))
	}
}
