package content

import "strings"

// locale holds the structural labels used by the fallback builder and the
// enricher. Vietnamese when the language tag starts with "vi", otherwise a
// bilingual-neutral English variant.
type locale struct {
	TOC           string
	Intro         string
	Overview      string
	Process       string
	Checklist     string
	FAQ           string
	Conclusion    string
	InternalLinks string
	Comparison    string
	CTAHeading    string
	CTALink       string
	ReadMore      string
}

var localeVI = locale{
	TOC:           "Mục lục",
	Intro:         "Giới thiệu",
	Overview:      "Tổng quan",
	Process:       "Quy trình đề xuất",
	Checklist:     "Checklist tối ưu",
	FAQ:           "FAQ - Câu hỏi thường gặp",
	Conclusion:    "Kết luận",
	InternalLinks: "Liên kết nội bộ đề xuất",
	Comparison:    "Bảng so sánh",
	CTAHeading:    "Bắt đầu ngay hôm nay",
	CTALink:       "Đăng ký ngay",
	ReadMore:      "Xem thêm",
}

var localeEN = locale{
	TOC:           "Table of Contents",
	Intro:         "Introduction",
	Overview:      "Overview",
	Process:       "Suggested Process",
	Checklist:     "Optimization Checklist",
	FAQ:           "FAQ",
	Conclusion:    "Conclusion",
	InternalLinks: "Suggested Internal Links",
	Comparison:    "Comparison",
	CTAHeading:    "Get Started Today",
	CTALink:       "Sign up now",
	ReadMore:      "Read more",
}

func isVietnamese(lang string) bool {
	return strings.HasPrefix(strings.ToLower(lang), "vi")
}

func localeFor(lang string) locale {
	if isVietnamese(lang) {
		return localeVI
	}
	return localeEN
}
