package content

// Section depth values accepted in ContentRequest.SectionDepth.
const (
	DepthBasic    = "basic"
	DepthStandard = "standard"
	DepthDeep     = "deep"
)

// Regeneration actions accepted in ContentRequest.RegenerateAction.
const (
	ActionExpand   = "expand"
	ActionShorten  = "shorten"
	ActionExamples = "examples"
	ActionData     = "data"
	ActionCTA      = "cta"
)

// ProviderFallback marks a response produced without any external provider.
const ProviderFallback = "fallback"

// ContentRequest is the JSON body of the generate endpoint.
type ContentRequest struct {
	Title             string        `json:"title" validate:"required,min=1,max=500"`
	Keywords          []string      `json:"keywords,omitempty"`
	Language          string        `json:"language,omitempty"`
	Tone              string        `json:"tone,omitempty"`
	WordCount         int           `json:"wordCount,omitempty"`
	Outline           []string      `json:"outline,omitempty"`
	StrictOutline     bool          `json:"strictOutline,omitempty"`
	BrandVoicePreset  string        `json:"brandVoicePreset,omitempty"`
	BrandCustomStyle  string        `json:"brandCustomStyle,omitempty"`
	SectionDepth      string        `json:"sectionDepth,omitempty"`
	RegenerateSection string        `json:"regenerateSection,omitempty"`
	RegenerateAction  string        `json:"regenerateAction,omitempty"`
	Intents           []IntentScore `json:"intents,omitempty"`
}

// IntentScore is a caller-supplied intent, trusted as-is.
type IntentScore struct {
	Type       string `json:"type"`
	Confidence int    `json:"confidence"`
}

// Intent is one classified search intent with a 0-100 confidence.
type Intent struct {
	Type        string `json:"type"`
	Confidence  int    `json:"confidence"`
	Description string `json:"description"`
}

// IntentAnalysis is the result of intent inference. Intents is never empty
// and PrimaryIntent is never blank, even when every provider fails.
type IntentAnalysis struct {
	Intents            []Intent `json:"intents"`
	PrimaryIntent      string   `json:"primaryIntent"`
	KeywordClusters    []string `json:"keywordClusters"`
	SEORecommendations []string `json:"seoRecommendations"`
}

// GeneratedContent is the normalized article payload.
type GeneratedContent struct {
	Title           string   `json:"title"`
	MetaDescription string   `json:"metaDescription"`
	Content         string   `json:"content"`
	Headings        []string `json:"headings"`
	KeywordDensity  string   `json:"keywordDensity"`
	SEOScore        int      `json:"seoScore"`
}

// GenerateResponse is the full envelope for article generation.
type GenerateResponse struct {
	IntentAnalysis *IntentAnalysis   `json:"intentAnalysis"`
	Content        *GeneratedContent `json:"content"`
	Success        bool              `json:"success"`
	Timestamp      string            `json:"timestamp"`
	ProviderUsed   string            `json:"providerUsed"`
	RequestID      string            `json:"requestId"`
}

// SectionResponse is the short-circuit envelope for single-section
// regeneration. It carries no intent analysis and no full article.
type SectionResponse struct {
	Success     bool   `json:"success"`
	SectionHTML string `json:"sectionHtml"`
	Timestamp   string `json:"timestamp"`
	RequestID   string `json:"requestId"`
}

// ErrorResponse is returned with HTTP 500 on an unhandled fault.
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Success   bool   `json:"success"`
	RequestID string `json:"requestId"`
}
