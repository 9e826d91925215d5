package content

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"seo-content-engine/internal/services/llm"
)

// IntentAnalyzer infers search intent for a topic. It never fails: any
// provider or parse error degrades to a static default distribution.
type IntentAnalyzer struct {
	gateway *llm.Gateway
}

func NewIntentAnalyzer(gateway *llm.Gateway) *IntentAnalyzer {
	return &IntentAnalyzer{gateway: gateway}
}

func (a *IntentAnalyzer) Analyze(ctx context.Context, req *ContentRequest) *IntentAnalysis {
	// Caller-supplied intents bypass inference entirely.
	if len(req.Intents) > 0 {
		return analysisFromSupplied(req.Intents)
	}

	comp, err := a.gateway.Complete(ctx, llm.CompletionRequest{
		Prompt: buildIntentPrompt(req),
		System: intentSystemPrompt,
	})
	if err != nil {
		log.Warn().Err(err).Str("title", req.Title).Msg("Intent inference failed, using default distribution")
		return defaultIntentAnalysis(req)
	}

	analysis, err := parseIntentJSON(comp.Text)
	if err != nil {
		log.Warn().Err(err).Str("provider", comp.Provider).Msg("Intent response unparsable, using default distribution")
		return defaultIntentAnalysis(req)
	}

	if len(analysis.KeywordClusters) == 0 {
		analysis.KeywordClusters = defaultKeywordClusters(req)
	}
	return analysis
}

func analysisFromSupplied(scores []IntentScore) *IntentAnalysis {
	intents := make([]Intent, 0, len(scores))
	for _, s := range scores {
		intents = append(intents, Intent{
			Type:        s.Type,
			Confidence:  s.Confidence,
			Description: fmt.Sprintf("%s intent supplied by the caller (%d%% confidence)", s.Type, s.Confidence),
		})
	}
	return &IntentAnalysis{
		Intents:       intents,
		PrimaryIntent: scores[0].Type,
		KeywordClusters: []string{
			"related topics",
		},
		SEORecommendations: []string{
			"Align section structure with the supplied intent distribution",
		},
	}
}

func defaultKeywordClusters(req *ContentRequest) []string {
	if len(req.Keywords) > 0 {
		clusters := make([]string, len(req.Keywords))
		copy(clusters, req.Keywords)
		return clusters
	}
	return []string{"related topics"}
}

// defaultIntentAnalysis is the static distribution used when inference is
// unavailable, skewed informational so the article stays broadly useful.
func defaultIntentAnalysis(req *ContentRequest) *IntentAnalysis {
	return &IntentAnalysis{
		Intents: []Intent{
			{Type: "Informational", Confidence: 70, Description: "Readers want to understand the topic"},
			{Type: "Commercial", Confidence: 20, Description: "Readers compare options before deciding"},
			{Type: "Transactional", Confidence: 5, Description: "Readers are ready to act"},
			{Type: "Navigational", Confidence: 3, Description: "Readers look for a specific destination"},
			{Type: "Local", Confidence: 2, Description: "Readers search with a local angle"},
		},
		PrimaryIntent:   "Informational",
		KeywordClusters: defaultKeywordClusters(req),
		SEORecommendations: []string{
			"Answer the main question within the first paragraph",
			"Use descriptive H2/H3 headings with target keywords",
			"Add an FAQ section covering common follow-up questions",
		},
	}
}
