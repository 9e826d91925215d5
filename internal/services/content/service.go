package content

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"seo-content-engine/internal/services/llm"
)

// Service runs the generation pipeline: intent analysis, mode-dependent
// generation, enrichment (full-article mode only) and final normalization.
// Every stage degrades gracefully, so Service methods never return errors.
type Service struct {
	intents   *IntentAnalyzer
	generator *Generator
}

func NewService(gateway *llm.Gateway) *Service {
	return &Service{
		intents:   NewIntentAnalyzer(gateway),
		generator: NewGenerator(gateway),
	}
}

// Generate handles full-article and strict-outline requests.
func (s *Service) Generate(ctx context.Context, req *ContentRequest, requestID string) *GenerateResponse {
	analysis := s.intents.Analyze(ctx, req)

	var generated *GeneratedContent
	var provider string

	if len(req.Outline) > 0 && req.StrictOutline {
		// Strict mode skips enrichment: the caller's heading sequence must
		// survive untouched.
		generated, provider = s.generator.StrictOutline(ctx, req, analysis)
	} else {
		generated, provider = s.generator.FullArticle(ctx, req, analysis)
		generated.Content = EnsureIntentFeatures(generated.Content, analysis.PrimaryIntent, req.Language)
	}

	Normalize(generated)

	log.Info().
		Str("request_id", requestID).
		Str("provider", provider).
		Str("primary_intent", analysis.PrimaryIntent).
		Int("headings", len(generated.Headings)).
		Msg("Content generated")

	return &GenerateResponse{
		IntentAnalysis: analysis,
		Content:        generated,
		Success:        true,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		ProviderUsed:   provider,
		RequestID:      requestID,
	}
}

// RegenerateSection handles single-section requests and short-circuits the
// rest of the pipeline.
func (s *Service) RegenerateSection(ctx context.Context, req *ContentRequest, requestID string) *SectionResponse {
	sectionHTML := s.generator.RegenerateSection(ctx, req)

	log.Info().
		Str("request_id", requestID).
		Str("heading", req.RegenerateSection).
		Str("action", req.RegenerateAction).
		Msg("Section regenerated")

	return &SectionResponse{
		Success:     true,
		SectionHTML: sectionHTML,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		RequestID:   requestID,
	}
}
