package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds a single provider attempt.
const DefaultTimeout = 10 * time.Second

// Completion is the result of a successful gateway call.
type Completion struct {
	Text     string
	Provider string
}

// Gateway tries providers in a fixed order and fails over on any error.
// The order is decided once at startup; every call site sees the same list.
type Gateway struct {
	providers []TextCompleter
	timeout   time.Duration
}

func NewGateway(providers []TextCompleter, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{providers: providers, timeout: timeout}
}

// Configured reports whether at least one provider is available.
func (g *Gateway) Configured() bool { return len(g.providers) > 0 }

// Complete tries each provider once. A timeout or any transport/API error
// moves on to the next provider; when the list is exhausted the last error
// is wrapped in ExhaustedError.
func (g *Gateway) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if len(g.providers) == 0 {
		return nil, ErrNoProviderConfigured
	}

	var lastErr error
	for _, p := range g.providers {
		start := time.Now()

		attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
		text, err := p.Complete(attemptCtx, req)
		cancel()

		duration := time.Since(start)
		if err != nil {
			log.Warn().
				Str("provider", p.Name()).
				Dur("duration", duration).
				Bool("timeout", IsTimeout(err)).
				Err(err).
				Msg("Provider attempt failed")
			lastErr = err
			continue
		}

		log.Debug().
			Str("provider", p.Name()).
			Dur("duration", duration).
			Int("response_chars", len(text)).
			Msg("Provider attempt succeeded")

		return &Completion{Text: text, Provider: p.Name()}, nil
	}

	return nil, &ExhaustedError{Last: lastErr}
}
