package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoProviderConfigured is returned when the gateway has no providers at all.
var ErrNoProviderConfigured = errors.New("no completion provider configured")

// HTTPError is a non-2xx response from a provider API.
type HTTPError struct {
	Provider string
	Status   int
	Message  string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.Status, e.Message)
}

// ExhaustedError is returned when every configured provider failed for one call.
type ExhaustedError struct {
	Last error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all configured providers failed, last error: %v", e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }

// IsTimeout reports whether err was caused by the per-attempt deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
