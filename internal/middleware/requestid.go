package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header carrying the caller's request id; generated server-side if absent
// and echoed back both as a header and inside the response body.
const RequestIDHeader = "x-request-id"

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID attaches a request id to the context and the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request id stored by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
