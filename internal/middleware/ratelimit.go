package middleware

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"seo-content-engine/internal/cache"
)

// RateLimit limits requests per client IP. When a redis cache is supplied
// the limit is enforced as a shared fixed window across instances; without
// one (or when redis errors) it falls back to an in-memory token bucket.
func RateLimit(store *cache.RedisCache, requestsPerMinute, burstSize int) func(http.Handler) http.Handler {
	limiter := NewSimpleRateLimiter(requestsPerMinute, burstSize)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r)

			allowed := true
			if store != nil {
				count, err := store.IncrWindow(r.Context(), "ratelimit:"+clientIP, time.Minute)
				if err != nil {
					log.Warn().Err(err).Msg("Redis rate limit check failed, using in-memory limiter")
					allowed = limiter.Allow(clientIP)
				} else {
					allowed = count <= int64(requestsPerMinute)
				}
			} else {
				allowed = limiter.Allow(clientIP)
			}

			if !allowed {
				log.Warn().
					Str("client_ip", clientIP).
					Str("url", r.URL.String()).
					Msg("Rate limit exceeded")

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "60")
				w.WriteHeader(http.StatusTooManyRequests)

				errorResponse := map[string]interface{}{
					"error":     "rate limit exceeded, please try again later",
					"success":   false,
					"requestId": GetRequestID(r.Context()),
				}

				if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
					http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP extracts the real client IP address
func getClientIP(r *http.Request) string {
	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		// Take the first IP in the chain
		for i := 0; i < len(forwardedFor); i++ {
			if forwardedFor[i] == ',' {
				return forwardedFor[:i]
			}
		}
		return forwardedFor
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	return r.RemoteAddr
}

// SimpleRateLimiter is a basic in-memory token bucket, used when no redis
// backend is configured.
type SimpleRateLimiter struct {
	requestsPerMinute int
	burstSize         int

	mu      sync.Mutex
	clients map[string]*clientLimit
}

type clientLimit struct {
	tokens     int
	lastRefill time.Time
}

func NewSimpleRateLimiter(requestsPerMinute, burstSize int) *SimpleRateLimiter {
	return &SimpleRateLimiter{
		requestsPerMinute: requestsPerMinute,
		burstSize:         burstSize,
		clients:           make(map[string]*clientLimit),
	}
}

func (rl *SimpleRateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	client, exists := rl.clients[clientIP]
	if !exists {
		client = &clientLimit{
			tokens:     rl.burstSize,
			lastRefill: now,
		}
		rl.clients[clientIP] = client
	}

	// Refill tokens based on time passed
	timePassed := now.Sub(client.lastRefill)
	tokensToAdd := int(timePassed.Minutes() * float64(rl.requestsPerMinute))

	if tokensToAdd > 0 {
		client.tokens = min(client.tokens+tokensToAdd, rl.burstSize)
		client.lastRefill = now
	}

	if client.tokens > 0 {
		client.tokens--
		return true
	}

	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
