package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-content-engine/internal/config"
	"seo-content-engine/internal/services/content"
	"seo-content-engine/internal/services/llm"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 600, BurstSize: 600},
	}

	// No providers configured: every request exercises the fallback path.
	service := content.NewService(llm.NewGateway(nil, time.Second))

	router := NewRouter(nil, cfg)
	router.RegisterContentRoutes(NewContentHandler(service))
	router.RegisterHealthRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, body string, headers map[string]string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/content/generate", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func TestGenerateWithoutProvidersReturnsFallback(t *testing.T) {
	srv := newTestServer(t)

	body := `{"title":"Cách mua hàng từ Indo về VN","keywords":["mua hàng Indonesia"],"language":"vi","tone":"professional","wordCount":800}`
	resp := postJSON(t, srv, body, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope content.GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	assert.True(t, envelope.Success)
	assert.Equal(t, content.ProviderFallback, envelope.ProviderUsed)
	assert.NotEmpty(t, envelope.RequestID)
	assert.NotEmpty(t, envelope.Timestamp)
	require.NotNil(t, envelope.IntentAnalysis)
	require.NotNil(t, envelope.Content)

	assert.Contains(t, envelope.Content.Content, "<h1")
	assert.Contains(t, envelope.Content.Content, "Cách mua hàng từ Indo về VN")
	assert.Contains(t, envelope.Content.Content, "FAQ")
	assert.GreaterOrEqual(t, strings.Count(envelope.Content.Content, "<h3>"), 3)
	assert.LessOrEqual(t, len([]rune(envelope.Content.MetaDescription)), 160)
	assert.GreaterOrEqual(t, len(envelope.Content.Headings), 4)
	assert.LessOrEqual(t, len(envelope.Content.Headings), 10)
}

func TestGenerateEchoesRequestID(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, `{"title":"T"}`, map[string]string{"x-request-id": "caller-id-42"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "caller-id-42", resp.Header.Get("x-request-id"))

	var envelope content.GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "caller-id-42", envelope.RequestID)
}

func TestRegenerateSectionShortCircuits(t *testing.T) {
	srv := newTestServer(t)

	body := `{"title":"T","regenerateSection":"Kết luận","regenerateAction":"cta"}`
	resp := postJSON(t, srv, body, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var section content.SectionResponse
	require.NoError(t, json.Unmarshal(raw, &section))

	assert.True(t, section.Success)
	assert.NotEmpty(t, section.RequestID)
	assert.Contains(t, section.SectionHTML, "<a href=")
	assert.Contains(t, section.SectionHTML, "<li>")
	assert.NotContains(t, string(raw), "intentAnalysis")
}

func TestGenerateRejectsInvalidBody(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, `{not json`, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp content.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.False(t, errResp.Success)
	assert.NotEmpty(t, errResp.Error)
	assert.NotEmpty(t, errResp.RequestID)
}

func TestGenerateRejectsMissingTitle(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, `{"keywords":["a"]}`, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp content.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.False(t, errResp.Success)
	assert.Contains(t, errResp.Error, "title")
}

func TestStrictOutlineEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	body := `{"title":"Strict","outline":["A","B","C"],"strictOutline":true}`
	resp := postJSON(t, srv, body, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope content.GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	require.NotNil(t, envelope.Content)
	assert.Equal(t, []string{"Strict", "A", "B", "C"}, envelope.Content.Headings)
	assert.Equal(t, 3, strings.Count(envelope.Content.Content, "<h2"))
}

func TestCORSPreflightAllowsRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/content/generate", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "x-request-id")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(resp.Header.Get("Access-Control-Allow-Headers")), "x-request-id")
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
