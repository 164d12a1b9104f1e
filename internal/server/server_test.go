package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/server/ratelimit"
)

// fakeOracle returns canned responses keyed by a substring of the prompt.
type fakeOracle struct {
	responses map[string]string
	err       error
}

func (f *fakeOracle) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	for marker, response := range f.responses {
		if strings.Contains(prompt, marker) {
			return response, nil
		}
	}
	return "", &llm.OracleError{Op: "generate", Message: "no canned response for prompt"}
}

func (f *fakeOracle) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeOracle) Close() error                  { return nil }

func newTestServer(t *testing.T, oracle llm.Client) *Server {
	t.Helper()
	engine := pipeline.New(oracle, zap.NewNop())
	srv := New(&Config{
		Port:      0,
		RateLimit: &ratelimit.Config{Enabled: false},
	}, engine, zap.NewNop())
	t.Cleanup(srv.limiter.Stop)
	return srv
}

func doRequest(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCompare_Success(t *testing.T) {
	srv := newTestServer(t, nil)

	body := `{
		"resume": {"skills": {"technical": ["React", "Node.js"]}},
		"job": {"title": "Frontend Engineer", "requiredSkills": ["React", "AWS"], "preferredSkills": ["Docker"]}
	}`
	rec := doRequest(srv, http.MethodPost, "/compare", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result struct {
		OverallScore   int `json:"overallScore"`
		CategoryScores []struct {
			Category string `json:"category"`
			Score    int    `json:"score"`
		} `json:"categoryScores"`
		MatchedSkills []string `json:"matchedSkills"`
		MissingSkills []string `json:"missingSkills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, []string{"React"}, result.MatchedSkills)
	assert.ElementsMatch(t, []string{"AWS", "Docker"}, result.MissingSkills)
	require.Len(t, result.CategoryScores, 1)
	assert.Equal(t, "Skills", result.CategoryScores[0].Category)
	assert.Equal(t, 33, result.CategoryScores[0].Score)
}

func TestCompare_InvalidJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(srv, http.MethodPost, "/compare", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_input")
}

func TestCompare_MissingFields(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(srv, http.MethodPost, "/compare", `{"resume": {"name": "A"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_input")
}

func TestCompare_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(srv, http.MethodGet, "/compare", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestKeywords_Success(t *testing.T) {
	srv := newTestServer(t, nil)

	body := `{
		"resume": {"skills": {"technical": ["Python"]}},
		"job": {"requiredSkills": ["Python", "Kubernetes"]},
		"keywordOccurrences": [
			{"word": "Python", "cluster": "Languages", "resumeCount": 3, "jdCount": 2},
			{"word": "Kubernetes", "cluster": "Infrastructure", "resumeCount": 0, "jdCount": 4}
		]
	}`
	rec := doRequest(srv, http.MethodPost, "/keywords", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var insight struct {
		Keywords []struct {
			Word     string `json:"word"`
			Strength string `json:"strength"`
		} `json:"keywords"`
		Coverage map[string]string `json:"coverage"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insight))

	require.Len(t, insight.Keywords, 2)
	assert.Equal(t, "None", insight.Coverage["Infrastructure"])
	assert.Equal(t, "Full", insight.Coverage["Languages"])
}

func TestAnalyze_OracleDown(t *testing.T) {
	oracle := &fakeOracle{err: &llm.OracleError{Op: "generate", Message: "upstream timeout"}}
	srv := newTestServer(t, oracle)

	body := `{"resumeText": "some resume", "jobText": "some job"}`
	rec := doRequest(srv, http.MethodPost, "/analyze", body)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "oracle_unavailable")
}

func TestAnalyze_MissingText(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(srv, http.MethodPost, "/analyze", `{"resumeText": "only one side"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_input")
}

func TestRateLimit(t *testing.T) {
	engine := pipeline.New(nil, zap.NewNop())
	srv := New(&Config{
		Port: 0,
		RateLimit: &ratelimit.Config{
			Enabled:   true,
			PerMinute: 60,
			Burst:     2,
		},
	}, engine, zap.NewNop())
	t.Cleanup(srv.limiter.Stop)

	body := `{"resume": {"name": "A"}, "job": {"title": "B"}}`
	for i := 0; i < 2; i++ {
		rec := doRequest(srv, http.MethodPost, "/compare", body)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i)
	}

	rec := doRequest(srv, http.MethodPost, "/compare", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limited")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Health stays reachable even when the limiter is exhausted.
	rec = doRequest(srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(srv, http.MethodOptions, "/compare", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
