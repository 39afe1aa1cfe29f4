// internal/server/handlers_test.go
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-advisor/internal/advisor"
	"marketing-advisor/internal/common/config"
	"marketing-advisor/internal/common/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	agent := advisor.NewAgent(logger.NewNoOpLogger(), advisor.Options{
		Now: func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	})

	return New(config.ServerConfig{Address: ":0"}, agent, logger.NewNoOpLogger())
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze_FullReport(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/analyze",
		`{"business_name": "Joe's Pizza", "industry": "Restaurant"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	scorecard, ok := report["scorecard"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "CRITICAL", scorecard["overall_rating"])
	assert.Equal(t, float64(0), scorecard["overall_score"])

	// insights not configured: the field is present and null
	value, present := report["ai_insights"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestHandleAnalyze_SchemaValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing business_name", `{"industry": "Retail"}`},
		{"missing industry", `{"business_name": "Shop"}`},
		{"empty business_name", `{"business_name": "", "industry": "Retail"}`},
		{"wrong revenue type", `{"business_name": "Shop", "industry": "Retail", "monthly_revenue": "lots"}`},
		{"negative budget", `{"business_name": "Shop", "industry": "Retail", "marketing_budget": -5}`},
		{"not JSON", `business_name=Shop`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rec := doRequest(t, s, http.MethodPost, "/api/v1/analyze", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestHandleAnalyze_SchemaFailureCarriesErrorCode(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/analyze", `{"industry": "Retail"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload struct {
		Error   string `json:"error"`
		Code    string `json:"code"`
		Details string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "VALIDATION_FAILED", payload.Code)
	assert.Equal(t, "Input validation failed", payload.Error)
	assert.Contains(t, payload.Details, "business_name")
}

func TestHandleAnalyze_ValidationHaltsBeforePipeline(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/analyze", `{"industry": "Retail"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// the rejected request left no history entry
	historyRec := doRequest(t, s, http.MethodGet, "/api/v1/history", "")
	require.Equal(t, http.StatusOK, historyRec.Code)

	var payload struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(historyRec.Body.Bytes(), &payload))
	assert.Zero(t, payload.Count)
}

func TestHandleSocialPost(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/content/social-post",
		`{"platform": "twitter", "topic": "grand opening", "tone": "casual"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var post map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "twitter", post["platform"])
	assert.Equal(t, float64(280), post["char_limit"])
	assert.Contains(t, post["content"], "Let's talk about grand opening!")
}

func TestHandleSocialPost_MissingFields(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/content/social-post", `{"platform": "twitter"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEmailCampaign(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/content/email-campaign",
		`{"campaign_type": "welcome", "target_audience": "new signups", "key_message": "your first discount"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var email map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &email))
	assert.Equal(t, "Welcome! Here's your first discount", email["subject"])
}

func TestHandleCampaignStrategy(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/content/campaign-strategy",
		`{"goal": "awareness", "budget": "$2,000", "duration": "6 weeks", "channels": ["Email", "Social"]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var strategy map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &strategy))
	phases, ok := strategy["phases"].([]interface{})
	require.True(t, ok)
	assert.Len(t, phases, 3)
}

func TestHandleSEORecommendations(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/content/seo-recommendations",
		`{"website_type": "blog", "target_keywords": ["pizza", "delivery"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Create pillar content around: pizza, delivery")
}

func TestHandleMarketTrends(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/content/market-trends",
		`{"industry": "Retail", "focus_area": "E-commerce"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Digital transformation in Retail")
}

func TestHandleHistory_OrderAndLimit(t *testing.T) {
	s := newTestServer(t)

	doRequest(t, s, http.MethodPost, "/api/v1/analyze",
		`{"business_name": "Shop", "industry": "Retail"}`)
	doRequest(t, s, http.MethodPost, "/api/v1/content/market-trends",
		`{"industry": "Retail", "focus_area": "E-commerce"}`)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/history?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Count   int `json:"count"`
		History []struct {
			Action string `json:"action"`
		} `json:"history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, 1, payload.Count)
	assert.Equal(t, "analyze_market_trends", payload.History[0].Action)
}

func TestHandleHistory_BadLimit(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/history?limit=-1", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
