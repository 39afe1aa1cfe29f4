// internal/insights/insights_test.go
package insights

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-advisor/internal/analysis"
	"marketing-advisor/internal/common/config"
	commonerrors "marketing-advisor/internal/common/errors"
	"marketing-advisor/internal/common/logger"
)

// fakeGenerator lets tests script the boundary behavior.
type fakeGenerator struct {
	text  string
	model string
	err   error
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (string, string, error) {
	return f.text, f.model, f.err
}

func testRecord() *analysis.BusinessRecord {
	return &analysis.BusinessRecord{
		Name:            "Joe's Pizza",
		Industry:        "Restaurant",
		MonthlyRevenue:  15000,
		MarketingBudget: 500,
		CurrentChannels: []string{"Word of mouth", "Flyers"},
	}
}

func TestAdapter_ReturnsTextVerbatim(t *testing.T) {
	adapter := NewAdapter(&fakeGenerator{text: "Focus on local SEO.", model: "gpt-3.5-turbo"}, logger.NewNoOpLogger())

	record := testRecord()
	out := adapter.AnalyzeBusiness(context.Background(), record, analysis.Analyze(record))

	require.NotNil(t, out)
	assert.Equal(t, "Focus on local SEO.", out.AIInsights)
	assert.Equal(t, "gpt-3.5-turbo", out.ModelUsed)
}

func TestAdapter_NotConfiguredFallback(t *testing.T) {
	adapter := NewAdapter(&fakeGenerator{err: commonerrors.NewInsightsNotConfiguredError()}, logger.NewNoOpLogger())

	record := testRecord()
	out := adapter.AnalyzeBusiness(context.Background(), record, analysis.Analyze(record))

	require.NotNil(t, out)
	assert.Equal(t, FallbackNotConfigured, out.AIInsights)
	assert.Empty(t, out.ModelUsed)
}

func TestAdapter_TimeoutFallbackCarriesMessage(t *testing.T) {
	adapter := NewAdapter(&fakeGenerator{err: commonerrors.NewInsightsTimeoutError()}, logger.NewNoOpLogger())

	record := testRecord()
	out := adapter.AnalyzeBusiness(context.Background(), record, analysis.Analyze(record))

	require.NotNil(t, out)
	assert.Equal(t, "Error generating AI insights: Insight service call timed out", out.AIInsights)
	assert.Empty(t, out.ModelUsed)
}

func TestAdapter_CallFailedFallbackCarriesDetail(t *testing.T) {
	failure := commonerrors.NewInsightsCallFailedError(errors.New("insight service returned status 502"))
	adapter := NewAdapter(&fakeGenerator{err: failure}, logger.NewNoOpLogger())

	record := testRecord()
	out := adapter.AnalyzeBusiness(context.Background(), record, analysis.Analyze(record))

	require.NotNil(t, out)
	assert.Equal(t, "Error generating AI insights: insight service returned status 502", out.AIInsights)
}

func TestAdapter_CallFailureFallbackNeverPropagates(t *testing.T) {
	adapter := NewAdapter(&fakeGenerator{err: errors.New("connection refused")}, logger.NewNoOpLogger())

	record := testRecord()

	var out *Insights
	assert.NotPanics(t, func() {
		out = adapter.AnalyzeBusiness(context.Background(), record, analysis.Analyze(record))
	})

	require.NotNil(t, out)
	assert.Equal(t, "Error generating AI insights: connection refused", out.AIInsights)
	assert.Empty(t, out.ModelUsed)
}

func TestBuildPrompt_ContainsBusinessFieldsAndScore(t *testing.T) {
	record := testRecord()
	result := analysis.Analyze(record)

	prompt := BuildPrompt(record, result)

	assert.Contains(t, prompt, "Name: Joe's Pizza")
	assert.Contains(t, prompt, "Industry: Restaurant")
	assert.Contains(t, prompt, "Monthly Revenue: $15000")
	assert.Contains(t, prompt, "Current Channels: Word of mouth, Flyers")
	assert.Contains(t, prompt, "Overall Score:")
	assert.Contains(t, prompt, "Critical Issues:")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	record := testRecord()
	result := analysis.Analyze(record)

	assert.Equal(t, BuildPrompt(record, result), BuildPrompt(record, result))
}

func TestClient_GenerateWithoutAPIKey(t *testing.T) {
	client := NewClient(config.InsightsConfig{BaseURL: "http://localhost:9"}, logger.NewNoOpLogger())

	_, _, err := client.Generate(context.Background(), "prompt")

	var se *commonerrors.StandardError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, commonerrors.ErrCodeInsightsNotConfigured, se.Code)
	assert.False(t, commonerrors.IsRetryable(err))
}

func TestClient_GenerateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ai/generate", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"Invest in a website.","model":"gpt-3.5-turbo"}`))
	}))
	defer server.Close()

	client := NewClient(config.InsightsConfig{
		BaseURL:   server.URL,
		APIKey:    "test-key",
		Model:     "gpt-3.5-turbo",
		MaxTokens: 256,
		Timeout:   2000,
	}, logger.NewNoOpLogger())

	text, model, err := client.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "Invest in a website.", text)
	assert.Equal(t, "gpt-3.5-turbo", model)
}

func TestClient_GenerateNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(config.InsightsConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 2000,
	}, logger.NewNoOpLogger())

	_, _, err := client.Generate(context.Background(), "prompt")

	var se *commonerrors.StandardError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, commonerrors.ErrCodeInsightsCallFailed, se.Code)
	assert.True(t, strings.Contains(se.Details, "status 502"))
	assert.True(t, commonerrors.IsRetryable(err))
}
