// internal/insights/insights.go
package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketing-advisor/internal/analysis"
	commonerrors "marketing-advisor/internal/common/errors"
	"marketing-advisor/internal/common/logger"
	"marketing-advisor/internal/common/metrics"
)

// FallbackNotConfigured is the fixed text returned when no credential is
// configured for the external text-generation service.
const FallbackNotConfigured = "AI insights unavailable (API key not configured)"

// Generator is the narrow boundary to the external text-generation service.
// Implementations must honor ctx for cancellation and timeouts.
type Generator interface {
	Generate(ctx context.Context, prompt string) (text string, model string, err error)
}

// Insights is the free-text commentary attached to a report.
type Insights struct {
	AIInsights string `json:"ai_insights"`
	ModelUsed  string `json:"model_used,omitempty"`
}

// Adapter wraps a Generator and converts every failure into fallback text.
// It never returns an error to the caller; it is the only non-deterministic
// component in the pipeline.
type Adapter struct {
	generator Generator
	logger    logger.Logger
}

func NewAdapter(generator Generator, log logger.Logger) *Adapter {
	return &Adapter{
		generator: generator,
		logger:    log.WithFields(map[string]interface{}{"component": "insights"}),
	}
}

// AnalyzeBusiness builds the analysis prompt and delegates to the external
// service. On any failure the returned Insights carries fallback text and
// no model name.
func (a *Adapter) AnalyzeBusiness(ctx context.Context, record *analysis.BusinessRecord, result *analysis.Result) *Insights {
	prompt := BuildPrompt(record, result)

	text, model, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		return &Insights{AIInsights: a.fallbackText(record.Name, err)}
	}

	return &Insights{AIInsights: text, ModelUsed: model}
}

// fallbackText maps a Generate failure to the fixed fallback copy. A missing
// credential yields the not-configured text; everything else carries the
// failure detail.
func (a *Adapter) fallbackText(businessName string, err error) string {
	var se *commonerrors.StandardError
	if !errors.As(err, &se) {
		metrics.InsightFallbacks.WithLabelValues("call_failed").Inc()
		a.logger.Warn("insight generation failed, returning fallback", map[string]interface{}{
			"business": businessName,
			"error":    err.Error(),
		})
		return fmt.Sprintf("Error generating AI insights: %v", err)
	}

	switch se.Code {
	case commonerrors.ErrCodeInsightsNotConfigured:
		metrics.InsightFallbacks.WithLabelValues("not_configured").Inc()
		return FallbackNotConfigured
	case commonerrors.ErrCodeInsightsTimeout:
		metrics.InsightFallbacks.WithLabelValues("timeout").Inc()
	default:
		metrics.InsightFallbacks.WithLabelValues("call_failed").Inc()
	}

	detail := se.Details
	if detail == "" {
		detail = se.Message
	}

	a.logger.Warn("insight generation failed, returning fallback", map[string]interface{}{
		"business":  businessName,
		"error":     detail,
		"retryable": commonerrors.IsRetryable(err),
	})
	return fmt.Sprintf("Error generating AI insights: %s", detail)
}

// BuildPrompt serializes the business record and analysis result into the
// fixed prompt structure sent to the text-generation service.
func BuildPrompt(record *analysis.BusinessRecord, result *analysis.Result) string {
	var parts []string

	parts = append(parts, "You are an expert marketing consultant specializing in helping small businesses improve their marketing strategies and revenue.")
	parts = append(parts, "Analyze the provided business data and marketing scorecard, then provide:")
	parts = append(parts, "1. Key insights about their marketing challenges")
	parts = append(parts, "2. Strategic recommendations tailored to their specific situation")
	parts = append(parts, "3. Quick wins they can implement immediately")
	parts = append(parts, "Be concise, actionable, and focus on ROI.")

	parts = append(parts, "\nBusiness Information:")
	parts = append(parts, fmt.Sprintf("- Name: %s", record.Name))
	parts = append(parts, fmt.Sprintf("- Industry: %s", record.Industry))
	parts = append(parts, fmt.Sprintf("- Monthly Revenue: $%g", record.MonthlyRevenue))
	parts = append(parts, fmt.Sprintf("- Marketing Budget: $%g", record.MarketingBudget))
	parts = append(parts, fmt.Sprintf("- Current Channels: %s", strings.Join(record.CurrentChannels, ", ")))

	parts = append(parts, "\nMarketing Score Analysis:")
	parts = append(parts, fmt.Sprintf("- Overall Score: %g/100", result.OverallScore))
	parts = append(parts, fmt.Sprintf("- Critical Issues: %s", strings.Join(result.CriticalIssues, ", ")))

	parts = append(parts, "\nPlease provide:")
	parts = append(parts, "1. Top 3 insights about their marketing situation")
	parts = append(parts, "2. Top 3 strategic recommendations")
	parts = append(parts, "3. Top 3 quick wins they can implement this week")

	return strings.Join(parts, "\n")
}
