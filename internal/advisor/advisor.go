// Package advisor wires the analysis pipeline together: analyzers,
// scorecard, solution planner, optional AI insights, history and caching.
package advisor

import (
	"context"
	"encoding/json"
	"time"

	"marketing-advisor/internal/analysis"
	commonerrors "marketing-advisor/internal/common/errors"
	"marketing-advisor/internal/common/logger"
	"marketing-advisor/internal/common/metrics"
	"marketing-advisor/internal/content"
	"marketing-advisor/internal/history"
	"marketing-advisor/internal/insights"
	"marketing-advisor/internal/scorecard"
	"marketing-advisor/internal/solutions"
)

// Cache is the narrow caching surface the agent needs. The Redis client
// wrapper satisfies it; tests use miniredis behind the same wrapper.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Report is the complete advisory output for one business.
type Report struct {
	BusinessData *analysis.BusinessRecord `json:"business_data"`
	Scorecard    *scorecard.Scorecard     `json:"scorecard"`
	Solutions    *solutions.Plan          `json:"solutions"`
	AIInsights   *insights.Insights       `json:"ai_insights"`
}

// Options configures an Agent. Zero-value fields get safe defaults: history
// goes to an in-memory store, insights and cache stay disabled.
type Options struct {
	Insights     *insights.Adapter
	HistorySink  history.Sink
	HistoryStore history.Store
	Cache        Cache
	CacheTTL     time.Duration
	Now          func() time.Time
}

// Agent runs the advisory pipeline sequentially: analyze, rate, plan,
// optionally generate insights, then record the operation to history.
type Agent struct {
	log      logger.Logger
	insights *insights.Adapter
	sink     history.Sink
	store    history.Store
	cache    Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewAgent(log logger.Logger, opts Options) *Agent {
	agent := &Agent{
		log:      log.WithFields(map[string]interface{}{"component": "advisor"}),
		insights: opts.Insights,
		sink:     opts.HistorySink,
		store:    opts.HistoryStore,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		now:      opts.Now,
	}

	if agent.store == nil {
		agent.store = history.NewMemoryStore()
	}
	if agent.sink == nil {
		agent.sink = agent.store
	}
	if agent.cacheTTL <= 0 {
		agent.cacheTTL = 30 * time.Minute
	}
	if agent.now == nil {
		agent.now = time.Now
	}

	return agent
}

// AnalyzeBusiness runs the full pipeline for one business record. The
// returned report always carries a scorecard and a solution plan; AIInsights
// is nil when no insight adapter is configured and fallback text when the
// adapter is configured but fails.
func (a *Agent) AnalyzeBusiness(ctx context.Context, record *analysis.BusinessRecord) (*Report, error) {
	if record.Name == "" {
		return nil, commonerrors.NewMissingFieldError("business_name")
	}
	if record.Industry == "" {
		return nil, commonerrors.NewMissingFieldError("industry")
	}

	start := time.Now()

	result := analysis.Analyze(record)
	card := scorecard.Build(result, a.now())
	plan := solutions.BuildPlan(card)

	report := &Report{
		BusinessData: record,
		Scorecard:    card,
		Solutions:    plan,
	}

	if a.insights != nil {
		report.AIInsights = a.insights.AnalyzeBusiness(ctx, record, result)
	}

	metrics.AnalysesCompleted.WithLabelValues(card.OverallRating).Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	a.record(ctx, "analyze_business", report)
	a.cacheReport(ctx, record.Name, report)

	a.log.Info("analysis completed", map[string]interface{}{
		"business": record.Name,
		"score":    card.OverallScore,
		"rating":   card.OverallRating,
	})

	return report, nil
}

// GenerateSocialPost creates a social media post and records the operation.
func (a *Agent) GenerateSocialPost(ctx context.Context, platform, topic, tone string, includeHashtags bool) *content.SocialPost {
	post := content.GenerateSocialPost(platform, topic, tone, includeHashtags, a.now())
	metrics.ContentGenerated.WithLabelValues("social_post").Inc()
	a.record(ctx, "generate_social_media_post", post)
	return post
}

// GenerateEmailCampaign creates an email campaign and records the operation.
func (a *Agent) GenerateEmailCampaign(ctx context.Context, campaignType, targetAudience, keyMessage string) *content.EmailCampaign {
	email := content.GenerateEmailCampaign(campaignType, targetAudience, keyMessage, a.now())
	metrics.ContentGenerated.WithLabelValues("email_campaign").Inc()
	a.record(ctx, "generate_email_campaign", email)
	return email
}

// AnalyzeMarketTrends templates a market analysis and records the operation.
func (a *Agent) AnalyzeMarketTrends(ctx context.Context, industry, focusArea string) *content.MarketTrends {
	trends := content.AnalyzeMarketTrends(industry, focusArea, a.now())
	metrics.ContentGenerated.WithLabelValues("market_trends").Inc()
	a.record(ctx, "analyze_market_trends", trends)
	return trends
}

// CreateCampaignStrategy builds a campaign plan and records the operation.
func (a *Agent) CreateCampaignStrategy(ctx context.Context, goal, budget, duration string, channels []string) *content.CampaignStrategy {
	strategy := content.CreateCampaignStrategy(goal, budget, duration, channels, a.now())
	metrics.ContentGenerated.WithLabelValues("campaign_strategy").Inc()
	a.record(ctx, "create_campaign_strategy", strategy)
	return strategy
}

// GenerateSEORecommendations builds SEO advice and records the operation.
func (a *Agent) GenerateSEORecommendations(ctx context.Context, websiteType string, targetKeywords []string) *content.SEORecommendations {
	seo := content.GenerateSEORecommendations(websiteType, targetKeywords, a.now())
	metrics.ContentGenerated.WithLabelValues("seo_recommendations").Inc()
	a.record(ctx, "generate_seo_recommendations", seo)
	return seo
}

// History returns the recorded operations, newest first.
func (a *Agent) History(ctx context.Context, limit int) ([]history.Record, error) {
	return a.store.List(ctx, limit)
}

// LastReport returns the cached report for a business, or nil when the cache
// is disabled or holds nothing for it.
func (a *Agent) LastReport(ctx context.Context, businessName string) (*Report, error) {
	if a.cache == nil {
		return nil, nil
	}

	raw, err := a.cache.Get(ctx, reportCacheKey(businessName))
	if err != nil {
		// cache miss or cache down; either way there is no cached report
		return nil, nil
	}

	var report Report
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, commonerrors.NewCacheUnavailableError(err)
	}

	return &report, nil
}

// record appends one history entry. History failures are logged and counted
// but never fail the operation that produced the record.
func (a *Agent) record(ctx context.Context, action string, result interface{}) {
	if err := a.sink.Append(ctx, history.NewRecord(action, result)); err != nil {
		metrics.HistoryAppendErrors.WithLabelValues("primary").Inc()
		a.log.Warn("history append failed", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

func (a *Agent) cacheReport(ctx context.Context, businessName string, report *Report) {
	if a.cache == nil {
		return
	}

	payload, err := json.Marshal(report)
	if err != nil {
		a.log.Warn("report cache marshal failed", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := a.cache.Set(ctx, reportCacheKey(businessName), payload, a.cacheTTL); err != nil {
		a.log.Warn("report cache write failed", map[string]interface{}{"error": err.Error()})
	}
}

func reportCacheKey(businessName string) string {
	return "report:" + businessName
}
