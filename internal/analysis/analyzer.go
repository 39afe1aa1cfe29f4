// internal/analysis/analyzer.go
package analysis

// Category keys for the fixed analysis dimensions.
const (
	CategoryWebsiteQuality      = "website_quality"
	CategorySocialMediaPresence = "social_media_presence"
	CategoryContentMarketing    = "content_marketing"
	CategorySEOOptimization     = "seo_optimization"
	CategoryCustomerEngagement  = "customer_engagement"
	CategoryBrandConsistency    = "brand_consistency"
	CategoryMarketingROI        = "marketing_roi"
	CategoryAudienceAlignment   = "target_audience_alignment"
)

// AnalysisCriteria lists every declared analysis dimension. Only the three
// in computedCategories are scored today; the rest are declared but not
// computed, matching the original system's behavior.
var AnalysisCriteria = []string{
	CategoryWebsiteQuality,
	CategorySocialMediaPresence,
	CategoryContentMarketing,
	CategorySEOOptimization,
	CategoryCustomerEngagement,
	CategoryBrandConsistency,
	CategoryMarketingROI,
	CategoryAudienceAlignment,
}

// computedCategories is the fixed, ordered set the aggregator actually runs.
var computedCategories = []string{
	CategoryWebsiteQuality,
	CategorySocialMediaPresence,
	CategoryMarketingROI,
}

// ComputedCategories returns the ordered category keys the aggregator scores.
func ComputedCategories() []string {
	out := make([]string, len(computedCategories))
	copy(out, computedCategories)
	return out
}

// CategoryResult is the outcome of one category analyzer. Score is always
// within [0,100]; Issues and Impact are fixed strings per score band.
type CategoryResult struct {
	Score  float64  `json:"score"`
	Issues []string `json:"issues"`
	Impact string   `json:"impact"`
}

// Result aggregates the category results for one business.
type Result struct {
	BusinessName   string                    `json:"business_name"`
	OverallScore   float64                   `json:"overall_score"`
	Categories     map[string]CategoryResult `json:"detailed_analysis"`
	CriticalIssues []string                  `json:"critical_issues"`
}

// criticalScoreThreshold marks the score below which a category's issues
// are escalated to the cross-category critical list.
const criticalScoreThreshold = 50

// AnalyzeWebsiteQuality scores website quality and presence. A business
// without a website scores 0; one with a website gets the fixed placeholder
// score, since no live inspection is performed.
func AnalyzeWebsiteQuality(record *BusinessRecord) CategoryResult {
	if record.Website == "" {
		return CategoryResult{
			Score:  0,
			Issues: []string{"No website detected"},
			Impact: "HIGH - Missing critical online presence",
		}
	}

	return CategoryResult{
		Score:  50,
		Issues: []string{"Analysis requires real-time data"},
		Impact: "MEDIUM - Basic website presence detected",
	}
}

// AnalyzeSocialMediaPresence scores social presence by platform count.
func AnalyzeSocialMediaPresence(record *BusinessRecord) CategoryResult {
	platforms := len(record.SocialMedia)

	switch {
	case platforms == 0:
		return CategoryResult{
			Score:  0,
			Issues: []string{"No social media presence"},
			Impact: "HIGH - Missing major customer engagement channels",
		}
	case platforms < 2:
		return CategoryResult{
			Score:  40,
			Issues: []string{"Limited social media presence"},
			Impact: "MEDIUM - Should expand to more platforms",
		}
	default:
		return CategoryResult{
			Score:  70,
			Issues: []string{"Active on multiple platforms"},
			Impact: "LOW - Good social media coverage",
		}
	}
}

// AnalyzeMarketingROI scores return on marketing spend. Both revenue and
// budget must be known and non-zero; a zero budget is treated as missing
// data rather than risking a division fault.
func AnalyzeMarketingROI(record *BusinessRecord) CategoryResult {
	if record.MarketingBudget == 0 || record.MonthlyRevenue == 0 {
		return CategoryResult{
			Score:  0,
			Issues: []string{"Insufficient data to calculate ROI"},
			Impact: "HIGH - Need to track marketing metrics",
		}
	}

	ratio := record.MonthlyRevenue / record.MarketingBudget

	switch {
	case ratio < 2:
		return CategoryResult{
			Score:  30,
			Issues: []string{"Low marketing ROI"},
			Impact: "HIGH - Marketing spend not generating sufficient returns",
		}
	case ratio < 5:
		return CategoryResult{
			Score:  60,
			Issues: []string{"Moderate marketing ROI"},
			Impact: "MEDIUM - Room for improvement",
		}
	default:
		return CategoryResult{
			Score:  90,
			Issues: []string{"Strong marketing ROI"},
			Impact: "LOW - Marketing is effective",
		}
	}
}

// analyzers maps each computed category to its scoring function.
var analyzers = map[string]func(*BusinessRecord) CategoryResult{
	CategoryWebsiteQuality:      AnalyzeWebsiteQuality,
	CategorySocialMediaPresence: AnalyzeSocialMediaPresence,
	CategoryMarketingROI:        AnalyzeMarketingROI,
}

// Analyze runs every computed category analyzer and aggregates the results.
// The overall score is the unweighted arithmetic mean of the computed
// categories; missing input degrades a category's own score but never
// removes the category from the mean. Critical issues are collected in
// fixed category order from every category scoring below 50.
func Analyze(record *BusinessRecord) *Result {
	categories := make(map[string]CategoryResult, len(computedCategories))

	var total float64
	critical := []string{}

	for _, category := range computedCategories {
		result := analyzers[category](record)
		categories[category] = result
		total += result.Score

		if result.Score < criticalScoreThreshold {
			critical = append(critical, result.Issues...)
		}
	}

	return &Result{
		BusinessName:   record.Name,
		OverallScore:   total / float64(len(computedCategories)),
		Categories:     categories,
		CriticalIssues: critical,
	}
}
