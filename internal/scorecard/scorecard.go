// internal/scorecard/scorecard.go
package scorecard

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"marketing-advisor/internal/analysis"
)

// Rating labels for score bands.
const (
	RatingExcellent = "EXCELLENT"
	RatingGood      = "GOOD"
	RatingFair      = "FAIR"
	RatingPoor      = "POOR"
	RatingCritical  = "CRITICAL"
)

// Revenue impact statuses.
const (
	ImpactPositive   = "POSITIVE"
	ImpactNeutral    = "NEUTRAL"
	ImpactConcerning = "CONCERNING"
	ImpactCritical   = "CRITICAL"
)

// AssessmentDateFormat is the timestamp layout used on scorecards.
const AssessmentDateFormat = "2006-01-02 15:04:05"

// CategoryScore is one category's rated entry on the scorecard.
type CategoryScore struct {
	Score  float64  `json:"score"`
	Rating string   `json:"rating"`
	Issues []string `json:"issues"`
	Impact string   `json:"impact"`
}

// RevenueImpact describes the projected revenue effect of the current
// marketing practice, chosen by overall score band.
type RevenueImpact struct {
	Status               string `json:"status"`
	Description          string `json:"description"`
	PotentialImprovement string `json:"potential_improvement"`
}

// Scorecard is the rated, band-labeled summary of an analysis result.
type Scorecard struct {
	BusinessName    string                   `json:"business_name"`
	AssessmentDate  string                   `json:"assessment_date"`
	OverallScore    float64                  `json:"overall_score"`
	OverallRating   string                   `json:"overall_rating"`
	Categories      map[string]CategoryScore `json:"categories"`
	CriticalIssues  []string                 `json:"critical_issues"`
	PriorityActions []string                 `json:"priority_actions"`
	RevenueImpact   RevenueImpact            `json:"revenue_impact_assessment"`
}

// priorityScoreThreshold marks the score below which a category earns a
// priority action line.
const priorityScoreThreshold = 50

// Rating converts a numeric score to its band label. Bands are evaluated
// top-down; the first matching threshold wins.
func Rating(score float64) string {
	switch {
	case score >= 80:
		return RatingExcellent
	case score >= 60:
		return RatingGood
	case score >= 40:
		return RatingFair
	case score >= 20:
		return RatingPoor
	default:
		return RatingCritical
	}
}

// Build generates a scorecard from an analysis result. now supplies the
// assessment timestamp so that repeated runs differ only in that field.
func Build(result *analysis.Result, now time.Time) *Scorecard {
	overall := round2(result.OverallScore)

	criticalIssues := result.CriticalIssues
	if criticalIssues == nil {
		criticalIssues = []string{}
	}

	card := &Scorecard{
		BusinessName:    result.BusinessName,
		AssessmentDate:  now.Format(AssessmentDateFormat),
		OverallScore:    overall,
		OverallRating:   Rating(result.OverallScore),
		Categories:      make(map[string]CategoryScore, len(result.Categories)),
		CriticalIssues:  criticalIssues,
		PriorityActions: priorityActions(result),
		RevenueImpact:   assessRevenueImpact(result.OverallScore),
	}

	for category, data := range result.Categories {
		card.Categories[category] = CategoryScore{
			Score:  data.Score,
			Rating: Rating(data.Score),
			Issues: data.Issues,
			Impact: data.Impact,
		}
	}

	return card
}

// priorityActions lists categories scoring below 50 sorted ascending by
// score, lowest (most urgent) first. Ties keep the fixed category order.
func priorityActions(result *analysis.Result) []string {
	categories := analysis.ComputedCategories()
	sort.SliceStable(categories, func(i, j int) bool {
		return result.Categories[categories[i]].Score < result.Categories[categories[j]].Score
	})

	var actions []string
	for _, category := range categories {
		data := result.Categories[category]
		if data.Score < priorityScoreThreshold {
			actions = append(actions,
				fmt.Sprintf("Immediately address %s (Score: %g)", titleCase(category), data.Score))
		}
	}

	if len(actions) == 0 {
		actions = append(actions, "Continue monitoring current marketing strategies")
	}

	return actions
}

func assessRevenueImpact(overallScore float64) RevenueImpact {
	switch {
	case overallScore >= 80:
		return RevenueImpact{
			Status:               ImpactPositive,
			Description:          "Strong marketing practices supporting revenue growth",
			PotentialImprovement: "5-10% with optimization",
		}
	case overallScore >= 60:
		return RevenueImpact{
			Status:               ImpactNeutral,
			Description:          "Marketing practices are adequate but have room for improvement",
			PotentialImprovement: "15-25% with strategic improvements",
		}
	case overallScore >= 40:
		return RevenueImpact{
			Status:               ImpactConcerning,
			Description:          "Marketing weaknesses likely impacting revenue negatively",
			PotentialImprovement: "30-50% with comprehensive improvements",
		}
	default:
		return RevenueImpact{
			Status:               ImpactCritical,
			Description:          "Severe marketing deficiencies significantly impacting revenue",
			PotentialImprovement: "50-100%+ with complete marketing overhaul",
		}
	}
}

// titleCase turns a snake_case category key into a display name,
// e.g. "website_quality" -> "Website Quality".
func titleCase(category string) string {
	words := strings.Split(category, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		words[i] = strings.ToUpper(string(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
