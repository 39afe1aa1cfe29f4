// internal/solutions/planner.go
package solutions

import (
	"marketing-advisor/internal/analysis"
	"marketing-advisor/internal/scorecard"
)

// Plan is the template-derived action list keyed off the scorecard's
// per-category scores.
type Plan struct {
	BusinessName           string       `json:"business_name"`
	OverallScore           float64      `json:"overall_score"`
	ImmediateActions       []ActionItem `json:"immediate_actions"`
	ShortTermStrategy      []ActionItem `json:"short_term_strategy"`
	LongTermStrategy       []ActionItem `json:"long_term_strategy"`
	EstimatedInvestment    string       `json:"estimated_total_investment"`
	ProjectedRevenueImpact string       `json:"projected_revenue_impact"`
}

// Score bands for template selection.
const (
	lowScoreCeiling    = 40
	mediumScoreCeiling = 70
)

// BuildPlan generates a solution plan from a scorecard. Categories scoring
// below 40 contribute their low-score templates to the immediate actions;
// those between 40 and 70 contribute medium-score templates to the
// short-term strategy; higher scores contribute nothing. The long-term
// strategy is always the same fixed list.
func BuildPlan(card *scorecard.Scorecard) *Plan {
	plan := &Plan{
		BusinessName:      card.BusinessName,
		OverallScore:      card.OverallScore,
		ImmediateActions:  []ActionItem{},
		ShortTermStrategy: []ActionItem{},
	}

	for _, category := range analysis.ComputedCategories() {
		data, ok := card.Categories[category]
		if !ok {
			continue
		}

		templates, ok := solutionTemplates[category]
		if !ok {
			continue
		}

		switch {
		case data.Score < lowScoreCeiling:
			plan.ImmediateActions = append(plan.ImmediateActions, templates.lowScore...)
		case data.Score < mediumScoreCeiling:
			plan.ShortTermStrategy = append(plan.ShortTermStrategy, templates.mediumScore...)
		}
	}

	plan.LongTermStrategy = append([]ActionItem(nil), longTermStrategies...)
	plan.EstimatedInvestment = estimateInvestment(plan)
	plan.ProjectedRevenueImpact = card.RevenueImpact.PotentialImprovement

	return plan
}

// estimateInvestment is a step function over the action counts; each band
// is a fixed string, not a computed number.
func estimateInvestment(plan *Plan) string {
	immediate := len(plan.ImmediateActions)
	shortTerm := len(plan.ShortTermStrategy)

	switch {
	case immediate >= 3:
		return "$5,000-$20,000 (first 3 months)"
	case immediate >= 1:
		return "$2,000-$10,000 (first 3 months)"
	case shortTerm >= 2:
		return "$1,000-$5,000 (first 3 months)"
	default:
		return "$500-$2,000 (first 3 months)"
	}
}
