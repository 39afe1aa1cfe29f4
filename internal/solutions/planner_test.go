// internal/solutions/planner_test.go
package solutions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-advisor/internal/analysis"
	"marketing-advisor/internal/scorecard"
)

func buildCard(t *testing.T, record *analysis.BusinessRecord) *scorecard.Scorecard {
	t.Helper()
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	return scorecard.Build(analysis.Analyze(record), now)
}

func TestBuildPlan_WorstCaseFillsImmediateActions(t *testing.T) {
	// all three categories score 0 -> every low-score template applies
	card := buildCard(t, &analysis.BusinessRecord{Name: "Worst Co"})
	plan := BuildPlan(card)

	// website (2) + social (2) + roi (3) low-score templates
	require.Len(t, plan.ImmediateActions, 7)
	assert.Empty(t, plan.ShortTermStrategy)
	assert.Equal(t, "$5,000-$20,000 (first 3 months)", plan.EstimatedInvestment)
	assert.Equal(t, "50-100%+ with complete marketing overhaul", plan.ProjectedRevenueImpact)
}

func TestBuildPlan_MediumScoresFillShortTermStrategy(t *testing.T) {
	// website 50 (medium), social 70 (no items), ROI 60 (medium band, but
	// the ROI template set has no medium bucket)
	card := buildCard(t, &analysis.BusinessRecord{
		Name:            "Medium Co",
		Website:         "https://medium.example.com",
		SocialMedia:     map[string]string{"a": "1", "b": "2"},
		MonthlyRevenue:  8000,
		MarketingBudget: 2000,
	})
	plan := BuildPlan(card)

	assert.Empty(t, plan.ImmediateActions)
	require.Len(t, plan.ShortTermStrategy, 1)
	assert.Equal(t, "Website Enhancement", plan.ShortTermStrategy[0].Title)
	assert.Equal(t, "$500-$2,000 (first 3 months)", plan.EstimatedInvestment)
}

func TestBuildPlan_HighScoresContributeNothing(t *testing.T) {
	// social 70 and ROI 90 are at or above the medium ceiling
	card := buildCard(t, &analysis.BusinessRecord{
		Name:            "High Co",
		SocialMedia:     map[string]string{"a": "1", "b": "2"},
		MonthlyRevenue:  10000,
		MarketingBudget: 2000,
	})
	plan := BuildPlan(card)

	// only website (score 0) contributes
	require.Len(t, plan.ImmediateActions, 2)
	assert.Equal(t, "Website Development or Redesign", plan.ImmediateActions[0].Title)
	assert.Empty(t, plan.ShortTermStrategy)
}

func TestBuildPlan_LongTermStrategyAlwaysFixed(t *testing.T) {
	worst := BuildPlan(buildCard(t, &analysis.BusinessRecord{Name: "A"}))
	healthy := BuildPlan(buildCard(t, &analysis.BusinessRecord{
		Name:            "B",
		Website:         "https://b.example.com",
		SocialMedia:     map[string]string{"a": "1", "b": "2"},
		MonthlyRevenue:  10000,
		MarketingBudget: 2000,
	}))

	require.Len(t, worst.LongTermStrategy, 3)
	assert.Equal(t, worst.LongTermStrategy, healthy.LongTermStrategy)
	assert.Equal(t, "Build a Strong Brand Identity", worst.LongTermStrategy[0].Title)
}

func TestEstimateInvestment_StepFunction(t *testing.T) {
	tests := []struct {
		name      string
		immediate int
		shortTerm int
		expected  string
	}{
		{"three or more immediate", 3, 0, "$5,000-$20,000 (first 3 months)"},
		{"one immediate", 1, 5, "$2,000-$10,000 (first 3 months)"},
		{"two short term", 0, 2, "$1,000-$5,000 (first 3 months)"},
		{"nothing urgent", 0, 1, "$500-$2,000 (first 3 months)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := &Plan{
				ImmediateActions:  make([]ActionItem, tt.immediate),
				ShortTermStrategy: make([]ActionItem, tt.shortTerm),
			}
			assert.Equal(t, tt.expected, estimateInvestment(plan))
		})
	}
}

func TestBuildPlan_Idempotent(t *testing.T) {
	record := &analysis.BusinessRecord{
		Name:            "Same Co",
		Website:         "https://same.example.com",
		MonthlyRevenue:  3000,
		MarketingBudget: 2000,
	}

	first := BuildPlan(buildCard(t, record))
	second := BuildPlan(buildCard(t, record))

	assert.Equal(t, first, second)
}
