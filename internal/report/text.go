// Package report renders advisory output as fixed-width text for the CLI.
package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"marketing-advisor/internal/advisor"
	"marketing-advisor/internal/analysis"
	"marketing-advisor/internal/scorecard"
	"marketing-advisor/internal/solutions"
)

const lineWidth = 70

var (
	heavyRule = strings.Repeat("=", lineWidth)
	lightRule = strings.Repeat("-", lineWidth)
)

// FormatScorecard renders a scorecard as a readable text block.
func FormatScorecard(card *scorecard.Scorecard) string {
	lines := []string{
		heavyRule,
		fmt.Sprintf("MARKETING SCORECARD: %s", card.BusinessName),
		heavyRule,
		fmt.Sprintf("Assessment Date: %s", card.AssessmentDate),
		fmt.Sprintf("Overall Score: %g/100", card.OverallScore),
		fmt.Sprintf("Overall Rating: %s", card.OverallRating),
		"",
		"CATEGORY BREAKDOWN:",
		lightRule,
	}

	for _, category := range analysis.ComputedCategories() {
		data, ok := card.Categories[category]
		if !ok {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("\n%s:", displayName(category)),
			fmt.Sprintf("  Score: %g/100 (%s)", data.Score, data.Rating),
			fmt.Sprintf("  Impact: %s", data.Impact),
			fmt.Sprintf("  Issues: %s", strings.Join(data.Issues, ", ")),
		)
	}

	lines = append(lines, "", lightRule, "CRITICAL ISSUES:", lightRule)
	if len(card.CriticalIssues) > 0 {
		for _, issue := range card.CriticalIssues {
			lines = append(lines, fmt.Sprintf("  • %s", issue))
		}
	} else {
		lines = append(lines, "  No critical issues identified")
	}

	lines = append(lines, "", lightRule, "PRIORITY ACTIONS:", lightRule)
	for i, action := range card.PriorityActions {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, action))
	}

	lines = append(lines,
		"",
		lightRule,
		"REVENUE IMPACT ASSESSMENT:",
		lightRule,
		fmt.Sprintf("  Status: %s", card.RevenueImpact.Status),
		fmt.Sprintf("  Description: %s", card.RevenueImpact.Description),
		fmt.Sprintf("  Potential Improvement: %s", card.RevenueImpact.PotentialImprovement),
		heavyRule,
	)

	return strings.Join(lines, "\n")
}

// FormatSolutions renders a solution plan as a readable text block.
func FormatSolutions(plan *solutions.Plan) string {
	lines := []string{
		heavyRule,
		fmt.Sprintf("MARKETING SOLUTION PLAN: %s", plan.BusinessName),
		heavyRule,
		fmt.Sprintf("Current Marketing Score: %g/100", plan.OverallScore),
		fmt.Sprintf("Projected Revenue Impact: %s", plan.ProjectedRevenueImpact),
		fmt.Sprintf("Estimated Investment: %s", plan.EstimatedInvestment),
		"",
	}

	lines = appendActionSection(lines, "IMMEDIATE ACTIONS (Start Now):", plan.ImmediateActions)
	lines = appendActionSection(lines, "SHORT-TERM STRATEGY (1-3 Months):", plan.ShortTermStrategy)
	lines = appendActionSection(lines, "LONG-TERM STRATEGY (3-12 Months):", plan.LongTermStrategy)

	lines = append(lines,
		"",
		heavyRule,
		"Next Steps:",
		"1. Review and prioritize these recommendations",
		"2. Set budget and timeline for implementation",
		"3. Begin with immediate actions",
		"4. Monitor progress and adjust strategy as needed",
		heavyRule,
	)

	return strings.Join(lines, "\n")
}

func appendActionSection(lines []string, header string, actions []solutions.ActionItem) []string {
	if len(actions) == 0 {
		return lines
	}

	lines = append(lines, header, lightRule)
	for i, action := range actions {
		lines = append(lines,
			fmt.Sprintf("\n%d. %s [Priority: %s]", i+1, action.Title, action.Priority),
			fmt.Sprintf("   Description: %s", action.Description),
			fmt.Sprintf("   Investment: %s", action.EstimatedCost),
			fmt.Sprintf("   Timeline: %s", action.Timeline),
			fmt.Sprintf("   Expected Impact: %s", action.ExpectedImpact),
		)
	}
	return append(lines, "")
}

// FormatFullReport renders a complete report: header, scorecard, solution
// plan, and the insight section when insights were generated.
func FormatFullReport(rpt *advisor.Report) string {
	sections := []string{
		"\n" + heavyRule,
		"COMPREHENSIVE MARKETING ANALYSIS REPORT",
		heavyRule + "\n",
		FormatScorecard(rpt.Scorecard),
		"\n",
		FormatSolutions(rpt.Solutions),
		"\n",
	}

	if rpt.AIInsights != nil {
		sections = append(sections,
			heavyRule,
			"AI-POWERED INSIGHTS & RECOMMENDATIONS",
			heavyRule,
			rpt.AIInsights.AIInsights,
			"\n",
		)
	}

	return strings.Join(sections, "\n")
}

// displayName turns a snake_case category key into its report heading,
// e.g. "website_quality" -> "Website Quality".
func displayName(category string) string {
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
