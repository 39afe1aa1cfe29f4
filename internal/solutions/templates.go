// internal/solutions/templates.go
package solutions

import "marketing-advisor/internal/analysis"

// ActionItem is a static solution template entry. Content is fixed copy,
// never computed.
type ActionItem struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Priority       string `json:"priority"`
	EstimatedCost  string `json:"estimated_cost"`
	Timeline       string `json:"timeline"`
	ExpectedImpact string `json:"expected_impact"`
}

// templateSet holds the per-category template buckets. A category may have
// no medium bucket; a score in the medium band then contributes nothing.
type templateSet struct {
	lowScore    []ActionItem
	mediumScore []ActionItem
}

// solutionTemplates maps each computed category to its fixed template set.
// The category and band sets are closed; do not extend at runtime.
var solutionTemplates = map[string]templateSet{
	analysis.CategoryWebsiteQuality: {
		lowScore: []ActionItem{
			{
				Title:          "Website Development or Redesign",
				Description:    "Create a professional, mobile-responsive website",
				Priority:       "HIGH",
				EstimatedCost:  "$2,000-$10,000",
				Timeline:       "4-8 weeks",
				ExpectedImpact: "Establish online credibility and reach new customers",
			},
			{
				Title:          "Basic SEO Optimization",
				Description:    "Optimize website for search engines to increase visibility",
				Priority:       "HIGH",
				EstimatedCost:  "$500-$2,000/month",
				Timeline:       "3-6 months for results",
				ExpectedImpact: "Improve organic search rankings and traffic",
			},
		},
		mediumScore: []ActionItem{
			{
				Title:          "Website Enhancement",
				Description:    "Improve user experience, loading speed, and conversion optimization",
				Priority:       "MEDIUM",
				EstimatedCost:  "$1,000-$5,000",
				Timeline:       "2-4 weeks",
				ExpectedImpact: "Increase conversion rates by 20-30%",
			},
		},
	},
	analysis.CategorySocialMediaPresence: {
		lowScore: []ActionItem{
			{
				Title:          "Social Media Strategy Development",
				Description:    "Create accounts and content strategy for key platforms",
				Priority:       "HIGH",
				EstimatedCost:  "$1,000-$3,000 setup + $500-$2,000/month",
				Timeline:       "2-4 weeks setup, ongoing management",
				ExpectedImpact: "Build brand awareness and customer engagement",
			},
			{
				Title:          "Content Creation Program",
				Description:    "Regular posting schedule with engaging content",
				Priority:       "HIGH",
				EstimatedCost:  "$500-$2,000/month",
				Timeline:       "Ongoing",
				ExpectedImpact: "Grow followers and drive traffic to website",
			},
		},
		mediumScore: []ActionItem{
			{
				Title:          "Social Media Advertising",
				Description:    "Targeted paid campaigns on social platforms",
				Priority:       "MEDIUM",
				EstimatedCost:  "$500-$5,000/month ad spend + management",
				Timeline:       "Ongoing",
				ExpectedImpact: "Reach larger targeted audience quickly",
			},
		},
	},
	analysis.CategoryMarketingROI: {
		lowScore: []ActionItem{
			{
				Title:          "Marketing Analytics Implementation",
				Description:    "Set up tracking and analytics to measure marketing effectiveness",
				Priority:       "HIGH",
				EstimatedCost:  "$500-$2,000 setup",
				Timeline:       "1-2 weeks",
				ExpectedImpact: "Identify what's working and optimize spending",
			},
			{
				Title:          "Marketing Budget Reallocation",
				Description:    "Shift resources to higher-performing channels",
				Priority:       "HIGH",
				EstimatedCost:  "No additional cost",
				Timeline:       "Immediate",
				ExpectedImpact: "Improve ROI by 30-50%",
			},
			{
				Title:          "Customer Retention Program",
				Description:    "Focus on repeat customers (5x cheaper than new acquisition)",
				Priority:       "HIGH",
				EstimatedCost:  "$500-$2,000/month",
				Timeline:       "Ongoing",
				ExpectedImpact: "Increase lifetime customer value",
			},
		},
	},
}

// longTermStrategies is the fixed list appended to every plan regardless of
// category scores.
var longTermStrategies = []ActionItem{
	{
		Title:          "Build a Strong Brand Identity",
		Description:    "Develop consistent brand messaging, visual identity, and voice",
		Priority:       "MEDIUM",
		EstimatedCost:  "$2,000-$10,000",
		Timeline:       "3-6 months",
		ExpectedImpact: "Increase brand recognition and customer loyalty",
	},
	{
		Title:          "Develop Content Marketing Strategy",
		Description:    "Create valuable content to attract and engage target audience",
		Priority:       "MEDIUM",
		EstimatedCost:  "$1,000-$5,000/month",
		Timeline:       "6-12 months for significant results",
		ExpectedImpact: "Establish thought leadership and drive organic traffic",
	},
	{
		Title:          "Implement Customer Feedback System",
		Description:    "Collect and act on customer feedback to improve offerings",
		Priority:       "LOW",
		EstimatedCost:  "$500-$2,000",
		Timeline:       "Ongoing",
		ExpectedImpact: "Improve customer satisfaction and retention",
	},
}
