// internal/analysis/business.go
package analysis

// BusinessRecord holds the descriptive data of the business under analysis.
// It is constructed once per analysis request and never mutated afterwards.
// Zero values (empty string, 0, nil) mean the field was not provided.
type BusinessRecord struct {
	Name            string            `json:"business_name"`
	Industry        string            `json:"industry"`
	Website         string            `json:"website,omitempty"`
	SocialMedia     map[string]string `json:"social_media,omitempty"`
	MonthlyRevenue  float64           `json:"monthly_revenue,omitempty"`
	MarketingBudget float64           `json:"marketing_budget,omitempty"`
	TargetAudience  string            `json:"target_audience,omitempty"`
	CurrentChannels []string          `json:"current_marketing_channels,omitempty"`
	Competitors     []string          `json:"competitor_info,omitempty"`
}
