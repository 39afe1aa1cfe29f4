// Package content holds the template-driven marketing content generators.
// Every generator is a pure function over its inputs plus an injected
// timestamp; no generator performs I/O.
package content

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Platform character limits for social posts.
var charLimits = map[string]int{
	"twitter":   280,
	"linkedin":  3000,
	"facebook":  63206,
	"instagram": 2200,
}

const defaultCharLimit = 280

// Tone templates for the post opener.
var postTemplates = map[string]string{
	"professional":  "Exploring %s and its impact on modern business. Here's what you need to know:",
	"casual":        "Let's talk about %s! Here's the scoop:",
	"funny":         "You know what's interesting about %s? Let me tell you:",
	"inspirational": "Transform your business with %s. The journey starts here:",
}

// Platform hashtag counts.
var hashtagCounts = map[string]int{
	"twitter":   3,
	"instagram": 10,
	"linkedin":  5,
	"facebook":  3,
}

// SocialPost is a generated social media post with its platform metadata.
type SocialPost struct {
	Platform  string `json:"platform"`
	Content   string `json:"content"`
	CharCount int    `json:"char_count"`
	CharLimit int    `json:"char_limit"`
	Topic     string `json:"topic"`
	Tone      string `json:"tone"`
	Timestamp string `json:"timestamp"`
}

// GenerateSocialPost builds a post for the given platform and topic.
// Unknown platforms fall back to the twitter character limit and plain
// formatting; unknown tones fall back to the professional template.
func GenerateSocialPost(platform, topic, tone string, includeHashtags bool, now time.Time) *SocialPost {
	platform = strings.ToLower(platform)

	limit, ok := charLimits[platform]
	if !ok {
		limit = defaultCharLimit
	}

	template, ok := postTemplates[tone]
	if !ok {
		template = postTemplates["professional"]
	}
	base := fmt.Sprintf(template, topic)

	var content string
	switch platform {
	case "twitter":
		content = base + "\n\n🚀 Growth\n💡 Innovation\n📈 Results"
	case "linkedin":
		content = base + "\n\nKey Insights:\n• Drive engagement\n• Build relationships\n• Measure success\n\nWhat are your thoughts?"
	case "instagram":
		content = base + "\n\n✨ Discover\n💫 Engage\n🎯 Succeed"
	default:
		content = base
	}

	if includeHashtags {
		content += "\n\n" + generateHashtags(topic, platform)
	}

	// Limits count characters, not bytes.
	runes := []rune(content)
	if len(runes) > limit {
		runes = runes[:limit]
	}

	return &SocialPost{
		Platform:  platform,
		Content:   string(runes),
		CharCount: len(runes),
		CharLimit: limit,
		Topic:     topic,
		Tone:      tone,
		Timestamp: now.Format(time.RFC3339),
	}
}

// generateHashtags combines the fixed base tags with topic-derived tags,
// trimmed to the platform's hashtag count.
func generateHashtags(topic, platform string) string {
	tags := []string{"#Marketing", "#Business", "#Growth"}

	for _, word := range strings.Fields(topic) {
		if len(word) > 3 {
			tags = append(tags, "#"+capitalize(word))
		}
	}

	count, ok := hashtagCounts[platform]
	if !ok {
		count = 3
	}
	if len(tags) > count {
		tags = tags[:count]
	}

	return strings.Join(tags, " ")
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	return strings.ToUpper(string(r)) + strings.ToLower(word[size:])
}

// EmailCampaign is a generated email with subject and body.
type EmailCampaign struct {
	CampaignType   string `json:"campaign_type"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	TargetAudience string `json:"target_audience"`
	Timestamp      string `json:"timestamp"`
}

var emailSubjects = map[string]string{
	"promotional":   "Exclusive Offer: %s",
	"newsletter":    "This Week's Insights: %s",
	"welcome":       "Welcome! Here's %s",
	"re-engagement": "We Miss You! %s",
}

var emailOpenings = map[string]string{
	"promotional":   "We have an exciting offer just for you!",
	"newsletter":    "Here's what's new and noteworthy this week.",
	"welcome":       "Thank you for joining us! We're excited to have you.",
	"re-engagement": "It's been a while! We have something special for you.",
}

var emailCTAs = map[string]string{
	"promotional":   "Click here to claim your offer before it expires!",
	"newsletter":    "Read more insights on our blog.",
	"welcome":       "Get started by exploring our resources.",
	"re-engagement": "Come back and see what's new!",
}

// GenerateEmailCampaign builds a campaign-type-keyed subject, opening and
// call to action around the key message.
func GenerateEmailCampaign(campaignType, targetAudience, keyMessage string, now time.Time) *EmailCampaign {
	campaignType = strings.ToLower(campaignType)

	subjectTemplate, ok := emailSubjects[campaignType]
	if !ok {
		subjectTemplate = "Important Update: %s"
	}

	opening, ok := emailOpenings[campaignType]
	if !ok {
		opening = "We wanted to reach out to you today."
	}

	cta, ok := emailCTAs[campaignType]
	if !ok {
		cta = "Learn more on our website."
	}

	body := strings.Join([]string{
		"Dear Valued Customer,",
		"",
		opening,
		"",
		keyMessage,
		"",
		cta,
		"",
		"This email is tailored for: " + targetAudience,
		"",
		"Best regards,",
		"Your Marketing Team",
		"",
		"---",
		"Unsubscribe | Manage Preferences",
	}, "\n")

	return &EmailCampaign{
		CampaignType:   campaignType,
		Subject:        fmt.Sprintf(subjectTemplate, keyMessage),
		Body:           body,
		TargetAudience: targetAudience,
		Timestamp:      now.Format(time.RFC3339),
	}
}

// MarketTrends is a templated market analysis for an industry and focus area.
type MarketTrends struct {
	Industry        string   `json:"industry"`
	FocusArea       string   `json:"focus_area"`
	Trends          []string `json:"trends"`
	Opportunities   []string `json:"opportunities"`
	Recommendations []string `json:"recommendations"`
	Timestamp       string   `json:"timestamp"`
}

// AnalyzeMarketTrends templates trends, opportunities and recommendations on
// the industry and focus area.
func AnalyzeMarketTrends(industry, focusArea string, now time.Time) *MarketTrends {
	return &MarketTrends{
		Industry:  industry,
		FocusArea: focusArea,
		Trends: []string{
			fmt.Sprintf("Digital transformation in %s", industry),
			fmt.Sprintf("Customer-centric approaches for %s", focusArea),
			"Data-driven decision making",
			"Personalization and automation",
		},
		Opportunities: []string{
			fmt.Sprintf("Expand %s through digital channels", focusArea),
			fmt.Sprintf("Leverage AI and automation in %s", industry),
			"Build stronger customer relationships",
			"Optimize marketing spend with analytics",
		},
		Recommendations: []string{
			fmt.Sprintf("Focus on content marketing for %s", industry),
			"Invest in SEO and organic growth",
			"Develop multi-channel strategy",
			"Implement customer feedback loops",
		},
		Timestamp: now.Format(time.RFC3339),
	}
}

// CampaignPhase is one stage of a campaign strategy timeline.
type CampaignPhase struct {
	Phase      string   `json:"phase"`
	Duration   string   `json:"duration"`
	Activities []string `json:"activities"`
}

// CampaignStrategy is a three-phase campaign plan with goal-keyed KPIs and
// an even budget split across channels.
type CampaignStrategy struct {
	Goal             string            `json:"goal"`
	Budget           string            `json:"budget"`
	Duration         string            `json:"duration"`
	Channels         []string          `json:"channels"`
	Phases           []CampaignPhase   `json:"phases"`
	KPIs             []string          `json:"kpis"`
	BudgetAllocation map[string]string `json:"budget_allocation"`
	Timestamp        string            `json:"timestamp"`
}

var campaignPhases = []CampaignPhase{
	{
		Phase:    "Planning & Research",
		Duration: "Week 1-2",
		Activities: []string{
			"Define target audience personas",
			"Competitor analysis",
			"Content calendar creation",
			"Asset preparation",
		},
	},
	{
		Phase:    "Launch & Execution",
		Duration: "Week 3-4",
		Activities: []string{
			"Deploy campaigns across channels",
			"Monitor initial performance",
			"A/B testing",
			"Quick optimizations",
		},
	},
	{
		Phase:    "Optimization & Scale",
		Duration: "Week 5+",
		Activities: []string{
			"Analyze performance data",
			"Scale successful campaigns",
			"Refine targeting",
			"Budget reallocation",
		},
	},
}

var goalKPIs = map[string][]string{
	"awareness":  {"Impressions", "Reach", "Brand mentions", "Share of voice"},
	"leads":      {"Lead volume", "Cost per lead", "Conversion rate", "Lead quality score"},
	"sales":      {"Revenue", "ROAS", "Customer acquisition cost", "Average order value"},
	"engagement": {"Engagement rate", "Comments", "Shares", "Time on site"},
}

// CreateCampaignStrategy assembles the fixed phase timeline, the KPIs for
// the goal, and an even percentage allocation per channel.
func CreateCampaignStrategy(goal, budget, duration string, channels []string, now time.Time) *CampaignStrategy {
	kpis, ok := goalKPIs[strings.ToLower(goal)]
	if !ok {
		kpis = []string{"Impressions", "Clicks", "Conversions", "ROI"}
	}

	allocation := make(map[string]string, len(channels))
	if len(channels) > 0 {
		share := 100 / len(channels)
		for _, channel := range channels {
			allocation[channel] = fmt.Sprintf("%d%%", share)
		}
	}

	return &CampaignStrategy{
		Goal:             goal,
		Budget:           budget,
		Duration:         duration,
		Channels:         channels,
		Phases:           append([]CampaignPhase(nil), campaignPhases...),
		KPIs:             append([]string(nil), kpis...),
		BudgetAllocation: allocation,
		Timestamp:        now.Format(time.RFC3339),
	}
}

// SEORecommendations groups optimization advice by area for a website type.
type SEORecommendations struct {
	WebsiteType     string   `json:"website_type"`
	TargetKeywords  []string `json:"target_keywords"`
	OnPageSEO       []string `json:"on_page_seo"`
	ContentStrategy []string `json:"content_strategy"`
	TechnicalSEO    []string `json:"technical_seo"`
	OffPageSEO      []string `json:"off_page_seo"`
	Timestamp       string   `json:"timestamp"`
}

// GenerateSEORecommendations returns the fixed recommendation lists, with
// the pillar content line built from the first three target keywords.
func GenerateSEORecommendations(websiteType string, targetKeywords []string, now time.Time) *SEORecommendations {
	pillar := targetKeywords
	if len(pillar) > 3 {
		pillar = pillar[:3]
	}

	return &SEORecommendations{
		WebsiteType:    websiteType,
		TargetKeywords: targetKeywords,
		OnPageSEO: []string{
			"Optimize title tags with primary keywords",
			"Write compelling meta descriptions (150-160 characters)",
			"Use header tags (H1, H2, H3) hierarchically",
			"Optimize images with alt text",
			"Improve internal linking structure",
			"Ensure mobile responsiveness",
			"Improve page load speed",
		},
		ContentStrategy: []string{
			fmt.Sprintf("Create pillar content around: %s", strings.Join(pillar, ", ")),
			"Develop topic clusters",
			"Focus on user intent",
			"Update old content regularly",
			"Add FAQ sections",
			"Include multimedia (images, videos)",
		},
		TechnicalSEO: []string{
			"Submit XML sitemap to Google Search Console",
			"Implement schema markup",
			"Fix broken links and 404 errors",
			"Optimize robots.txt",
			"Ensure HTTPS security",
			"Improve crawlability",
		},
		OffPageSEO: []string{
			"Build high-quality backlinks",
			"Guest posting on relevant sites",
			"Social media engagement",
			"Local SEO optimization (if applicable)",
			"Online reputation management",
		},
		Timestamp: now.Format(time.RFC3339),
	}
}
