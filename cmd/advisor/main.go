// cmd/advisor/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"marketing-advisor/internal/advisor"
	"marketing-advisor/internal/analysis"
	"marketing-advisor/internal/bootstrap"
	"marketing-advisor/internal/common/config"
	"marketing-advisor/internal/common/logger"
	"marketing-advisor/internal/report"
)

var (
	verbose    bool
	jsonOutput bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "advisor",
		Short:         "Marketing advisor for small businesses",
		Long:          "Analyze a business's marketing practices, generate a scorecard and solution plan, and produce marketing content.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(
		newAnalyzeCmd(),
		newSocialPostCmd(),
		newEmailCmd(),
		newMarketAnalysisCmd(),
		newCampaignStrategyCmd(),
		newSEOCmd(),
		newHistoryCmd(),
		newDemoCmd(),
	)

	return root
}

// buildAgent wires an agent from configuration. The CLI logs quietly unless
// --verbose is set.
func buildAgent(ctx context.Context) (*advisor.Agent, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level := "warn"
	if verbose {
		level = cfg.Logging.Level
	}
	zapLog := logger.New(level, "console")

	agent, shutdown, err := bootstrap.BuildAgent(ctx, cfg, zapLog)
	if err != nil {
		return nil, nil, err
	}

	return agent, func() {
		shutdown()
		_ = zapLog.Sync()
	}, nil
}

func printResult(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	var (
		name     string
		industry string
		website  string
		social   []string
		revenue  float64
		budget   float64
		audience string
		channels []string
		compInfo []string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a full marketing analysis for a business",
		Example: `  advisor analyze --name "Joe's Pizza" --industry Restaurant \
    --website https://joespizza.example.com \
    --social facebook=joespizza --social instagram=@joespizza \
    --revenue 15000 --budget 500 --channels "Word of mouth,Flyers"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			agent, shutdown, err := buildAgent(ctx)
			if err != nil {
				return err
			}
			defer shutdown()

			socialMedia := make(map[string]string, len(social))
			for _, entry := range social {
				parts := strings.SplitN(entry, "=", 2)
				if len(parts) != 2 {
					return fmt.Errorf("invalid --social entry %q, expected platform=handle", entry)
				}
				socialMedia[parts[0]] = parts[1]
			}

			record := &analysis.BusinessRecord{
				Name:            name,
				Industry:        industry,
				Website:         website,
				SocialMedia:     socialMedia,
				MonthlyRevenue:  revenue,
				MarketingBudget: budget,
				TargetAudience:  audience,
				CurrentChannels: channels,
				Competitors:     compInfo,
			}

			rpt, err := agent.AnalyzeBusiness(ctx, record)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printResult(rpt)
			}
			fmt.Println(report.FormatFullReport(rpt))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	cmd.Flags().StringVar(&industry, "industry", "", "industry or sector (required)")
	cmd.Flags().StringVar(&website, "website", "", "business website URL")
	cmd.Flags().StringArrayVar(&social, "social", nil, "social media handle as platform=handle (repeatable)")
	cmd.Flags().Float64Var(&revenue, "revenue", 0, "monthly revenue in dollars")
	cmd.Flags().Float64Var(&budget, "budget", 0, "monthly marketing budget in dollars")
	cmd.Flags().StringVar(&audience, "audience", "", "target audience description")
	cmd.Flags().StringSliceVar(&channels, "channels", nil, "comma-separated current marketing channels")
	cmd.Flags().StringSliceVar(&compInfo, "competitors", nil, "comma-separated competitor names")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("industry")

	return cmd
}

func newSocialPostCmd() *cobra.Command {
	var (
		platform   string
		topic      string
		tone       string
		noHashtags bool
	)

	cmd := &cobra.Command{
		Use:   "social-post",
		Short: "Generate a social media post",
		RunE: func(cmd *cobra.Command, _ []string) error {
			agent, shutdown, err := buildAgent(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			post := agent.GenerateSocialPost(cmd.Context(), platform, topic, tone, !noHashtags)
			return printResult(post)
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", "platform: twitter, linkedin, facebook, instagram (required)")
	cmd.Flags().StringVar(&topic, "topic", "", "topic for the post (required)")
	cmd.Flags().StringVar(&tone, "tone", "professional", "tone: professional, casual, funny, inspirational")
	cmd.Flags().BoolVar(&noHashtags, "no-hashtags", false, "exclude hashtags from the post")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func newEmailCmd() *cobra.Command {
	var (
		campaignType string
		audience     string
		message      string
	)

	cmd := &cobra.Command{
		Use:   "email",
		Short: "Generate an email campaign",
		RunE: func(cmd *cobra.Command, _ []string) error {
			agent, shutdown, err := buildAgent(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			email := agent.GenerateEmailCampaign(cmd.Context(), campaignType, audience, message)
			return printResult(email)
		},
	}

	cmd.Flags().StringVar(&campaignType, "type", "", "campaign type: promotional, newsletter, welcome, re-engagement (required)")
	cmd.Flags().StringVar(&audience, "audience", "", "target audience description (required)")
	cmd.Flags().StringVar(&message, "message", "", "key message or offer (required)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("audience")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newMarketAnalysisCmd() *cobra.Command {
	var (
		industry string
		focus    string
	)

	cmd := &cobra.Command{
		Use:   "market-analysis",
		Short: "Analyze market trends for an industry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			agent, shutdown, err := buildAgent(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			trends := agent.AnalyzeMarketTrends(cmd.Context(), industry, focus)
			return printResult(trends)
		},
	}

	cmd.Flags().StringVar(&industry, "industry", "", "industry to analyze (required)")
	cmd.Flags().StringVar(&focus, "focus", "", "specific focus area (required)")
	_ = cmd.MarkFlagRequired("industry")
	_ = cmd.MarkFlagRequired("focus")

	return cmd
}

func newCampaignStrategyCmd() *cobra.Command {
	var (
		goal     string
		budget   string
		duration string
		channels []string
	)

	cmd := &cobra.Command{
		Use:   "campaign-strategy",
		Short: "Create a marketing campaign strategy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			agent, shutdown, err := buildAgent(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			strategy := agent.CreateCampaignStrategy(cmd.Context(), goal, budget, duration, channels)
			return printResult(strategy)
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "campaign goal: awareness, leads, sales, engagement (required)")
	cmd.Flags().StringVar(&budget, "budget", "", "budget range (required)")
	cmd.Flags().StringVar(&duration, "duration", "", "campaign duration (required)")
	cmd.Flags().StringSliceVar(&channels, "channels", nil, "comma-separated marketing channels (required)")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("budget")
	_ = cmd.MarkFlagRequired("duration")
	_ = cmd.MarkFlagRequired("channels")

	return cmd
}

func newSEOCmd() *cobra.Command {
	var (
		websiteType string
		keywords    []string
	)

	cmd := &cobra.Command{
		Use:   "seo",
		Short: "Generate SEO recommendations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			agent, shutdown, err := buildAgent(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			seo := agent.GenerateSEORecommendations(cmd.Context(), websiteType, keywords)
			return printResult(seo)
		},
	}

	cmd.Flags().StringVar(&websiteType, "website-type", "", "type of website, e.g. blog, ecommerce, corporate (required)")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "comma-separated target keywords (required)")
	_ = cmd.MarkFlagRequired("website-type")
	_ = cmd.MarkFlagRequired("keywords")

	return cmd
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a full demo of all content generators",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			agent, shutdown, err := buildAgent(ctx)
			if err != nil {
				return err
			}
			defer shutdown()

			rule := strings.Repeat("=", 50)

			fmt.Println("Running full demo of all features...")
			fmt.Println()

			fmt.Println("1. Social Media Post (LinkedIn)")
			fmt.Println(rule)
			if err := printResult(agent.GenerateSocialPost(ctx, "linkedin", "AI Marketing", "professional", true)); err != nil {
				return err
			}
			fmt.Println()

			fmt.Println("2. Email Campaign (Promotional)")
			fmt.Println(rule)
			if err := printResult(agent.GenerateEmailCampaign(ctx, "promotional", "Small business owners",
				"Transform your marketing with AI")); err != nil {
				return err
			}
			fmt.Println()

			fmt.Println("3. Market Analysis")
			fmt.Println(rule)
			if err := printResult(agent.AnalyzeMarketTrends(ctx, "Technology", "Digital Marketing")); err != nil {
				return err
			}
			fmt.Println()

			fmt.Println("4. Campaign Strategy")
			fmt.Println(rule)
			if err := printResult(agent.CreateCampaignStrategy(ctx, "leads", "$5,000-$10,000", "8 weeks",
				[]string{"LinkedIn", "Google Ads", "Email"})); err != nil {
				return err
			}
			fmt.Println()

			fmt.Println("5. SEO Recommendations")
			fmt.Println(rule)
			if err := printResult(agent.GenerateSEORecommendations(ctx, "blog",
				[]string{"AI marketing", "automation", "strategy"})); err != nil {
				return err
			}
			fmt.Println()

			fmt.Println(rule)
			fmt.Println("Demo complete! Performed 5 operations")
			return nil
		},
	}
}

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded operations, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			agent, shutdown, err := buildAgent(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			records, err := agent.History(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printResult(records)
			}

			if len(records) == 0 {
				fmt.Println("No history recorded yet.")
				return nil
			}
			for _, rec := range records {
				fmt.Printf("%s  %-32s %s\n",
					rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.Action, rec.ID)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of records to show")

	return cmd
}
