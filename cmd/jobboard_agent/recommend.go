package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-client/internal/api"
	"github.com/jonathan/jobboard-client/internal/llm"
	"github.com/jonathan/jobboard-client/internal/types"
)

var recommendationsCmd = &cobra.Command{
	Use:   "recommendations",
	Short: "List job recommendations for the current user",
	RunE:  runRecommendations,
}

var markViewedCmd = &cobra.Command{
	Use:   "mark-viewed",
	Short: "Mark a recommendation as viewed",
	RunE:  runMarkViewed,
}

var dismissCmd = &cobra.Command{
	Use:   "dismiss",
	Short: "Dismiss a recommendation",
	RunE:  runDismiss,
}

var (
	recommendationsReasoning bool
	markViewedID             string
	dismissID                string
)

func init() {
	recommendationsCmd.Flags().BoolVar(&recommendationsReasoning, "reasoning", false, "Generate reasoning for recommendations that lack it (requires API key)")

	markViewedCmd.Flags().StringVar(&markViewedID, "recommendation", "", "Recommendation ID (required)")
	markViewedCmd.MarkFlagRequired("recommendation")

	dismissCmd.Flags().StringVar(&dismissID, "recommendation", "", "Recommendation ID (required)")
	dismissCmd.MarkFlagRequired("recommendation")

	rootCmd.AddCommand(recommendationsCmd)
	rootCmd.AddCommand(markViewedCmd)
	rootCmd.AddCommand(dismissCmd)
}

func runRecommendations(_ *cobra.Command, _ []string) error {
	client, cfg, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	user, err := currentUser(ctx, client)
	if err != nil {
		return err
	}
	profile, err := client.JobSeekers.GetByUserID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	if profile == nil {
		fmt.Fprintln(os.Stdout, "No recommendations: you have no job-seeker profile yet")
		return nil
	}

	dismissed := false
	recs, err := client.Recommendations.List(ctx, &api.ListRecommendationsParams{
		JobSeekerID: profile.ID,
		Dismissed:   &dismissed,
	})
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	if recommendationsReasoning {
		if err := fillReasoning(ctx, client, cfg.APIKey, recs); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if p := printer(cfg); p != nil {
		p.PrintRecommendations(recs)
		return nil
	}
	for _, rec := range recs {
		tag := ""
		if rec.AIGenerated {
			tag = " [AI]"
		}
		fmt.Fprintf(os.Stdout, "%s  job=%s  match=%d%%%s\n", rec.ID, rec.JobID, rec.MatchScore, tag)
		if rec.Reasoning != "" {
			fmt.Fprintf(os.Stdout, "    %s\n", rec.Reasoning)
		}
	}
	fmt.Fprintf(os.Stdout, "\n%d recommendations\n", len(recs))
	return nil
}

// fillReasoning generates reasoning text for recommendations missing it and
// flags those records as AI-generated.
func fillReasoning(ctx context.Context, client *api.Client, apiKey string, recs []types.Recommendation) error {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("reasoning generation requires an API key (set GEMINI_API_KEY or the config file)")
	}

	gemini, err := llm.NewGeminiClient(ctx, apiKey, "")
	if err != nil {
		return err
	}
	defer func() { _ = gemini.Close() }()

	for i := range recs {
		if recs[i].Reasoning != "" {
			continue
		}
		job, err := client.Jobs.Get(ctx, recs[i].JobID)
		if err != nil {
			continue
		}
		reasoning, err := llm.RecommendationReasoning(ctx, gemini, job, &recs[i])
		if err != nil {
			continue
		}
		recs[i].Reasoning = reasoning
		recs[i].AIGenerated = true
	}
	return nil
}

func runMarkViewed(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	if err := client.Recommendations.MarkViewed(context.Background(), markViewedID); err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	fmt.Fprintln(os.Stdout, "Marked as viewed")
	return nil
}

func runDismiss(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	if err := client.Recommendations.Dismiss(context.Background(), dismissID); err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	fmt.Fprintln(os.Stdout, "Dismissed")
	return nil
}
