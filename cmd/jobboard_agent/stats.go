package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-client/internal/api"
)

var jobAnalyticsCmd = &cobra.Command{
	Use:   "job-analytics",
	Short: "Show view and application counts for a job",
	RunE:  runJobAnalytics,
}

var employerStatsCmd = &cobra.Command{
	Use:   "employer-stats",
	Short: "Show aggregate posting stats for the current employer",
	RunE:  runEmployerStats,
}

var seekerStatsCmd = &cobra.Command{
	Use:   "seeker-stats",
	Short: "Show application stats for the current job seeker",
	RunE:  runSeekerStats,
}

var jobAnalyticsJobID string

func init() {
	jobAnalyticsCmd.Flags().StringVar(&jobAnalyticsJobID, "job", "", "Job ID (required)")
	jobAnalyticsCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(jobAnalyticsCmd)
	rootCmd.AddCommand(employerStatsCmd)
	rootCmd.AddCommand(seekerStatsCmd)
}

func runJobAnalytics(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	analytics, err := client.Stats.JobAnalytics(context.Background(), jobAnalyticsJobID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	return printJSON(analytics)
}

func runEmployerStats(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	user, err := currentUser(ctx, client)
	if err != nil {
		return err
	}

	stats, err := client.Stats.EmployerJobStats(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	return printJSON(stats)
}

func runSeekerStats(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	user, err := currentUser(ctx, client)
	if err != nil {
		return err
	}

	stats, err := client.Stats.SeekerApplicationStats(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	return printJSON(stats)
}
