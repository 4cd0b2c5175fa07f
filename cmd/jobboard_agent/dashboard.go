package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-client/internal/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the employer dashboard: every posting with its applicants",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	user, err := currentUser(ctx, client)
	if err != nil {
		return err
	}

	rows, err := dashboard.BuildEmployer(ctx, client, user.ID)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	for _, row := range rows {
		fmt.Fprintf(os.Stdout, "%s — %s (%d applicants)\n", row.Job.Title, row.Job.ID, len(row.Applicants))
		for _, applicant := range row.Applicants {
			name := "(profile deleted)"
			if applicant.Profile != nil {
				name = applicant.Profile.FirstName + " " + applicant.Profile.LastName
			}
			fmt.Fprintf(os.Stdout, "  %-30s  %-20s  match=%d%%\n", name, applicant.Application.Status, applicant.MatchScore)
		}
		fmt.Fprintln(os.Stdout)
	}
	fmt.Fprintf(os.Stdout, "%d postings\n", len(rows))
	return nil
}
