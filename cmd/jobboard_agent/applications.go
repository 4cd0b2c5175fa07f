package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-client/internal/api"
	"github.com/jonathan/jobboard-client/internal/scoring"
	"github.com/jonathan/jobboard-client/internal/types"
)

var listApplicationsCmd = &cobra.Command{
	Use:   "list-applications",
	Short: "List applications",
	RunE:  runListApplications,
}

var getApplicationCmd = &cobra.Command{
	Use:   "get-application",
	Short: "Show one application with its status history",
	RunE:  runGetApplication,
}

var updateStatusCmd = &cobra.Command{
	Use:   "update-status",
	Short: "Move an application to a new pipeline status",
	RunE:  runUpdateStatus,
}

var rejectCmd = &cobra.Command{
	Use:   "reject",
	Short: "Reject an application with a reason",
	RunE:  runReject,
}

var extendOfferCmd = &cobra.Command{
	Use:   "extend-offer",
	Short: "Extend an offer on an application",
	RunE:  runExtendOffer,
}

var acceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Mark an application's offer as accepted",
	RunE:  runAccept,
}

var (
	listAppsJobID  string
	listAppsStatus string
	listAppsMine   bool
	listAppsLimit  int

	getAppID string

	updateStatusAppID string
	updateStatusValue string
	updateStatusNote  string

	rejectAppID  string
	rejectReason string
	offerAppID   string
	acceptAppID  string
)

func init() {
	listApplicationsCmd.Flags().StringVar(&listAppsJobID, "job", "", "Filter by job ID")
	listApplicationsCmd.Flags().StringVar(&listAppsStatus, "status", "", "Filter by status")
	listApplicationsCmd.Flags().BoolVar(&listAppsMine, "mine", false, "Only the current user's applications")
	listApplicationsCmd.Flags().IntVar(&listAppsLimit, "limit", 50, "Maximum results")

	getApplicationCmd.Flags().StringVar(&getAppID, "application", "", "Application ID (required)")
	getApplicationCmd.MarkFlagRequired("application")

	updateStatusCmd.Flags().StringVar(&updateStatusAppID, "application", "", "Application ID (required)")
	updateStatusCmd.Flags().StringVar(&updateStatusValue, "status", "", "New status (required)")
	updateStatusCmd.Flags().StringVar(&updateStatusNote, "note", "", "Optional note for the status history")
	updateStatusCmd.MarkFlagRequired("application")
	updateStatusCmd.MarkFlagRequired("status")

	rejectCmd.Flags().StringVar(&rejectAppID, "application", "", "Application ID (required)")
	rejectCmd.Flags().StringVar(&rejectReason, "reason", "", "Rejection reason (required)")
	rejectCmd.MarkFlagRequired("application")
	rejectCmd.MarkFlagRequired("reason")

	extendOfferCmd.Flags().StringVar(&offerAppID, "application", "", "Application ID (required)")
	extendOfferCmd.MarkFlagRequired("application")

	acceptCmd.Flags().StringVar(&acceptAppID, "application", "", "Application ID (required)")
	acceptCmd.MarkFlagRequired("application")

	rootCmd.AddCommand(listApplicationsCmd)
	rootCmd.AddCommand(getApplicationCmd)
	rootCmd.AddCommand(updateStatusCmd)
	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(extendOfferCmd)
	rootCmd.AddCommand(acceptCmd)
}

func runListApplications(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	params := &api.ListApplicationsParams{
		JobID:  listAppsJobID,
		Status: listAppsStatus,
		Limit:  listAppsLimit,
	}
	if listAppsMine {
		user, err := currentUser(ctx, client)
		if err != nil {
			return err
		}
		profile, err := client.JobSeekers.GetByUserID(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("%s", api.UserMessage(err))
		}
		if profile == nil {
			fmt.Fprintln(os.Stdout, "No applications: you have no job-seeker profile yet")
			return nil
		}
		params.JobSeekerID = profile.ID
	}

	apps, err := client.Applications.List(ctx, params)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	for _, app := range apps {
		fmt.Fprintf(os.Stdout, "%s  job=%s  %-20s  match=%d%%\n",
			app.ID, app.JobID, app.Status, scoring.MatchScore(&app))
	}
	fmt.Fprintf(os.Stdout, "\n%d applications\n", len(apps))
	return nil
}

func runGetApplication(_ *cobra.Command, _ []string) error {
	client, cfg, err := newAPIClient()
	if err != nil {
		return err
	}

	app, err := client.Applications.Get(context.Background(), getAppID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	if p := printer(cfg); p != nil {
		p.PrintApplication(app)
		return nil
	}
	return printJSON(app)
}

func runUpdateStatus(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	app, err := client.Applications.UpdateStatus(context.Background(), updateStatusAppID, &types.UpdateApplicationStatusRequest{
		Status: updateStatusValue,
		Note:   updateStatusNote,
	})
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Application %s is now %s\n", app.ID, app.Status)
	return nil
}

func runReject(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	app, err := client.Applications.Reject(context.Background(), rejectAppID, rejectReason)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Application %s rejected\n", app.ID)
	return nil
}

func runExtendOffer(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	app, err := client.Applications.ExtendOffer(context.Background(), offerAppID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Offer extended on application %s\n", app.ID)
	return nil
}

func runAccept(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	app, err := client.Applications.Accept(context.Background(), acceptAppID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Offer accepted on application %s\n", app.ID)
	return nil
}
