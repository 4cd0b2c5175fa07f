package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-client/internal/api"
	"github.com/jonathan/jobboard-client/internal/types"
)

var listInterviewsCmd = &cobra.Command{
	Use:   "list-interviews",
	Short: "List interviews",
	RunE:  runListInterviews,
}

var scheduleInterviewCmd = &cobra.Command{
	Use:   "schedule-interview",
	Short: "Schedule an interview for an application",
	RunE:  runScheduleInterview,
}

var cancelInterviewCmd = &cobra.Command{
	Use:   "cancel-interview",
	Short: "Cancel an interview with a reason",
	RunE:  runCancelInterview,
}

var completeInterviewCmd = &cobra.Command{
	Use:   "complete-interview",
	Short: "Mark an interview completed with feedback",
	RunE:  runCompleteInterview,
}

var (
	listInterviewsAppID  string
	listInterviewsStatus string

	scheduleAppID    string
	scheduleType     string
	scheduleAt       string
	scheduleDuration int
	scheduleLink     string
	scheduleLocation string

	cancelInterviewID     string
	cancelInterviewReason string

	completeInterviewID       string
	completeInterviewFeedback string
	completeInterviewRating   int
)

func init() {
	listInterviewsCmd.Flags().StringVar(&listInterviewsAppID, "application", "", "Filter by application ID")
	listInterviewsCmd.Flags().StringVar(&listInterviewsStatus, "status", "", "Filter by status")

	scheduleInterviewCmd.Flags().StringVar(&scheduleAppID, "application", "", "Application ID (required)")
	scheduleInterviewCmd.Flags().StringVar(&scheduleType, "type", types.InterviewVideo, "Interview type (phone, video, in_person, technical, behavioral, panel)")
	scheduleInterviewCmd.Flags().StringVar(&scheduleAt, "at", "", "Start time in RFC 3339, e.g. 2026-09-01T14:00:00Z (required)")
	scheduleInterviewCmd.Flags().IntVar(&scheduleDuration, "duration", 60, "Duration in minutes")
	scheduleInterviewCmd.Flags().StringVar(&scheduleLink, "link", "", "Meeting link")
	scheduleInterviewCmd.Flags().StringVar(&scheduleLocation, "location", "", "Location for in-person interviews")
	scheduleInterviewCmd.MarkFlagRequired("application")
	scheduleInterviewCmd.MarkFlagRequired("at")

	cancelInterviewCmd.Flags().StringVar(&cancelInterviewID, "interview", "", "Interview ID (required)")
	cancelInterviewCmd.Flags().StringVar(&cancelInterviewReason, "reason", "", "Cancellation reason (required)")
	cancelInterviewCmd.MarkFlagRequired("interview")
	cancelInterviewCmd.MarkFlagRequired("reason")

	completeInterviewCmd.Flags().StringVar(&completeInterviewID, "interview", "", "Interview ID (required)")
	completeInterviewCmd.Flags().StringVar(&completeInterviewFeedback, "feedback", "", "Interview feedback (required)")
	completeInterviewCmd.Flags().IntVar(&completeInterviewRating, "rating", 0, "Rating 1-5 (optional)")
	completeInterviewCmd.MarkFlagRequired("interview")
	completeInterviewCmd.MarkFlagRequired("feedback")

	rootCmd.AddCommand(listInterviewsCmd)
	rootCmd.AddCommand(scheduleInterviewCmd)
	rootCmd.AddCommand(cancelInterviewCmd)
	rootCmd.AddCommand(completeInterviewCmd)
}

func runListInterviews(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	interviews, err := client.Interviews.List(context.Background(), &api.ListInterviewsParams{
		ApplicationID: listInterviewsAppID,
		Status:        listInterviewsStatus,
	})
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	for _, iv := range interviews {
		fmt.Fprintf(os.Stdout, "%s  %s  %-12s  %s (%d min)\n",
			iv.ID, iv.ScheduledAt.Format(time.RFC3339), iv.Status, iv.Type, iv.DurationMinutes)
	}
	fmt.Fprintf(os.Stdout, "\n%d interviews\n", len(interviews))
	return nil
}

func runScheduleInterview(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	at, err := time.Parse(time.RFC3339, scheduleAt)
	if err != nil {
		return fmt.Errorf("invalid --at value %q: expected RFC 3339 timestamp", scheduleAt)
	}

	iv, err := client.Interviews.Schedule(context.Background(), &types.ScheduleInterviewRequest{
		ApplicationID:   scheduleAppID,
		Type:            scheduleType,
		ScheduledAt:     at,
		DurationMinutes: scheduleDuration,
		MeetingLink:     scheduleLink,
		Location:        scheduleLocation,
	})
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Interview %s scheduled for %s\n", iv.ID, iv.ScheduledAt.Format(time.RFC3339))
	return nil
}

func runCancelInterview(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	iv, err := client.Interviews.Cancel(context.Background(), cancelInterviewID, &types.CancelInterviewRequest{
		Reason: cancelInterviewReason,
	})
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Interview %s cancelled\n", iv.ID)
	return nil
}

func runCompleteInterview(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	req := &types.CompleteInterviewRequest{Feedback: completeInterviewFeedback}
	if completeInterviewRating > 0 {
		req.Rating = &completeInterviewRating
	}

	iv, err := client.Interviews.Complete(context.Background(), completeInterviewID, req)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Interview %s completed\n", iv.ID)
	return nil
}
