package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-client/internal/api"
	"github.com/jonathan/jobboard-client/internal/scoring"
	"github.com/jonathan/jobboard-client/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current user's job-seeker profile and completion",
	RunE:  runProfile,
}

var saveProfileCmd = &cobra.Command{
	Use:   "save-profile",
	Short: "Create or update the job-seeker profile from a JSON file",
	RunE:  runSaveProfile,
}

var uploadResumeCmd = &cobra.Command{
	Use:   "upload-resume",
	Short: "Upload a resume file and attach it to the profile",
	RunE:  runUploadResume,
}

var employerProfileCmd = &cobra.Command{
	Use:   "employer-profile",
	Short: "Show the current user's employer profile",
	RunE:  runEmployerProfile,
}

var saveEmployerProfileCmd = &cobra.Command{
	Use:   "save-employer-profile",
	Short: "Create or update the employer profile from a JSON file",
	RunE:  runSaveEmployerProfile,
}

var (
	saveProfileFile         string
	uploadResumePath        string
	saveEmployerProfileFile string
)

func init() {
	saveProfileCmd.Flags().StringVarP(&saveProfileFile, "file", "f", "", "Path to profile JSON file (required)")
	saveProfileCmd.MarkFlagRequired("file")

	uploadResumeCmd.Flags().StringVarP(&uploadResumePath, "file", "f", "", "Path to resume file (required)")
	uploadResumeCmd.MarkFlagRequired("file")

	saveEmployerProfileCmd.Flags().StringVarP(&saveEmployerProfileFile, "file", "f", "", "Path to employer profile JSON file (required)")
	saveEmployerProfileCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(saveProfileCmd)
	rootCmd.AddCommand(uploadResumeCmd)
	rootCmd.AddCommand(employerProfileCmd)
	rootCmd.AddCommand(saveEmployerProfileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
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
		fmt.Fprintln(os.Stdout, "No profile yet; run 'jobboard_agent save-profile' to create one")
		return nil
	}

	if p := printer(cfg); p != nil {
		p.PrintProfileCompletion(scoring.ProfileCompletion(profile))
		return printJSON(profile)
	}
	fmt.Fprintf(os.Stdout, "Profile %d%% complete\n\n", scoring.ProfileCompletion(profile))
	return printJSON(profile)
}

func runSaveProfile(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	user, err := currentUser(ctx, client)
	if err != nil {
		return err
	}

	var req types.SaveJobSeekerProfileRequest
	if err := readJSONFile(saveProfileFile, &req); err != nil {
		return err
	}
	req.UserID = user.ID

	profile, err := client.JobSeekers.Save(ctx, &req)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Profile saved (%d%% complete)\n", scoring.ProfileCompletion(profile))
	return nil
}

func runEmployerProfile(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	user, err := currentUser(ctx, client)
	if err != nil {
		return err
	}

	profile, err := client.Employers.GetByUserID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	if profile == nil {
		fmt.Fprintln(os.Stdout, "No employer profile yet; run 'jobboard_agent save-employer-profile' to create one")
		return nil
	}
	return printJSON(profile)
}

func runSaveEmployerProfile(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	user, err := currentUser(ctx, client)
	if err != nil {
		return err
	}

	var req types.SaveEmployerProfileRequest
	if err := readJSONFile(saveEmployerProfileFile, &req); err != nil {
		return err
	}
	req.UserID = user.ID

	profile, err := client.Employers.Save(ctx, &req)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Employer profile saved for %s\n", profile.CompanyName)
	return nil
}

func runUploadResume(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
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
		return fmt.Errorf("you need a job-seeker profile before uploading a resume; run 'jobboard_agent save-profile' first")
	}

	file, err := os.Open(uploadResumePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", uploadResumePath, err)
	}
	defer func() { _ = file.Close() }()

	result, err := client.JobSeekers.UploadResume(ctx, profile.ID, filepath.Base(uploadResumePath), file)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Uploaded %s (%d bytes, file ID %s)\n", result.FileName, result.SizeBytes, result.FileID)
	return nil
}
