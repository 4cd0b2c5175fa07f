package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-client/internal/api"
	"github.com/jonathan/jobboard-client/internal/types"
)

var listJobsCmd = &cobra.Command{
	Use:   "list-jobs",
	Short: "List job postings",
	RunE:  runListJobs,
}

var getJobCmd = &cobra.Command{
	Use:   "get-job",
	Short: "Show one job posting",
	RunE:  runGetJob,
}

var postJobCmd = &cobra.Command{
	Use:   "post-job",
	Short: "Create a job posting from a JSON file",
	RunE:  runPostJob,
}

var deactivateJobCmd = &cobra.Command{
	Use:   "deactivate-job",
	Short: "Deactivate a job posting so it stops accepting applications",
	RunE:  runDeactivateJob,
}

var (
	listJobsSearch   string
	listJobsLocation string
	listJobsType     string
	listJobsSkills   []string
	listJobsRemote   bool
	listJobsAll      bool
	listJobsLimit    int
	listJobsSkip     int

	getJobID        string
	postJobFile     string
	deactivateJobID string
)

func init() {
	listJobsCmd.Flags().StringVarP(&listJobsSearch, "search", "s", "", "Free-text search")
	listJobsCmd.Flags().StringVar(&listJobsLocation, "location", "", "Filter by location")
	listJobsCmd.Flags().StringVar(&listJobsType, "type", "", "Filter by job type (full_time, part_time, contract, internship, temporary)")
	listJobsCmd.Flags().StringSliceVar(&listJobsSkills, "skill", nil, "Filter by skill (repeatable)")
	listJobsCmd.Flags().BoolVar(&listJobsRemote, "remote", false, "Only remote jobs")
	listJobsCmd.Flags().BoolVar(&listJobsAll, "all", false, "Include inactive jobs")
	listJobsCmd.Flags().IntVar(&listJobsLimit, "limit", 20, "Maximum results")
	listJobsCmd.Flags().IntVar(&listJobsSkip, "skip", 0, "Results to skip")

	getJobCmd.Flags().StringVar(&getJobID, "job", "", "Job ID (required)")
	getJobCmd.MarkFlagRequired("job")

	postJobCmd.Flags().StringVarP(&postJobFile, "file", "f", "", "Path to job JSON file (required)")
	postJobCmd.MarkFlagRequired("file")

	deactivateJobCmd.Flags().StringVar(&deactivateJobID, "job", "", "Job ID (required)")
	deactivateJobCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(listJobsCmd)
	rootCmd.AddCommand(getJobCmd)
	rootCmd.AddCommand(postJobCmd)
	rootCmd.AddCommand(deactivateJobCmd)
}

func runListJobs(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	params := &api.ListJobsParams{
		Search:   listJobsSearch,
		Location: listJobsLocation,
		JobType:  listJobsType,
		Skills:   listJobsSkills,
		Limit:    listJobsLimit,
		Skip:     listJobsSkip,
	}
	if listJobsRemote {
		remote := true
		params.Remote = &remote
	}
	if !listJobsAll {
		active := true
		params.IsActive = &active
	}

	jobs, err := client.Jobs.List(context.Background(), params)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	for _, job := range jobs {
		status := ""
		if !job.IsActive {
			status = "  [inactive]"
		}
		fmt.Fprintf(os.Stdout, "%s  %-30s  %s (%s)%s\n", job.ID, job.Title, job.Company, job.Location, status)
	}
	fmt.Fprintf(os.Stdout, "\n%d jobs\n", len(jobs))
	return nil
}

func runGetJob(_ *cobra.Command, _ []string) error {
	client, cfg, err := newAPIClient()
	if err != nil {
		return err
	}

	job, err := client.Jobs.Get(context.Background(), getJobID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	if p := printer(cfg); p != nil {
		p.PrintJob(job)
		return nil
	}
	return printJSON(job)
}

func runPostJob(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	var req types.CreateJobRequest
	if err := readJSONFile(postJobFile, &req); err != nil {
		return err
	}

	job, err := client.Jobs.Create(context.Background(), &req)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Posted job %s: %s at %s\n", job.ID, job.Title, job.Company)
	return nil
}

func runDeactivateJob(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	job, err := client.Jobs.Deactivate(context.Background(), deactivateJobID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Deactivated job %s: %s\n", job.ID, job.Title)
	return nil
}
