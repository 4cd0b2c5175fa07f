package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-client/internal/api"
	"github.com/jonathan/jobboard-client/internal/drafts"
	"github.com/jonathan/jobboard-client/internal/fetch"
	"github.com/jonathan/jobboard-client/internal/llm"
	"github.com/jonathan/jobboard-client/internal/wizard"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply to a job through the application wizard",
	Long: "Apply to a job. In-app jobs run the five-page wizard from an answers JSON file; " +
		"external jobs print a posting preview or a contact address instead.",
	RunE: runApply,
}

var (
	applyJobID        string
	applySettingsFile string
	applyAnswersFile  string
	applySaveDraft    bool
	applyDiscardDraft bool
	applyCoverAssist  bool
)

func init() {
	applyCmd.Flags().StringVar(&applyJobID, "job", "", "Job ID (required)")
	applyCmd.Flags().StringVar(&applySettingsFile, "settings", "", "Path to apply-settings JSON (default: in-app with no screening)")
	applyCmd.Flags().StringVarP(&applyAnswersFile, "answers", "a", "", "Path to answers JSON file")
	applyCmd.Flags().BoolVar(&applySaveDraft, "save-draft", false, "Save answers as a draft without submitting")
	applyCmd.Flags().BoolVar(&applyDiscardDraft, "discard-draft", false, "Discard any saved draft before starting")
	applyCmd.Flags().BoolVar(&applyCoverAssist, "draft-cover-letter", false, "Generate a cover letter draft when none is provided (requires API key)")

	applyCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(applyCmd)
}

func runApply(_ *cobra.Command, _ []string) error {
	client, cfg, err := newAPIClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	job, err := client.Jobs.Get(ctx, applyJobID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	settings := wizard.Settings{Method: wizard.MethodInApp}
	if applySettingsFile != "" {
		if err := readJSONFile(applySettingsFile, &settings); err != nil {
			return err
		}
	}

	// Non-wizard apply methods short-circuit before any wizard state exists.
	switch settings.Method {
	case wizard.MethodExternalURL:
		return previewExternal(ctx, cfg.UseBrowser, settings.ExternalURL)
	case wizard.MethodEmail:
		fmt.Fprintf(os.Stdout, "This job accepts applications by email. Contact: %s\n", settings.ContactEmail)
		return nil
	}

	user, err := currentUser(ctx, client)
	if err != nil {
		return err
	}

	var store drafts.Store
	if cfg.DatabaseURL != "" {
		pg, err := drafts.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to open draft store: %w", err)
		}
		defer pg.Close()
		store = pg
	}

	w := wizard.New(job.ID, settings)
	if store != nil {
		if applyDiscardDraft {
			if err := store.Delete(ctx, user.ID, job.ID); err != nil {
				return err
			}
		} else if snap, err := store.Load(ctx, user.ID, job.ID); err != nil {
			return err
		} else if snap != nil {
			w = wizard.Restore(*snap)
			fmt.Fprintf(os.Stdout, "Resumed draft on the %s page\n", w.Page())
		}
	}

	if applyAnswersFile != "" {
		if err := readJSONFile(applyAnswersFile, w.Answers()); err != nil {
			return err
		}
	}

	if applyCoverAssist && w.Answers().CoverLetter == "" {
		if err := draftCoverLetter(ctx, client, cfg.APIKey, w, user.ID); err != nil {
			return err
		}
	}

	if applySaveDraft {
		if store == nil {
			return fmt.Errorf("draft saving requires a database URL (set JOBBOARD_DATABASE_URL or the config file)")
		}
		if err := store.Save(ctx, user.ID, job.ID, w.Snapshot()); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Draft saved")
		return nil
	}

	// Walk the wizard forward; the first invalid page stops the run with its
	// field errors so the answers file can be corrected and retried.
	for w.Page() < wizard.PageReview {
		if w.Next() {
			continue
		}
		fmt.Fprintf(os.Stderr, "%s (%s page)\n", w.Toast(), w.Page())
		for field, msg := range w.Errors() {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
		if store != nil {
			if err := store.Save(ctx, user.ID, job.ID, w.Snapshot()); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Progress saved as a draft")
		}
		return fmt.Errorf("application is incomplete")
	}

	profile, err := client.JobSeekers.GetByUserID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	var profileID string
	if profile != nil {
		profileID = profile.ID
	}

	app, err := w.Submit(ctx, client.Applications, profileID)
	if err != nil {
		if errors.Is(err, wizard.ErrNoProfile) {
			return fmt.Errorf("you need a job-seeker profile before applying; run 'jobboard_agent save-profile' first")
		}
		var pageErr *wizard.PageValidationError
		if errors.As(err, &pageErr) {
			for field, msg := range pageErr.Fields {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
			return fmt.Errorf("the %s page is incomplete", pageErr.Page)
		}
		var submitErr *wizard.SubmitError
		if errors.As(err, &submitErr) {
			return fmt.Errorf("%s", submitErr.Message)
		}
		return err
	}

	if store != nil {
		// A submitted application makes the draft stale.
		if err := store.Delete(ctx, user.ID, job.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete draft: %v\n", err)
		}
	}

	fmt.Fprintf(os.Stdout, "Application submitted: %s (status: %s)\n", app.ID, app.Status)
	if p := printer(cfg); p != nil {
		p.PrintApplication(app)
	}
	return nil
}

// previewExternal fetches and prints a reduced view of an off-site posting.
func previewExternal(ctx context.Context, useBrowser bool, url string) error {
	if url == "" {
		return fmt.Errorf("this job applies via an external site, but no URL is configured")
	}

	preview, err := fetch.PreviewPosting(ctx, url, fetch.DefaultOptions(), useBrowser)
	if err != nil {
		return fmt.Errorf("failed to preview posting: %w", err)
	}

	fmt.Fprintf(os.Stdout, "This job accepts applications on an external site:\n\n")
	fmt.Fprintf(os.Stdout, "  %s\n  %s\n\n", preview.Title, preview.URL)
	text := preview.Text
	if len(text) > 600 {
		text = text[:600] + "..."
	}
	fmt.Fprintln(os.Stdout, text)
	return nil
}

// draftCoverLetter fills the wizard's cover letter from the profile when the
// candidate asked for assistance. The draft is a starting point; it still
// flows through review before submit.
func draftCoverLetter(ctx context.Context, client *api.Client, apiKey string, w *wizard.Wizard, userID string) error {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("cover letter drafting requires an API key (set GEMINI_API_KEY or the config file)")
	}

	profile, err := client.JobSeekers.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	if profile == nil {
		return fmt.Errorf("cover letter drafting requires a job-seeker profile")
	}

	job, err := client.Jobs.Get(ctx, w.JobID())
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	gemini, err := llm.NewGeminiClient(ctx, apiKey, "")
	if err != nil {
		return err
	}
	defer func() { _ = gemini.Close() }()

	draft, err := llm.DraftCoverLetter(ctx, gemini, job, profile)
	if err != nil {
		return fmt.Errorf("failed to draft cover letter: %w", err)
	}
	w.Answers().CoverLetter = draft
	fmt.Fprintln(os.Stdout, "Drafted a cover letter; review it before submitting")
	return nil
}
