package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/jobboard-client/internal/api"
	"github.com/jonathan/jobboard-client/internal/config"
	"github.com/jonathan/jobboard-client/internal/observability"
	"github.com/jonathan/jobboard-client/internal/session"
	"github.com/jonathan/jobboard-client/internal/types"
)

// loadSettings loads the config file (when given) and applies flag overrides.
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagEnvironment != "" {
		cfg.Environment = flagEnvironment
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newAPIClient builds the API client with a file-backed session so logins
// survive across invocations.
func newAPIClient() (*api.Client, *config.Config, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}

	store, err := session.NewFileStore(flagSessionFile)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Load(); err != nil {
		return nil, nil, err
	}

	client := api.New(&api.Options{
		BaseURL: cfg.BaseURL,
		Env:     api.Environment(cfg.Environment),
		Session: store,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	return client, cfg, nil
}

// currentUser resolves the logged-in account, failing with a friendly message
// when there is no session.
func currentUser(ctx context.Context, client *api.Client) (*types.User, error) {
	if client.Session().AccessToken() == "" {
		return nil, fmt.Errorf("not logged in; run 'jobboard_agent login' first")
	}
	user, err := client.Auth.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}
	return user, nil
}

// printer returns a box printer for verbose output, or nil when not verbose.
func printer(cfg *config.Config) *observability.Printer {
	if !cfg.Verbose {
		return nil
	}
	return observability.NewPrinter(os.Stdout)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

// readJSONFile unmarshals a JSON file into out.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
