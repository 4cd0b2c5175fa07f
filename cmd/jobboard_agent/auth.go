package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-client/internal/api"
	"github.com/jonathan/jobboard-client/internal/types"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and store the session",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in account",
	RunE:  runWhoami,
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Exchange the stored refresh token for a new session",
	RunE:  runRefresh,
}

var (
	loginEmail       string
	loginPassword    string
	registerEmail    string
	registerPassword string
	registerRole     string
)

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (required)")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Account email (required)")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Account password, minimum 8 characters (required)")
	registerCmd.Flags().StringVar(&registerRole, "role", types.AccountJobSeeker, "Account type: job_seeker or employer")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(refreshCmd)
}

func runLogin(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	bundle, err := client.Auth.Login(context.Background(), &types.LoginRequest{
		Email:    loginEmail,
		Password: loginPassword,
	})
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Logged in as %s (%s)\n", bundle.User.Email, bundle.User.AccountType)
	return nil
}

func runRegister(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	bundle, err := client.Auth.Register(context.Background(), &types.RegisterRequest{
		Email:       registerEmail,
		Password:    registerPassword,
		AccountType: registerRole,
	})
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Registered and logged in as %s (%s)\n", bundle.User.Email, bundle.User.AccountType)
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	// The local session is cleared even when the server call fails; a dead
	// backend must not leave a client stuck logged in.
	if err := client.Auth.Logout(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: server logout failed: %v\n", api.UserMessage(err))
	}

	fmt.Fprintln(os.Stdout, "Logged out")
	return nil
}

func runRefresh(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	bundle, err := client.Auth.Refresh(context.Background())
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	fmt.Fprintf(os.Stdout, "Session refreshed; valid until %s\n", bundle.ExpiresAt.Format("2006-01-02 15:04 MST"))
	return nil
}

func runWhoami(_ *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	user, err := currentUser(context.Background(), client)
	if err != nil {
		return err
	}
	return printJSON(user)
}
