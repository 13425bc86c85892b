package command

// auth.go handles authentication commands for the console: login, logout and
// whoami. Only admin accounts get a session; any other role is declined here
// even though the API authenticated it.

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dramahub/internal/services"
)

// authCmd represents the auth command for authentication related subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the DramaHub API server. Supports login, logout and session inspection.`,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login with an administrator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		svc := services.NewAuthService(apiClient)
		user, err := svc.LoginAdmin(cmd.Context(), store, email, password)
		if errors.Is(err, services.ErrNotAdmin) {
			notify.Error(err.Error())
			return err
		}
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		notify.Success(fmt.Sprintf("Logged in as %s (%s)", user.Name, user.Email))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Logout(); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}
		notify.Success("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account behind the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		svc := services.NewAuthService(apiClient)
		user, err := svc.Me(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch session account: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID: %s\n", user.ID)
		fmt.Fprintf(out, "Name: %s\n", user.Name)
		fmt.Fprintf(out, "Email: %s\n", user.Email)
		fmt.Fprintf(out, "Role: %s\n", user.Role)
		return nil
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(authCmd)

	loginCmd.Flags().StringP("email", "e", "", "Email of the administrator account")
	loginCmd.Flags().StringP("password", "p", "", "Password of the administrator account")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
