package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dramahub/internal/api"
	"dramahub/internal/console"
	"dramahub/internal/models"
	"dramahub/internal/services"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User moderation commands",
	Long:  `Moderate user accounts: list, change roles, ban or unban, delete`,
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts with pagination and search",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		q, err := queryFromFlags(cmd)
		if err != nil {
			return err
		}

		svc := services.NewUserService(apiClient)
		ctrl := console.NewController(func(ctx context.Context, q console.Query) (api.Page[models.User], error) {
			return svc.List(ctx, services.UserListParams{
				Page:   q.Page,
				Limit:  console.DefaultPageSize,
				Search: q.Search,
			})
		}, notify)
		ctrl.Restore(cmd.Context(), q)

		out := cmd.OutOrStdout()
		switch ctrl.State() {
		case console.StateErrored:
			return nil
		case console.StateEmpty:
			fmt.Fprintln(out, "No users found.")
			return nil
		}

		for _, u := range ctrl.Rows() {
			status := "active"
			if u.Banned {
				status = "banned"
			}
			fmt.Fprintf(out, "ID: %s | %s <%s> | Role: %s | %s\n", u.ID, u.Name, u.Email, u.Role, status)
		}
		renderPager(out, ctrl.Pager())
		return nil
	},
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role [id] [admin|user]",
	Short: "Change a user's role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		role := args[1]
		if role != models.RoleAdmin && role != models.RoleUser {
			return fmt.Errorf("invalid role %q, must be admin or user", role)
		}

		svc := services.NewUserService(apiClient)
		user, err := svc.Moderate(cmd.Context(), args[0], services.ModerateUserRequest{Role: &role})
		if err != nil {
			return fmt.Errorf("failed to change role: %w", err)
		}

		notify.Success(fmt.Sprintf("%s is now %s.", user.Email, user.Role))
		return nil
	},
}

var banUserCmd = &cobra.Command{
	Use:   "ban [id]",
	Short: "Ban a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moderateBan(cmd, args[0], true)
	},
}

var unbanUserCmd = &cobra.Command{
	Use:   "unban [id]",
	Short: "Lift the ban on a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moderateBan(cmd, args[0], false)
	},
}

func moderateBan(cmd *cobra.Command, id string, banned bool) error {
	if err := requireLogin(); err != nil {
		return err
	}

	svc := services.NewUserService(apiClient)
	user, err := svc.Moderate(cmd.Context(), id, services.ModerateUserRequest{Banned: &banned})
	if err != nil {
		return fmt.Errorf("failed to update ban state: %w", err)
	}

	if user.Banned {
		notify.Success(fmt.Sprintf("%s is banned.", user.Email))
	} else {
		notify.Success(fmt.Sprintf("%s is no longer banned.", user.Email))
	}
	return nil
}

var deleteUserCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("deletion requires confirmation, re-run with --yes")
		}

		svc := services.NewUserService(apiClient)
		if err := svc.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		notify.Success(fmt.Sprintf("User %s deleted.", args[0]))
		return nil
	},
}

func init() {
	userCmd.AddCommand(listUsersCmd)
	userCmd.AddCommand(setRoleCmd)
	userCmd.AddCommand(banUserCmd)
	userCmd.AddCommand(unbanUserCmd)
	userCmd.AddCommand(deleteUserCmd)
	rootCmd.AddCommand(userCmd)

	listUsersCmd.Flags().Int("page", 1, "Page number (1-based)")
	listUsersCmd.Flags().String("search", "", "Search by name or email")
	listUsersCmd.Flags().String("query", "", "Restore a bookmarked view (overrides other flags)")

	deleteUserCmd.Flags().Bool("yes", false, "Confirm deletion")
}
