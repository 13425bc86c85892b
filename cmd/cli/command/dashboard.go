package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"dramahub/internal/services"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show catalog-wide statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		svc := services.NewAnalyticsService(apiClient)
		stats, err := svc.Dashboard(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Users:    %d\n", stats.TotalUsers)
		fmt.Fprintf(out, "Dramas:   %d\n", stats.TotalDramas)
		fmt.Fprintf(out, "Episodes: %d\n", stats.TotalEpisodes)
		fmt.Fprintf(out, "Views:    %d\n", stats.TotalViews)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
