package command

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"dramahub/internal/forms"
	"dramahub/internal/models"
	"dramahub/internal/services"
)

var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Season management commands",
	Long:  `Manage the seasons of a drama: list, create, update, delete`,
}

var listSeasonsCmd = &cobra.Command{
	Use:   "list [drama-id]",
	Short: "List all seasons of a drama",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		dramaID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid drama ID: %w", err)
		}

		svc := services.NewSeasonService(apiClient)
		page, err := svc.ListByDrama(cmd.Context(), dramaID)
		if err != nil {
			return fmt.Errorf("failed to list seasons: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(page.Items) == 0 {
			fmt.Fprintln(out, "No seasons found.")
			return nil
		}
		for _, s := range page.Items {
			printSeason(out, &s)
		}
		return nil
	},
}

var createSeasonCmd = &cobra.Command{
	Use:   "create [drama-id]",
	Short: "Create a season under a drama",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		dramaID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid drama ID: %w", err)
		}

		form := forms.NewSeasonForm(dramaID)
		form.SeasonNumber, _ = cmd.Flags().GetInt("number")
		form.Title, _ = cmd.Flags().GetString("title")
		form.Synopsis, _ = cmd.Flags().GetString("synopsis")
		form.PosterURL, _ = cmd.Flags().GetString("poster-url")
		form.ReleaseDate, _ = cmd.Flags().GetString("release-date")

		svc := services.NewSeasonService(apiClient)
		dialog := forms.OpenCreate(form)
		var created *models.Season
		err = dialog.Submit(cmd.Context(), func(ctx context.Context, f forms.SeasonForm) error {
			var err error
			created, err = svc.Create(ctx, f.ToCreateRequest())
			return err
		})
		if err != nil {
			notify.Error(err.Error())
			return err
		}

		notify.Success("Season created.")
		printSeason(cmd.OutOrStdout(), created)
		return nil
	},
}

var updateSeasonCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a season",
	Long:  `Update a season. The --drama flag locates the current record so unset flags keep their stored values.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid season ID: %w", err)
		}
		dramaID, _ := cmd.Flags().GetInt64("drama")

		svc := services.NewSeasonService(apiClient)
		current, err := findSeason(cmd.Context(), svc, dramaID, id)
		if err != nil {
			return err
		}

		form := forms.SeasonFormFrom(current)
		flags := cmd.Flags()
		if flags.Changed("number") {
			form.SeasonNumber, _ = flags.GetInt("number")
		}
		if flags.Changed("title") {
			form.Title, _ = flags.GetString("title")
		}
		if flags.Changed("synopsis") {
			form.Synopsis, _ = flags.GetString("synopsis")
		}
		if flags.Changed("poster-url") {
			form.PosterURL, _ = flags.GetString("poster-url")
		}
		if flags.Changed("release-date") {
			form.ReleaseDate, _ = flags.GetString("release-date")
		}

		dialog := forms.OpenEdit(form)
		var updated *models.Season
		err = dialog.Submit(cmd.Context(), func(ctx context.Context, f forms.SeasonForm) error {
			var err error
			updated, err = svc.Update(ctx, id, f.ToUpdateRequest())
			return err
		})
		if err != nil {
			notify.Error(err.Error())
			return err
		}

		notify.Success("Season updated.")
		printSeason(cmd.OutOrStdout(), updated)
		return nil
	},
}

var deleteSeasonCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a season and its episodes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid season ID: %w", err)
		}

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("deletion requires confirmation, re-run with --yes")
		}

		svc := services.NewSeasonService(apiClient)
		if err := svc.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete season: %w", err)
		}

		notify.Success(fmt.Sprintf("Season %d deleted.", id))
		return nil
	},
}

// findSeason locates one season by ID inside its drama; seasons have no
// standalone GET endpoint.
func findSeason(ctx context.Context, svc *services.SeasonService, dramaID, id int64) (*models.Season, error) {
	page, err := svc.ListByDrama(ctx, dramaID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seasons of drama %d: %w", dramaID, err)
	}
	for i := range page.Items {
		if page.Items[i].ID == id {
			return &page.Items[i], nil
		}
	}
	return nil, fmt.Errorf("season %d not found in drama %d", id, dramaID)
}

func printSeason(out io.Writer, s *models.Season) {
	fmt.Fprintf(out, "ID: %d | Season %d | Title: %s", s.ID, s.SeasonNumber, s.Title)
	if s.ReleaseDate != nil {
		fmt.Fprintf(out, " | Released: %s", *s.ReleaseDate)
	}
	fmt.Fprintln(out)
}

func init() {
	seasonCmd.AddCommand(listSeasonsCmd)
	seasonCmd.AddCommand(createSeasonCmd)
	seasonCmd.AddCommand(updateSeasonCmd)
	seasonCmd.AddCommand(deleteSeasonCmd)
	rootCmd.AddCommand(seasonCmd)

	createSeasonCmd.Flags().Int("number", 0, "Season number (required)")
	createSeasonCmd.Flags().String("title", "", "Season title (required)")
	createSeasonCmd.Flags().String("synopsis", "", "Season synopsis")
	createSeasonCmd.Flags().String("poster-url", "", "Poster URL")
	createSeasonCmd.Flags().String("release-date", "", "Release date (YYYY-MM-DD)")
	createSeasonCmd.MarkFlagRequired("number")
	createSeasonCmd.MarkFlagRequired("title")

	updateSeasonCmd.Flags().Int64("drama", 0, "Drama the season belongs to (required)")
	updateSeasonCmd.Flags().Int("number", 0, "Season number")
	updateSeasonCmd.Flags().String("title", "", "Season title")
	updateSeasonCmd.Flags().String("synopsis", "", "Season synopsis")
	updateSeasonCmd.Flags().String("poster-url", "", "Poster URL")
	updateSeasonCmd.Flags().String("release-date", "", "Release date (YYYY-MM-DD)")
	updateSeasonCmd.MarkFlagRequired("drama")

	deleteSeasonCmd.Flags().Bool("yes", false, "Confirm deletion")
}
