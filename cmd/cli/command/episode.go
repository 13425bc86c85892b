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

var episodeCmd = &cobra.Command{
	Use:   "episode",
	Short: "Episode management commands",
	Long:  `Manage the episodes of a season: list, create, update, delete. Durations are entered and shown in minutes.`,
}

var listEpisodesCmd = &cobra.Command{
	Use:   "list [season-id]",
	Short: "List all episodes of a season",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		seasonID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid season ID: %w", err)
		}

		svc := services.NewEpisodeService(apiClient)
		page, err := svc.ListBySeason(cmd.Context(), seasonID)
		if err != nil {
			return fmt.Errorf("failed to list episodes: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(page.Items) == 0 {
			fmt.Fprintln(out, "No episodes found.")
			return nil
		}
		for _, e := range page.Items {
			printEpisode(out, &e)
		}
		return nil
	},
}

var createEpisodeCmd = &cobra.Command{
	Use:   "create [season-id]",
	Short: "Create an episode under a season",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		seasonID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid season ID: %w", err)
		}

		form := forms.NewEpisodeForm(seasonID)
		form.EpisodeNumber, _ = cmd.Flags().GetInt("number")
		form.Title, _ = cmd.Flags().GetString("title")
		form.VideoURL, _ = cmd.Flags().GetString("video-url")
		form.DurationMinutes, _ = cmd.Flags().GetInt("minutes")
		form.ThumbnailURL, _ = cmd.Flags().GetString("thumbnail-url")

		svc := services.NewEpisodeService(apiClient)
		dialog := forms.OpenCreate(form)
		var created *models.Episode
		err = dialog.Submit(cmd.Context(), func(ctx context.Context, f forms.EpisodeForm) error {
			var err error
			created, err = svc.Create(ctx, f.ToCreateRequest())
			return err
		})
		if err != nil {
			notify.Error(err.Error())
			return err
		}

		notify.Success("Episode created.")
		printEpisode(cmd.OutOrStdout(), created)
		return nil
	},
}

var updateEpisodeCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an episode",
	Long:  `Update an episode. The --season flag locates the current record so unset flags keep their stored values.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid episode ID: %w", err)
		}
		seasonID, _ := cmd.Flags().GetInt64("season")

		svc := services.NewEpisodeService(apiClient)
		current, err := findEpisode(cmd.Context(), svc, seasonID, id)
		if err != nil {
			return err
		}

		form := forms.EpisodeFormFrom(current)
		flags := cmd.Flags()
		if flags.Changed("number") {
			form.EpisodeNumber, _ = flags.GetInt("number")
		}
		if flags.Changed("title") {
			form.Title, _ = flags.GetString("title")
		}
		if flags.Changed("video-url") {
			form.VideoURL, _ = flags.GetString("video-url")
		}
		if flags.Changed("minutes") {
			form.DurationMinutes, _ = flags.GetInt("minutes")
		}
		if flags.Changed("thumbnail-url") {
			form.ThumbnailURL, _ = flags.GetString("thumbnail-url")
		}

		dialog := forms.OpenEdit(form)
		var updated *models.Episode
		err = dialog.Submit(cmd.Context(), func(ctx context.Context, f forms.EpisodeForm) error {
			var err error
			updated, err = svc.Update(ctx, id, f.ToUpdateRequest())
			return err
		})
		if err != nil {
			notify.Error(err.Error())
			return err
		}

		notify.Success("Episode updated.")
		printEpisode(cmd.OutOrStdout(), updated)
		return nil
	},
}

var deleteEpisodeCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an episode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid episode ID: %w", err)
		}

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("deletion requires confirmation, re-run with --yes")
		}

		svc := services.NewEpisodeService(apiClient)
		if err := svc.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete episode: %w", err)
		}

		notify.Success(fmt.Sprintf("Episode %d deleted.", id))
		return nil
	},
}

func findEpisode(ctx context.Context, svc *services.EpisodeService, seasonID, id int64) (*models.Episode, error) {
	page, err := svc.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load episodes of season %d: %w", seasonID, err)
	}
	for i := range page.Items {
		if page.Items[i].ID == id {
			return &page.Items[i], nil
		}
	}
	return nil, fmt.Errorf("episode %d not found in season %d", id, seasonID)
}

func printEpisode(out io.Writer, e *models.Episode) {
	fmt.Fprintf(out, "ID: %d | Ep %d | Title: %s | Duration: %d min | Views: %d\n",
		e.ID, e.EpisodeNumber, e.Title, forms.MinutesFromSeconds(e.Duration), e.ViewCount)
}

func init() {
	episodeCmd.AddCommand(listEpisodesCmd)
	episodeCmd.AddCommand(createEpisodeCmd)
	episodeCmd.AddCommand(updateEpisodeCmd)
	episodeCmd.AddCommand(deleteEpisodeCmd)
	rootCmd.AddCommand(episodeCmd)

	createEpisodeCmd.Flags().Int("number", 0, "Episode number (required)")
	createEpisodeCmd.Flags().String("title", "", "Episode title (required)")
	createEpisodeCmd.Flags().String("video-url", "", "Video URL (required)")
	createEpisodeCmd.Flags().Int("minutes", 0, "Duration in minutes (required)")
	createEpisodeCmd.Flags().String("thumbnail-url", "", "Thumbnail URL")
	createEpisodeCmd.MarkFlagRequired("number")
	createEpisodeCmd.MarkFlagRequired("title")
	createEpisodeCmd.MarkFlagRequired("video-url")
	createEpisodeCmd.MarkFlagRequired("minutes")

	updateEpisodeCmd.Flags().Int64("season", 0, "Season the episode belongs to (required)")
	updateEpisodeCmd.Flags().Int("number", 0, "Episode number")
	updateEpisodeCmd.Flags().String("title", "", "Episode title")
	updateEpisodeCmd.Flags().String("video-url", "", "Video URL")
	updateEpisodeCmd.Flags().Int("minutes", 0, "Duration in minutes")
	updateEpisodeCmd.Flags().String("thumbnail-url", "", "Thumbnail URL")
	updateEpisodeCmd.MarkFlagRequired("season")

	deleteEpisodeCmd.Flags().Bool("yes", false, "Confirm deletion")
}
