package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dramahub/internal/api"
	"dramahub/internal/console"
	"dramahub/internal/forms"
	"dramahub/internal/models"
	"dramahub/internal/services"
)

var genreCmd = &cobra.Command{
	Use:   "genre",
	Short: "Genre management commands",
	Long:  `Manage genres: list, search, create, update, delete`,
}

var listGenresCmd = &cobra.Command{
	Use:   "list",
	Short: "List genres with pagination and search",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		q, err := queryFromFlags(cmd)
		if err != nil {
			return err
		}

		svc := services.NewGenreService(apiClient)
		ctrl := console.NewController(func(ctx context.Context, q console.Query) (api.Page[models.Genre], error) {
			return svc.List(ctx, services.GenreListParams{
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
			fmt.Fprintln(out, "No genres found.")
			return nil
		}

		for _, g := range ctrl.Rows() {
			fmt.Fprintf(out, "ID: %d | Name: %s | Slug: %s\n", g.ID, g.Name, g.Slug)
		}
		renderPager(out, ctrl.Pager())
		return nil
	},
}

var createGenreCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new genre",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		form := forms.GenreForm{}
		form.Name, _ = cmd.Flags().GetString("name")
		form.Slug, _ = cmd.Flags().GetString("slug")

		svc := services.NewGenreService(apiClient)
		dialog := forms.OpenCreate(form)
		var created *models.Genre
		err := dialog.Submit(cmd.Context(), func(ctx context.Context, f forms.GenreForm) error {
			var err error
			created, err = svc.Create(ctx, f.ToCreateRequest())
			return err
		})
		if err != nil {
			notify.Error(err.Error())
			return err
		}

		notify.Success("Genre created.")
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %d | Name: %s | Slug: %s\n", created.ID, created.Name, created.Slug)
		return nil
	},
}

var updateGenreCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a genre",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid genre ID: %w", err)
		}

		form := forms.GenreForm{}
		form.Name, _ = cmd.Flags().GetString("name")
		form.Slug, _ = cmd.Flags().GetString("slug")

		svc := services.NewGenreService(apiClient)
		dialog := forms.OpenEdit(form)
		var updated *models.Genre
		err = dialog.Submit(cmd.Context(), func(ctx context.Context, f forms.GenreForm) error {
			var err error
			updated, err = svc.Update(ctx, id, f.ToUpdateRequest())
			return err
		})
		if err != nil {
			notify.Error(err.Error())
			return err
		}

		notify.Success("Genre updated.")
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %d | Name: %s | Slug: %s\n", updated.ID, updated.Name, updated.Slug)
		return nil
	},
}

var deleteGenreCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a genre",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid genre ID: %w", err)
		}

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("deletion requires confirmation, re-run with --yes")
		}

		svc := services.NewGenreService(apiClient)
		if err := svc.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete genre: %w", err)
		}

		notify.Success(fmt.Sprintf("Genre %d deleted.", id))
		return nil
	},
}

func init() {
	genreCmd.AddCommand(listGenresCmd)
	genreCmd.AddCommand(createGenreCmd)
	genreCmd.AddCommand(updateGenreCmd)
	genreCmd.AddCommand(deleteGenreCmd)
	rootCmd.AddCommand(genreCmd)

	listGenresCmd.Flags().Int("page", 1, "Page number (1-based)")
	listGenresCmd.Flags().String("search", "", "Search by name")
	listGenresCmd.Flags().String("query", "", "Restore a bookmarked view (overrides other flags)")

	createGenreCmd.Flags().String("name", "", "Genre name (required)")
	createGenreCmd.Flags().String("slug", "", "Genre slug (required)")
	createGenreCmd.MarkFlagRequired("name")
	createGenreCmd.MarkFlagRequired("slug")

	updateGenreCmd.Flags().String("name", "", "Genre name")
	updateGenreCmd.Flags().String("slug", "", "Genre slug")

	deleteGenreCmd.Flags().Bool("yes", false, "Confirm deletion")
}
