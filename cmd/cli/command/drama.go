package command

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dramahub/internal/api"
	"dramahub/internal/console"
	"dramahub/internal/forms"
	"dramahub/internal/models"
	"dramahub/internal/services"
)

var dramaCmd = &cobra.Command{
	Use:   "drama",
	Short: "Drama management commands",
	Long:  `Manage dramas: list, view, create, update, delete, and edit cast assignments`,
}

// dramaFetch adapts the drama service to the list controller. The console
// query calls the text filter "search"; the service renames it to the
// server's "q".
func dramaFetch(svc *services.DramaService) console.FetchFunc[models.Drama] {
	return func(ctx context.Context, q console.Query) (api.Page[models.Drama], error) {
		return svc.List(ctx, services.DramaListParams{
			Page:   q.Page,
			Limit:  console.DefaultPageSize,
			Search: q.Search,
			Status: q.Filter("status"),
			Genre:  q.Filter("genre"),
			Sort:   q.Filter("sort"),
		})
	}
}

var listDramasCmd = &cobra.Command{
	Use:   "list",
	Short: "List dramas with pagination, search and filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		q, err := queryFromFlags(cmd)
		if err != nil {
			return err
		}

		svc := services.NewDramaService(apiClient)
		ctrl := console.NewController(dramaFetch(svc), notify)
		ctrl.Restore(cmd.Context(), q)

		out := cmd.OutOrStdout()
		switch ctrl.State() {
		case console.StateErrored:
			// notification already emitted by the controller
			return nil
		case console.StateEmpty:
			fmt.Fprintln(out, "No dramas found.")
			return nil
		}

		for _, d := range ctrl.Rows() {
			fmt.Fprintf(out, "ID: %d\n", d.ID)
			fmt.Fprintf(out, "Title: %s\n", d.Title)
			fmt.Fprintf(out, "Year: %d | Rating: %.1f | Status: %s | Views: %d\n", d.Year, d.Rating, d.Status, d.ViewCount)
			if len(d.Genres) > 0 {
				names := make([]string, 0, len(d.Genres))
				for _, g := range d.Genres {
					names = append(names, g.Name)
				}
				fmt.Fprintf(out, "Genres: %s\n", strings.Join(names, ", "))
			}
			divider(out)
		}
		renderPager(out, ctrl.Pager())
		renderQueryLine(out, ctrl.Query())
		return nil
	},
}

var getDramaCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get drama by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid drama ID: %w", err)
		}

		svc := services.NewDramaService(apiClient)
		drama, err := svc.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get drama: %w", err)
		}

		printDrama(cmd, drama)
		return nil
	},
}

var createDramaCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new drama",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		form := forms.NewDramaForm()
		if err := dramaFormFromFlags(cmd, &form); err != nil {
			return err
		}

		svc := services.NewDramaService(apiClient)
		dialog := forms.OpenCreate(form)
		var created *models.Drama
		err := dialog.Submit(cmd.Context(), func(ctx context.Context, f forms.DramaForm) error {
			var err error
			created, err = svc.Create(ctx, f.ToCreateRequest())
			return err
		})
		if err != nil {
			notify.Error(err.Error())
			return err
		}

		notify.Success("Drama created.")
		printDrama(cmd, created)
		return nil
	},
}

var updateDramaCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an existing drama",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid drama ID: %w", err)
		}

		svc := services.NewDramaService(apiClient)

		// edit mode: pre-populate from the current entity, then overlay the
		// flags the user actually set
		current, err := svc.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to load drama: %w", err)
		}
		form := forms.DramaFormFrom(current)
		if err := dramaFormFromFlags(cmd, &form); err != nil {
			return err
		}

		dialog := forms.OpenEdit(form)
		var updated *models.Drama
		err = dialog.Submit(cmd.Context(), func(ctx context.Context, f forms.DramaForm) error {
			var err error
			updated, err = svc.Update(ctx, id, f.ToUpdateRequest())
			return err
		})
		if err != nil {
			notify.Error(err.Error())
			return err
		}

		notify.Success("Drama updated.")
		printDrama(cmd, updated)
		return nil
	},
}

var deleteDramaCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a drama",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid drama ID: %w", err)
		}

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("deletion requires confirmation, re-run with --yes")
		}

		svc := services.NewDramaService(apiClient)
		if err := svc.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete drama: %w", err)
		}

		notify.Success(fmt.Sprintf("Drama %d deleted.", id))
		return nil
	},
}

func printDrama(cmd *cobra.Command, d *models.Drama) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID: %d\n", d.ID)
	fmt.Fprintf(out, "Title: %s\n", d.Title)
	fmt.Fprintf(out, "Synopsis: %s\n", d.Synopsis)
	if d.PosterURL != "" {
		fmt.Fprintf(out, "Poster: %s\n", d.PosterURL)
	}
	fmt.Fprintf(out, "Year: %d\n", d.Year)
	fmt.Fprintf(out, "Rating: %.1f\n", d.Rating)
	fmt.Fprintf(out, "Seasons: %d\n", d.TotalSeasons)
	fmt.Fprintf(out, "Status: %s\n", d.Status)
	fmt.Fprintf(out, "Views: %d\n", d.ViewCount)
	for _, g := range d.Genres {
		fmt.Fprintf(out, "Genre: %s (%s)\n", g.Name, g.Slug)
	}
	for _, m := range d.Cast {
		fmt.Fprintf(out, "Cast: %s (#%d, %s)\n", m.Name, m.ActorID, m.Role)
	}
}

// queryFromFlags builds the list-view query from command flags, or restores a
// bookmarked view from --query.
func queryFromFlags(cmd *cobra.Command) (console.Query, error) {
	if raw, _ := cmd.Flags().GetString("query"); raw != "" {
		values, err := url.ParseQuery(raw)
		if err != nil {
			return console.Query{}, fmt.Errorf("invalid --query string: %w", err)
		}
		return console.ParseQuery(values), nil
	}

	q := console.NewQuery()
	q.Page, _ = cmd.Flags().GetInt("page")
	if q.Page < 1 {
		q.Page = 1
	}
	q.Search, _ = cmd.Flags().GetString("search")
	for _, key := range []string{"status", "genre", "sort"} {
		if cmd.Flags().Lookup(key) == nil {
			continue
		}
		if v, _ := cmd.Flags().GetString(key); v != "" {
			q.Filters.Set(key, v)
		}
	}
	return q, nil
}

// dramaFormFromFlags overlays only the flags that were set, so edit mode
// keeps pre-populated values.
func dramaFormFromFlags(cmd *cobra.Command, form *forms.DramaForm) error {
	flags := cmd.Flags()
	if flags.Changed("title") {
		form.Title, _ = flags.GetString("title")
	}
	if flags.Changed("synopsis") {
		form.Synopsis, _ = flags.GetString("synopsis")
	}
	if flags.Changed("poster-url") {
		form.PosterURL, _ = flags.GetString("poster-url")
	}
	if flags.Changed("year") {
		form.Year, _ = flags.GetInt("year")
	}
	if flags.Changed("rating") {
		form.Rating, _ = flags.GetFloat64("rating")
	}
	if flags.Changed("seasons") {
		form.TotalSeasons, _ = flags.GetInt("seasons")
	}
	if flags.Changed("status") {
		form.Status, _ = flags.GetString("status")
	}
	if flags.Changed("genre-ids") {
		ids, _ := flags.GetInt64Slice("genre-ids")
		form.GenreIDs = ids
	}
	if flags.Changed("cast") {
		spec, _ := flags.GetString("cast")
		cast, err := parseCastSpec(spec)
		if err != nil {
			return err
		}
		form.Cast = cast
	}
	return nil
}

// parseCastSpec parses "12:main,34:support" into cast entries.
func parseCastSpec(spec string) ([]forms.CastEntry, error) {
	if spec == "" {
		return nil, nil
	}
	entries := make([]forms.CastEntry, 0)
	for _, part := range strings.Split(spec, ",") {
		actorRaw, role, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("invalid cast entry %q: expected actor-id:role", part)
		}
		actorID, err := strconv.ParseInt(actorRaw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid actor ID in cast entry %q: %w", part, err)
		}
		entries = append(entries, forms.CastEntry{ActorID: actorID, Role: role})
	}
	return entries, nil
}

func init() {
	dramaCmd.AddCommand(listDramasCmd)
	dramaCmd.AddCommand(getDramaCmd)
	dramaCmd.AddCommand(createDramaCmd)
	dramaCmd.AddCommand(updateDramaCmd)
	dramaCmd.AddCommand(deleteDramaCmd)
	dramaCmd.AddCommand(castDramaCmd)
	rootCmd.AddCommand(dramaCmd)

	// List flags
	listDramasCmd.Flags().Int("page", 1, "Page number (1-based)")
	listDramasCmd.Flags().String("search", "", "Search by title")
	listDramasCmd.Flags().String("status", "", "Filter by status (ongoing/completed)")
	listDramasCmd.Flags().String("genre", "", "Filter by genre slug")
	listDramasCmd.Flags().String("sort", "", "Sort order (title/year/views)")
	listDramasCmd.Flags().String("query", "", "Restore a bookmarked view (overrides other flags)")

	// Create flags
	createDramaCmd.Flags().String("title", "", "Drama title (required)")
	createDramaCmd.Flags().String("synopsis", "", "Drama synopsis (required)")
	createDramaCmd.Flags().String("poster-url", "", "Poster image URL")
	createDramaCmd.Flags().Int("year", 0, "Release year")
	createDramaCmd.Flags().Float64("rating", 0, "Rating (0-10)")
	createDramaCmd.Flags().Int("seasons", 0, "Total seasons")
	createDramaCmd.Flags().String("status", models.StatusOngoing, "Status (ongoing/completed)")
	createDramaCmd.Flags().Int64Slice("genre-ids", nil, "Genre IDs")
	createDramaCmd.Flags().String("cast", "", "Cast assignments, e.g. 12:main,34:support")

	// Update flags
	updateDramaCmd.Flags().String("title", "", "Drama title")
	updateDramaCmd.Flags().String("synopsis", "", "Drama synopsis")
	updateDramaCmd.Flags().String("poster-url", "", "Poster image URL")
	updateDramaCmd.Flags().Int("year", 0, "Release year")
	updateDramaCmd.Flags().Float64("rating", 0, "Rating (0-10)")
	updateDramaCmd.Flags().Int("seasons", 0, "Total seasons")
	updateDramaCmd.Flags().String("status", "", "Status (ongoing/completed)")
	updateDramaCmd.Flags().Int64Slice("genre-ids", nil, "Genre IDs")
	updateDramaCmd.Flags().String("cast", "", "Cast assignments, e.g. 12:main,34:support")

	// Delete flags
	deleteDramaCmd.Flags().Bool("yes", false, "Confirm deletion")
}
