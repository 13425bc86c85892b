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

var actorCmd = &cobra.Command{
	Use:   "actor",
	Short: "Actor management commands",
	Long:  `Manage actors: list, search, create, update, delete`,
}

var listActorsCmd = &cobra.Command{
	Use:   "list",
	Short: "List actors with pagination and search",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		q, err := queryFromFlags(cmd)
		if err != nil {
			return err
		}

		svc := services.NewActorService(apiClient)
		ctrl := console.NewController(func(ctx context.Context, q console.Query) (api.Page[models.Actor], error) {
			return svc.List(ctx, services.ActorListParams{
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
			fmt.Fprintln(out, "No actors found.")
			return nil
		}

		for _, a := range ctrl.Rows() {
			fmt.Fprintf(out, "ID: %d | Name: %s\n", a.ID, a.Name)
		}
		renderPager(out, ctrl.Pager())
		return nil
	},
}

var createActorCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new actor",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		form := forms.ActorForm{}
		form.Name, _ = cmd.Flags().GetString("name")
		form.PhotoURL, _ = cmd.Flags().GetString("photo-url")

		svc := services.NewActorService(apiClient)
		dialog := forms.OpenCreate(form)
		var created *models.Actor
		err := dialog.Submit(cmd.Context(), func(ctx context.Context, f forms.ActorForm) error {
			var err error
			created, err = svc.Create(ctx, f.ToCreateRequest())
			return err
		})
		if err != nil {
			notify.Error(err.Error())
			return err
		}

		notify.Success("Actor created.")
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %d | Name: %s\n", created.ID, created.Name)
		return nil
	},
}

var updateActorCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an actor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid actor ID: %w", err)
		}

		form := forms.ActorForm{}
		form.Name, _ = cmd.Flags().GetString("name")
		form.PhotoURL, _ = cmd.Flags().GetString("photo-url")

		svc := services.NewActorService(apiClient)
		dialog := forms.OpenEdit(form)
		var updated *models.Actor
		err = dialog.Submit(cmd.Context(), func(ctx context.Context, f forms.ActorForm) error {
			var err error
			updated, err = svc.Update(ctx, id, f.ToUpdateRequest())
			return err
		})
		if err != nil {
			notify.Error(err.Error())
			return err
		}

		notify.Success("Actor updated.")
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %d | Name: %s\n", updated.ID, updated.Name)
		return nil
	},
}

var deleteActorCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an actor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid actor ID: %w", err)
		}

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("deletion requires confirmation, re-run with --yes")
		}

		svc := services.NewActorService(apiClient)
		if err := svc.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete actor: %w", err)
		}

		notify.Success(fmt.Sprintf("Actor %d deleted.", id))
		return nil
	},
}

func init() {
	actorCmd.AddCommand(listActorsCmd)
	actorCmd.AddCommand(createActorCmd)
	actorCmd.AddCommand(updateActorCmd)
	actorCmd.AddCommand(deleteActorCmd)
	rootCmd.AddCommand(actorCmd)

	listActorsCmd.Flags().Int("page", 1, "Page number (1-based)")
	listActorsCmd.Flags().String("search", "", "Search by name")
	listActorsCmd.Flags().String("query", "", "Restore a bookmarked view (overrides other flags)")

	createActorCmd.Flags().String("name", "", "Actor name (required)")
	createActorCmd.Flags().String("photo-url", "", "Photo URL")
	createActorCmd.MarkFlagRequired("name")

	updateActorCmd.Flags().String("name", "", "Actor name")
	updateActorCmd.Flags().String("photo-url", "", "Photo URL")

	deleteActorCmd.Flags().Bool("yes", false, "Confirm deletion")
}
