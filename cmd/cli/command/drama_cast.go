package command

// drama_cast.go is the interactive cast editor: a typeahead actor search
// decoupled from the selected-cast list, which stays client-side until saved
// with the drama.

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dramahub/internal/api"
	"dramahub/internal/console"
	"dramahub/internal/models"
	"dramahub/internal/services"
)

var castDramaCmd = &cobra.Command{
	Use:   "cast [drama-id]",
	Short: "Edit the cast of a drama interactively",
	Long: `Interactive cast editor. Available commands:
  search <text>       search actors by name
  add <actor-id> <main|support>   add an actor to the cast
  remove <actor-id>   remove an actor from the cast
  list                show the current selection
  save                send the cast with the drama and exit
  quit                exit without saving`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid drama ID: %w", err)
		}

		dramas := services.NewDramaService(apiClient)
		actors := services.NewActorService(apiClient)

		drama, err := dramas.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to load drama: %w", err)
		}

		picker := console.NewCastPicker(func(ctx context.Context, search string, page int) (api.Page[models.Actor], error) {
			return actors.List(ctx, services.ActorListParams{
				Page:   page,
				Limit:  console.DefaultPageSize,
				Search: search,
			})
		}, notify)
		picker.Load(drama.Cast)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Editing cast of %q (%d selected). Type 'save' to apply.\n", drama.Title, picker.Len())

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			verb, rest, _ := strings.Cut(line, " ")

			switch verb {
			case "search":
				page, err := picker.Search(cmd.Context(), rest, 1)
				if errors.Is(err, console.ErrSearchSuperseded) {
					continue
				}
				if err != nil {
					notify.Error(err.Error())
					continue
				}
				if len(page.Items) == 0 {
					fmt.Fprintln(out, "No actors found.")
					continue
				}
				for _, a := range page.Items {
					fmt.Fprintf(out, "#%d %s\n", a.ID, a.Name)
				}

			case "add":
				actorRaw, role, ok := strings.Cut(rest, " ")
				if !ok {
					notify.Error("usage: add <actor-id> <main|support>")
					continue
				}
				actorID, err := strconv.ParseInt(actorRaw, 10, 64)
				if err != nil {
					notify.Error("invalid actor ID")
					continue
				}
				// resolve the name through the same search endpoint
				actor, err := findActor(cmd.Context(), actors, actorID)
				if err != nil {
					notify.Error(err.Error())
					continue
				}
				if picker.Add(*actor, strings.TrimSpace(role)) {
					notify.Success(fmt.Sprintf("%s added as %s", actor.Name, strings.TrimSpace(role)))
				}

			case "remove":
				actorID, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
				if err != nil {
					notify.Error("invalid actor ID")
					continue
				}
				if picker.Remove(actorID) {
					notify.Success("Removed from cast.")
				} else {
					notify.Error("Not in the cast.")
				}

			case "list":
				if picker.Len() == 0 {
					fmt.Fprintln(out, "Cast is empty.")
					continue
				}
				for _, m := range picker.Selected() {
					fmt.Fprintf(out, "#%d %s (%s)\n", m.ActorID, m.Name, m.Role)
				}

			case "save":
				cast := make([]services.CastAssignment, 0, picker.Len())
				for _, m := range picker.Selected() {
					cast = append(cast, services.CastAssignment{ActorID: m.ActorID, Role: m.Role})
				}
				if _, err := dramas.Update(cmd.Context(), id, services.UpdateDramaRequest{Cast: cast}); err != nil {
					notify.Error(err.Error())
					continue
				}
				notify.Success("Cast saved.")
				return nil

			case "quit", "exit":
				fmt.Fprintln(out, "Discarded cast changes.")
				return nil

			default:
				notify.Error(fmt.Sprintf("unknown command %q", verb))
			}
		}
	},
}

// findActor pages through the actor list until the ID shows up. Fine for an
// admin tool; there is no GET /actors/:id on the API.
func findActor(ctx context.Context, svc *services.ActorService, id int64) (*models.Actor, error) {
	for page := 1; ; page++ {
		result, err := svc.List(ctx, services.ActorListParams{Page: page, Limit: console.DefaultPageSize})
		if err != nil {
			return nil, err
		}
		for _, a := range result.Items {
			if a.ID == id {
				return &a, nil
			}
		}
		pager := console.Pager{
			Page:     page,
			PageSize: console.DefaultPageSize,
			Total:    result.Total,
			Counted:  result.Counted,
			Returned: len(result.Items),
		}
		if !pager.HasNext() {
			return nil, fmt.Errorf("actor %d not found", id)
		}
	}
}
