package services_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dramahub/internal/api"
	"dramahub/internal/apitest"
	"dramahub/internal/models"
	"dramahub/internal/services"
	"dramahub/internal/session"
)

func newFixture(t *testing.T) (*apitest.Server, *api.Client, *session.Store) {
	t.Helper()
	server := apitest.New()
	t.Cleanup(server.Close)

	store := session.New(&session.MemoryBackend{})
	client := api.NewClient(server.URL, store, 5*time.Second)
	return server, client, store
}

func loginAdmin(t *testing.T, client *api.Client, store *session.Store) {
	t.Helper()
	_, err := services.NewAuthService(client).LoginAdmin(
		context.Background(), store, apitest.AdminEmail, apitest.AdminPassword)
	require.NoError(t, err)
}

func TestLoginAdmin(t *testing.T) {
	_, client, store := newFixture(t)

	user, err := services.NewAuthService(client).LoginAdmin(
		context.Background(), store, apitest.AdminEmail, apitest.AdminPassword)
	require.NoError(t, err)

	assert.True(t, user.IsAdmin())
	assert.True(t, store.LoggedIn())
	assert.NotEmpty(t, store.Token())
}

func TestLoginNonAdminRejected(t *testing.T) {
	_, client, store := newFixture(t)

	_, err := services.NewAuthService(client).LoginAdmin(
		context.Background(), store, apitest.ViewerEmail, apitest.ViewerPassword)

	assert.ErrorIs(t, err, services.ErrNotAdmin)
	// the API authenticated the account, but the session stays empty
	assert.False(t, store.LoggedIn())
	assert.Empty(t, store.Token())
}

func TestLoginBadPassword(t *testing.T) {
	_, client, store := newFixture(t)

	_, err := services.NewAuthService(client).LoginAdmin(
		context.Background(), store, apitest.AdminEmail, "wrong")

	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.False(t, store.LoggedIn())
}

func TestRequestsWithoutTokenUnauthorized(t *testing.T) {
	_, client, _ := newFixture(t)

	_, err := services.NewDramaService(client).List(context.Background(), services.DramaListParams{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestMe(t *testing.T) {
	_, client, store := newFixture(t)
	loginAdmin(t, client, store)

	user, err := services.NewAuthService(client).Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, apitest.AdminEmail, user.Email)
	assert.True(t, user.IsAdmin())
}

func TestDramaListSearchAndFilters(t *testing.T) {
	_, client, store := newFixture(t)
	loginAdmin(t, client, store)
	svc := services.NewDramaService(client)

	page, err := svc.List(context.Background(), services.DramaListParams{Page: 1, Limit: 10, Search: "crash"})
	require.NoError(t, err)
	assert.True(t, page.Counted)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Crash Landing on Code", page.Items[0].Title)

	page, err = svc.List(context.Background(), services.DramaListParams{Page: 1, Limit: 10, Search: "no such title"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)

	page, err = svc.List(context.Background(), services.DramaListParams{Page: 1, Limit: 10, Status: models.StatusOngoing})
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	page, err = svc.List(context.Background(), services.DramaListParams{Page: 1, Limit: 10, Genre: "romance"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestDramaCRUD(t *testing.T) {
	_, client, store := newFixture(t)
	loginAdmin(t, client, store)
	svc := services.NewDramaService(client)
	ctx := context.Background()

	genres, err := services.NewGenreService(client).List(ctx, services.GenreListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	actors, err := services.NewActorService(client).List(ctx, services.ActorListParams{Page: 1, Limit: 10})
	require.NoError(t, err)

	created, err := svc.Create(ctx, services.CreateDramaRequest{
		Title:    "Reply 1994",
		Synopsis: "College students share a boarding house in the nineties.",
		Year:     2013,
		Rating:   8.9,
		Status:   models.StatusCompleted,
		GenreIDs: []int64{genres.Items[0].ID},
		Cast: []services.CastAssignment{
			{ActorID: actors.Items[0].ID, Role: models.CastRoleMain},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Genres, 1)
	require.Len(t, created.Cast, 1)
	assert.Equal(t, actors.Items[0].Name, created.Cast[0].Name)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reply 1994", fetched.Title)

	title := "Reply 1997"
	updated, err := svc.Update(ctx, created.ID, services.UpdateDramaRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Reply 1997", updated.Title)
	// untouched fields survive a partial update
	assert.Equal(t, 2013, updated.Year)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestDramaCreateUnknownGenre(t *testing.T) {
	_, client, store := newFixture(t)
	loginAdmin(t, client, store)

	_, err := services.NewDramaService(client).Create(context.Background(), services.CreateDramaRequest{
		Title:    "Ghost Genre",
		Synopsis: "This drama references a genre nobody created.",
		Year:     2024,
		Status:   models.StatusOngoing,
		GenreIDs: []int64{99999},
	})

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestDramaListPagination(t *testing.T) {
	_, client, store := newFixture(t)
	loginAdmin(t, client, store)
	svc := services.NewDramaService(client)
	ctx := context.Background()

	for i := 0; i < 11; i++ {
		_, err := svc.Create(ctx, services.CreateDramaRequest{
			Title:    fmt.Sprintf("Filler Drama %02d", i),
			Synopsis: "Exists purely to fill a second page of results.",
			Year:     2020,
			Status:   models.StatusOngoing,
		})
		require.NoError(t, err)
	}

	// 1 seeded + 11 created = 12
	page, err := svc.List(ctx, services.DramaListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 12, page.Total)
	assert.True(t, page.Counted)

	page, err = svc.List(ctx, services.DramaListParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 12, page.Total)
}

func TestSeasonsAndEpisodes(t *testing.T) {
	_, client, store := newFixture(t)
	loginAdmin(t, client, store)
	ctx := context.Background()

	dramas, err := services.NewDramaService(client).List(ctx, services.DramaListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, dramas.Items)
	dramaID := dramas.Items[0].ID

	seasons := services.NewSeasonService(client)
	page, err := seasons.ListByDrama(ctx, dramaID)
	require.NoError(t, err)
	// bare-array endpoint: no server-side total
	assert.False(t, page.Counted)
	require.Len(t, page.Items, 1)

	release := "2024-06-01"
	created, err := seasons.Create(ctx, services.CreateSeasonRequest{
		DramaID:      dramaID,
		SeasonNumber: 2,
		Title:        "Season 2",
		ReleaseDate:  &release,
	})
	require.NoError(t, err)
	require.NotNil(t, created.ReleaseDate)
	assert.Equal(t, release, *created.ReleaseDate)

	episodes := services.NewEpisodeService(client)
	episode, err := episodes.Create(ctx, services.CreateEpisodeRequest{
		SeasonID:      created.ID,
		EpisodeNumber: 1,
		Title:         "The Return",
		VideoURL:      "https://cdn.dramahub.test/videos/s02e01.mp4",
		Duration:      5400,
	})
	require.NoError(t, err)
	assert.Equal(t, 5400, episode.Duration)

	listed, err := episodes.ListBySeason(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, listed.Counted)
	require.Len(t, listed.Items, 1)

	newDuration := 3000
	updated, err := episodes.Update(ctx, episode.ID, services.UpdateEpisodeRequest{Duration: &newDuration})
	require.NoError(t, err)
	assert.Equal(t, 3000, updated.Duration)

	require.NoError(t, episodes.Delete(ctx, episode.ID))
	require.NoError(t, seasons.Delete(ctx, created.ID))
}

func TestActorSearchUsesSearchParam(t *testing.T) {
	_, client, store := newFixture(t)
	loginAdmin(t, client, store)

	page, err := services.NewActorService(client).List(context.Background(), services.ActorListParams{
		Page: 1, Limit: 10, Search: "suzy",
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Bae Suzy", page.Items[0].Name)
}

func TestGenreSlugConflict(t *testing.T) {
	_, client, store := newFixture(t)
	loginAdmin(t, client, store)
	svc := services.NewGenreService(client)

	_, err := svc.Create(context.Background(), services.CreateGenreRequest{Name: "Romance Again", Slug: "romance"})

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Contains(t, apiErr.Message, "slug")
}

func TestUserModeration(t *testing.T) {
	_, client, store := newFixture(t)
	loginAdmin(t, client, store)
	svc := services.NewUserService(client)
	ctx := context.Background()

	page, err := svc.List(ctx, services.UserListParams{Page: 1, Limit: 10, Search: "viewer"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	viewer := page.Items[0]
	assert.Equal(t, models.RoleUser, viewer.Role)

	role := models.RoleAdmin
	promoted, err := svc.Moderate(ctx, viewer.ID, services.ModerateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	banned := true
	updated, err := svc.Moderate(ctx, viewer.ID, services.ModerateUserRequest{Banned: &banned})
	require.NoError(t, err)
	assert.True(t, updated.Banned)
	// the role set in the previous call is untouched
	assert.Equal(t, models.RoleAdmin, updated.Role)

	require.NoError(t, svc.Delete(ctx, viewer.ID))

	page, err = svc.List(ctx, services.UserListParams{Page: 1, Limit: 10, Search: "viewer"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestDashboard(t *testing.T) {
	_, client, store := newFixture(t)
	loginAdmin(t, client, store)

	stats, err := services.NewAnalyticsService(client).Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalDramas)
	assert.Equal(t, int64(1), stats.TotalEpisodes)
	assert.Equal(t, int64(120000), stats.TotalViews)
}

func TestAnalyticsForbiddenForNonAdmin(t *testing.T) {
	_, client, store := newFixture(t)

	// log in as the viewer by hand; LoginAdmin would refuse the session
	var resp struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	err := client.Do(context.Background(), http.MethodPost, "/auth/login", nil,
		map[string]string{"email": apitest.ViewerEmail, "password": apitest.ViewerPassword}, &resp)
	require.NoError(t, err)
	require.NoError(t, store.Login(resp.User, resp.Token))

	_, err = services.NewAnalyticsService(client).Dashboard(context.Background())
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.False(t, errors.Is(err, api.ErrUnauthorized))
}
