package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dramahub/internal/models"
)

func validDramaForm() DramaForm {
	return DramaForm{
		Title:    "Crash Landing on You",
		Synopsis: "A paragliding mishap lands an heiress in the wrong country.",
		Year:     2019,
		Rating:   8.7,
		Status:   models.StatusCompleted,
	}
}

func TestDramaFormValid(t *testing.T) {
	assert.NoError(t, Check(validDramaForm()))
}

func TestDramaFormFieldErrors(t *testing.T) {
	form := DramaForm{
		Synopsis: "too short",
		Year:     1800,
		Rating:   11,
		Status:   "cancelled",
	}

	err := Check(form)
	require.Error(t, err)

	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "is required", fields["Title"])
	assert.Equal(t, "must be at least 10 characters", fields["Synopsis"])
	assert.Equal(t, "must be at least 1950", fields["Year"])
	assert.Equal(t, "must be at most 10", fields["Rating"])
	assert.Equal(t, "must be one of: ongoing completed", fields["Status"])
}

func TestDramaFormBadPosterURL(t *testing.T) {
	form := validDramaForm()
	form.PosterURL = "not a url"

	var fields FieldErrors
	require.ErrorAs(t, Check(form), &fields)
	assert.Equal(t, "must be a valid URL", fields["PosterURL"])
}

func TestDramaFormCastRoleValidated(t *testing.T) {
	form := validDramaForm()
	form.Cast = []CastEntry{{ActorID: 1, Role: "lead"}}

	var fields FieldErrors
	require.ErrorAs(t, Check(form), &fields)
	assert.Contains(t, fields["Role"], "must be one of")
}

func TestDramaFormRoundTrip(t *testing.T) {
	drama := &models.Drama{
		Title:    "My Mister",
		Synopsis: "Three brothers and a quiet woman endure life together.",
		Year:     2018,
		Rating:   9.1,
		Status:   models.StatusCompleted,
		Genres:   []models.Genre{{ID: 3, Name: "Drama", Slug: "drama"}},
		Cast:     []models.CastMember{{ActorID: 5, Name: "Lee Sun-kyun", Role: models.CastRoleMain}},
	}

	form := DramaFormFrom(drama)
	req := form.ToCreateRequest()
	assert.Equal(t, drama.Title, req.Title)
	assert.Equal(t, []int64{3}, req.GenreIDs)
	require.Len(t, req.Cast, 1)
	assert.Equal(t, int64(5), req.Cast[0].ActorID)
	assert.Equal(t, "main", req.Cast[0].Role)
}

func TestEpisodeDurationMinutesToSeconds(t *testing.T) {
	form := EpisodeForm{DurationMinutes: 90}
	assert.Equal(t, 5400, form.DurationSeconds())

	// the wire value converts back to the same display value
	assert.Equal(t, 90, MinutesFromSeconds(5400))
}

func TestMinutesFromSecondsRounds(t *testing.T) {
	assert.Equal(t, 60, MinutesFromSeconds(3605))
	assert.Equal(t, 61, MinutesFromSeconds(3630))
	assert.Equal(t, 0, MinutesFromSeconds(0))
}

func TestEpisodeFormFromModel(t *testing.T) {
	form := EpisodeFormFrom(&models.Episode{
		SeasonID:      2,
		EpisodeNumber: 4,
		Title:         "Episode 4",
		VideoURL:      "https://cdn.example.com/e4.mp4",
		Duration:      3600,
	})
	assert.Equal(t, 60, form.DurationMinutes)
	assert.NoError(t, Check(form))
}

func TestSeasonFormReleaseDate(t *testing.T) {
	form := NewSeasonForm(1)
	form.SeasonNumber = 1
	form.Title = "Season 1"
	form.ReleaseDate = "2024-13-40"

	var fields FieldErrors
	require.ErrorAs(t, Check(form), &fields)
	assert.Contains(t, fields["ReleaseDate"], "must match the format")

	form.ReleaseDate = "2024-03-15"
	assert.NoError(t, Check(form))
}

func TestGenreFormSlugLowercase(t *testing.T) {
	form := GenreForm{Name: "Romance", Slug: "Romance"}

	var fields FieldErrors
	require.ErrorAs(t, Check(form), &fields)
	assert.Contains(t, fields, "Slug")

	form.Slug = "romance"
	assert.NoError(t, Check(form))
}

func TestDialogStaysOpenOnValidationFailure(t *testing.T) {
	dialog := OpenCreate(DramaForm{})
	saved := false

	err := dialog.Submit(context.Background(), func(ctx context.Context, f DramaForm) error {
		saved = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, saved, "save must not run when validation fails")
	assert.True(t, dialog.Open())
}

func TestDialogStaysOpenOnSaveFailure(t *testing.T) {
	dialog := OpenEdit(validDramaForm())

	err := dialog.Submit(context.Background(), func(ctx context.Context, f DramaForm) error {
		return errors.New("server rejected it")
	})

	require.Error(t, err)
	assert.True(t, dialog.Open(), "entered values stay available for retry")
	assert.Equal(t, ModeEdit, dialog.Mode())
}

func TestDialogClosesOnSuccess(t *testing.T) {
	dialog := OpenCreate(validDramaForm())

	err := dialog.Submit(context.Background(), func(ctx context.Context, f DramaForm) error {
		return nil
	})

	require.NoError(t, err)
	assert.False(t, dialog.Open())
}

func TestFieldErrorsMessageIsStable(t *testing.T) {
	fields := FieldErrors{"B": "is required", "A": "is required"}
	assert.Equal(t, "validation failed: A: is required; B: is required", fields.Error())
}
