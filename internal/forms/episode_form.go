package forms

import (
	"math"

	"dramahub/internal/models"
	"dramahub/internal/services"
)

// EpisodeForm edits duration in minutes; the wire format is seconds. The
// conversion is exact and round-trip-safe for whole-minute inputs.
type EpisodeForm struct {
	SeasonID        int64  `validate:"required"`
	EpisodeNumber   int    `validate:"required,gte=1"`
	Title           string `validate:"required,min=1,max=200"`
	VideoURL        string `validate:"required,url"`
	DurationMinutes int    `validate:"required,gte=1"`
	ThumbnailURL    string `validate:"omitempty,url"`
}

func NewEpisodeForm(seasonID int64) EpisodeForm {
	return EpisodeForm{SeasonID: seasonID}
}

func EpisodeFormFrom(e *models.Episode) EpisodeForm {
	return EpisodeForm{
		SeasonID:        e.SeasonID,
		EpisodeNumber:   e.EpisodeNumber,
		Title:           e.Title,
		VideoURL:        e.VideoURL,
		DurationMinutes: MinutesFromSeconds(e.Duration),
		ThumbnailURL:    e.ThumbnailURL,
	}
}

func (f EpisodeForm) DurationSeconds() int {
	return f.DurationMinutes * 60
}

// MinutesFromSeconds converts for display, rounding to the nearest minute.
func MinutesFromSeconds(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}

func (f EpisodeForm) ToCreateRequest() services.CreateEpisodeRequest {
	return services.CreateEpisodeRequest{
		SeasonID:      f.SeasonID,
		EpisodeNumber: f.EpisodeNumber,
		Title:         f.Title,
		VideoURL:      f.VideoURL,
		Duration:      f.DurationSeconds(),
		ThumbnailURL:  f.ThumbnailURL,
	}
}

func (f EpisodeForm) ToUpdateRequest() services.UpdateEpisodeRequest {
	duration := f.DurationSeconds()
	return services.UpdateEpisodeRequest{
		EpisodeNumber: &f.EpisodeNumber,
		Title:         &f.Title,
		VideoURL:      &f.VideoURL,
		Duration:      &duration,
		ThumbnailURL:  &f.ThumbnailURL,
	}
}
