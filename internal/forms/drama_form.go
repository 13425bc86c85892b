package forms

import (
	"dramahub/internal/models"
	"dramahub/internal/services"
)

type CastEntry struct {
	ActorID int64  `validate:"required"`
	Role    string `validate:"required,oneof=main support"`
}

type DramaForm struct {
	Title        string  `validate:"required,min=1,max=200"`
	Synopsis     string  `validate:"required,min=10"`
	PosterURL    string  `validate:"omitempty,url"`
	Year         int     `validate:"required,gte=1950,lte=2100"`
	Rating       float64 `validate:"gte=0,lte=10"`
	TotalSeasons int     `validate:"gte=0"`
	Status       string  `validate:"required,oneof=ongoing completed"`
	GenreIDs     []int64
	Cast         []CastEntry `validate:"omitempty,dive"`
}

// NewDramaForm returns create-mode defaults.
func NewDramaForm() DramaForm {
	return DramaForm{Status: models.StatusOngoing}
}

// DramaFormFrom pre-populates an edit form from a fetched drama.
func DramaFormFrom(d *models.Drama) DramaForm {
	form := DramaForm{
		Title:        d.Title,
		Synopsis:     d.Synopsis,
		PosterURL:    d.PosterURL,
		Year:         d.Year,
		Rating:       d.Rating,
		TotalSeasons: d.TotalSeasons,
		Status:       d.Status,
	}
	for _, g := range d.Genres {
		form.GenreIDs = append(form.GenreIDs, g.ID)
	}
	for _, m := range d.Cast {
		form.Cast = append(form.Cast, CastEntry{ActorID: m.ActorID, Role: m.Role})
	}
	return form
}

// SetCast replaces the form's cast from a picker's selection.
func (f *DramaForm) SetCast(cast []models.CastMember) {
	f.Cast = f.Cast[:0]
	for _, m := range cast {
		f.Cast = append(f.Cast, CastEntry{ActorID: m.ActorID, Role: m.Role})
	}
}

func (f DramaForm) castAssignments() []services.CastAssignment {
	cast := make([]services.CastAssignment, 0, len(f.Cast))
	for _, e := range f.Cast {
		cast = append(cast, services.CastAssignment{ActorID: e.ActorID, Role: e.Role})
	}
	return cast
}

func (f DramaForm) ToCreateRequest() services.CreateDramaRequest {
	return services.CreateDramaRequest{
		Title:        f.Title,
		Synopsis:     f.Synopsis,
		PosterURL:    f.PosterURL,
		Year:         f.Year,
		Rating:       f.Rating,
		TotalSeasons: f.TotalSeasons,
		Status:       f.Status,
		GenreIDs:     f.GenreIDs,
		Cast:         f.castAssignments(),
	}
}

// ToUpdateRequest sends every field: the edit form was pre-populated, so the
// current values are the full intended state.
func (f DramaForm) ToUpdateRequest() services.UpdateDramaRequest {
	return services.UpdateDramaRequest{
		Title:        &f.Title,
		Synopsis:     &f.Synopsis,
		PosterURL:    &f.PosterURL,
		Year:         &f.Year,
		Rating:       &f.Rating,
		TotalSeasons: &f.TotalSeasons,
		Status:       &f.Status,
		GenreIDs:     f.GenreIDs,
		Cast:         f.castAssignments(),
	}
}
