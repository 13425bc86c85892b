package forms

// resource_forms.go holds the smaller create/edit forms: actor, genre, season.

import (
	"dramahub/internal/models"
	"dramahub/internal/services"
)

type ActorForm struct {
	Name     string `validate:"required,min=1,max=120"`
	PhotoURL string `validate:"omitempty,url"`
}

func ActorFormFrom(a *models.Actor) ActorForm {
	return ActorForm{Name: a.Name, PhotoURL: a.PhotoURL}
}

func (f ActorForm) ToCreateRequest() services.CreateActorRequest {
	return services.CreateActorRequest{Name: f.Name, PhotoURL: f.PhotoURL}
}

func (f ActorForm) ToUpdateRequest() services.UpdateActorRequest {
	return services.UpdateActorRequest{Name: &f.Name, PhotoURL: &f.PhotoURL}
}

type GenreForm struct {
	Name string `validate:"required,min=1,max=80"`
	Slug string `validate:"required,min=1,max=80,lowercase"`
}

func GenreFormFrom(g *models.Genre) GenreForm {
	return GenreForm{Name: g.Name, Slug: g.Slug}
}

func (f GenreForm) ToCreateRequest() services.CreateGenreRequest {
	return services.CreateGenreRequest{Name: f.Name, Slug: f.Slug}
}

func (f GenreForm) ToUpdateRequest() services.UpdateGenreRequest {
	return services.UpdateGenreRequest{Name: &f.Name, Slug: &f.Slug}
}

type SeasonForm struct {
	DramaID      int64  `validate:"required"`
	SeasonNumber int    `validate:"required,gte=1"`
	Title        string `validate:"required,min=1,max=200"`
	Synopsis     string
	PosterURL    string `validate:"omitempty,url"`
	ReleaseDate  string `validate:"omitempty,datetime=2006-01-02"`
}

func NewSeasonForm(dramaID int64) SeasonForm {
	return SeasonForm{DramaID: dramaID}
}

func SeasonFormFrom(s *models.Season) SeasonForm {
	form := SeasonForm{
		DramaID:      s.DramaID,
		SeasonNumber: s.SeasonNumber,
		Title:        s.Title,
	}
	if s.Synopsis != nil {
		form.Synopsis = *s.Synopsis
	}
	if s.PosterURL != nil {
		form.PosterURL = *s.PosterURL
	}
	if s.ReleaseDate != nil {
		form.ReleaseDate = *s.ReleaseDate
	}
	return form
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (f SeasonForm) ToCreateRequest() services.CreateSeasonRequest {
	return services.CreateSeasonRequest{
		DramaID:      f.DramaID,
		SeasonNumber: f.SeasonNumber,
		Title:        f.Title,
		Synopsis:     optional(f.Synopsis),
		PosterURL:    optional(f.PosterURL),
		ReleaseDate:  optional(f.ReleaseDate),
	}
}

func (f SeasonForm) ToUpdateRequest() services.UpdateSeasonRequest {
	return services.UpdateSeasonRequest{
		SeasonNumber: &f.SeasonNumber,
		Title:        &f.Title,
		Synopsis:     optional(f.Synopsis),
		PosterURL:    optional(f.PosterURL),
		ReleaseDate:  optional(f.ReleaseDate),
	}
}
