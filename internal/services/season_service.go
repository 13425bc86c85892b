package services

import (
	"context"
	"fmt"
	"net/http"

	"dramahub/internal/api"
	"dramahub/internal/models"
)

type SeasonService struct {
	api *api.Client
}

func NewSeasonService(c *api.Client) *SeasonService {
	return &SeasonService{api: c}
}

type CreateSeasonRequest struct {
	DramaID      int64   `json:"drama_id"`
	SeasonNumber int     `json:"season_number"`
	Title        string  `json:"title"`
	Synopsis     *string `json:"synopsis,omitempty"`
	PosterURL    *string `json:"poster_url,omitempty"`
	ReleaseDate  *string `json:"release_date,omitempty"`
}

type UpdateSeasonRequest struct {
	SeasonNumber *int    `json:"season_number,omitempty"`
	Title        *string `json:"title,omitempty"`
	Synopsis     *string `json:"synopsis,omitempty"`
	PosterURL    *string `json:"poster_url,omitempty"`
	ReleaseDate  *string `json:"release_date,omitempty"`
}

// ListByDrama returns all seasons of one drama. The endpoint answers with a
// bare array (scoped to a single parent, no server-side pagination).
func (s *SeasonService) ListByDrama(ctx context.Context, dramaID int64) (api.Page[models.Season], error) {
	var page api.Page[models.Season]
	err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/dramas/%d/seasons", dramaID), nil, nil, &page)
	return page, err
}

func (s *SeasonService) Create(ctx context.Context, req CreateSeasonRequest) (*models.Season, error) {
	var season models.Season
	if err := s.api.Do(ctx, http.MethodPost, "/seasons", nil, req, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

func (s *SeasonService) Update(ctx context.Context, id int64, req UpdateSeasonRequest) (*models.Season, error) {
	var season models.Season
	if err := s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/seasons/%d", id), nil, req, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

func (s *SeasonService) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/seasons/%d", id), nil, nil, nil)
}
