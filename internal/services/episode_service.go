package services

import (
	"context"
	"fmt"
	"net/http"

	"dramahub/internal/api"
	"dramahub/internal/models"
)

type EpisodeService struct {
	api *api.Client
}

func NewEpisodeService(c *api.Client) *EpisodeService {
	return &EpisodeService{api: c}
}

// Duration fields are in seconds on the wire; the forms layer converts from
// the minutes shown in the console.
type CreateEpisodeRequest struct {
	SeasonID      int64  `json:"season_id"`
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
	VideoURL      string `json:"video_url"`
	Duration      int    `json:"duration"`
	ThumbnailURL  string `json:"thumbnail_url,omitempty"`
}

type UpdateEpisodeRequest struct {
	EpisodeNumber *int    `json:"episode_number,omitempty"`
	Title         *string `json:"title,omitempty"`
	VideoURL      *string `json:"video_url,omitempty"`
	Duration      *int    `json:"duration,omitempty"`
	ThumbnailURL  *string `json:"thumbnail_url,omitempty"`
}

// ListBySeason returns all episodes of one season as a bare array.
func (s *EpisodeService) ListBySeason(ctx context.Context, seasonID int64) (api.Page[models.Episode], error) {
	var page api.Page[models.Episode]
	err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/seasons/%d/episodes", seasonID), nil, nil, &page)
	return page, err
}

func (s *EpisodeService) Create(ctx context.Context, req CreateEpisodeRequest) (*models.Episode, error) {
	var episode models.Episode
	if err := s.api.Do(ctx, http.MethodPost, "/episodes", nil, req, &episode); err != nil {
		return nil, err
	}
	return &episode, nil
}

func (s *EpisodeService) Update(ctx context.Context, id int64, req UpdateEpisodeRequest) (*models.Episode, error) {
	var episode models.Episode
	if err := s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/episodes/%d", id), nil, req, &episode); err != nil {
		return nil, err
	}
	return &episode, nil
}

func (s *EpisodeService) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/episodes/%d", id), nil, nil, nil)
}
