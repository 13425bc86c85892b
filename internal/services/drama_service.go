package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"dramahub/internal/api"
	"dramahub/internal/models"
)

type DramaService struct {
	api *api.Client
}

func NewDramaService(c *api.Client) *DramaService {
	return &DramaService{api: c}
}

type DramaListParams struct {
	Page   int
	Limit  int
	Search string
	Status string
	Genre  string
	Sort   string
}

type CastAssignment struct {
	ActorID int64  `json:"actor_id"`
	Role    string `json:"role"`
}

type CreateDramaRequest struct {
	Title        string           `json:"title"`
	Synopsis     string           `json:"synopsis"`
	PosterURL    string           `json:"poster_url,omitempty"`
	Year         int              `json:"year"`
	Rating       float64          `json:"rating"`
	TotalSeasons int              `json:"total_seasons"`
	Status       string           `json:"status"`
	GenreIDs     []int64          `json:"genre_ids,omitempty"`
	Cast         []CastAssignment `json:"cast,omitempty"`
}

type UpdateDramaRequest struct {
	Title        *string          `json:"title,omitempty"`
	Synopsis     *string          `json:"synopsis,omitempty"`
	PosterURL    *string          `json:"poster_url,omitempty"`
	Year         *int             `json:"year,omitempty"`
	Rating       *float64         `json:"rating,omitempty"`
	TotalSeasons *int             `json:"total_seasons,omitempty"`
	Status       *string          `json:"status,omitempty"`
	GenreIDs     []int64          `json:"genre_ids,omitempty"`
	Cast         []CastAssignment `json:"cast,omitempty"`
}

// List fetches one page of dramas. The console's query state calls the text
// filter "search"; the server expects "q", and the rename happens here, once.
func (s *DramaService) List(ctx context.Context, p DramaListParams) (api.Page[models.Drama], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	if p.Search != "" {
		q.Set("q", p.Search)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Genre != "" {
		q.Set("genre", p.Genre)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}

	var page api.Page[models.Drama]
	err := s.api.Do(ctx, http.MethodGet, "/dramas", q, nil, &page)
	return page, err
}

func (s *DramaService) Get(ctx context.Context, id int64) (*models.Drama, error) {
	var drama models.Drama
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/dramas/%d", id), nil, nil, &drama); err != nil {
		return nil, err
	}
	return &drama, nil
}

func (s *DramaService) Create(ctx context.Context, req CreateDramaRequest) (*models.Drama, error) {
	var drama models.Drama
	if err := s.api.Do(ctx, http.MethodPost, "/dramas", nil, req, &drama); err != nil {
		return nil, err
	}
	return &drama, nil
}

func (s *DramaService) Update(ctx context.Context, id int64, req UpdateDramaRequest) (*models.Drama, error) {
	var drama models.Drama
	if err := s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/dramas/%d", id), nil, req, &drama); err != nil {
		return nil, err
	}
	return &drama, nil
}

func (s *DramaService) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/dramas/%d", id), nil, nil, nil)
}
