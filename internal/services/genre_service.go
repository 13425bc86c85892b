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

type GenreService struct {
	api *api.Client
}

func NewGenreService(c *api.Client) *GenreService {
	return &GenreService{api: c}
}

type GenreListParams struct {
	Page   int
	Limit  int
	Search string
}

type CreateGenreRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type UpdateGenreRequest struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

func (s *GenreService) List(ctx context.Context, p GenreListParams) (api.Page[models.Genre], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	if p.Search != "" {
		q.Set("search", p.Search)
	}

	var page api.Page[models.Genre]
	err := s.api.Do(ctx, http.MethodGet, "/genres", q, nil, &page)
	return page, err
}

func (s *GenreService) Create(ctx context.Context, req CreateGenreRequest) (*models.Genre, error) {
	var genre models.Genre
	if err := s.api.Do(ctx, http.MethodPost, "/genres", nil, req, &genre); err != nil {
		return nil, err
	}
	return &genre, nil
}

func (s *GenreService) Update(ctx context.Context, id int64, req UpdateGenreRequest) (*models.Genre, error) {
	var genre models.Genre
	if err := s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/genres/%d", id), nil, req, &genre); err != nil {
		return nil, err
	}
	return &genre, nil
}

func (s *GenreService) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/genres/%d", id), nil, nil, nil)
}
