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

type ActorService struct {
	api *api.Client
}

func NewActorService(c *api.Client) *ActorService {
	return &ActorService{api: c}
}

type ActorListParams struct {
	Page   int
	Limit  int
	Search string
}

type CreateActorRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type UpdateActorRequest struct {
	Name     *string `json:"name,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

func (s *ActorService) List(ctx context.Context, p ActorListParams) (api.Page[models.Actor], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	if p.Search != "" {
		q.Set("search", p.Search)
	}

	var page api.Page[models.Actor]
	err := s.api.Do(ctx, http.MethodGet, "/actors", q, nil, &page)
	return page, err
}

func (s *ActorService) Create(ctx context.Context, req CreateActorRequest) (*models.Actor, error) {
	var actor models.Actor
	if err := s.api.Do(ctx, http.MethodPost, "/actors", nil, req, &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

func (s *ActorService) Update(ctx context.Context, id int64, req UpdateActorRequest) (*models.Actor, error) {
	var actor models.Actor
	if err := s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/actors/%d", id), nil, req, &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

func (s *ActorService) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/actors/%d", id), nil, nil, nil)
}
