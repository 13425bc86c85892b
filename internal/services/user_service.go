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

// UserService covers the moderation surface under /analytics/users.
type UserService struct {
	api *api.Client
}

func NewUserService(c *api.Client) *UserService {
	return &UserService{api: c}
}

type UserListParams struct {
	Page   int
	Limit  int
	Search string
}

// ModerateUserRequest patches role and/or ban flag; nil fields are untouched.
type ModerateUserRequest struct {
	Role   *string `json:"role,omitempty"`
	Banned *bool   `json:"is_banned,omitempty"`
}

func (s *UserService) List(ctx context.Context, p UserListParams) (api.Page[models.User], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	if p.Search != "" {
		q.Set("search", p.Search)
	}

	var page api.Page[models.User]
	err := s.api.Do(ctx, http.MethodGet, "/analytics/users", q, nil, &page)
	return page, err
}

func (s *UserService) Moderate(ctx context.Context, id string, req ModerateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.api.Do(ctx, http.MethodPatch, fmt.Sprintf("/analytics/users/%s/role", url.PathEscape(id)), nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/analytics/users/%s", url.PathEscape(id)), nil, nil, nil)
}
