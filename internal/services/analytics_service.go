package services

import (
	"context"
	"net/http"

	"dramahub/internal/api"
	"dramahub/internal/models"
)

type AnalyticsService struct {
	api *api.Client
}

func NewAnalyticsService(c *api.Client) *AnalyticsService {
	return &AnalyticsService{api: c}
}

func (s *AnalyticsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := s.api.Do(ctx, http.MethodGet, "/analytics/dashboard", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
