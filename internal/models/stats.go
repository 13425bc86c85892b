package models

// DashboardStats is the read-only aggregate block shown on the dashboard.
// All counts are derived server-side.
type DashboardStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalDramas   int64 `json:"total_dramas"`
	TotalEpisodes int64 `json:"total_episodes"`
	TotalViews    int64 `json:"total_views"`
}
