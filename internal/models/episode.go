package models

type Episode struct {
	ID            int64  `json:"id"`
	SeasonID      int64  `json:"season_id"`
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
	VideoURL      string `json:"video_url"`
	// Duration is stored and transmitted in seconds. The console edits it in
	// minutes; the conversion lives in the forms package.
	Duration     int    `json:"duration"`
	ThumbnailURL string `json:"thumbnail_url"`
	ViewCount    int64  `json:"view_count"`
}
