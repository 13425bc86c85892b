package models

type Season struct {
	ID           int64   `json:"id"`
	DramaID      int64   `json:"drama_id"`
	SeasonNumber int     `json:"season_number"`
	Title        string  `json:"title"`
	Synopsis     *string `json:"synopsis,omitempty"`
	PosterURL    *string `json:"poster_url,omitempty"`
	ReleaseDate  *string `json:"release_date,omitempty"` // YYYY-MM-DD
}
