package models

import "time"

// Drama status values accepted by the catalog.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Cast role values for an actor's association with a drama.
const (
	CastRoleMain    = "main"
	CastRoleSupport = "support"
)

type Drama struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Synopsis     string       `json:"synopsis"`
	PosterURL    string       `json:"poster_url"`
	Year         int          `json:"year"`
	Rating       float64      `json:"rating"`
	TotalSeasons int          `json:"total_seasons"`
	Status       string       `json:"status"`
	ViewCount    int64        `json:"view_count"`
	CreatedAt    time.Time    `json:"created_at"`
	Genres       []Genre      `json:"genres,omitempty"`
	Cast         []CastMember `json:"cast,omitempty"`
}

// CastMember is one actor<->drama association with its role tag.
type CastMember struct {
	ActorID int64  `json:"actor_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}
