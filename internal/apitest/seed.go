package apitest

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dramahub/internal/models"
)

// Seed accounts available to tests.
const (
	AdminEmail     = "admin@dramahub.test"
	AdminPassword  = "correct-horse-admin"
	ViewerEmail    = "viewer@dramahub.test"
	ViewerPassword = "just-watching"
)

func (s *Server) seed() {
	s.users = []userRecord{
		s.newUser("Admin One", AdminEmail, AdminPassword, models.RoleAdmin),
		s.newUser("Casual Viewer", ViewerEmail, ViewerPassword, models.RoleUser),
	}

	s.genres = []models.Genre{
		{ID: s.id(), Name: "Romance", Slug: "romance"},
		{ID: s.id(), Name: "Thriller", Slug: "thriller"},
		{ID: s.id(), Name: "Comedy", Slug: "comedy"},
	}

	s.actors = []models.Actor{
		{ID: s.id(), Name: "Kim Ji-won", PhotoURL: "https://cdn.dramahub.test/actors/kim-ji-won.jpg"},
		{ID: s.id(), Name: "Lee Min-ho", PhotoURL: "https://cdn.dramahub.test/actors/lee-min-ho.jpg"},
		{ID: s.id(), Name: "Bae Suzy", PhotoURL: "https://cdn.dramahub.test/actors/bae-suzy.jpg"},
	}

	drama := models.Drama{
		ID:           s.id(),
		Title:        "Crash Landing on Code",
		Synopsis:     "An engineer paraglides into the wrong data center and has to ship her way home.",
		PosterURL:    "https://cdn.dramahub.test/posters/clc.jpg",
		Year:         2023,
		Rating:       8.7,
		TotalSeasons: 1,
		Status:       models.StatusCompleted,
		ViewCount:    120000,
		CreatedAt:    time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		Genres:       []models.Genre{s.genres[0]},
		Cast: []models.CastMember{
			{ActorID: s.actors[0].ID, Name: s.actors[0].Name, Role: models.CastRoleMain},
			{ActorID: s.actors[1].ID, Name: s.actors[1].Name, Role: models.CastRoleSupport},
		},
	}
	s.dramas = []models.Drama{drama}

	season := models.Season{
		ID:           s.id(),
		DramaID:      drama.ID,
		SeasonNumber: 1,
		Title:        "Season 1",
	}
	s.seasons = []models.Season{season}

	s.episodes = []models.Episode{
		{
			ID:            s.id(),
			SeasonID:      season.ID,
			EpisodeNumber: 1,
			Title:         "Pilot",
			VideoURL:      "https://cdn.dramahub.test/videos/clc-s01e01.mp4",
			Duration:      3600,
			ThumbnailURL:  "https://cdn.dramahub.test/thumbs/clc-s01e01.jpg",
			ViewCount:     45000,
		},
	}
}

func (s *Server) newUser(name, email, password, role string) userRecord {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return userRecord{
		User: models.User{
			ID:        uuid.New().String(),
			Email:     email,
			Name:      name,
			Role:      role,
			CreatedAt: time.Now().UTC(),
		},
		PasswordHash: hash,
	}
}
