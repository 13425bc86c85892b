package apitest

// handlers_catalog.go covers seasons and episodes. Their list endpoints are
// scoped to a single parent and answer bare arrays, exercising the client's
// uncounted page shape.

import (
	"github.com/gin-gonic/gin"

	"dramahub/internal/models"
	"dramahub/internal/services"
)

func (s *Server) handleListSeasons(c *gin.Context) {
	dramaID, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	seasons := make([]models.Season, 0)
	for _, season := range s.seasons {
		if season.DramaID == dramaID {
			seasons = append(seasons, season)
		}
	}
	respond(c, 200, seasons)
}

func (s *Server) handleCreateSeason(c *gin.Context) {
	var req services.CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid season payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dramaExists(req.DramaID) {
		fail(c, 400, "unknown drama id")
		return
	}

	season := models.Season{
		ID:           s.id(),
		DramaID:      req.DramaID,
		SeasonNumber: req.SeasonNumber,
		Title:        req.Title,
		Synopsis:     req.Synopsis,
		PosterURL:    req.PosterURL,
		ReleaseDate:  req.ReleaseDate,
	}
	s.seasons = append(s.seasons, season)
	respond(c, 201, season)
}

func (s *Server) handleUpdateSeason(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid season payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.seasons {
		if s.seasons[i].ID != id {
			continue
		}
		season := &s.seasons[i]
		if req.SeasonNumber != nil {
			season.SeasonNumber = *req.SeasonNumber
		}
		if req.Title != nil {
			season.Title = *req.Title
		}
		if req.Synopsis != nil {
			season.Synopsis = req.Synopsis
		}
		if req.PosterURL != nil {
			season.PosterURL = req.PosterURL
		}
		if req.ReleaseDate != nil {
			season.ReleaseDate = req.ReleaseDate
		}
		respond(c, 200, *season)
		return
	}
	fail(c, 404, "season not found")
}

func (s *Server) handleDeleteSeason(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, season := range s.seasons {
		if season.ID == id {
			s.seasons = append(s.seasons[:i], s.seasons[i+1:]...)
			respond(c, 200, nil)
			return
		}
	}
	fail(c, 404, "season not found")
}

func (s *Server) handleListEpisodes(c *gin.Context) {
	seasonID, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	episodes := make([]models.Episode, 0)
	for _, e := range s.episodes {
		if e.SeasonID == seasonID {
			episodes = append(episodes, e)
		}
	}
	respond(c, 200, episodes)
}

func (s *Server) handleCreateEpisode(c *gin.Context) {
	var req services.CreateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid episode payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seasonExists(req.SeasonID) {
		fail(c, 400, "unknown season id")
		return
	}

	episode := models.Episode{
		ID:            s.id(),
		SeasonID:      req.SeasonID,
		EpisodeNumber: req.EpisodeNumber,
		Title:         req.Title,
		VideoURL:      req.VideoURL,
		Duration:      req.Duration,
		ThumbnailURL:  req.ThumbnailURL,
	}
	s.episodes = append(s.episodes, episode)
	respond(c, 201, episode)
}

func (s *Server) handleUpdateEpisode(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid episode payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.episodes {
		if s.episodes[i].ID != id {
			continue
		}
		e := &s.episodes[i]
		if req.EpisodeNumber != nil {
			e.EpisodeNumber = *req.EpisodeNumber
		}
		if req.Title != nil {
			e.Title = *req.Title
		}
		if req.VideoURL != nil {
			e.VideoURL = *req.VideoURL
		}
		if req.Duration != nil {
			e.Duration = *req.Duration
		}
		if req.ThumbnailURL != nil {
			e.ThumbnailURL = *req.ThumbnailURL
		}
		respond(c, 200, *e)
		return
	}
	fail(c, 404, "episode not found")
}

func (s *Server) handleDeleteEpisode(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.episodes {
		if e.ID == id {
			s.episodes = append(s.episodes[:i], s.episodes[i+1:]...)
			respond(c, 200, nil)
			return
		}
	}
	fail(c, 404, "episode not found")
}

func (s *Server) dramaExists(id int64) bool {
	for _, d := range s.dramas {
		if d.ID == id {
			return true
		}
	}
	return false
}

func (s *Server) seasonExists(id int64) bool {
	for _, season := range s.seasons {
		if season.ID == id {
			return true
		}
	}
	return false
}
