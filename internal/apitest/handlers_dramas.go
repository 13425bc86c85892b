package apitest

import (
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"dramahub/internal/models"
	"dramahub/internal/services"
)

// handleListDramas honors q/status/genre/sort and answers the {items, total}
// shape. Note the text filter is "q" on this endpoint, not "search".
func (s *Server) handleListDramas(c *gin.Context) {
	q := strings.ToLower(c.Query("q"))
	status := c.Query("status")
	genre := c.Query("genre")
	sortKey := c.Query("sort")

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Drama, 0, len(s.dramas))
	for _, d := range s.dramas {
		if q != "" && !strings.Contains(strings.ToLower(d.Title), q) {
			continue
		}
		if status != "" && d.Status != status {
			continue
		}
		if genre != "" && !hasGenre(d, genre) {
			continue
		}
		matched = append(matched, d)
	}

	switch sortKey {
	case "title":
		sort.Slice(matched, func(i, j int) bool { return matched[i].Title < matched[j].Title })
	case "views":
		sort.Slice(matched, func(i, j int) bool { return matched[i].ViewCount > matched[j].ViewCount })
	case "year":
		sort.Slice(matched, func(i, j int) bool { return matched[i].Year > matched[j].Year })
	}

	pageOf(c, matched)
}

func hasGenre(d models.Drama, slug string) bool {
	for _, g := range d.Genres {
		if g.Slug == slug {
			return true
		}
	}
	return false
}

func (s *Server) handleGetDrama(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.dramas {
		if d.ID == id {
			respond(c, 200, d)
			return
		}
	}
	fail(c, 404, "drama not found")
}

func (s *Server) handleCreateDrama(c *gin.Context) {
	var req services.CreateDramaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid drama payload")
		return
	}
	if req.Title == "" {
		fail(c, 400, "title is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	genres, ok := s.resolveGenres(req.GenreIDs)
	if !ok {
		fail(c, 400, "unknown genre id")
		return
	}
	cast, ok := s.resolveCast(req.Cast)
	if !ok {
		fail(c, 400, "unknown actor id")
		return
	}

	drama := models.Drama{
		ID:           s.id(),
		Title:        req.Title,
		Synopsis:     req.Synopsis,
		PosterURL:    req.PosterURL,
		Year:         req.Year,
		Rating:       req.Rating,
		TotalSeasons: req.TotalSeasons,
		Status:       req.Status,
		CreatedAt:    time.Now().UTC(),
		Genres:       genres,
		Cast:         cast,
	}
	s.dramas = append(s.dramas, drama)
	respond(c, 201, drama)
}

func (s *Server) handleUpdateDrama(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdateDramaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid drama payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.dramas {
		if s.dramas[i].ID != id {
			continue
		}
		d := &s.dramas[i]
		if req.Title != nil {
			d.Title = *req.Title
		}
		if req.Synopsis != nil {
			d.Synopsis = *req.Synopsis
		}
		if req.PosterURL != nil {
			d.PosterURL = *req.PosterURL
		}
		if req.Year != nil {
			d.Year = *req.Year
		}
		if req.Rating != nil {
			d.Rating = *req.Rating
		}
		if req.TotalSeasons != nil {
			d.TotalSeasons = *req.TotalSeasons
		}
		if req.Status != nil {
			d.Status = *req.Status
		}
		if req.GenreIDs != nil {
			genres, ok := s.resolveGenres(req.GenreIDs)
			if !ok {
				fail(c, 400, "unknown genre id")
				return
			}
			d.Genres = genres
		}
		if req.Cast != nil {
			cast, ok := s.resolveCast(req.Cast)
			if !ok {
				fail(c, 400, "unknown actor id")
				return
			}
			d.Cast = cast
		}
		respond(c, 200, *d)
		return
	}
	fail(c, 404, "drama not found")
}

func (s *Server) handleDeleteDrama(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.dramas {
		if d.ID == id {
			s.dramas = append(s.dramas[:i], s.dramas[i+1:]...)
			respond(c, 200, nil)
			return
		}
	}
	fail(c, 404, "drama not found")
}

func (s *Server) resolveGenres(ids []int64) ([]models.Genre, bool) {
	genres := make([]models.Genre, 0, len(ids))
	for _, id := range ids {
		found := false
		for _, g := range s.genres {
			if g.ID == id {
				genres = append(genres, g)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return genres, true
}

func (s *Server) resolveCast(cast []services.CastAssignment) ([]models.CastMember, bool) {
	members := make([]models.CastMember, 0, len(cast))
	for _, entry := range cast {
		found := false
		for _, a := range s.actors {
			if a.ID == entry.ActorID {
				members = append(members, models.CastMember{ActorID: a.ID, Name: a.Name, Role: entry.Role})
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return members, true
}
