package apitest

// handlers_people.go covers actors and genres, both server-paginated with the
// {items, total} shape and a "search" text filter.

import (
	"strings"

	"github.com/gin-gonic/gin"

	"dramahub/internal/models"
	"dramahub/internal/services"
)

func (s *Server) handleListActors(c *gin.Context) {
	search := strings.ToLower(c.Query("search"))

	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]models.Actor, 0, len(s.actors))
	for _, a := range s.actors {
		if search != "" && !strings.Contains(strings.ToLower(a.Name), search) {
			continue
		}
		matched = append(matched, a)
	}
	pageOf(c, matched)
}

func (s *Server) handleCreateActor(c *gin.Context) {
	var req services.CreateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid actor payload")
		return
	}
	if req.Name == "" {
		fail(c, 400, "name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	actor := models.Actor{ID: s.id(), Name: req.Name, PhotoURL: req.PhotoURL}
	s.actors = append(s.actors, actor)
	respond(c, 201, actor)
}

func (s *Server) handleUpdateActor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid actor payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.actors {
		if s.actors[i].ID != id {
			continue
		}
		if req.Name != nil {
			s.actors[i].Name = *req.Name
		}
		if req.PhotoURL != nil {
			s.actors[i].PhotoURL = *req.PhotoURL
		}
		respond(c, 200, s.actors[i])
		return
	}
	fail(c, 404, "actor not found")
}

func (s *Server) handleDeleteActor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.actors {
		if a.ID == id {
			s.actors = append(s.actors[:i], s.actors[i+1:]...)
			respond(c, 200, nil)
			return
		}
	}
	fail(c, 404, "actor not found")
}

func (s *Server) handleListGenres(c *gin.Context) {
	search := strings.ToLower(c.Query("search"))

	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]models.Genre, 0, len(s.genres))
	for _, g := range s.genres {
		if search != "" && !strings.Contains(strings.ToLower(g.Name), search) {
			continue
		}
		matched = append(matched, g)
	}
	pageOf(c, matched)
}

func (s *Server) handleCreateGenre(c *gin.Context) {
	var req services.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid genre payload")
		return
	}
	if req.Name == "" || req.Slug == "" {
		fail(c, 400, "name and slug are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.genres {
		if g.Slug == req.Slug {
			fail(c, 409, "genre slug already exists")
			return
		}
	}
	genre := models.Genre{ID: s.id(), Name: req.Name, Slug: req.Slug}
	s.genres = append(s.genres, genre)
	respond(c, 201, genre)
}

func (s *Server) handleUpdateGenre(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid genre payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.genres {
		if s.genres[i].ID != id {
			continue
		}
		if req.Name != nil {
			s.genres[i].Name = *req.Name
		}
		if req.Slug != nil {
			s.genres[i].Slug = *req.Slug
		}
		respond(c, 200, s.genres[i])
		return
	}
	fail(c, 404, "genre not found")
}

func (s *Server) handleDeleteGenre(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.genres {
		if g.ID == id {
			s.genres = append(s.genres[:i], s.genres[i+1:]...)
			respond(c, 200, nil)
			return
		}
	}
	fail(c, 404, "genre not found")
}
