package apitest

import (
	"strings"

	"github.com/gin-gonic/gin"

	"dramahub/internal/models"
	"dramahub/internal/services"
)

func (s *Server) handleDashboard(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var views int64
	for _, d := range s.dramas {
		views += d.ViewCount
	}

	respond(c, 200, models.DashboardStats{
		TotalUsers:    int64(len(s.users)),
		TotalDramas:   int64(len(s.dramas)),
		TotalEpisodes: int64(len(s.episodes)),
		TotalViews:    views,
	})
}

func (s *Server) handleListUsers(c *gin.Context) {
	search := strings.ToLower(c.Query("search"))

	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Email), search) &&
			!strings.Contains(strings.ToLower(u.Name), search) {
			continue
		}
		matched = append(matched, u.User)
	}
	pageOf(c, matched)
}

func (s *Server) handleModerateUser(c *gin.Context) {
	id := c.Param("id")

	var req services.ModerateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid moderation payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if req.Role != nil {
			if *req.Role != models.RoleAdmin && *req.Role != models.RoleUser {
				fail(c, 400, "unknown role")
				return
			}
			s.users[i].Role = *req.Role
		}
		if req.Banned != nil {
			s.users[i].Banned = *req.Banned
		}
		respond(c, 200, s.users[i].User)
		return
	}
	fail(c, 404, "user not found")
}

func (s *Server) handleDeleteUser(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			respond(c, 200, nil)
			return
		}
	}
	fail(c, 404, "user not found")
}
