package apitest

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid login payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email != req.Email {
			continue
		}
		if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
			break
		}
		respond(c, 200, gin.H{"token": s.issueToken(u.User), "user": u.User})
		return
	}
	fail(c, 401, "invalid email or password")
}

func (s *Server) handleMe(c *gin.Context) {
	respond(c, 200, currentUser(c))
}
