// Package apitest is an in-memory stand-in for the DramaHub REST API, used as
// a test fixture by the service and command tests. It speaks the same
// {success, message, data} envelope, issues HS256 tokens on login, and honors
// the pagination/filter query parameters of the real API. It is not a server
// implementation for production use.
package apitest

import (
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"dramahub/internal/models"
)

type userRecord struct {
	models.User
	PasswordHash []byte
}

type Server struct {
	*httptest.Server

	secret []byte

	mu       sync.Mutex
	nextID   int64
	dramas   []models.Drama
	seasons  []models.Season
	episodes []models.Episode
	actors   []models.Actor
	genres   []models.Genre
	users    []userRecord
}

// New starts a seeded fixture server. Callers own Close.
func New() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{secret: []byte("apitest-secret")}
	s.seed()

	r := gin.New()
	r.POST("/auth/login", s.handleLogin)

	authed := r.Group("/", s.requireToken)
	{
		authed.GET("/auth/me", s.handleMe)

		authed.GET("/dramas", s.handleListDramas)
		authed.POST("/dramas", s.handleCreateDrama)
		authed.GET("/dramas/:id", s.handleGetDrama)
		authed.PUT("/dramas/:id", s.handleUpdateDrama)
		authed.DELETE("/dramas/:id", s.handleDeleteDrama)
		authed.GET("/dramas/:id/seasons", s.handleListSeasons)

		authed.POST("/seasons", s.handleCreateSeason)
		authed.PUT("/seasons/:id", s.handleUpdateSeason)
		authed.DELETE("/seasons/:id", s.handleDeleteSeason)
		authed.GET("/seasons/:id/episodes", s.handleListEpisodes)

		authed.POST("/episodes", s.handleCreateEpisode)
		authed.PUT("/episodes/:id", s.handleUpdateEpisode)
		authed.DELETE("/episodes/:id", s.handleDeleteEpisode)

		authed.GET("/actors", s.handleListActors)
		authed.POST("/actors", s.handleCreateActor)
		authed.PUT("/actors/:id", s.handleUpdateActor)
		authed.DELETE("/actors/:id", s.handleDeleteActor)

		authed.GET("/genres", s.handleListGenres)
		authed.POST("/genres", s.handleCreateGenre)
		authed.PUT("/genres/:id", s.handleUpdateGenre)
		authed.DELETE("/genres/:id", s.handleDeleteGenre)

		admin := authed.Group("/analytics", s.requireAdmin)
		{
			admin.GET("/dashboard", s.handleDashboard)
			admin.GET("/users", s.handleListUsers)
			admin.PATCH("/users/:id/role", s.handleModerateUser)
			admin.DELETE("/users/:id", s.handleDeleteUser)
		}
	}

	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) id() int64 {
	s.nextID++
	return s.nextID
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "message": "", "data": data})
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": msg, "data": nil})
}

func (s *Server) issueToken(u models.User) string {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  u.Role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return token
}

func (s *Server) requireToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		fail(c, 401, "missing or invalid authorization header")
		return
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		fail(c, 401, "invalid token")
		return
	}

	sub, _ := claims["sub"].(string)

	// resolve the account and release the lock before running the chain;
	// downstream handlers take the same mutex
	s.mu.Lock()
	var user *models.User
	for i := range s.users {
		if s.users[i].ID == sub {
			u := s.users[i].User
			user = &u
			break
		}
	}
	s.mu.Unlock()

	if user == nil {
		fail(c, 401, "unknown account")
		return
	}
	c.Set("user", *user)
	c.Next()
}

func (s *Server) requireAdmin(c *gin.Context) {
	user, _ := c.MustGet("user").(models.User)
	if user.Role != models.RoleAdmin {
		fail(c, 403, "admin role required")
		return
	}
	c.Next()
}

func currentUser(c *gin.Context) models.User {
	user, _ := c.MustGet("user").(models.User)
	return user
}
