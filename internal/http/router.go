package http

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"blogapi/internal/auth"
	"blogapi/internal/database"
	"blogapi/internal/database/comments"
	"blogapi/internal/database/posts"
)

// RouterConfig holds everything NewRouter needs, keeping the signature
// stable as dependencies grow.
type RouterConfig struct {
	Database       *database.Database
	AuthService    *auth.Service
	TokenIssuer    *auth.TokenIssuer
	AuthMiddleware *auth.Middleware
	PostsRepo      *posts.Repository
	CommentsRepo   *comments.Repository
	Version        string
}

var usernameFieldPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)

// registerValidations adds the custom "username" rule to gin's validator
// engine. Safe to call more than once.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernameFieldPattern.MatchString(fl.Field().String())
		})
	}
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	registerValidations()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	requireAuth := cfg.AuthMiddleware.RequireAuth()
	optionalAuth := cfg.AuthMiddleware.OptionalAuth()

	health := NewHealthController(cfg.Database, cfg.Version)
	usersController := NewUsersController(cfg.AuthService, cfg.TokenIssuer, cfg.PostsRepo)
	postsController := NewPostsController(cfg.PostsRepo)
	commentsController := NewCommentsController(cfg.CommentsRepo, cfg.PostsRepo)

	router.GET("/health", health.Status)

	// Credential issuance
	router.POST("/register", usersController.Register)
	router.POST("/login", usersController.Login)

	// Users. "/users/me" shares the ":id" segment and gin's tree rejects
	// a static sibling of a wildcard, so the handlers dispatch on the
	// literal "me" instead.
	userLookupAuth := func(c *gin.Context) {
		if c.Param("id") == "me" {
			requireAuth(c)
			return
		}
		optionalAuth(c)
	}
	router.GET("/users/:id", userLookupAuth, usersController.GetUser)
	router.PUT("/users/:id", requireAuth, usersController.UpdateMe)
	router.GET("/users/:id/posts", usersController.GetUserPosts)

	// Posts
	router.POST("/posts", requireAuth, postsController.CreatePost)
	router.GET("/posts", postsController.ListPosts)
	router.GET("/posts/:id", optionalAuth, postsController.GetPost)
	router.PUT("/posts/:id", requireAuth, postsController.UpdatePost)
	router.DELETE("/posts/:id", requireAuth, postsController.DeletePost)

	// Comments
	router.POST("/posts/:id/comments", requireAuth, commentsController.CreateComment)
	router.GET("/posts/:id/comments", optionalAuth, commentsController.ListComments)
	router.DELETE("/comments/:id", requireAuth, commentsController.DeleteComment)

	return router
}
