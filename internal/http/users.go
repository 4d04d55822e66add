package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/internal/auth"
	"blogapi/internal/database/posts"
)

// UsersController handles registration, login and user endpoints.
type UsersController struct {
	authService *auth.Service
	tokenIssuer *auth.TokenIssuer
	postsRepo   *posts.Repository
}

// NewUsersController creates a new UsersController.
func NewUsersController(authService *auth.Service, tokenIssuer *auth.TokenIssuer, postsRepo *posts.Repository) *UsersController {
	return &UsersController{
		authService: authService,
		tokenIssuer: tokenIssuer,
		postsRepo:   postsRepo,
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	IsActive *bool   `json:"is_active"`
}

// Register creates a new account.
// POST /register
func (uc *UsersController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := uc.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "register")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login verifies form credentials and issues an access token.
// POST /login
func (uc *UsersController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := uc.authService.Authenticate(username, password)
	if err != nil {
		respondServiceError(c, err, "login")
		return
	}

	token, err := uc.tokenIssuer.Issue(user.Username, user.ID)
	if err != nil {
		respondServiceError(c, err, "issue token")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the authenticated caller.
// GET /users/me
func (uc *UsersController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, auth.CurrentUser(c))
}

// UpdateMe applies a partial profile update; only provided fields change.
// PUT /users/me
func (uc *UsersController) UpdateMe(c *gin.Context) {
	if c.Param("id") != "me" {
		respondNotFound(c, "user")
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	caller := auth.CurrentUser(c)
	user, err := uc.authService.UpdateProfile(caller.ID, req.Email, req.IsActive)
	if err != nil {
		respondServiceError(c, err, "update profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser returns a user's public record. The literal id "me" returns
// the authenticated caller.
// GET /users/:id
func (uc *UsersController) GetUser(c *gin.Context) {
	if c.Param("id") == "me" {
		uc.Me(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.authService.GetUserByID(id)
	if err != nil {
		respondServiceError(c, err, "get user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserPosts lists a user's published posts.
// GET /users/:id/posts
func (uc *UsersController) GetUserPosts(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// 404 when the user itself is absent, not an empty list
	if _, err := uc.authService.GetUserByID(id); err != nil {
		respondServiceError(c, err, "get user")
		return
	}

	list, err := uc.postsRepo.ListPublishedByAuthor(id)
	if err != nil {
		respondServiceError(c, err, "list user posts")
		return
	}

	c.JSON(http.StatusOK, list)
}
