package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/internal/auth"
	"blogapi/internal/database/posts"
)

// PostsController handles post endpoints. Every write path follows the
// same order: resolve caller, resolve post, check ownership, mutate.
type PostsController struct {
	postsRepo *posts.Repository
}

// NewPostsController creates a new PostsController.
func NewPostsController(postsRepo *posts.Repository) *PostsController {
	return &PostsController{postsRepo: postsRepo}
}

type postRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreatePost creates a post owned by the caller.
// POST /posts
func (pc *PostsController) CreatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	caller := auth.CurrentUser(c)
	post, err := pc.postsRepo.CreatePost(req.Title, req.Content, caller.ID)
	if err != nil {
		respondServiceError(c, err, "create post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts lists published posts, newest first.
// GET /posts
func (pc *PostsController) ListPosts(c *gin.Context) {
	list, err := pc.postsRepo.ListPublished()
	if err != nil {
		respondServiceError(c, err, "list posts")
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetPost returns a single post. Unpublished posts are visible only to
// their author and read as 404 for everyone else.
// GET /posts/:id
func (pc *PostsController) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := pc.postsRepo.GetPostByID(id)
	if err != nil {
		respondServiceError(c, err, "get post")
		return
	}

	if !posts.Visible(post, auth.CurrentUser(c)) {
		respondNotFound(c, "post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost changes a post's title and content; author only.
// PUT /posts/:id
func (pc *PostsController) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	post, err := pc.postsRepo.GetPostByID(id)
	if err != nil {
		respondServiceError(c, err, "get post")
		return
	}

	if !posts.OwnedBy(post, auth.CurrentUser(c).ID) {
		respondForbidden(c)
		return
	}

	if err := pc.postsRepo.UpdatePost(post, req.Title, req.Content); err != nil {
		respondServiceError(c, err, "update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost removes a post and its comments; author only.
// DELETE /posts/:id
func (pc *PostsController) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := pc.postsRepo.GetPostByID(id)
	if err != nil {
		respondServiceError(c, err, "get post")
		return
	}

	if !posts.OwnedBy(post, auth.CurrentUser(c).ID) {
		respondForbidden(c)
		return
	}

	if err := pc.postsRepo.DeletePost(post.ID); err != nil {
		respondServiceError(c, err, "delete post")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "post deleted"})
}
