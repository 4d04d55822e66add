package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/internal/auth"
	"blogapi/internal/database/comments"
	"blogapi/internal/database/posts"
)

// CommentsController handles comment endpoints. Comments are
// create/delete only; there is no update path.
type CommentsController struct {
	commentsRepo *comments.Repository
	postsRepo    *posts.Repository
}

// NewCommentsController creates a new CommentsController.
func NewCommentsController(commentsRepo *comments.Repository, postsRepo *posts.Repository) *CommentsController {
	return &CommentsController{
		commentsRepo: commentsRepo,
		postsRepo:    postsRepo,
	}
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateComment adds a comment to an existing published post.
// POST /posts/:id/comments
func (cc *CommentsController) CreateComment(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	caller := auth.CurrentUser(c)
	comment, err := cc.commentsRepo.CreateComment(req.Content, caller.ID, postID)
	if err != nil {
		respondServiceError(c, err, "create comment")
		return
	}

	c.JSON(http.StatusOK, comment)
}

// ListComments lists a post's comments, oldest first. The post must be
// visible to the caller.
// GET /posts/:id/comments
func (cc *CommentsController) ListComments(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := cc.postsRepo.GetPostByID(postID)
	if err != nil {
		respondServiceError(c, err, "get post")
		return
	}
	if !posts.Visible(post, auth.CurrentUser(c)) {
		respondNotFound(c, "post")
		return
	}

	list, err := cc.commentsRepo.ListByPost(post.ID)
	if err != nil {
		respondServiceError(c, err, "list comments")
		return
	}

	c.JSON(http.StatusOK, list)
}

// DeleteComment removes a comment; author only.
// DELETE /comments/:id
func (cc *CommentsController) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comment, err := cc.commentsRepo.GetCommentByID(id)
	if err != nil {
		respondServiceError(c, err, "get comment")
		return
	}

	if !comments.OwnedBy(comment, auth.CurrentUser(c).ID) {
		respondForbidden(c)
		return
	}

	if err := cc.commentsRepo.DeleteComment(comment.ID); err != nil {
		respondServiceError(c, err, "delete comment")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "comment deleted"})
}
