package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogapi/internal/auth"
	"blogapi/internal/database/comments"
	"blogapi/internal/database/posts"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the standard success response for delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --- Error Response Helpers ---

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Detail: resource + " not found"})
}

// respondForbidden sends a 403 Forbidden response.
func respondForbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrorResponse{Detail: "not enough permissions"})
}

// respondBindingError maps request binding/validation failures to 422.
func respondBindingError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) && len(verr) > 0 {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: verr[0].Error()})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid request body"})
}

// respondServiceError maps service and repository errors onto the HTTP
// error taxonomy. Unknown errors are logged and surfaced as 500; they
// are never masked into a 4xx.
func respondServiceError(c *gin.Context, err error, context string) {
	switch {
	case auth.IsConflict(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})
	case errors.Is(err, auth.ErrInactiveAccount):
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	case errors.Is(err, auth.ErrUserNotFound):
		respondNotFound(c, "user")
	case errors.Is(err, posts.ErrNotFound):
		respondNotFound(c, "post")
	case errors.Is(err, comments.ErrNotFound):
		respondNotFound(c, "comment")
	case isValidationError(err):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error()})
	default:
		log.Printf("Internal error (%s): %v", context, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
	}
}

// isValidationError covers the auth service's input validation sentinels.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		auth.ErrUsernameRequired,
		auth.ErrEmailRequired,
		auth.ErrPasswordRequired,
		auth.ErrUsernameInvalid,
		auth.ErrEmailInvalid,
		auth.ErrPasswordTooShort,
		auth.ErrPasswordTooLong,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with 422 and returns false on garbage input.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid " + paramName})
		return 0, false
	}
	return uint(id), true
}
