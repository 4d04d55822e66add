package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogapi/internal/entities"
)

// ContextKeyUser is the Gin context key holding the resolved *entities.User.
const ContextKeyUser = "auth_user"

// Middleware resolves bearer tokens to active users.
type Middleware struct {
	service *Service
	issuer  *TokenIssuer
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(service *Service, issuer *TokenIssuer) *Middleware {
	return &Middleware{
		service: service,
		issuer:  issuer,
	}
}

// RequireAuth aborts with 401 unless the request carries a valid bearer
// token that resolves to an existing user, and with 400 when the account
// is disabled. On success the resolved user is stored in the context.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.resolve(c)
		if err != nil {
			if errors.Is(err, ErrInactiveAccount) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"detail": "inactive user",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "could not validate credentials",
			})
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is present but
// never aborts. Read paths use it so authors can see their own
// unpublished posts while anonymous requests still succeed.
func (m *Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := m.resolve(c); err == nil {
			c.Set(ContextKeyUser, user)
		}
		c.Next()
	}
}

// resolve verifies the bearer token and looks up its subject. Signature,
// expiry and malformed-token failures are indistinguishable from a
// missing user.
func (m *Middleware) resolve(c *gin.Context) (*entities.User, error) {
	token := extractBearerToken(c)
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims, err := m.issuer.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := m.service.GetUserByUsername(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	return user, nil
}

// extractBearerToken pulls the token out of "Authorization: Bearer <t>".
func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// CurrentUser retrieves the authenticated user from the Gin context.
// Returns nil when the request is anonymous.
func CurrentUser(c *gin.Context) *entities.User {
	if v, exists := c.Get(ContextKeyUser); exists {
		if user, ok := v.(*entities.User); ok {
			return user
		}
	}
	return nil
}
