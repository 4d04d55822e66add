package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/database/comments"
	"blogapi/internal/database/posts"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	authCfg := config.Auth{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Minute,
		BcryptCost: 4, // keep tests fast
	}

	authService := auth.NewService(db.DB, authCfg)
	tokenIssuer := auth.NewTokenIssuer(authCfg.JWTSecret, authCfg.TokenTTL)
	authMiddleware := auth.NewMiddleware(authService, tokenIssuer)

	router := NewRouter(RouterConfig{
		Database:       db,
		AuthService:    authService,
		TokenIssuer:    tokenIssuer,
		AuthMiddleware: authMiddleware,
		PostsRepo:      posts.NewRepository(db.DB),
		CommentsRepo:   comments.NewRepository(db.DB),
		Version:        "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return router, db, cleanup
}

// doJSON performs a JSON request, optionally with a bearer token.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account and returns its bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine, username, email string) string {
	t.Helper()

	w := doJSON(t, router, "POST", "/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", "password123")

	req, err := http.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	lw := httptest.NewRecorder()
	router.ServeHTTP(lw, req)
	require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "bearer", resp.TokenType)

	return resp.AccessToken
}

// decodeBody unmarshals a recorder body into out.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
