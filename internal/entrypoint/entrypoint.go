package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/database/comments"
	"blogapi/internal/database/posts"
	http_controllers "blogapi/internal/http"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the application together and serves it. All state (database
// handle, signing secret, config) lives on the objects built here and is
// passed down explicitly; there are no package-level singletons.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting blogapi v%s", version)

	if cfg.Auth.JWTSecret == "" {
		secret, err := auth.GenerateSecret()
		if err != nil {
			log.Fatalf("Failed to generate JWT secret: %v", err)
		}
		cfg.Auth.JWTSecret = secret
		log.Printf("WARNING: AUTH_JWT_SECRET is not set. Generated an ephemeral secret; tokens will not survive a restart.")
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	authService := auth.NewService(db.DB, cfg.Auth)
	tokenIssuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authMiddleware := auth.NewMiddleware(authService, tokenIssuer)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:       db,
		AuthService:    authService,
		TokenIssuer:    tokenIssuer,
		AuthMiddleware: authMiddleware,
		PostsRepo:      posts.NewRepository(db.DB),
		CommentsRepo:   comments.NewRepository(db.DB),
		Version:        version,
	})

	Serve(router, cfg)
}
