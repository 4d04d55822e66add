// Package auth provides credential handling and request authentication.
//
// It covers three concerns:
//   - Password hashing and verification (bcrypt)
//   - Issuing and verifying signed, time-limited bearer tokens (JWT, HS256)
//   - Gin middleware that resolves a bearer token to an active user
//
// # Configuration
//
//	AUTH_JWT_SECRET=<secret>  # Auto-generated at startup if empty
//	AUTH_TOKEN_TTL=30m        # Access token lifetime
//	AUTH_BCRYPT_COST=12       # bcrypt cost factor
//
// # Usage
//
// Initialize in entrypoint:
//
//	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
//	service := auth.NewService(db.DB, cfg.Auth)
//	middleware := auth.NewMiddleware(service, issuer)
//
// Protect routes and extract the caller in handlers:
//
//	router.POST("/posts", middleware.RequireAuth(), controller.CreatePost)
//	user := auth.CurrentUser(c)
//
// Tokens are stateless: there is no revocation list, and a token stays
// valid until its expiry. The short default TTL bounds the exposure window.
package auth
