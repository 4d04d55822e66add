// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── posts/           # Post CRUD, visibility and ownership rules
//	└── comments/        # Comment creation and deletion
//
// User persistence lives in the auth service, which operates on the
// shared *gorm.DB directly because registration and credential checks
// are inseparable from user rows.
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific
// operations:
//
//	db, err := database.NewDatabase("./blog.db")
//	postsRepo := posts.NewRepository(db.DB)
//	commentsRepo := comments.NewRepository(db.DB)
//
// Repositories never perform authorization on their own: the pure
// decision helpers (posts.OwnedBy, posts.Visible, comments.OwnedBy) are
// applied by the HTTP layer before any mutation.
package database
