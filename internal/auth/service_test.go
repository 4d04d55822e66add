package auth

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogapi/internal/config"
	"blogapi/internal/entities"
)

func setupTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	dbPath := "./test_auth_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	service := NewService(db, config.Auth{
		TokenTTL:   time.Minute,
		BcryptCost: 4, // keep tests fast
	})

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return service, cleanup
}

func TestService_Register(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	user, err := service.Register("alice", "alice@example.com", "password123")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestService_Register_Validation(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"missing username", "", "a@example.com", "password123", ErrUsernameRequired},
		{"missing email", "alice", "", "password123", ErrEmailRequired},
		{"missing password", "alice", "a@example.com", "", ErrPasswordRequired},
		{"bad username", "a!", "a@example.com", "password123", ErrUsernameInvalid},
		{"bad email", "alice", "not-an-email", "password123", ErrEmailInvalid},
		{"short password", "alice", "a@example.com", "short", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Register_Conflicts(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.Register("alice", "alice@example.com", "password123")
	require.NoError(t, err)

	// Same email, different username: email is checked first
	_, err = service.Register("bob", "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Same username, different email
	_, err = service.Register("alice", "bob@example.com", "password123")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// Both taken: email conflict wins
	_, err = service.Register("alice", "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Authenticate(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	created, err := service.Register("alice", "alice@example.com", "password123")
	require.NoError(t, err)

	user, err := service.Authenticate("alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	// Wrong password and unknown user fail identically
	_, err = service.Authenticate("alice", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Authenticate("nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_UpdateProfile(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	user, err := service.Register("alice", "alice@example.com", "password123")
	require.NoError(t, err)

	t.Run("partial update changes only provided fields", func(t *testing.T) {
		email := "new@example.com"
		updated, err := service.UpdateProfile(user.ID, &email, nil)
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", updated.Email)
		assert.True(t, updated.IsActive)
	})

	t.Run("deactivation", func(t *testing.T) {
		inactive := false
		updated, err := service.UpdateProfile(user.ID, nil, &inactive)
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
	})

	t.Run("email conflict with another user", func(t *testing.T) {
		_, err := service.Register("bob", "bob@example.com", "password123")
		require.NoError(t, err)

		email := "bob@example.com"
		_, err = service.UpdateProfile(user.ID, &email, nil)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("unknown user", func(t *testing.T) {
		email := "x@example.com"
		_, err := service.UpdateProfile(99999, &email, nil)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_GetUserByUsername(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	created, err := service.Register("alice", "alice@example.com", "password123")
	require.NoError(t, err)

	user, err := service.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = service.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
