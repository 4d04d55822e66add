package comments

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogapi/internal/database/posts"
	"blogapi/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	t.Helper()
	dbPath := "./test_comments_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{}, &entities.Post{}, &entities.Comment{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func createPost(t *testing.T, db *gorm.DB, published bool) *entities.Post {
	t.Helper()
	post := &entities.Post{Title: "A Post", Content: "content", Published: published, AuthorID: 1}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestRepository_CreateComment(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	post := createPost(t, db, true)

	comment, err := repo.CreateComment("nice post", 2, post.ID)

	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, "nice post", comment.Content)
	assert.Equal(t, uint(2), comment.AuthorID)
	assert.Equal(t, post.ID, comment.PostID)
}

func TestRepository_CreateComment_MissingPost(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateComment("orphan", 2, 9999)
	assert.ErrorIs(t, err, posts.ErrNotFound)

	// No comment row may survive the failed transaction
	var count int64
	require.NoError(t, db.Model(&entities.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRepository_CreateComment_UnpublishedPost(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	draft := createPost(t, db, false)

	_, err := repo.CreateComment("sneaky", 2, draft.ID)
	assert.ErrorIs(t, err, posts.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&entities.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRepository_GetCommentByID(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	post := createPost(t, db, true)
	created, err := repo.CreateComment("hello", 2, post.ID)
	require.NoError(t, err)

	comment, err := repo.GetCommentByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, comment.ID)

	_, err = repo.GetCommentByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_ListByPost(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	post := createPost(t, db, true)
	other := createPost(t, db, true)

	_, err := repo.CreateComment("first", 2, post.ID)
	require.NoError(t, err)
	_, err = repo.CreateComment("second", 3, post.ID)
	require.NoError(t, err)
	_, err = repo.CreateComment("elsewhere", 2, other.ID)
	require.NoError(t, err)

	list, err := repo.ListByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Content)
	assert.Equal(t, "second", list[1].Content)
}

func TestRepository_DeleteComment(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	post := createPost(t, db, true)
	comment, err := repo.CreateComment("temp", 2, post.ID)
	require.NoError(t, err)

	err = repo.DeleteComment(comment.ID)
	require.NoError(t, err)

	_, err = repo.GetCommentByID(comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Second delete is not silently ok
	err = repo.DeleteComment(comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOwnedBy(t *testing.T) {
	comment := &entities.Comment{AuthorID: 3}

	assert.True(t, OwnedBy(comment, 3))
	assert.False(t, OwnedBy(comment, 4))
}
