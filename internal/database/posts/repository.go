// Package posts provides database operations and access rules for posts.
//
// # Usage
//
//	repo := posts.NewRepository(db)
//	post, err := repo.GetPostByID(id)
package posts

import (
	"errors"

	"gorm.io/gorm"

	"blogapi/internal/entities"
)

// ErrNotFound is returned when a post does not exist. Handlers also map
// visibility-filtered posts to this error so an unpublished post is
// indistinguishable from a missing one.
var ErrNotFound = errors.New("post not found")

// Repository handles all post database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new posts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreatePost creates a post owned by the given author. Posts are
// published by default.
func (r *Repository) CreatePost(title, content string, authorID uint) (*entities.Post, error) {
	post := &entities.Post{
		Title:     title,
		Content:   content,
		Published: true,
		AuthorID:  authorID,
	}

	if err := r.db.Create(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// GetPostByID retrieves a post by ID regardless of publication state.
// Visibility is the caller's decision (see Visible).
func (r *Repository) GetPostByID(id uint) (*entities.Post, error) {
	var post entities.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListPublished returns all published posts, newest first.
func (r *Repository) ListPublished() ([]entities.Post, error) {
	var list []entities.Post
	err := r.db.Where("published = ?", true).Order("created_at DESC").Find(&list).Error
	return list, err
}

// ListPublishedByAuthor returns an author's published posts, newest first.
func (r *Repository) ListPublishedByAuthor(authorID uint) ([]entities.Post, error) {
	var list []entities.Post
	err := r.db.Where("author_id = ? AND published = ?", authorID, true).
		Order("created_at DESC").Find(&list).Error
	return list, err
}

// UpdatePost changes a post's title and content. Ownership must already
// have been checked.
func (r *Repository) UpdatePost(post *entities.Post, title, content string) error {
	return r.db.Model(post).Updates(map[string]any{
		"title":   title,
		"content": content,
	}).Error
}

// DeletePost removes a post and its comments in one transaction, so a
// failure on either side leaves both in place.
func (r *Repository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// OwnedBy reports whether the post belongs to the given user. This is
// the mutation gate: update and delete require ownership.
func OwnedBy(post *entities.Post, userID uint) bool {
	return post.AuthorID == userID
}

// Visible reports whether a post is readable by the given viewer.
// Published posts are visible to everyone; unpublished posts only to
// their author. An anonymous viewer is represented by nil.
func Visible(post *entities.Post, viewer *entities.User) bool {
	if post.Published {
		return true
	}
	return viewer != nil && post.AuthorID == viewer.ID
}
