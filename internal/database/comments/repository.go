// Package comments provides database operations for post comments.
//
// # Usage
//
//	repo := comments.NewRepository(db)
//	comment, err := repo.CreateComment(content, authorID, postID)
package comments

import (
	"errors"

	"gorm.io/gorm"

	"blogapi/internal/database/posts"
	"blogapi/internal/entities"
)

// ErrNotFound is returned when a comment does not exist.
var ErrNotFound = errors.New("comment not found")

// Repository handles all comment database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new comments repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateComment creates a comment on an existing published post. The
// existence check and the insert run in one transaction, so the post
// cannot vanish between them. A missing or unpublished post yields
// posts.ErrNotFound and no comment row.
func (r *Repository) CreateComment(content string, authorID, postID uint) (*entities.Comment, error) {
	comment := &entities.Comment{
		Content:  content,
		AuthorID: authorID,
		PostID:   postID,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post entities.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return posts.ErrNotFound
			}
			return err
		}
		if !post.Published {
			return posts.ErrNotFound
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// GetCommentByID retrieves a comment by ID.
func (r *Repository) GetCommentByID(id uint) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns a post's comments, oldest first. Post visibility is
// the caller's decision.
func (r *Repository) ListByPost(postID uint) ([]entities.Comment, error) {
	var list []entities.Comment
	err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&list).Error
	return list, err
}

// DeleteComment removes a comment. Ownership must already have been
// checked.
func (r *Repository) DeleteComment(id uint) error {
	result := r.db.Delete(&entities.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// OwnedBy reports whether the comment belongs to the given user.
func OwnedBy(comment *entities.Comment, userID uint) bool {
	return comment.AuthorID == userID
}
