package entities

import (
	"time"
)

// User is a registered account. Passwords are stored only as bcrypt hashes
// and never leave the API; posts and comments reference users by id.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:100" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Post belongs to exactly one author. Unpublished posts are hidden from
// everyone except their author.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"index;size:512" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Published bool      `gorm:"default:true" json:"published"`
	AuthorID  uint      `gorm:"index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment belongs to one post and one author. Comments are create/delete
// only; there is no update path.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text" json:"content"`
	AuthorID  uint      `gorm:"index" json:"author_id"`
	PostID    uint      `gorm:"index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
