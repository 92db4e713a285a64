package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"-" db:"user_id"`                // Primary key
	Username     string    `json:"username" db:"username"`        // Unique username
	Email        string    `json:"email" db:"email"`              // Unique email
	Bio          *string   `json:"bio" db:"bio"`                  // Optional bio
	Image        *string   `json:"image" db:"image"`              // Optional avatar URL
	PasswordHash string    `json:"-" db:"password_hash"`          // Hashed password, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`    // Last update timestamp
}

// Profile is the public-facing subset of a user.
type Profile struct {
	Username string  `json:"username"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}

// Profile returns the public projection of the user.
func (u *UserDB) Profile() Profile {
	return Profile{
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
	}
}

// CanModifyArticle reports whether the user is allowed to update or
// delete the given article. Only the author may.
func (u *UserDB) CanModifyArticle(a *ArticleDB) bool {
	return a.AuthorUsername == u.Username
}

// CanDeleteComment reports whether the user is allowed to delete the
// given comment. Only the comment's own author may.
func (u *UserDB) CanDeleteComment(c *CommentDB) bool {
	return c.AuthorUsername == u.Username
}

// UserUpdate carries a partial user update. Nil fields keep their
// previous value.
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
	Bio      *string
	Image    *string
}
