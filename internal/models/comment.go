package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents a comment row joined with its author.
type CommentDB struct {
	CommentID      uuid.UUID `json:"id" db:"comment_id"`
	ArticleID      uuid.UUID `json:"-" db:"article_id"`
	Body           string    `json:"body" db:"body"`
	AuthorID       uuid.UUID `json:"-" db:"author_id"`
	AuthorUsername string    `json:"-" db:"author_username"`
	AuthorBio      *string   `json:"-" db:"author_bio"`
	AuthorImage    *string   `json:"-" db:"author_image"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Author returns the comment author's public profile.
func (c *CommentDB) Author() Profile {
	return Profile{
		Username: c.AuthorUsername,
		Bio:      c.AuthorBio,
		Image:    c.AuthorImage,
	}
}
