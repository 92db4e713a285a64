package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ArticleDB represents an article row joined with its author and the
// derived favorites count.
type ArticleDB struct {
	ArticleID      uuid.UUID `json:"-" db:"article_id"`                  // Primary key
	Slug           string    `json:"slug" db:"slug"`                     // Unique, derived from the title at publish time
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	Body           string    `json:"body" db:"body"`
	AuthorID       uuid.UUID `json:"-" db:"author_id"`
	AuthorUsername string    `json:"-" db:"author_username"`
	AuthorBio      *string   `json:"-" db:"author_bio"`
	AuthorImage    *string   `json:"-" db:"author_image"`
	FavoritesCount int       `json:"favorites_count" db:"favorites_count"` // COUNT over favorites, never stored
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
	TagList        []string  `json:"tag_list" db:"-"` // Loaded from article_tags
}

// Author returns the article author's public profile.
func (a *ArticleDB) Author() Profile {
	return Profile{
		Username: a.AuthorUsername,
		Bio:      a.AuthorBio,
		Image:    a.AuthorImage,
	}
}

// ArticleDraft is the content of an article about to be published.
type ArticleDraft struct {
	Title       string
	Description string
	Body        string
	TagList     []string
}

// Slug derives the article slug from the draft title.
func (d ArticleDraft) Slug() string {
	return Slugify(d.Title)
}

// Slugify lowercases the title and joins its whitespace-separated words
// with hyphens. Uniqueness is enforced by the database, not here.
func Slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

// ArticleUpdate carries a partial article update. Nil fields keep their
// previous value. The slug is not recomputed on a title change.
type ArticleUpdate struct {
	Title       *string
	Description *string
	Body        *string
}

// ArticleFilter narrows article listing. Zero values mean "no filter".
type ArticleFilter struct {
	Author      string // author username
	Tag         string
	FavoritedBy string // username of the user who favorited
	Limit       int
	Offset      int
}
