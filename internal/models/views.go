package models

import (
	"time"

	"github.com/google/uuid"
)

// View types are query-time projections: a stored entity enriched with
// viewer-relative state. They are never persisted.

// ProfileView is a profile as seen by a viewer.
type ProfileView struct {
	Username  string  `json:"username"`
	Bio       *string `json:"bio"`
	Image     *string `json:"image"`
	Following bool    `json:"following"`
}

// NewProfileView combines a profile with the viewer's follow state.
func NewProfileView(p Profile, following bool) ProfileView {
	return ProfileView{
		Username:  p.Username,
		Bio:       p.Bio,
		Image:     p.Image,
		Following: following,
	}
}

// ArticleView is an article as seen by a viewer.
type ArticleView struct {
	Slug           string      `json:"slug"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Body           string      `json:"body"`
	TagList        []string    `json:"tagList"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	Favorited      bool        `json:"favorited"`
	FavoritesCount int         `json:"favoritesCount"`
	Author         ProfileView `json:"author"`
}

// NewArticleView combines an article with the viewer's favorite state and
// the viewer's follow state towards the author.
func NewArticleView(a *ArticleDB, favorited, followingAuthor bool) ArticleView {
	tags := a.TagList
	if tags == nil {
		tags = []string{}
	}
	return ArticleView{
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		TagList:        tags,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		Favorited:      favorited,
		FavoritesCount: a.FavoritesCount,
		Author:         NewProfileView(a.Author(), followingAuthor),
	}
}

// CommentView is a comment as seen by a viewer.
type CommentView struct {
	CommentID uuid.UUID   `json:"id"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Author    ProfileView `json:"author"`
}

// NewCommentView combines a comment with the viewer's follow state
// towards the comment author.
func NewCommentView(c *CommentDB, followingAuthor bool) CommentView {
	return CommentView{
		CommentID: c.CommentID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Author:    NewProfileView(c.Author(), followingAuthor),
	}
}
