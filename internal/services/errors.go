package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Every fallible operation resolves to one of a closed set of outcomes.
// Expected conditions (not found, forbidden, conflict) are sentinel or
// typed errors; only unexpected persistence failures pass through as-is.
var (
	ErrUserAlreadyExists = errors.New("username or email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrAuthorNotFound    = errors.New("author not found")
	ErrArticleNotFound   = errors.New("article not found")
	ErrCommentNotFound   = errors.New("comment not found")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so login failures expose no user-enumeration signal.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ForbiddenError means the user is authenticated but not the owner of
// the target entity.
type ForbiddenError struct {
	UserID    uuid.UUID
	Slug      string    // set for article operations
	CommentID uuid.UUID // set for comment deletion
}

func (e *ForbiddenError) Error() string {
	if e.Slug != "" {
		return fmt.Sprintf("user %s may not modify article %q", e.UserID, e.Slug)
	}
	return fmt.Sprintf("user %s may not delete comment %s", e.UserID, e.CommentID)
}

// DuplicateSlugError means a publish collided with an existing slug.
// The database unique constraint is the source of truth; this is its
// translation.
type DuplicateSlugError struct {
	Slug string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("an article with slug %q already exists", e.Slug)
}
