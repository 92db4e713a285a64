package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserDB_CanModifyArticle(t *testing.T) {
	alice := &UserDB{UserID: uuid.New(), Username: "alice"}
	bob := &UserDB{UserID: uuid.New(), Username: "bob"}

	article := &ArticleDB{Slug: "hello-world", AuthorUsername: "alice"}

	assert.True(t, alice.CanModifyArticle(article))
	assert.False(t, bob.CanModifyArticle(article))
}

func TestUserDB_CanDeleteComment(t *testing.T) {
	alice := &UserDB{UserID: uuid.New(), Username: "alice"}
	bob := &UserDB{UserID: uuid.New(), Username: "bob"}

	comment := &CommentDB{CommentID: uuid.New(), AuthorUsername: "bob"}

	assert.True(t, bob.CanDeleteComment(comment))
	assert.False(t, alice.CanDeleteComment(comment))
}
