package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"conduit/internal/models"
	"conduit/internal/services"
)

type commentServiceMocks struct {
	users    *services.MockUserReader
	articles *services.MockArticleReader
	reader   *services.MockCommentReader
	writer   *services.MockCommentWriter
	follows  *services.MockFollowRepo
}

func newCommentService(ctrl *gomock.Controller) (*services.CommentService, commentServiceMocks) {
	m := commentServiceMocks{
		users:    services.NewMockUserReader(ctrl),
		articles: services.NewMockArticleReader(ctrl),
		reader:   services.NewMockCommentReader(ctrl),
		writer:   services.NewMockCommentWriter(ctrl),
		follows:  services.NewMockFollowRepo(ctrl),
	}
	svc := services.NewCommentService(m.users, m.articles, m.reader, m.writer, m.follows)
	return svc, m
}

func TestCommentService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCommentService(ctrl)

	userID := uuid.New()
	bio := "i comment"
	user := &models.UserDB{UserID: userID, Username: "bob", Bio: &bio}
	articleID := uuid.New()
	article := &models.ArticleDB{ArticleID: articleID, Slug: "hello-world"}

	t.Run("successful comment", func(t *testing.T) {
		saved := &models.CommentDB{
			CommentID: uuid.New(),
			ArticleID: articleID,
			AuthorID:  userID,
			Body:      "nice one",
		}

		m.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		m.articles.EXPECT().GetBySlug(gomock.Any(), "hello-world").Return(article, nil)
		m.writer.EXPECT().Save(gomock.Any(), articleID, userID, "nice one").Return(saved, nil)

		view, err := svc.Add(context.Background(), userID, "hello-world", "nice one")
		assert.NoError(t, err)
		assert.Equal(t, "nice one", view.Body)
		assert.Equal(t, "bob", view.Author.Username)
		assert.Equal(t, &bio, view.Author.Bio)
		assert.True(t, view.Author.Following)
	})

	t.Run("unknown user", func(t *testing.T) {
		m.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		_, err := svc.Add(context.Background(), userID, "hello-world", "nice one")
		assert.ErrorIs(t, err, services.ErrAuthorNotFound)
	})

	t.Run("unknown slug", func(t *testing.T) {
		m.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		m.articles.EXPECT().GetBySlug(gomock.Any(), "missing").Return(nil, nil)

		_, err := svc.Add(context.Background(), userID, "missing", "nice one")
		assert.ErrorIs(t, err, services.ErrArticleNotFound)
	})

	t.Run("writer error", func(t *testing.T) {
		m.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		m.articles.EXPECT().GetBySlug(gomock.Any(), "hello-world").Return(article, nil)
		m.writer.EXPECT().Save(gomock.Any(), articleID, userID, "nice one").Return(nil, errors.New("db error"))

		_, err := svc.Add(context.Background(), userID, "hello-world", "nice one")
		assert.EqualError(t, err, "db error")
	})
}

func TestCommentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCommentService(ctrl)

	viewerID := uuid.New()
	aliceID := uuid.New()
	bobID := uuid.New()
	articleID := uuid.New()
	article := &models.ArticleDB{ArticleID: articleID, Slug: "hello-world"}
	comments := []models.CommentDB{
		{CommentID: uuid.New(), AuthorID: aliceID, AuthorUsername: "alice", Body: "first"},
		{CommentID: uuid.New(), AuthorID: bobID, AuthorUsername: "bob", Body: "second"},
	}

	t.Run("authenticated viewer with batched follow lookup", func(t *testing.T) {
		m.articles.EXPECT().GetBySlug(gomock.Any(), "hello-world").Return(article, nil)
		m.reader.EXPECT().ListByArticle(gomock.Any(), articleID).Return(comments, nil)
		m.follows.EXPECT().
			AreFollowing(gomock.Any(), viewerID, []uuid.UUID{aliceID, bobID}).
			Return(map[uuid.UUID]bool{aliceID: true, bobID: false}, nil)

		views, err := svc.List(context.Background(), &viewerID, "hello-world")
		assert.NoError(t, err)
		assert.Len(t, views, 2)
		assert.Equal(t, "first", views[0].Body)
		assert.True(t, views[0].Author.Following)
		assert.False(t, views[1].Author.Following)
	})

	t.Run("anonymous viewer", func(t *testing.T) {
		m.articles.EXPECT().GetBySlug(gomock.Any(), "hello-world").Return(article, nil)
		m.reader.EXPECT().ListByArticle(gomock.Any(), articleID).Return(comments, nil)

		views, err := svc.List(context.Background(), nil, "hello-world")
		assert.NoError(t, err)
		assert.Len(t, views, 2)
		assert.False(t, views[0].Author.Following)
		assert.False(t, views[1].Author.Following)
	})

	t.Run("unknown slug", func(t *testing.T) {
		m.articles.EXPECT().GetBySlug(gomock.Any(), "missing").Return(nil, nil)

		_, err := svc.List(context.Background(), &viewerID, "missing")
		assert.ErrorIs(t, err, services.ErrArticleNotFound)
	})
}

func TestCommentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCommentService(ctrl)

	bobID := uuid.New()
	bob := &models.UserDB{UserID: bobID, Username: "bob"}
	carolID := uuid.New()
	carol := &models.UserDB{UserID: carolID, Username: "carol"}
	commentID := uuid.New()
	comment := &models.CommentDB{CommentID: commentID, AuthorID: bobID, AuthorUsername: "bob"}

	t.Run("author deletes own comment", func(t *testing.T) {
		m.users.EXPECT().GetByID(gomock.Any(), bobID).Return(bob, nil)
		m.reader.EXPECT().GetByID(gomock.Any(), commentID).Return(comment, nil)
		m.writer.EXPECT().Delete(gomock.Any(), commentID).Return(true, nil)

		err := svc.Delete(context.Background(), bobID, commentID)
		assert.NoError(t, err)
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		m.users.EXPECT().GetByID(gomock.Any(), carolID).Return(carol, nil)
		m.reader.EXPECT().GetByID(gomock.Any(), commentID).Return(comment, nil)

		err := svc.Delete(context.Background(), carolID, commentID)
		var forbidden *services.ForbiddenError
		assert.ErrorAs(t, err, &forbidden)
		assert.Equal(t, carolID, forbidden.UserID)
		assert.Equal(t, commentID, forbidden.CommentID)
	})

	t.Run("unknown comment", func(t *testing.T) {
		m.users.EXPECT().GetByID(gomock.Any(), bobID).Return(bob, nil)
		m.reader.EXPECT().GetByID(gomock.Any(), commentID).Return(nil, nil)

		err := svc.Delete(context.Background(), bobID, commentID)
		assert.ErrorIs(t, err, services.ErrCommentNotFound)
	})

	t.Run("comment vanished mid-delete", func(t *testing.T) {
		m.users.EXPECT().GetByID(gomock.Any(), bobID).Return(bob, nil)
		m.reader.EXPECT().GetByID(gomock.Any(), commentID).Return(comment, nil)
		m.writer.EXPECT().Delete(gomock.Any(), commentID).Return(false, nil)

		err := svc.Delete(context.Background(), bobID, commentID)
		assert.ErrorIs(t, err, services.ErrCommentNotFound)
	})
}
