package services

import (
	"context"

	"github.com/google/uuid"

	"conduit/internal/logger"
	"conduit/internal/models"
)

// CommentReader defines read operations for comments.
type CommentReader interface {
	GetByID(ctx context.Context, commentID uuid.UUID) (*models.CommentDB, error)
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]models.CommentDB, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, articleID, authorID uuid.UUID, body string) (*models.CommentDB, error)
	Delete(ctx context.Context, commentID uuid.UUID) (bool, error)
}

// CommentService handles commenting on articles.
type CommentService struct {
	users    UserReader
	articles ArticleReader
	reader   CommentReader
	writer   CommentWriter
	follows  FollowRepo
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(users UserReader, articles ArticleReader, reader CommentReader, writer CommentWriter, follows FollowRepo) *CommentService {
	return &CommentService{
		users:    users,
		articles: articles,
		reader:   reader,
		writer:   writer,
		follows:  follows,
	}
}

// Add creates a comment on the article and returns the commenter's view
// of it.
func (svc *CommentService) Add(ctx context.Context, userID uuid.UUID, slug, body string) (*models.CommentView, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrAuthorNotFound
	}

	article, err := svc.articles.GetBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to get article", "slug", slug, "err", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	comment, err := svc.writer.Save(ctx, article.ArticleID, userID, body)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "slug", slug, "err", err)
		return nil, err
	}

	comment.AuthorUsername = user.Username
	comment.AuthorBio = user.Bio
	comment.AuthorImage = user.Image

	// Every user follows themselves (self-follow at sign-up), so the
	// commenter always sees their own author profile as followed.
	view := models.NewCommentView(comment, true)
	return &view, nil
}

// List returns the article's comments, oldest first, as seen by the
// viewer (nil for anonymous).
func (svc *CommentService) List(ctx context.Context, viewerID *uuid.UUID, slug string) ([]models.CommentView, error) {
	article, err := svc.articles.GetBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to get article", "slug", slug, "err", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	comments, err := svc.reader.ListByArticle(ctx, article.ArticleID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "slug", slug, "err", err)
		return nil, err
	}

	views := make([]models.CommentView, 0, len(comments))

	if viewerID == nil {
		for i := range comments {
			views = append(views, models.NewCommentView(&comments[i], false))
		}
		return views, nil
	}

	// One batched follow lookup over the comment authors.
	authorIDs := make([]uuid.UUID, 0, len(comments))
	for i := range comments {
		authorIDs = append(authorIDs, comments[i].AuthorID)
	}
	following, err := svc.follows.AreFollowing(ctx, *viewerID, authorIDs)
	if err != nil {
		logger.Log.Errorw("failed to batch follow lookup", "slug", slug, "err", err)
		return nil, err
	}

	for i := range comments {
		views = append(views, models.NewCommentView(&comments[i], following[comments[i].AuthorID]))
	}
	return views, nil
}

// Delete removes a comment. Only the comment's own author may.
func (svc *CommentService) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	comment, err := svc.reader.GetByID(ctx, commentID)
	if err != nil {
		logger.Log.Errorw("failed to get comment", "comment_id", commentID, "err", err)
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if !user.CanDeleteComment(comment) {
		return &ForbiddenError{UserID: userID, CommentID: commentID}
	}

	deleted, err := svc.writer.Delete(ctx, commentID)
	if err != nil {
		logger.Log.Errorw("failed to delete comment", "comment_id", commentID, "err", err)
		return err
	}
	if !deleted {
		return ErrCommentNotFound
	}
	return nil
}
