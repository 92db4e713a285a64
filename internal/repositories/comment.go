package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"conduit/internal/logger"
	"conduit/internal/models"
)

const commentSelect = `
	SELECT c.comment_id, c.article_id, c.body,
	       c.author_id,
	       u.username AS author_username,
	       u.bio      AS author_bio,
	       u.image    AS author_image,
	       c.created_at, c.updated_at
	FROM comments c
	JOIN users u ON u.user_id = c.author_id
`

// CommentReadRepository reads comment rows joined with their author.
type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// GetByID returns the comment, or (nil, nil) when absent.
func (r *CommentReadRepository) GetByID(ctx context.Context, commentID uuid.UUID) (*models.CommentDB, error) {
	const query = commentSelect + ` WHERE c.comment_id = $1`

	var comment models.CommentDB
	err := r.db.GetContext(ctx, &comment, query, commentID)

	logger.Log.Debugw("comment query", "comment_id", commentID, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByArticle returns the article's comments, oldest first.
func (r *CommentReadRepository) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]models.CommentDB, error) {
	const query = commentSelect + ` WHERE c.article_id = $1 ORDER BY c.created_at ASC`

	var comments []models.CommentDB
	err := r.db.SelectContext(ctx, &comments, query, articleID)

	logger.Log.Debugw("comment list query", "article_id", articleID, "count", len(comments), "error", err)

	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CommentWriteRepository writes comment rows.
type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// Save inserts a comment and returns the stored row.
func (r *CommentWriteRepository) Save(ctx context.Context, articleID, authorID uuid.UUID, body string) (*models.CommentDB, error) {
	const query = `
		INSERT INTO comments (comment_id, article_id, author_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING comment_id, article_id, author_id, body, created_at, updated_at
	`

	var comment models.CommentDB
	err := r.db.GetContext(ctx, &comment, query, uuid.New(), articleID, authorID, body)

	logger.Log.Debugw("comment saved", "article_id", articleID, "author_id", authorID, "error", err)

	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes the comment. Returns false when the id did not resolve.
func (r *CommentWriteRepository) Delete(ctx context.Context, commentID uuid.UUID) (bool, error) {
	const query = `DELETE FROM comments WHERE comment_id = $1`

	res, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		logger.Log.Debugw("delete comment failed", "comment_id", commentID, "error", err)
		return false, err
	}
	rows, _ := res.RowsAffected()

	logger.Log.Debugw("comment deleted", "comment_id", commentID, "rows", rows)
	return rows > 0, nil
}
