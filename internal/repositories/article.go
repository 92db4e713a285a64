package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"conduit/internal/logger"
	"conduit/internal/models"
)

// articleSelect joins the author and derives the favorites count. The
// count is never stored, so it cannot drift.
const articleSelect = `
	SELECT a.article_id, a.slug, a.title, a.description, a.body,
	       a.author_id,
	       u.username AS author_username,
	       u.bio      AS author_bio,
	       u.image    AS author_image,
	       (SELECT COUNT(*) FROM favorites f WHERE f.article_id = a.article_id) AS favorites_count,
	       a.created_at, a.updated_at
	FROM articles a
	JOIN users u ON u.user_id = a.author_id
`

// ArticleReadRepository reads article rows joined with their author.
type ArticleReadRepository struct {
	db *sqlx.DB
}

func NewArticleReadRepository(db *sqlx.DB) *ArticleReadRepository {
	return &ArticleReadRepository{db: db}
}

// GetBySlug returns the article with its tags, or (nil, nil) when absent.
func (r *ArticleReadRepository) GetBySlug(ctx context.Context, slug string) (*models.ArticleDB, error) {
	const query = articleSelect + ` WHERE a.slug = $1`

	var article models.ArticleDB
	err := r.db.GetContext(ctx, &article, query, slug)

	logger.Log.Debugw("article query", "slug", slug, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	articles := []models.ArticleDB{article}
	if err := r.loadTags(ctx, articles); err != nil {
		return nil, err
	}
	return &articles[0], nil
}

// List returns articles matching the filter, newest first.
func (r *ArticleReadRepository) List(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleDB, error) {
	query := articleSelect
	var conds []string
	var args []any

	if filter.Author != "" {
		args = append(args, filter.Author)
		conds = append(conds, fmt.Sprintf("u.username = $%d", len(args)))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM article_tags t WHERE t.article_id = a.article_id AND t.tag = $%d)", len(args)))
	}
	if filter.FavoritedBy != "" {
		args = append(args, filter.FavoritedBy)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM favorites f JOIN users fu ON fu.user_id = f.user_id WHERE f.article_id = a.article_id AND fu.username = $%d)", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	var articles []models.ArticleDB
	err := r.db.SelectContext(ctx, &articles, query, args...)

	logger.Log.Debugw("article list query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"count", len(articles),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if err := r.loadTags(ctx, articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Feed returns articles authored by users the viewer follows, newest
// first. The self-follow row inserted at sign-up means a viewer's own
// articles are included.
func (r *ArticleReadRepository) Feed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]models.ArticleDB, error) {
	const query = articleSelect + `
		WHERE a.author_id IN (SELECT followed_id FROM follows WHERE follower_id = $1)
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var articles []models.ArticleDB
	err := r.db.SelectContext(ctx, &articles, query, viewerID, limit, offset)

	logger.Log.Debugw("feed query", "viewer_id", viewerID, "count", len(articles), "error", err)

	if err != nil {
		return nil, err
	}
	if err := r.loadTags(ctx, articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// loadTags fills TagList for every article in one batched query.
func (r *ArticleReadRepository) loadTags(ctx context.Context, articles []models.ArticleDB) error {
	if len(articles) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(articles))
	for i := range articles {
		ids = append(ids, articles[i].ArticleID)
	}

	query, args, err := sqlx.In(`SELECT article_id, tag FROM article_tags WHERE article_id IN (?) ORDER BY tag`, ids)
	if err != nil {
		return err
	}
	query = r.db.Rebind(query)

	var rows []struct {
		ArticleID uuid.UUID `db:"article_id"`
		Tag       string    `db:"tag"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return err
	}

	tagsByID := make(map[uuid.UUID][]string, len(articles))
	for _, row := range rows {
		tagsByID[row.ArticleID] = append(tagsByID[row.ArticleID], row.Tag)
	}
	for i := range articles {
		articles[i].TagList = tagsByID[articles[i].ArticleID]
	}
	return nil
}

// ArticleWriteRepository writes article rows.
type ArticleWriteRepository struct {
	db *sqlx.DB
}

func NewArticleWriteRepository(db *sqlx.DB) *ArticleWriteRepository {
	return &ArticleWriteRepository{db: db}
}

// Save inserts the article and its tags in one transaction. A duplicate
// slug surfaces as a unique violation from the database; callers detect
// it with IsUniqueViolation.
func (r *ArticleWriteRepository) Save(ctx context.Context, authorID uuid.UUID, slug string, draft models.ArticleDraft) (uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	const insertArticle = `
		INSERT INTO articles (article_id, slug, title, description, body, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING article_id
	`

	articleID := uuid.New()
	var inserted uuid.UUID
	if err := tx.GetContext(ctx, &inserted, insertArticle,
		articleID, slug, draft.Title, draft.Description, draft.Body, authorID); err != nil {
		logger.Log.Debugw("insert article failed", "slug", slug, "error", err)
		return uuid.Nil, err
	}

	const insertTag = `INSERT INTO article_tags (article_id, tag) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	for _, tag := range draft.TagList {
		if _, err := tx.ExecContext(ctx, insertTag, articleID, tag); err != nil {
			logger.Log.Debugw("insert tag failed", "slug", slug, "tag", tag, "error", err)
			return uuid.Nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	logger.Log.Debugw("article saved", "article_id", articleID, "slug", slug)
	return articleID, nil
}

// Update patches title, description and body. The slug column is absent
// on purpose: slugs are immutable once published.
func (r *ArticleWriteRepository) Update(ctx context.Context, slug string, update models.ArticleUpdate) (bool, error) {
	const query = `
		UPDATE articles
		SET title       = COALESCE($2, title),
		    description = COALESCE($3, description),
		    body        = COALESCE($4, body),
		    updated_at  = NOW()
		WHERE slug = $1
	`

	res, err := r.db.ExecContext(ctx, query, slug, update.Title, update.Description, update.Body)
	if err != nil {
		logger.Log.Debugw("update article failed", "slug", slug, "error", err)
		return false, err
	}
	rows, _ := res.RowsAffected()

	logger.Log.Debugw("article updated", "slug", slug, "rows", rows)
	return rows > 0, nil
}

// Delete removes the article. Tags, comments and favorites cascade.
func (r *ArticleWriteRepository) Delete(ctx context.Context, slug string) (bool, error) {
	const query = `DELETE FROM articles WHERE slug = $1`

	res, err := r.db.ExecContext(ctx, query, slug)
	if err != nil {
		logger.Log.Debugw("delete article failed", "slug", slug, "error", err)
		return false, err
	}
	rows, _ := res.RowsAffected()

	logger.Log.Debugw("article deleted", "slug", slug, "rows", rows)
	return rows > 0, nil
}
