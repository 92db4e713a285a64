package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"conduit/internal/logger"
)

// FavoriteRepository manages the user/article favorite join rows. All
// writes are idempotent: duplicates are absorbed by the primary key, and
// the affected row count tells the caller which outcome occurred.
type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Save inserts the favorite row if absent. Returns true when a row was
// actually inserted, false when the pair already existed.
func (r *FavoriteRepository) Save(ctx context.Context, userID uuid.UUID, slug string) (bool, error) {
	const query = `
		INSERT INTO favorites (user_id, article_id)
		SELECT $1, a.article_id FROM articles a WHERE a.slug = $2
		ON CONFLICT DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query, userID, slug)
	if err != nil {
		logger.Log.Debugw("insert favorite failed", "user_id", userID, "slug", slug, "error", err)
		return false, err
	}
	rows, _ := res.RowsAffected()

	logger.Log.Debugw("favorite saved", "user_id", userID, "slug", slug, "rows", rows)
	return rows > 0, nil
}

// Delete removes the favorite row if present. Returns true when a row
// was actually deleted.
func (r *FavoriteRepository) Delete(ctx context.Context, userID uuid.UUID, slug string) (bool, error) {
	const query = `
		DELETE FROM favorites f
		USING articles a
		WHERE a.article_id = f.article_id AND f.user_id = $1 AND a.slug = $2
	`

	res, err := r.db.ExecContext(ctx, query, userID, slug)
	if err != nil {
		logger.Log.Debugw("delete favorite failed", "user_id", userID, "slug", slug, "error", err)
		return false, err
	}
	rows, _ := res.RowsAffected()

	logger.Log.Debugw("favorite deleted", "user_id", userID, "slug", slug, "rows", rows)
	return rows > 0, nil
}

// Count returns the number of users who favorited the article.
func (r *FavoriteRepository) Count(ctx context.Context, slug string) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM favorites f
		JOIN articles a ON a.article_id = f.article_id
		WHERE a.slug = $1
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, slug)

	logger.Log.Debugw("favorite count query", "slug", slug, "count", count, "error", err)

	return count, err
}

// IsFavorite reports whether the user favorited the article.
func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID uuid.UUID, slug string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM favorites f
			JOIN articles a ON a.article_id = f.article_id
			WHERE f.user_id = $1 AND a.slug = $2
		)
	`

	var favorited bool
	err := r.db.GetContext(ctx, &favorited, query, userID, slug)

	logger.Log.Debugw("is favorite query", "user_id", userID, "slug", slug, "error", err)

	return favorited, err
}

// AreFavorite resolves the favorite state for a batch of slugs in one
// query. The result has an entry for every requested slug, false when
// absent. Used by list views to avoid an N+1 lookup.
func (r *FavoriteRepository) AreFavorite(ctx context.Context, userID uuid.UUID, slugs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		result[slug] = false
	}
	if len(slugs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT a.slug
		FROM favorites f
		JOIN articles a ON a.article_id = f.article_id
		WHERE f.user_id = ? AND a.slug IN (?)
	`, userID, slugs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var favorited []string
	if err := r.db.SelectContext(ctx, &favorited, query, args...); err != nil {
		logger.Log.Debugw("are favorite query failed", "user_id", userID, "error", err)
		return nil, err
	}

	for _, slug := range favorited {
		result[slug] = true
	}
	return result, nil
}
