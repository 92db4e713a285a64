package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"conduit/internal/logger"
)

// TagReadRepository reads the global distinct tag list. A full DISTINCT
// over article_tags scales poorly, which is why callers go through the
// cache repository below first.
type TagReadRepository struct {
	db *sqlx.DB
}

func NewTagReadRepository(db *sqlx.DB) *TagReadRepository {
	return &TagReadRepository{db: db}
}

// List returns every distinct tag across all articles, sorted.
func (r *TagReadRepository) List(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT tag FROM article_tags ORDER BY tag`

	var tags []string
	err := r.db.SelectContext(ctx, &tags, query)

	logger.Log.Debugw("tag list query", "count", len(tags), "error", err)

	if err != nil {
		return nil, err
	}
	return tags, nil
}

const tagCacheKey = "tags"

// TagCacheRepository caches the tag list in Redis with a TTL.
type TagCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewTagCacheRepository(client *redis.Client, expiration time.Duration) *TagCacheRepository {
	return &TagCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached tag list. A cache miss is an error; callers
// fall back to the SQL repository.
func (r *TagCacheRepository) Get(ctx context.Context) ([]string, error) {
	val, err := r.client.Get(ctx, tagCacheKey).Result()
	if err != nil {
		logger.Log.Debugw("tag cache miss", "key", tagCacheKey, "error", err)
		return nil, err
	}

	var tags []string
	if err := json.Unmarshal([]byte(val), &tags); err != nil {
		logger.Log.Debugw("tag cache decode failed", "key", tagCacheKey, "error", err)
		return nil, err
	}

	return tags, nil
}

// Set caches the tag list with the configured expiration.
func (r *TagCacheRepository) Set(ctx context.Context, tags []string) error {
	data, err := json.Marshal(tags)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, tagCacheKey, data, r.exp).Err()

	logger.Log.Debugw("tag cache set", "key", tagCacheKey, "count", len(tags), "error", err)

	return err
}
