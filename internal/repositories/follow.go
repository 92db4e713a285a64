package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"conduit/internal/logger"
)

// FollowRepository manages the follower/followed join rows with the same
// idempotent insert/delete pattern as favorites.
type FollowRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Save inserts the follow row if absent.
func (r *FollowRepository) Save(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO follows (follower_id, followed_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query, followerID, followedID)
	if err != nil {
		logger.Log.Debugw("insert follow failed", "follower_id", followerID, "followed_id", followedID, "error", err)
		return false, err
	}
	rows, _ := res.RowsAffected()

	logger.Log.Debugw("follow saved", "follower_id", followerID, "followed_id", followedID, "rows", rows)
	return rows > 0, nil
}

// Delete removes the follow row if present.
func (r *FollowRepository) Delete(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	const query = `DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`

	res, err := r.db.ExecContext(ctx, query, followerID, followedID)
	if err != nil {
		logger.Log.Debugw("delete follow failed", "follower_id", followerID, "followed_id", followedID, "error", err)
		return false, err
	}
	rows, _ := res.RowsAffected()

	logger.Log.Debugw("follow deleted", "follower_id", followerID, "followed_id", followedID, "rows", rows)
	return rows > 0, nil
}

// IsFollowing reports whether follower follows followed.
func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2)`

	var following bool
	err := r.db.GetContext(ctx, &following, query, followerID, followedID)

	logger.Log.Debugw("is following query", "follower_id", followerID, "followed_id", followedID, "error", err)

	return following, err
}

// AreFollowing resolves the follow state towards a batch of users in one
// query. The result has an entry for every requested id, false when
// absent.
func (r *FollowRepository) AreFollowing(ctx context.Context, followerID uuid.UUID, followedIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(followedIDs))
	for _, id := range followedIDs {
		result[id] = false
	}
	if len(followedIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`SELECT followed_id FROM follows WHERE follower_id = ? AND followed_id IN (?)`, followerID, followedIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var followed []uuid.UUID
	if err := r.db.SelectContext(ctx, &followed, query, args...); err != nil {
		logger.Log.Debugw("are following query failed", "follower_id", followerID, "error", err)
		return nil, err
	}

	for _, id := range followed {
		result[id] = true
	}
	return result, nil
}
