package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"conduit/internal/logger"
	"conduit/internal/models"
)

const userColumns = `user_id, username, email, bio, image, password_hash, created_at, updated_at`

// UserReadRepository reads user rows. Lookups that find nothing return
// (nil, nil).
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// GetByUsernameOrEmail returns the first user matching either value.
// Used for the sign-up uniqueness pre-check.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2 LIMIT 1`
	return r.getOne(ctx, query, username, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository writes user rows.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and the self-follow row in one transaction.
// Every user follows themselves from the moment they exist, so their own
// articles show up in their feed and on their own comments.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	const insertUser = `
		INSERT INTO users (user_id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + userColumns

	var user models.UserDB
	if err := tx.GetContext(ctx, &user, insertUser, uuid.New(), username, email, passwordHash); err != nil {
		logger.Log.Debugw("insert user failed", "username", username, "error", err)
		return nil, err
	}

	const insertSelfFollow = `
		INSERT INTO follows (follower_id, followed_id)
		VALUES ($1, $1)
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, insertSelfFollow, user.UserID); err != nil {
		logger.Log.Debugw("insert self-follow failed", "user_id", user.UserID, "error", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logger.Log.Debugw("user saved", "user_id", user.UserID, "username", username)
	return &user, nil
}

// Update patches a user row. Nil arguments keep the previous value.
// The password hash is never logged.
func (r *UserWriteRepository) Update(ctx context.Context, userID uuid.UUID, username, email, passwordHash, bio, image *string) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET username      = COALESCE($2, username),
		    email         = COALESCE($3, email),
		    password_hash = COALESCE($4, password_hash),
		    bio           = COALESCE($5, bio),
		    image         = COALESCE($6, image),
		    updated_at    = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID, username, email, passwordHash, bio, image)

	logger.Log.Debugw("user updated", "user_id", userID, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
