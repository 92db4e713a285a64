package services

import (
	"context"

	"github.com/google/uuid"

	"conduit/internal/logger"
	"conduit/internal/models"
)

// FollowRepo defines the follow join-row operations. Save and Delete are
// idempotent; the bool reports whether a row actually changed.
type FollowRepo interface {
	Save(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	Delete(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	IsFollowing(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	AreFollowing(ctx context.Context, followerID uuid.UUID, followedIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

// ProfileService resolves public profiles and follow state transitions.
type ProfileService struct {
	users   UserReader
	follows FollowRepo
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(users UserReader, follows FollowRepo) *ProfileService {
	return &ProfileService{
		users:   users,
		follows: follows,
	}
}

// Get returns the profile as seen by the viewer. A nil viewer is an
// anonymous request: following is always false.
func (svc *ProfileService) Get(ctx context.Context, viewerID *uuid.UUID, username string) (*models.ProfileView, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	following := false
	if viewerID != nil {
		following, err = svc.follows.IsFollowing(ctx, *viewerID, user.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get follow state", "username", username, "err", err)
			return nil, err
		}
	}

	view := models.NewProfileView(user.Profile(), following)
	return &view, nil
}

// Follow makes the viewer follow the named user. Re-following is a
// no-op.
func (svc *ProfileService) Follow(ctx context.Context, viewerID uuid.UUID, username string) (*models.ProfileView, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if _, err := svc.follows.Save(ctx, viewerID, user.UserID); err != nil {
		logger.Log.Errorw("failed to save follow", "username", username, "err", err)
		return nil, err
	}

	view := models.NewProfileView(user.Profile(), true)
	return &view, nil
}

// Unfollow makes the viewer unfollow the named user. Unfollowing someone
// never followed is a no-op.
func (svc *ProfileService) Unfollow(ctx context.Context, viewerID uuid.UUID, username string) (*models.ProfileView, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if _, err := svc.follows.Delete(ctx, viewerID, user.UserID); err != nil {
		logger.Log.Errorw("failed to delete follow", "username", username, "err", err)
		return nil, err
	}

	view := models.NewProfileView(user.Profile(), false)
	return &view, nil
}
