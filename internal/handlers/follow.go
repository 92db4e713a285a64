package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/services"
)

// Follower defines the interface that the service must implement.
type Follower interface {
	Follow(ctx context.Context, viewerID uuid.UUID, username string) (*models.ProfileView, error)
	Unfollow(ctx context.Context, viewerID uuid.UUID, username string) (*models.ProfileView, error)
}

// NewFollowHandler returns an HTTP handler for following a user.
// Following someone already followed changes nothing.
// @Summary Follow a user
// @Description Makes the authenticated user follow the named user and returns the profile with following set.
// @Tags profiles
// @Produce json
// @Param username path string true "Profile username"
// @Success 200 {object} handlers.ProfileResponse "Followed profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /profiles/{username}/follow [post]
// @Security BearerAuth
func NewFollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		profile, err := svc.Follow(r.Context(), userID, chi.URLParam(r, "username"))
		if err != nil {
			writeFollowError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{Profile: *profile})
	}
}

// NewUnfollowHandler returns an HTTP handler for unfollowing a user.
// Unfollowing someone never followed changes nothing.
// @Summary Unfollow a user
// @Description Makes the authenticated user unfollow the named user and returns the profile with following cleared.
// @Tags profiles
// @Produce json
// @Param username path string true "Profile username"
// @Success 200 {object} handlers.ProfileResponse "Unfollowed profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /profiles/{username}/follow [delete]
// @Security BearerAuth
func NewUnfollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		profile, err := svc.Unfollow(r.Context(), userID, chi.URLParam(r, "username"))
		if err != nil {
			writeFollowError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{Profile: *profile})
	}
}

func writeFollowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
