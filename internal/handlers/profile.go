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

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, viewerID *uuid.UUID, username string) (*models.ProfileView, error)
}

// NewProfileHandler returns an HTTP handler for reading a public profile.
// @Summary Get a profile
// @Description Returns the named user's public profile. With a token the follow state reflects the viewer; anonymously it is always false.
// @Tags profiles
// @Produce json
// @Param username path string true "Profile username"
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /profiles/{username} [get]
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		profile, err := svc.Get(r.Context(), viewerFromRequest(r), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{Profile: *profile})
	}
}
