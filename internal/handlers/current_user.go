package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/services"
)

// CurrentUserGetter defines the interface that the service must implement.
type CurrentUserGetter interface {
	GetCurrent(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewCurrentUserHandler returns an HTTP handler for reading the
// authenticated user.
// @Summary Get current user
// @Description Returns the user owning the presented token. The token is echoed back in the payload.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /user [get]
// @Security BearerAuth
func NewCurrentUserHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.GetCurrent(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusUnauthorized, "Unauthorized")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, NewUserResponse(user, bearerToken(r)))
	}
}
