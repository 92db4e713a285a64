package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/services"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, update models.UserUpdate) (*models.UserDB, error)
}

// UpdateUserRequest represents the JSON body for a partial user update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	User struct {
		// New username
		Username *string `json:"username"`

		// New email
		Email *string `json:"email"`

		// New password
		Password *string `json:"password"`

		// New bio
		Bio *string `json:"bio"`

		// New avatar URL
		Image *string `json:"image"`
	} `json:"user"`
}

// NewUpdateUserHandler returns an HTTP handler for updating the
// authenticated user. Absent fields keep their previous value.
// @Summary Update current user
// @Description Applies a partial update to the authenticated user. A new password is re-hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param updateUserRequest body handlers.UpdateUserRequest true "User update request"
// @Success 200 {object} handlers.UserResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Username or email already exists / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /user [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		update := models.UserUpdate{
			Username: req.User.Username,
			Email:    req.User.Email,
			Password: req.User.Password,
			Bio:      req.User.Bio,
			Image:    req.User.Image,
		}

		user, err := svc.Update(r.Context(), userID, update)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, "Username or email already exists")
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
