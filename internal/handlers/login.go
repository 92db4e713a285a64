package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	User struct {
		// Email
		// required: true
		// default: alice@example.com
		Email string `json:"email"`

		// Password
		// required: true
		// default: secret123
		Password string `json:"password"`
	} `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Authenticate a user
// @Description Verifies email and password and returns the user with a fresh token. An unknown email and a wrong password produce the same response.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} handlers.UserResponse "Authenticated user"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, token, err := svc.Login(r.Context(), req.User.Email, req.User.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, NewUserResponse(user, token))
	}
}
