package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"conduit/internal/middlewares"
	"conduit/internal/models"
)

// ErrorResponse is the error body shared by every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// UserBody is the authenticated-user payload.
type UserBody struct {
	Email    string  `json:"email"`
	Token    string  `json:"token"`
	Username string  `json:"username"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}

// UserResponse wraps a user payload in its envelope
// swagger:model UserResponse
type UserResponse struct {
	User UserBody `json:"user"`
}

// NewUserResponse builds the user envelope from a stored user and a token.
func NewUserResponse(user *models.UserDB, token string) UserResponse {
	return UserResponse{
		User: UserBody{
			Email:    user.Email,
			Token:    token,
			Username: user.Username,
			Bio:      user.Bio,
			Image:    user.Image,
		},
	}
}

// ProfileResponse wraps a profile view in its envelope
// swagger:model ProfileResponse
type ProfileResponse struct {
	Profile models.ProfileView `json:"profile"`
}

// ArticleResponse wraps a single article view in its envelope
// swagger:model ArticleResponse
type ArticleResponse struct {
	Article models.ArticleView `json:"article"`
}

// ArticlesResponse wraps an article page in its envelope
// swagger:model ArticlesResponse
type ArticlesResponse struct {
	Articles      []models.ArticleView `json:"articles"`
	ArticlesCount int                  `json:"articlesCount"`
}

// CommentResponse wraps a single comment view in its envelope
// swagger:model CommentResponse
type CommentResponse struct {
	Comment models.CommentView `json:"comment"`
}

// CommentsResponse wraps a comment list in its envelope
// swagger:model CommentsResponse
type CommentsResponse struct {
	Comments []models.CommentView `json:"comments"`
}

// TagsResponse wraps the tag list in its envelope
// swagger:model TagsResponse
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// writeJSON writes a JSON body with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes the shared error body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// userIDFromRequest returns the authenticated user set by the auth
// middleware. Missing means the route was wired without it.
func userIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	return middlewares.UserIDFromContext(r.Context())
}

// viewerFromRequest returns the viewer for optionally-authenticated
// endpoints: nil when the request is anonymous.
func viewerFromRequest(r *http.Request) *uuid.UUID {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		return nil
	}
	return &userID
}

// bearerToken returns the raw token from the Authorization header so
// user envelopes can echo it back.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	for _, scheme := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(auth, scheme) {
			return strings.TrimPrefix(auth, scheme)
		}
	}
	return ""
}
