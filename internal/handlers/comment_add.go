package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/services"
)

// CommentAdder defines the interface that the service must implement.
type CommentAdder interface {
	Add(ctx context.Context, userID uuid.UUID, slug, body string) (*models.CommentView, error)
}

// AddCommentRequest represents the JSON body for adding a comment
// swagger:model AddCommentRequest
type AddCommentRequest struct {
	Comment struct {
		// Comment text
		// required: true
		Body string `json:"body"`
	} `json:"comment"`
}

// NewAddCommentHandler returns an HTTP handler for commenting on an
// article.
// @Summary Add a comment
// @Description Attaches a comment by the authenticated user to the article with the given slug.
// @Tags comments
// @Accept json
// @Produce json
// @Param slug path string true "Article slug"
// @Param addCommentRequest body handlers.AddCommentRequest true "Comment body"
// @Success 201 {object} handlers.CommentResponse "Created comment"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Router /articles/{slug}/comments [post]
// @Security BearerAuth
func NewAddCommentHandler(svc CommentAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req AddCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		comment, err := svc.Add(r.Context(), userID, chi.URLParam(r, "slug"), req.Comment.Body)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrArticleNotFound):
				writeError(w, http.StatusNotFound, "Article not found")
			case errors.Is(err, services.ErrAuthorNotFound):
				writeError(w, http.StatusUnauthorized, "Unauthorized")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CommentResponse{Comment: *comment})
	}
}
