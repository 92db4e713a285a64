package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"conduit/internal/logger"
	"conduit/internal/services"
)

// CommentDeleter defines the interface that the service must implement.
type CommentDeleter interface {
	Delete(ctx context.Context, userID, commentID uuid.UUID) error
}

// NewDeleteCommentHandler returns an HTTP handler for deleting a
// comment. Only the comment's own author may; the article's author gets
// no special rights over other people's comments.
// @Summary Delete a comment
// @Description Removes the comment with the given id. Comment author only.
// @Tags comments
// @Produce json
// @Param slug path string true "Article slug"
// @Param id path string true "Comment id"
// @Success 204 "Comment deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized / not the comment author"
// @Failure 404 {object} handlers.ErrorResponse "Comment not found"
// @Router /articles/{slug}/comments/{id} [delete]
// @Security BearerAuth
func NewDeleteCommentHandler(svc CommentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		commentID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Comment not found")
			return
		}

		if err := svc.Delete(r.Context(), userID, commentID); err != nil {
			var forbidden *services.ForbiddenError
			switch {
			case errors.Is(err, services.ErrCommentNotFound):
				writeError(w, http.StatusNotFound, "Comment not found")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusUnauthorized, "Unauthorized")
			case errors.As(err, &forbidden):
				writeError(w, http.StatusUnauthorized, "Only the comment author may do that")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
