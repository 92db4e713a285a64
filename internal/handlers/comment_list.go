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

// CommentLister defines the interface that the service must implement.
type CommentLister interface {
	List(ctx context.Context, viewerID *uuid.UUID, slug string) ([]models.CommentView, error)
}

// NewListCommentsHandler returns an HTTP handler for reading an
// article's comments, oldest first.
// @Summary List comments
// @Description Returns the article's comments, oldest first. With a token the follow state of each author reflects the viewer.
// @Tags comments
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} handlers.CommentsResponse "Comments"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Router /articles/{slug}/comments [get]
func NewListCommentsHandler(svc CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comments, err := svc.List(r.Context(), viewerFromRequest(r), chi.URLParam(r, "slug"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrArticleNotFound):
				writeError(w, http.StatusNotFound, "Article not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, CommentsResponse{Comments: comments})
	}
}
