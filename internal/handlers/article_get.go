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

// ArticleGetter defines the interface that the service must implement.
type ArticleGetter interface {
	Get(ctx context.Context, viewerID *uuid.UUID, slug string) (*models.ArticleView, error)
}

// NewGetArticleHandler returns an HTTP handler for reading a single
// article by slug.
// @Summary Get an article
// @Description Returns the article with the given slug. With a token the favorite and follow state reflect the viewer.
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} handlers.ArticleResponse "Article"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Router /articles/{slug} [get]
func NewGetArticleHandler(svc ArticleGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		article, err := svc.Get(r.Context(), viewerFromRequest(r), slug)
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

		writeJSON(w, http.StatusOK, ArticleResponse{Article: *article})
	}
}
