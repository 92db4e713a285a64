package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ArticleDeleter defines the interface that the service must implement.
type ArticleDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, slug string) error
}

// NewDeleteArticleHandler returns an HTTP handler for deleting an
// article. Only the author may. Comments and favorites of the article go
// with it.
// @Summary Delete an article
// @Description Removes the article and everything attached to it. Author only.
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 204 "Article deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized / not the author"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Router /articles/{slug} [delete]
// @Security BearerAuth
func NewDeleteArticleHandler(svc ArticleDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "slug")); err != nil {
			writeArticleError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
