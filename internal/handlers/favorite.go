package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"conduit/internal/models"
)

// Favoriter defines the interface that the service must implement.
type Favoriter interface {
	Favorite(ctx context.Context, userID uuid.UUID, slug string) (*models.ArticleView, models.FavoriteOutcome, error)
	Unfavorite(ctx context.Context, userID uuid.UUID, slug string) (*models.ArticleView, models.UnfavoriteOutcome, error)
}

// NewFavoriteArticleHandler returns an HTTP handler for favoriting an
// article. Favoriting an article twice changes nothing.
// @Summary Favorite an article
// @Description Marks the article as a favorite of the authenticated user and returns it with a fresh favorites count.
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} handlers.ArticleResponse "Favorited article"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Router /articles/{slug}/favorite [post]
// @Security BearerAuth
func NewFavoriteArticleHandler(svc Favoriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		article, _, err := svc.Favorite(r.Context(), userID, chi.URLParam(r, "slug"))
		if err != nil {
			writeArticleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ArticleResponse{Article: *article})
	}
}

// NewUnfavoriteArticleHandler returns an HTTP handler for removing an
// article from the user's favorites. Unfavoriting an article never
// favorited changes nothing.
// @Summary Unfavorite an article
// @Description Removes the article from the authenticated user's favorites and returns it with a fresh favorites count.
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} handlers.ArticleResponse "Unfavorited article"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Router /articles/{slug}/favorite [delete]
// @Security BearerAuth
func NewUnfavoriteArticleHandler(svc Favoriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		article, _, err := svc.Unfavorite(r.Context(), userID, chi.URLParam(r, "slug"))
		if err != nil {
			writeArticleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ArticleResponse{Article: *article})
	}
}
