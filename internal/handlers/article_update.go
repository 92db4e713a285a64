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

// ArticleUpdater defines the interface that the service must implement.
type ArticleUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, slug string, update models.ArticleUpdate) (*models.ArticleView, error)
}

// UpdateArticleRequest represents the JSON body for a partial article update
// swagger:model UpdateArticleRequest
type UpdateArticleRequest struct {
	Article struct {
		// New title; the slug does not change
		Title *string `json:"title"`

		// New description
		Description *string `json:"description"`

		// New body
		Body *string `json:"body"`
	} `json:"article"`
}

// NewUpdateArticleHandler returns an HTTP handler for updating an
// article. Only the author may; the slug stays as minted at publish time
// even when the title changes.
// @Summary Update an article
// @Description Applies a partial update to the article's title, description and body. Author only.
// @Tags articles
// @Accept json
// @Produce json
// @Param slug path string true "Article slug"
// @Param updateArticleRequest body handlers.UpdateArticleRequest true "Article update request"
// @Success 200 {object} handlers.ArticleResponse "Updated article"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized / not the author"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Router /articles/{slug} [put]
// @Security BearerAuth
func NewUpdateArticleHandler(svc ArticleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req UpdateArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		update := models.ArticleUpdate{
			Title:       req.Article.Title,
			Description: req.Article.Description,
			Body:        req.Article.Body,
		}

		article, err := svc.Update(r.Context(), userID, chi.URLParam(r, "slug"), update)
		if err != nil {
			writeArticleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ArticleResponse{Article: *article})
	}
}

func writeArticleError(w http.ResponseWriter, err error) {
	var forbidden *services.ForbiddenError
	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		writeError(w, http.StatusNotFound, "Article not found")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.As(err, &forbidden):
		writeError(w, http.StatusUnauthorized, "Only the author may do that")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
