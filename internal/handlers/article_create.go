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

// ArticlePublisher defines the interface that the service must implement.
type ArticlePublisher interface {
	Publish(ctx context.Context, authorID uuid.UUID, draft models.ArticleDraft) (*models.ArticleView, error)
}

// CreateArticleRequest represents the JSON body for publishing an article
// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	Article struct {
		// Title, also the source of the slug
		// required: true
		// default: How to train your dragon
		Title string `json:"title"`

		// Short description
		// required: true
		Description string `json:"description"`

		// Full article body
		// required: true
		Body string `json:"body"`

		// Tags
		TagList []string `json:"tagList"`
	} `json:"article"`
}

// NewCreateArticleHandler returns an HTTP handler for publishing an
// article. The slug is derived from the title; a title slugifying to an
// existing slug is rejected.
// @Summary Publish an article
// @Description Creates an article from the draft. The slug is derived from the title and must be unique.
// @Tags articles
// @Accept json
// @Produce json
// @Param createArticleRequest body handlers.CreateArticleRequest true "Article draft"
// @Success 201 {object} handlers.ArticleResponse "Published article"
// @Failure 400 {object} handlers.ErrorResponse "Duplicate slug / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /articles [post]
// @Security BearerAuth
func NewCreateArticleHandler(svc ArticlePublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		draft := models.ArticleDraft{
			Title:       req.Article.Title,
			Description: req.Article.Description,
			Body:        req.Article.Body,
			TagList:     req.Article.TagList,
		}

		article, err := svc.Publish(r.Context(), userID, draft)
		if err != nil {
			var dup *services.DuplicateSlugError
			switch {
			case errors.As(err, &dup):
				writeError(w, http.StatusBadRequest, dup.Error())
			case errors.Is(err, services.ErrAuthorNotFound):
				writeError(w, http.StatusUnauthorized, "Unauthorized")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, ArticleResponse{Article: *article})
	}
}
