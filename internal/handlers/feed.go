package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"conduit/internal/logger"
	"conduit/internal/models"
)

// Feeder defines the interface that the service must implement.
type Feeder interface {
	Feed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]models.ArticleView, error)
}

// NewFeedHandler returns an HTTP handler for the personal feed: articles
// by authors the viewer follows, newest first. The sign-up self-follow
// puts the viewer's own articles in their feed.
// @Summary Get personal feed
// @Description Returns articles authored by followed users, the viewer included, newest first.
// @Tags articles
// @Produce json
// @Param limit query int false "Page size, default 20"
// @Param offset query int false "Page offset, default 0"
// @Success 200 {object} handlers.ArticlesResponse "Feed page"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /articles/feed [get]
// @Security BearerAuth
func NewFeedHandler(svc Feeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		query := r.URL.Query()
		limit := intQueryParam(query.Get("limit"))
		offset := intQueryParam(query.Get("offset"))

		articles, err := svc.Feed(r.Context(), userID, limit, offset)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, ArticlesResponse{
			Articles:      articles,
			ArticlesCount: len(articles),
		})
	}
}
