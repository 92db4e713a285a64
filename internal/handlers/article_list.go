package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"conduit/internal/logger"
	"conduit/internal/models"
)

// ArticleLister defines the interface that the service must implement.
type ArticleLister interface {
	List(ctx context.Context, viewerID *uuid.UUID, filter models.ArticleFilter) ([]models.ArticleView, error)
}

// NewListArticlesHandler returns an HTTP handler for the global article
// list, newest first.
// @Summary List articles
// @Description Returns articles filtered by tag, author and favoriting user, newest first. Filters combine with AND.
// @Tags articles
// @Produce json
// @Param tag query string false "Only articles carrying this tag"
// @Param author query string false "Only articles by this author"
// @Param favorited query string false "Only articles favorited by this user"
// @Param limit query int false "Page size, default 20"
// @Param offset query int false "Page offset, default 0"
// @Success 200 {object} handlers.ArticlesResponse "Article page"
// @Router /articles [get]
func NewListArticlesHandler(svc ArticleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := models.ArticleFilter{
			Tag:         query.Get("tag"),
			Author:      query.Get("author"),
			FavoritedBy: query.Get("favorited"),
			Limit:       intQueryParam(query.Get("limit")),
			Offset:      intQueryParam(query.Get("offset")),
		}

		articles, err := svc.List(r.Context(), viewerFromRequest(r), filter)
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

// intQueryParam parses a numeric query parameter. Absent or malformed
// values fall back to zero and get the service defaults.
func intQueryParam(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
