package handlers

import (
	"context"
	"net/http"

	"conduit/internal/logger"
)

// TagsLister defines the interface that the service must implement.
type TagsLister interface {
	Tags(ctx context.Context) ([]string, error)
}

// NewTagsHandler returns an HTTP handler for the global tag list.
// @Summary List tags
// @Description Returns every tag in use across all articles.
// @Tags tags
// @Produce json
// @Success 200 {object} handlers.TagsResponse "Tags"
// @Router /tags [get]
func NewTagsHandler(svc TagsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := svc.Tags(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if tags == nil {
			tags = []string{}
		}
		writeJSON(w, http.StatusOK, TagsResponse{Tags: tags})
	}
}
