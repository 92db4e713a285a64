package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"conduit/internal/middlewares"
	"conduit/internal/models"
	"conduit/internal/services"
)

func TestGetArticleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewerID := uuid.New()
	view := models.ArticleView{
		Slug:           "hello-world",
		Title:          "Hello World",
		TagList:        []string{},
		Favorited:      true,
		FavoritesCount: 2,
		Author:         models.ProfileView{Username: "alice"},
	}

	tests := []struct {
		name          string
		authenticated bool
		slug          string
		mockSetup     func(m *MockArticleGetter)
		expectedCode  int
		expectedErr   string
	}{
		{
			name:          "authenticated viewer",
			authenticated: true,
			slug:          "hello-world",
			mockSetup: func(m *MockArticleGetter) {
				m.EXPECT().
					Get(gomock.Any(), &viewerID, "hello-world").
					Return(&view, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "anonymous viewer",
			slug: "hello-world",
			mockSetup: func(m *MockArticleGetter) {
				m.EXPECT().
					Get(gomock.Any(), nil, "hello-world").
					Return(&view, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "article not found",
			slug: "missing",
			mockSetup: func(m *MockArticleGetter) {
				m.EXPECT().
					Get(gomock.Any(), nil, "missing").
					Return(nil, services.ErrArticleNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "Article not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockArticleGetter(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Get("/api/articles/{slug}", NewGetArticleHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/api/articles/"+tt.slug, nil)
			if tt.authenticated {
				req = req.WithContext(middlewares.WithUserID(req.Context(), viewerID))
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedErr != "" {
				var errResp ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, tt.expectedErr, errResp.Error)
				return
			}

			var resp ArticleResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "hello-world", resp.Article.Slug)
			assert.Equal(t, 2, resp.Article.FavoritesCount)
		})
	}
}

func TestListArticlesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockArticleLister(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), nil, models.ArticleFilter{Tag: "intro", Author: "alice", Limit: 5, Offset: 10}).
		Return([]models.ArticleView{{Slug: "hello-world"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/articles?tag=intro&author=alice&limit=5&offset=10", nil)
	rec := httptest.NewRecorder()

	NewListArticlesHandler(mockSvc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ArticlesResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.ArticlesCount)
	assert.Equal(t, "hello-world", resp.Articles[0].Slug)
}
