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

func TestFavoriteArticleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	view := models.ArticleView{Slug: "hello-world", Favorited: true, FavoritesCount: 1}

	tests := []struct {
		name          string
		authenticated bool
		mockSetup     func(m *MockFavoriter)
		expectedCode  int
		expectedErr   string
	}{
		{
			name:          "first favorite",
			authenticated: true,
			mockSetup: func(m *MockFavoriter) {
				m.EXPECT().
					Favorite(gomock.Any(), userID, "hello-world").
					Return(&view, models.NewFavorite, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "repeat favorite gets the same response",
			authenticated: true,
			mockSetup: func(m *MockFavoriter) {
				m.EXPECT().
					Favorite(gomock.Any(), userID, "hello-world").
					Return(&view, models.AlreadyAFavorite, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "article not found",
			authenticated: true,
			mockSetup: func(m *MockFavoriter) {
				m.EXPECT().
					Favorite(gomock.Any(), userID, "hello-world").
					Return(nil, models.FavoriteOutcome(0), services.ErrArticleNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "Article not found",
		},
		{
			name:         "no token",
			mockSetup:    func(m *MockFavoriter) {},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFavoriter(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Post("/api/articles/{slug}/favorite", NewFavoriteArticleHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/api/articles/hello-world/favorite", nil)
			if tt.authenticated {
				req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
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
			assert.True(t, resp.Article.Favorited)
			assert.Equal(t, 1, resp.Article.FavoritesCount)
		})
	}
}

func TestUnfavoriteArticleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	view := models.ArticleView{Slug: "hello-world", Favorited: false, FavoritesCount: 0}

	mockSvc := NewMockFavoriter(ctrl)
	mockSvc.EXPECT().
		Unfavorite(gomock.Any(), userID, "hello-world").
		Return(&view, models.WasAFavorite, nil)

	router := chi.NewRouter()
	router.Delete("/api/articles/{slug}/favorite", NewUnfavoriteArticleHandler(mockSvc))

	req := httptest.NewRequest(http.MethodDelete, "/api/articles/hello-world/favorite", nil)
	req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ArticleResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Article.Favorited)
}
