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

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewerID := uuid.New()

	tests := []struct {
		name          string
		authenticated bool
		username      string
		mockSetup     func(m *MockProfileGetter)
		expectedCode  int
		expectedErr   string
		wantFollowing bool
	}{
		{
			name:          "authenticated viewer sees follow state",
			authenticated: true,
			username:      "alice",
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					Get(gomock.Any(), &viewerID, "alice").
					Return(&models.ProfileView{Username: "alice", Following: true}, nil)
			},
			expectedCode:  http.StatusOK,
			wantFollowing: true,
		},
		{
			name:     "anonymous viewer",
			username: "alice",
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					Get(gomock.Any(), nil, "alice").
					Return(&models.ProfileView{Username: "alice"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "unknown username",
			username: "nobody",
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					Get(gomock.Any(), nil, "nobody").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "User not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileGetter(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Get("/api/profiles/{username}", NewProfileHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/api/profiles/"+tt.username, nil)
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

			var resp ProfileResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "alice", resp.Profile.Username)
			assert.Equal(t, tt.wantFollowing, resp.Profile.Following)
		})
	}
}

func TestFollowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewerID := uuid.New()

	t.Run("follow", func(t *testing.T) {
		mockSvc := NewMockFollower(ctrl)
		mockSvc.EXPECT().
			Follow(gomock.Any(), viewerID, "alice").
			Return(&models.ProfileView{Username: "alice", Following: true}, nil)

		router := chi.NewRouter()
		router.Post("/api/profiles/{username}/follow", NewFollowHandler(mockSvc))

		req := httptest.NewRequest(http.MethodPost, "/api/profiles/alice/follow", nil)
		req = req.WithContext(middlewares.WithUserID(req.Context(), viewerID))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ProfileResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Profile.Following)
	})

	t.Run("unfollow", func(t *testing.T) {
		mockSvc := NewMockFollower(ctrl)
		mockSvc.EXPECT().
			Unfollow(gomock.Any(), viewerID, "alice").
			Return(&models.ProfileView{Username: "alice", Following: false}, nil)

		router := chi.NewRouter()
		router.Delete("/api/profiles/{username}/follow", NewUnfollowHandler(mockSvc))

		req := httptest.NewRequest(http.MethodDelete, "/api/profiles/alice/follow", nil)
		req = req.WithContext(middlewares.WithUserID(req.Context(), viewerID))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ProfileResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.Profile.Following)
	})

	t.Run("no token", func(t *testing.T) {
		mockSvc := NewMockFollower(ctrl)

		router := chi.NewRouter()
		router.Post("/api/profiles/{username}/follow", NewFollowHandler(mockSvc))

		req := httptest.NewRequest(http.MethodPost, "/api/profiles/alice/follow", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
