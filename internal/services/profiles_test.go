package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"conduit/internal/models"
	"conduit/internal/services"
)

func TestProfileService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockFollows := services.NewMockFollowRepo(ctrl)

	svc := services.NewProfileService(mockUsers, mockFollows)

	viewerID := uuid.New()
	aliceID := uuid.New()
	bio := "i write"
	alice := &models.UserDB{UserID: aliceID, Username: "alice", Bio: &bio}

	tests := []struct {
		name          string
		viewerID      *uuid.UUID
		user          *models.UserDB
		userErr       error
		following     bool
		followErr     error
		wantFollowing bool
		wantErr       error
	}{
		{
			name:          "authenticated viewer following",
			viewerID:      &viewerID,
			user:          alice,
			following:     true,
			wantFollowing: true,
		},
		{
			name:          "authenticated viewer not following",
			viewerID:      &viewerID,
			user:          alice,
			following:     false,
			wantFollowing: false,
		},
		{
			name:          "anonymous viewer never following",
			viewerID:      nil,
			user:          alice,
			wantFollowing: false,
		},
		{
			name:     "unknown username",
			viewerID: &viewerID,
			user:     nil,
			wantErr:  services.ErrUserNotFound,
		},
		{
			name:     "user lookup error",
			viewerID: &viewerID,
			userErr:  errors.New("db error"),
			wantErr:  errors.New("db error"),
		},
		{
			name:      "follow lookup error",
			viewerID:  &viewerID,
			user:      alice,
			followErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers.EXPECT().
				GetByUsername(gomock.Any(), "alice").
				Return(tt.user, tt.userErr)

			if tt.userErr == nil && tt.user != nil && tt.viewerID != nil {
				mockFollows.EXPECT().
					IsFollowing(gomock.Any(), *tt.viewerID, aliceID).
					Return(tt.following, tt.followErr)
			}

			profile, err := svc.Get(context.Background(), tt.viewerID, "alice")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "alice", profile.Username)
				assert.Equal(t, &bio, profile.Bio)
				assert.Equal(t, tt.wantFollowing, profile.Following)
			}
		})
	}
}

func TestProfileService_Follow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockFollows := services.NewMockFollowRepo(ctrl)

	svc := services.NewProfileService(mockUsers, mockFollows)

	viewerID := uuid.New()
	aliceID := uuid.New()
	alice := &models.UserDB{UserID: aliceID, Username: "alice"}

	tests := []struct {
		name     string
		user     *models.UserDB
		userErr  error
		inserted bool
		saveErr  error
		wantErr  error
	}{
		{
			name:     "new follow",
			user:     alice,
			inserted: true,
		},
		{
			name:     "already following stays following",
			user:     alice,
			inserted: false,
		},
		{
			name:    "unknown username",
			user:    nil,
			wantErr: services.ErrUserNotFound,
		},
		{
			name:    "save error",
			user:    alice,
			saveErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers.EXPECT().
				GetByUsername(gomock.Any(), "alice").
				Return(tt.user, tt.userErr)

			if tt.user != nil {
				mockFollows.EXPECT().
					Save(gomock.Any(), viewerID, aliceID).
					Return(tt.inserted, tt.saveErr)
			}

			profile, err := svc.Follow(context.Background(), viewerID, "alice")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.True(t, profile.Following)
			}
		})
	}
}

func TestProfileService_Unfollow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockFollows := services.NewMockFollowRepo(ctrl)

	svc := services.NewProfileService(mockUsers, mockFollows)

	viewerID := uuid.New()
	aliceID := uuid.New()
	alice := &models.UserDB{UserID: aliceID, Username: "alice"}

	tests := []struct {
		name    string
		user    *models.UserDB
		deleted bool
		delErr  error
		wantErr error
	}{
		{
			name:    "unfollow existing follow",
			user:    alice,
			deleted: true,
		},
		{
			name:    "unfollow never-followed user is a no-op",
			user:    alice,
			deleted: false,
		},
		{
			name:    "unknown username",
			user:    nil,
			wantErr: services.ErrUserNotFound,
		},
		{
			name:    "delete error",
			user:    alice,
			delErr:  errors.New("db error"),
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers.EXPECT().
				GetByUsername(gomock.Any(), "alice").
				Return(tt.user, nil)

			if tt.user != nil {
				mockFollows.EXPECT().
					Delete(gomock.Any(), viewerID, aliceID).
					Return(tt.deleted, tt.delErr)
			}

			profile, err := svc.Unfollow(context.Background(), viewerID, "alice")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.False(t, profile.Following)
			}
		})
	}
}
