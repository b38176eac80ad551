package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "biblio/internal/errors"
	"biblio/internal/model"
)

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		createErr     error
		expectedError error
	}{
		{name: "successful create"},
		{
			name:          "duplicate email",
			createErr:     errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)"),
			expectedError: apperrors.ErrConflict,
		},
		{
			name:          "storage failure passes through",
			createErr:     errors.New("disk I/O error"),
			expectedError: errors.New("disk I/O error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(tt.createErr)

			svc := NewUserService(mockRepo).(*userService)
			svc.now = func() time.Time { return fixedNow }

			user, err := svc.CreateUser(context.Background(), "Ana", "ana@example.com", "555-0100")

			switch {
			case errors.Is(tt.expectedError, apperrors.ErrConflict):
				assert.ErrorIs(t, err, apperrors.ErrConflict)
				assert.Contains(t, err.Error(), "users.email")
				assert.Nil(t, user)
			case tt.expectedError != nil:
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			default:
				require.NoError(t, err)
				assert.Equal(t, "Ana", user.Name)
				assert.Equal(t, "ana@example.com", user.Email)
				assert.Equal(t, "555-0100", user.Phone)
				assert.True(t, fixedNow.Truncate(time.Millisecond).Equal(user.CreatedAt))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_GetUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Name: "Ana"}, nil)
	mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo)

	user, err := svc.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)

	_, err = svc.GetUser(context.Background(), 9)
	assert.Equal(t, apperrors.ErrUserNotFound, err)
}

func TestUserService_ListUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything).Return([]model.User{{ID: 1}}, nil)

	users, err := NewUserService(mockRepo).ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
	mockRepo.AssertExpectations(t)
}
