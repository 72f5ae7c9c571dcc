package impl

import (
	"context"
	"log/slog"
	"testing"

	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/repository"
	mockRepo "agroalert/internal/mocks/repository"
	"agroalert/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(mockUserRepo, slog.Default())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := service.Register(ctx, usecase.RegisterUserInput{
		Name:      "Amara Singh",
		Email:     "  Amara@Example.COM ",
		Phone:     "+886912345678",
		Latitude:  23.5,
		Longitude: 120.5,
		Crops:     []string{"rice", "potato"},
		Preferences: entity.NotificationPreferences{
			Email: true,
			Push:  true,
		},
		DeviceToken: "fcm-token-1",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "amara@example.com", user.Email)
	assert.NotZero(t, user.ID)
	assert.Equal(t, []string{"rice", "potato"}, user.Crops)
	assert.True(t, user.Preferences.Push)
}

func TestUserService_Register_MissingName(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(mockUserRepo, slog.Default())

	user, err := service.Register(context.Background(), usecase.RegisterUserInput{
		Email:     "farmer@example.com",
		Latitude:  23.5,
		Longitude: 120.5,
	})
	assert.Nil(t, user)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_Register_InvalidCoordinates(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(mockUserRepo, slog.Default())

	user, err := service.Register(context.Background(), usecase.RegisterUserInput{
		Name:      "Amara Singh",
		Email:     "farmer@example.com",
		Latitude:  -91.0,
		Longitude: 120.5,
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(mockUserRepo, slog.Default())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	user, err := service.Register(ctx, usecase.RegisterUserInput{
		Name:      "Amara Singh",
		Email:     "farmer@example.com",
		Latitude:  23.5,
		Longitude: 120.5,
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_GetByID_Found(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(mockUserRepo, slog.Default())

	ctx := context.Background()
	id := uuid.New()
	expected := &entity.User{ID: id, Name: "Amara Singh"}

	mockUserRepo.EXPECT().
		FindByID(ctx, id).
		Return(expected, nil)

	user, err := service.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(mockUserRepo, slog.Default())

	ctx := context.Background()
	id := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrUserNotFound)

	user, err := service.GetByID(ctx, id)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
