package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/repository"
	"agroalert/internal/usecase"
	"agroalert/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a new user at the given farm location.
func (s *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	if !util.ValidCoordinates(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	user := &entity.User{
		ID:          uuid.New(),
		Name:        input.Name,
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:       input.Phone,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Crops:       input.Crops,
		Preferences: input.Preferences,
		DeviceToken: input.DeviceToken,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		slog.String("user_id", user.ID.String()),
		slog.Int("crop_count", len(user.Crops)),
	)

	return user, nil
}

// GetByID retrieves a user by their unique ID.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}
