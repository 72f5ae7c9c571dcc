package usecase

import (
	"context"

	"agroalert/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput carries the data needed to register a farmer for alerts.
type RegisterUserInput struct {
	Name        string
	Email       string
	Phone       string
	Latitude    float64
	Longitude   float64
	Crops       []string
	Preferences entity.NotificationPreferences
	DeviceToken string
}

// UserUsecase defines the interface for user registration and lookup
type UserUsecase interface {
	// Register creates a new user at the given farm location
	Register(ctx context.Context, input RegisterUserInput) (*entity.User, error)

	// GetByID retrieves a user by their unique ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
