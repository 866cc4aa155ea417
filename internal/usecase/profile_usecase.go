package usecase

import (
	"context"

	"wardrobe/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the profile fields a user may change.
// Nil pointers leave the stored value untouched.
type UpdateProfileInput struct {
	Name        *string
	City        *string
	Gender      *entity.Gender
	Preferences *entity.Preferences
}

// ProfileUsecase defines the interface for profile management operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
