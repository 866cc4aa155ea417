package impl

import (
	"context"
	"testing"

	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/repository"
	mockRepo "wardrobe/internal/mocks/repository"
	"wardrobe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return svc, userRepo
}

func strPtr(s string) *string { return &s }

func TestProfileService_UpdateProfile_AppliesProvidedFields(t *testing.T) {
	svc, userRepo := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	stored := &entity.User{
		ID:     userID,
		Email:  "ana@example.com",
		Name:   "Ana",
		City:   "São Paulo",
		Gender: entity.GenderFemale,
	}

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(stored, nil)

	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	prefs := &entity.Preferences{Style: []string{"casual"}}
	updated, err := svc.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		City:        strPtr("Recife"),
		Preferences: prefs,
	})
	require.NoError(t, err)

	// Untouched fields keep their stored values.
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, entity.GenderFemale, updated.Gender)
	assert.Equal(t, "Recife", updated.City)
	assert.Equal(t, prefs, updated.Preferences)
}

func TestProfileService_UpdateProfile_RejectsUnknownGender(t *testing.T) {
	svc, userRepo := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	bad := entity.Gender("dragon")
	_, err := svc.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Gender: &bad})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_DeleteAccount_NotFound(t *testing.T) {
	svc, userRepo := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		Delete(ctx, userID).
		Return(repository.ErrUserNotFound)

	err := svc.DeleteAccount(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
