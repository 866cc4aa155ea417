package impl

import (
	"context"
	"testing"

	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/repository"
	mockRepo "wardrobe/internal/mocks/repository"
	mockService "wardrobe/internal/mocks/service"
	"wardrobe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ana@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().
		Hash("secret123").
		Return("hashed-secret", nil)

	generatedID := uuid.New()
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = generatedID
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateTokens(generatedID, "ana@example.com").
		Return("access", "refresh", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "Ana@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", output.User.Email)
	assert.Equal(t, "hashed-secret", output.User.PasswordHash)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ana@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "ana@example.com"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_PasswordTooShort(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "12345",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ana@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hash"}, nil)

	fx.hasher.EXPECT().
		Check("wrong", "hash").
		Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailSameError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ana@example.com").
		Return(&entity.User{ID: userID, Email: "ana@example.com", PasswordHash: "hash"}, nil)

	fx.hasher.EXPECT().
		Check("secret123", "hash").
		Return(true)

	fx.tokenService.EXPECT().
		GenerateTokens(userID, "ana@example.com").
		Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "Ana@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("bad-token").
		Return(nil, assert.AnError)

	_, err := fx.service.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "bad-token"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestUserService_Me_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Me(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
