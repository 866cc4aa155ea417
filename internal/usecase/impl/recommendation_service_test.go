package impl

import (
	"context"
	"testing"

	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/repository"
	"wardrobe/internal/domain/service"
	mockRepo "wardrobe/internal/mocks/repository"
	mockService "wardrobe/internal/mocks/service"
	"wardrobe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recommendationServiceFixtures holds all test dependencies for recommendation service tests.
type recommendationServiceFixtures struct {
	service            usecase.RecommendationUsecase
	recommendationRepo *mockRepo.MockRecommendationRepository
	productRepo        *mockRepo.MockProductRepository
	weatherProvider    *mockService.MockWeatherProvider
	generator          *mockService.MockOutfitGenerator
}

func createTestRecommendationService(t *testing.T) recommendationServiceFixtures {
	recommendationRepo := mockRepo.NewMockRecommendationRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	weatherProvider := mockService.NewMockWeatherProvider(t)
	generator := mockService.NewMockOutfitGenerator(t)

	svc := NewRecommendationService(RecommendationServiceParams{
		RecommendationRepo: recommendationRepo,
		ProductRepo:        productRepo,
		WeatherProvider:    weatherProvider,
		Generator:          generator,
		Logger:             newDiscardLogger(),
	})

	return recommendationServiceFixtures{
		service:            svc,
		recommendationRepo: recommendationRepo,
		productRepo:        productRepo,
		weatherProvider:    weatherProvider,
		generator:          generator,
	}
}

func TestRecommendationService_Generate_Success(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := uuid.New()

	weather := &entity.WeatherSnapshot{City: "São Paulo", Temperature: 22, Condition: "Clouds"}
	candidates := []*entity.Product{
		{ID: uuid.New(), Name: "camiseta", Category: "shirt", IsEconomic: true},
	}
	result := &service.OutfitResult{
		Outfit: entity.Outfit{
			Economic: []entity.OutfitItem{{ProductID: candidates[0].ID.String(), Name: "camiseta"}},
		},
		Reasoning: "clima ameno",
	}

	fx.weatherProvider.EXPECT().
		Current(ctx, "São Paulo").
		Return(weather, nil)

	fx.productRepo.EXPECT().
		FindByGenderAndAvailability(ctx, "female").
		Return(candidates, nil)

	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("*service.OutfitRequest")).
		Run(func(_ context.Context, req *service.OutfitRequest) {
			assert.Equal(t, "São Paulo", req.City)
			assert.Equal(t, entity.GenderFemale, req.Gender)
			assert.Equal(t, candidates, req.Candidates)
		}).
		Return(result, nil)

	generatedID := uuid.New()
	fx.recommendationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Recommendation")).
		Run(func(_ context.Context, rec *entity.Recommendation) {
			rec.ID = generatedID
		}).
		Return(nil)

	rec, err := fx.service.Generate(ctx, userID, &usecase.GenerateRecommendationInput{
		City:   "São Paulo",
		Gender: entity.GenderFemale,
	})
	require.NoError(t, err)

	assert.Equal(t, generatedID, rec.ID)
	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, entity.GenderFemale, rec.Gender)
	assert.Equal(t, *weather, rec.Weather)
	assert.Equal(t, "clima ameno", rec.AIRecommendation)
	assert.True(t, rec.IsActive)
}

func TestRecommendationService_Generate_OtherGenderShopsUnisex(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	weather := &entity.WeatherSnapshot{City: "Recife", Temperature: 30}
	candidates := []*entity.Product{{ID: uuid.New(), Category: "shirt", IsEconomic: true}}

	fx.weatherProvider.EXPECT().
		Current(ctx, "Recife").
		Return(weather, nil)

	fx.productRepo.EXPECT().
		FindByGenderAndAvailability(ctx, "unisex").
		Return(candidates, nil)

	fx.generator.EXPECT().
		Generate(ctx, mock.Anything).
		Return(&service.OutfitResult{Reasoning: "ok"}, nil)

	fx.recommendationRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(nil)

	_, err := fx.service.Generate(ctx, uuid.New(), &usecase.GenerateRecommendationInput{
		City:   "Recife",
		Gender: entity.GenderOther,
	})
	require.NoError(t, err)
}

func TestRecommendationService_Generate_MissingCity(t *testing.T) {
	fx := createTestRecommendationService(t)

	_, err := fx.service.Generate(context.Background(), uuid.New(), &usecase.GenerateRecommendationInput{
		Gender: entity.GenderMale,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRecommendationService_Generate_InvalidGender(t *testing.T) {
	fx := createTestRecommendationService(t)

	_, err := fx.service.Generate(context.Background(), uuid.New(), &usecase.GenerateRecommendationInput{
		City:   "São Paulo",
		Gender: entity.Gender("robot"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRecommendationService_Generate_NoCandidatesPersistsNothing(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	fx.weatherProvider.EXPECT().
		Current(ctx, "São Paulo").
		Return(&entity.WeatherSnapshot{City: "São Paulo"}, nil)

	fx.productRepo.EXPECT().
		FindByGenderAndAvailability(ctx, "male").
		Return([]*entity.Product{}, nil)

	_, err := fx.service.Generate(ctx, uuid.New(), &usecase.GenerateRecommendationInput{
		City:   "São Paulo",
		Gender: entity.GenderMale,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNoCandidateProducts)
	// No Create expectation was set, so any persistence would fail the test.
}

func TestRecommendationService_Get_OtherOwnerReportsNotFound(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	recID := uuid.New()

	fx.recommendationRepo.EXPECT().
		FindByID(ctx, recID).
		Return(&entity.Recommendation{ID: recID, UserID: uuid.New()}, nil)

	_, err := fx.service.Get(ctx, uuid.New(), recID)
	assert.ErrorIs(t, err, domainerrors.ErrRecommendationNotFound)
}

func TestRecommendationService_Update_TogglesActiveFlag(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := uuid.New()
	recID := uuid.New()

	fx.recommendationRepo.EXPECT().
		FindByID(ctx, recID).
		Return(&entity.Recommendation{ID: recID, UserID: userID, IsActive: true}, nil)

	fx.recommendationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Recommendation")).
		Return(nil)

	inactive := false
	rec, err := fx.service.Update(ctx, userID, recID, &usecase.UpdateRecommendationInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, rec.IsActive)
}

func TestRecommendationService_Update_OmittedFlagKeepsStoredValue(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := uuid.New()
	recID := uuid.New()

	fx.recommendationRepo.EXPECT().
		FindByID(ctx, recID).
		Return(&entity.Recommendation{ID: recID, UserID: userID, IsActive: true}, nil)

	fx.recommendationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Recommendation")).
		Run(func(_ context.Context, rec *entity.Recommendation) {
			assert.True(t, rec.IsActive)
		}).
		Return(nil)

	rec, err := fx.service.Update(ctx, userID, recID, &usecase.UpdateRecommendationInput{})
	require.NoError(t, err)
	assert.True(t, rec.IsActive)
}

func TestRecommendationService_Delete_Success(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := uuid.New()
	recID := uuid.New()

	fx.recommendationRepo.EXPECT().
		FindByID(ctx, recID).
		Return(&entity.Recommendation{ID: recID, UserID: userID}, nil)

	fx.recommendationRepo.EXPECT().
		Delete(ctx, recID).
		Return(nil)

	err := fx.service.Delete(ctx, userID, recID)
	require.NoError(t, err)
}

func TestRecommendationService_Regenerate_ReusesStoredCityAndGender(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := uuid.New()
	recID := uuid.New()

	fx.recommendationRepo.EXPECT().
		FindByID(ctx, recID).
		Return(&entity.Recommendation{
			ID:     recID,
			UserID: userID,
			City:   "Brasília",
			Gender: entity.GenderMale,
		}, nil)

	weather := &entity.WeatherSnapshot{City: "Brasília", Temperature: 25}
	candidates := []*entity.Product{{ID: uuid.New(), Category: "shirt", IsEconomic: true}}

	fx.weatherProvider.EXPECT().
		Current(ctx, "Brasília").
		Return(weather, nil)

	fx.productRepo.EXPECT().
		FindByGenderAndAvailability(ctx, "male").
		Return(candidates, nil)

	fx.generator.EXPECT().
		Generate(ctx, mock.Anything).
		Return(&service.OutfitResult{Reasoning: "novo dia"}, nil)

	fx.recommendationRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(nil)

	rec, err := fx.service.Regenerate(ctx, userID, recID)
	require.NoError(t, err)

	assert.Equal(t, "Brasília", rec.City)
	assert.Equal(t, entity.GenderMale, rec.Gender)
	assert.Equal(t, "novo dia", rec.AIRecommendation)
}

func TestRecommendationService_List_NormalizesPaging(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.recommendationRepo.EXPECT().
		FindByUser(ctx, userID, 1, 20, true).
		Return(&repository.RecommendationPage{Page: 1, Limit: 20}, nil)

	page, err := fx.service.List(ctx, userID, &usecase.ListRecommendationsInput{
		Page:       0,
		Limit:      -5,
		ActiveOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}
