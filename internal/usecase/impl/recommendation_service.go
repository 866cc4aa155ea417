package impl

import (
	"context"
	"log/slog"

	deliverycontext "wardrobe/internal/delivery/context"
	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/repository"
	"wardrobe/internal/domain/service"
	"wardrobe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	recommendationRepo repository.RecommendationRepository
	productRepo        repository.ProductRepository
	weatherProvider    service.WeatherProvider
	generator          service.OutfitGenerator
	logger             *slog.Logger
}

// RecommendationServiceParams holds dependencies for recommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	RecommendationRepo repository.RecommendationRepository
	ProductRepo        repository.ProductRepository
	WeatherProvider    service.WeatherProvider
	Generator          service.OutfitGenerator
	Logger             *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		recommendationRepo: params.RecommendationRepo,
		productRepo:        params.ProductRepo,
		weatherProvider:    params.WeatherProvider,
		generator:          params.Generator,
		logger:             params.Logger,
	}
}

func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Generate looks up the weather, gathers candidate products and asks the
// generator for an outfit. Nothing is persisted unless every step succeeds.
func (srv *recommendationService) Generate(ctx context.Context, userID uuid.UUID, input *usecase.GenerateRecommendationInput) (*entity.Recommendation, error) {
	if input.City == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("city is required")
	}
	if !input.Gender.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("gender must be male, female or other")
	}

	srv.log(ctx).Info("Generating recommendation",
		slog.Any("userID", userID),
		slog.String("city", input.City),
		slog.String("gender", string(input.Gender)))

	weather, err := srv.weatherProvider.Current(ctx, input.City)
	if err != nil {
		return nil, domainerrors.ErrWeatherLookupFailed.WrapMessage(err.Error())
	}

	candidates, err := srv.productRepo.FindByGenderAndAvailability(ctx, input.Gender.CatalogGender())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate products")
	}
	if len(candidates) == 0 {
		return nil, domainerrors.ErrNoCandidateProducts
	}

	result, err := srv.generator.Generate(ctx, &service.OutfitRequest{
		City:       input.City,
		Gender:     input.Gender,
		Weather:    weather,
		Candidates: candidates,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate outfit")
	}

	rec := &entity.Recommendation{
		UserID:           userID,
		City:             input.City,
		Gender:           input.Gender,
		Weather:          *weather,
		Outfit:           result.Outfit,
		AIRecommendation: result.Reasoning,
		IsActive:         true,
	}
	if err := srv.recommendationRepo.Create(ctx, rec); err != nil {
		srv.log(ctx).Error("Failed to persist recommendation", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return rec, nil
}

// List returns a page of the user's recommendation history.
func (srv *recommendationService) List(ctx context.Context, userID uuid.UUID, input *usecase.ListRecommendationsInput) (*repository.RecommendationPage, error) {
	page, limit := normalizePaging(input.Page, input.Limit)

	result, err := srv.recommendationRepo.FindByUser(ctx, userID, page, limit, input.ActiveOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recommendations")
	}

	return result, nil
}

// Get returns one of the user's recommendations. A recommendation owned by
// another user is reported as not found, never as forbidden.
func (srv *recommendationService) Get(ctx context.Context, userID, id uuid.UUID) (*entity.Recommendation, error) {
	rec, err := srv.recommendationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return nil, domainerrors.ErrRecommendationNotFound
		}

		return nil, errors.Wrap(err, "failed to find recommendation")
	}
	if rec.UserID != userID {
		return nil, domainerrors.ErrRecommendationNotFound
	}

	return rec, nil
}

// Update changes the active flag of one of the user's recommendations.
func (srv *recommendationService) Update(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateRecommendationInput) (*entity.Recommendation, error) {
	rec, err := srv.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.IsActive != nil {
		rec.IsActive = *input.IsActive
	}
	if err := srv.recommendationRepo.Update(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return nil, domainerrors.ErrRecommendationNotFound
		}

		return nil, errors.Wrap(err, "failed to update recommendation")
	}

	return rec, nil
}

// Delete removes one of the user's recommendations.
func (srv *recommendationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := srv.Get(ctx, userID, id); err != nil {
		return err
	}

	if err := srv.recommendationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return domainerrors.ErrRecommendationNotFound
		}

		return errors.Wrap(err, "failed to delete recommendation")
	}

	srv.log(ctx).Info("Recommendation deleted", slog.Any("userID", userID), slog.Any("recommendationID", id))

	return nil
}

// Regenerate produces a new recommendation for the same city and gender as an
// existing one, looked up against today's weather. The original stays untouched.
func (srv *recommendationService) Regenerate(ctx context.Context, userID, id uuid.UUID) (*entity.Recommendation, error) {
	rec, err := srv.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	return srv.Generate(ctx, userID, &usecase.GenerateRecommendationInput{
		City:   rec.City,
		Gender: rec.Gender,
	})
}
