package usecase

import (
	"context"

	"wardrobe/internal/domain/entity"
	"wardrobe/internal/domain/repository"

	"github.com/google/uuid"
)

// GenerateRecommendationInput defines the data required to generate an outfit.
type GenerateRecommendationInput struct {
	City   string
	Gender entity.Gender
}

// ListRecommendationsInput pages a user's recommendation history.
type ListRecommendationsInput struct {
	Page       int
	Limit      int
	ActiveOnly bool
}

// UpdateRecommendationInput carries the mutable recommendation fields.
// Nil pointers leave the stored value untouched.
type UpdateRecommendationInput struct {
	IsActive *bool
}

// RecommendationUsecase defines the interface for outfit recommendation operations.
// All lookups are scoped to the requesting user; recommendations owned by
// someone else behave as if they do not exist.
type RecommendationUsecase interface {
	Generate(ctx context.Context, userID uuid.UUID, input *GenerateRecommendationInput) (*entity.Recommendation, error)
	List(ctx context.Context, userID uuid.UUID, input *ListRecommendationsInput) (*repository.RecommendationPage, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*entity.Recommendation, error)
	Update(ctx context.Context, userID, id uuid.UUID, input *UpdateRecommendationInput) (*entity.Recommendation, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Regenerate(ctx context.Context, userID, id uuid.UUID) (*entity.Recommendation, error)
}
