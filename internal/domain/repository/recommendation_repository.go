package repository

import (
	"context"
	"errors"

	"wardrobe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecommendationNotFound is a domain-specific error returned when a recommendation is not found.
var ErrRecommendationNotFound = errors.New("recommendation not found")

// RecommendationPage is one page of a user's recommendation history.
type RecommendationPage struct {
	Items      []*entity.Recommendation
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// RecommendationRepository defines the standard operations for recommendation persistence.
type RecommendationRepository interface {
	// Create persists a new recommendation.
	Create(ctx context.Context, rec *entity.Recommendation) error

	// FindByID retrieves a single recommendation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recommendation, error)

	// FindByUser retrieves a page of a user's recommendations, newest first.
	// When activeOnly is true, only active recommendations are returned.
	FindByUser(ctx context.Context, userID uuid.UUID, page, limit int, activeOnly bool) (*RecommendationPage, error)

	// Update modifies an existing recommendation.
	Update(ctx context.Context, rec *entity.Recommendation) error

	// Delete removes a recommendation.
	Delete(ctx context.Context, id uuid.UUID) error
}
