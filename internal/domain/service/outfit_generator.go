package service

import (
	"context"

	"wardrobe/internal/domain/entity"
)

// OutfitRequest carries everything an outfit generator needs to work with.
// Candidates are the catalog products already filtered by gender and
// availability; the generator splits them into economic and luxury pools.
type OutfitRequest struct {
	City       string
	Gender     entity.Gender
	Weather    *entity.WeatherSnapshot
	Candidates []*entity.Product
}

// OutfitResult is a generated outfit plus its overall rationale.
type OutfitResult struct {
	Outfit    entity.Outfit
	Reasoning string
}

// OutfitGenerator defines the interface for producing outfit suggestions.
// Implementations degrade to a deterministic weather-rule selection when the
// model is unreachable or returns an unusable answer, so Generate only fails
// on an empty candidate list.
type OutfitGenerator interface {
	Generate(ctx context.Context, req *OutfitRequest) (*OutfitResult, error)
}
