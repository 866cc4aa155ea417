package repository

import (
	"context"
	"errors"

	"wardrobe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows catalog listings. Nil pointer fields are ignored.
type ProductFilter struct {
	Category   string
	Gender     string
	IsLuxury   *bool
	IsEconomic *bool
}

// ProductSearch holds free-text search parameters.
type ProductSearch struct {
	Query    string
	MinPrice *float64
	MaxPrice *float64
}

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByGenderAndAvailability retrieves available products matching the
	// catalog gender. Non-unisex lookups include unisex items.
	FindByGenderAndAvailability(ctx context.Context, gender string) ([]*entity.Product, error)

	// FindAll retrieves a page of available products matching the filter,
	// newest first, along with the total match count.
	FindAll(ctx context.Context, filter ProductFilter, page, limit int) ([]*entity.Product, int64, error)

	// Search retrieves available products whose name, brand or description
	// matches the query, optionally bounded by price.
	Search(ctx context.Context, params ProductSearch) ([]*entity.Product, error)

	// Categories lists the distinct categories of available products.
	Categories(ctx context.Context) ([]string, error)

	// Brands lists the distinct brands of available products.
	Brands(ctx context.Context) ([]string, error)
}
