package usecase

import (
	"context"

	"wardrobe/internal/domain/entity"

	"github.com/google/uuid"
)

// ListProductsInput narrows and pages the catalog listing.
type ListProductsInput struct {
	Category   string
	Gender     string
	IsLuxury   *bool
	IsEconomic *bool
	Page       int
	Limit      int
}

// SearchProductsInput carries free-text search parameters.
type SearchProductsInput struct {
	Query    string
	MinPrice *float64
	MaxPrice *float64
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Items      []*entity.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CatalogUsecase defines the interface for catalog browsing operations.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductPage, error)
	SearchProducts(ctx context.Context, input *SearchProductsInput) ([]*entity.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Brands(ctx context.Context) ([]string, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
