package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "wardrobe/internal/delivery/context"
	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/repository"
	"wardrobe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns a page of available catalog products.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	page, limit := normalizePaging(input.Page, input.Limit)

	filter := repository.ProductFilter{
		Category:   input.Category,
		Gender:     input.Gender,
		IsLuxury:   input.IsLuxury,
		IsEconomic: input.IsEconomic,
	}

	products, total, err := srv.productRepo.FindAll(ctx, filter, page, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Items:      products,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// SearchProducts returns available products matching the free-text query.
func (srv *catalogService) SearchProducts(ctx context.Context, input *usecase.SearchProductsInput) ([]*entity.Product, error) {
	if input.Query == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search query is required")
	}

	products, err := srv.productRepo.Search(ctx, repository.ProductSearch{
		Query:    input.Query,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// Categories lists the distinct categories of available products.
func (srv *catalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := srv.productRepo.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Brands lists the distinct brands of available products.
func (srv *catalogService) Brands(ctx context.Context) ([]string, error) {
	brands, err := srv.productRepo.Brands(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// GetProduct returns a single catalog product.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}
