package postgres

import (
	"context"
	"encoding/json"

	"wardrobe/internal/domain/entity"
	"wardrobe/internal/domain/repository"
	"wardrobe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// searchResultLimit caps free-text search results.
const searchResultLimit = 50

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM)
}

// FindByGenderAndAvailability retrieves available products for a catalog
// gender, newest first. Gendered lookups also include unisex items.
func (repo *productRepository) FindByGenderAndAvailability(ctx context.Context, gender string) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Where("is_available = ?", true)
	if gender != "unisex" {
		query = query.Where("gender = ? OR gender = ?", gender, "unisex")
	}

	var productModels []*model.ProductModel
	if err := query.
		Order("scraped_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by gender")
	}

	return toProductDomainList(productModels)
}

// FindAll retrieves a page of available products matching the filter.
func (repo *productRepository) FindAll(ctx context.Context, filter repository.ProductFilter, page, limit int) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("is_available = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Gender != "" && filter.Gender != "unisex" {
		query = query.Where("gender = ? OR gender = ?", filter.Gender, "unisex")
	}
	if filter.IsLuxury != nil {
		query = query.Where("is_luxury = ?", *filter.IsLuxury)
	}
	if filter.IsEconomic != nil {
		query = query.Where("is_economic = ?", *filter.IsEconomic)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := query.
		Order("scraped_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products, err := toProductDomainList(productModels)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// Search retrieves available products matching the free-text query.
func (repo *productRepository) Search(ctx context.Context, params repository.ProductSearch) ([]*entity.Product, error) {
	pattern := "%" + params.Query + "%"
	query := repo.db.WithContext(ctx).
		Where("is_available = ?", true).
		Where("name ILIKE ? OR brand ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)

	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}

	var productModels []*model.ProductModel
	if err := query.
		Limit(searchResultLimit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductDomainList(productModels)
}

// Categories lists the distinct categories of available products.
func (repo *productRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("is_available = ?", true).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Brands lists the distinct brands of available products.
func (repo *productRepository) Brands(ctx context.Context) ([]string, error) {
	var brands []string

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("is_available = ? AND brand IS NOT NULL", true).
		Distinct("brand").
		Order("brand").
		Pluck("brand", &brands).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

func toProductDomainList(productModels []*model.ProductModel) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// toProductDomain converts the persistence model to the domain entity.
func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	product := &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Category:      data.Category,
		Price:         data.Price,
		OriginalPrice: data.OriginalPrice,
		Currency:      data.Currency,
		ProductURL:    data.ProductURL,
		IsLuxury:      data.IsLuxury,
		IsEconomic:    data.IsEconomic,
		IsAvailable:   data.IsAvailable,
		Source:        data.Source,
		Gender:        data.Gender,
		ScrapedAt:     data.ScrapedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Brand != nil {
		product.Brand = *data.Brand
	}
	if data.Subcategory != nil {
		product.Subcategory = *data.Subcategory
	}
	if data.ImageURL != nil {
		product.ImageURL = *data.ImageURL
	}
	if data.Description != nil {
		product.Description = *data.Description
	}
	if data.Season != nil {
		product.Season = *data.Season
	}
	if len(data.Sizes) > 0 {
		if err := json.Unmarshal(data.Sizes, &product.Sizes); err != nil {
			return nil, errors.Wrap(err, "failed to decode product sizes")
		}
	}
	if len(data.Colors) > 0 {
		if err := json.Unmarshal(data.Colors, &product.Colors); err != nil {
			return nil, errors.Wrap(err, "failed to decode product colors")
		}
	}
	if len(data.Weather) > 0 {
		tags := new(entity.WeatherTags)
		if err := json.Unmarshal(data.Weather, tags); err != nil {
			return nil, errors.Wrap(err, "failed to decode product weather tags")
		}
		product.Weather = tags
	}

	return product, nil
}
