package postgres

import (
	"context"
	"encoding/json"
	"math"

	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/repository"
	"wardrobe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recommendationRepository implements the repository.RecommendationRepository interface.
type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository is the constructor for recommendationRepository.
func NewRecommendationRepository(db *gorm.DB) repository.RecommendationRepository {
	return &recommendationRepository{
		db: db,
	}
}

// Create persists a new recommendation.
func (repo *recommendationRepository) Create(ctx context.Context, rec *entity.Recommendation) error {
	recM, err := fromRecommendationDomain(rec)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(recM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recommendation")
	}

	// Update the entity with generated values
	rec.ID = recM.ID
	rec.CreatedAt = recM.CreatedAt
	rec.UpdatedAt = recM.UpdatedAt

	return nil
}

// FindByID retrieves a single recommendation by its unique ID.
func (repo *recommendationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recommendation, error) {
	var recM model.RecommendationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecommendationNotFound
		}

		return nil, errors.Wrap(err, "failed to find recommendation by ID")
	}

	return toRecommendationDomain(&recM)
}

// FindByUser retrieves a page of a user's recommendations, newest first.
func (repo *recommendationRepository) FindByUser(ctx context.Context, userID uuid.UUID, page, limit int, activeOnly bool) (*repository.RecommendationPage, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.RecommendationModel{}).
		Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count recommendations")
	}

	var recModels []*model.RecommendationModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recommendations")
	}

	items := make([]*entity.Recommendation, 0, len(recModels))
	for _, recM := range recModels {
		rec, err := toRecommendationDomain(recM)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}

	return &repository.RecommendationPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// Update modifies an existing recommendation.
func (repo *recommendationRepository) Update(ctx context.Context, rec *entity.Recommendation) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecommendationModel{}).
		Where("id = ?", rec.ID).
		Update("is_active", rec.IsActive)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update recommendation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecommendationNotFound
	}

	return nil
}

// Delete removes a recommendation.
func (repo *recommendationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecommendationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recommendation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecommendationNotFound
	}

	return nil
}

// toRecommendationDomain converts the persistence model to the domain entity.
func toRecommendationDomain(data *model.RecommendationModel) (*entity.Recommendation, error) {
	rec := &entity.Recommendation{
		ID:        data.ID,
		UserID:    data.UserID,
		City:      data.City,
		Gender:    entity.Gender(data.Gender),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.AIRecommendation != nil {
		rec.AIRecommendation = *data.AIRecommendation
	}
	if err := json.Unmarshal(data.Weather, &rec.Weather); err != nil {
		return nil, errors.Wrap(err, "failed to decode weather snapshot")
	}
	if err := json.Unmarshal(data.Outfit, &rec.Outfit); err != nil {
		return nil, errors.Wrap(err, "failed to decode outfit")
	}

	return rec, nil
}

// fromRecommendationDomain converts the domain entity to the persistence model.
func fromRecommendationDomain(rec *entity.Recommendation) (*model.RecommendationModel, error) {
	weather, err := json.Marshal(rec.Weather)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode weather snapshot")
	}
	outfit, err := json.Marshal(rec.Outfit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode outfit")
	}

	recM := &model.RecommendationModel{
		ID:       rec.ID,
		UserID:   rec.UserID,
		City:     rec.City,
		Gender:   string(rec.Gender),
		Weather:  weather,
		Outfit:   outfit,
		IsActive: rec.IsActive,
	}
	if rec.AIRecommendation != "" {
		recM.AIRecommendation = &rec.AIRecommendation
	}

	return recM, nil
}
