package postgres

import (
	"context"

	"cityportal/internal/domain/entity"
	domainerrors "cityportal/internal/domain/errors"
	"cityportal/internal/domain/repository"
	"cityportal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// indicatorRepository implements the repository.IndicatorRepository interface.
type indicatorRepository struct {
	db *gorm.DB
}

// NewIndicatorRepository is the constructor for indicatorRepository.
func NewIndicatorRepository(db *gorm.DB) repository.IndicatorRepository {
	return &indicatorRepository{
		db: db,
	}
}

// List returns indicators, optionally filtered by category and year.
func (repo *indicatorRepository) List(ctx context.Context, category string, year int) ([]*entity.Indicator, error) {
	var indicatorModels []*model.IndicatorModel

	query := repo.db.WithContext(ctx).Order("year DESC, name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if year > 0 {
		query = query.Where("year = ?", year)
	}

	if err := query.Find(&indicatorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list indicators")
	}

	indicators := make([]*entity.Indicator, 0, len(indicatorModels))
	for _, indicatorM := range indicatorModels {
		indicators = append(indicators, toIndicatorDomain(indicatorM))
	}

	return indicators, nil
}

// FindByID retrieves an indicator by its unique ID.
func (repo *indicatorRepository) FindByID(ctx context.Context, id int64) (*entity.Indicator, error) {
	var indicatorM model.IndicatorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&indicatorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIndicatorNotFound
		}

		return nil, errors.Wrap(err, "failed to find indicator by id")
	}

	return toIndicatorDomain(&indicatorM), nil
}

// Create persists a new indicator.
func (repo *indicatorRepository) Create(ctx context.Context, indicator *entity.Indicator) error {
	indicatorM := fromIndicatorDomain(indicator)

	if err := repo.db.WithContext(ctx).Create(indicatorM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required indicator information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create indicator")
	}

	indicator.ID = indicatorM.ID
	indicator.CreatedAt = indicatorM.CreatedAt
	indicator.UpdatedAt = indicatorM.UpdatedAt

	return nil
}

// Update modifies an existing indicator.
func (repo *indicatorRepository) Update(ctx context.Context, indicator *entity.Indicator) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IndicatorModel{}).
		Where("id = ?", indicator.ID).
		Updates(fromIndicatorDomain(indicator))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update indicator")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIndicatorNotFound
	}

	return nil
}

// Delete removes an indicator by ID.
func (repo *indicatorRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.IndicatorModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete indicator")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIndicatorNotFound
	}

	return nil
}

func toIndicatorDomain(indicatorM *model.IndicatorModel) *entity.Indicator {
	return &entity.Indicator{
		ID:        indicatorM.ID,
		Name:      indicatorM.Name,
		Value:     indicatorM.Value,
		Unit:      indicatorM.Unit,
		Year:      indicatorM.Year,
		Source:    indicatorM.Source,
		Category:  indicatorM.Category,
		CreatedAt: indicatorM.CreatedAt,
		UpdatedAt: indicatorM.UpdatedAt,
	}
}

func fromIndicatorDomain(indicator *entity.Indicator) *model.IndicatorModel {
	return &model.IndicatorModel{
		ID:        indicator.ID,
		Name:      indicator.Name,
		Value:     indicator.Value,
		Unit:      indicator.Unit,
		Year:      indicator.Year,
		Source:    indicator.Source,
		Category:  indicator.Category,
		CreatedAt: indicator.CreatedAt,
		UpdatedAt: indicator.UpdatedAt,
	}
}
