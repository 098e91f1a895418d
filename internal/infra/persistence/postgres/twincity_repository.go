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

// twinCityRepository implements the repository.TwinCityRepository interface.
type twinCityRepository struct {
	db *gorm.DB
}

// NewTwinCityRepository is the constructor for twinCityRepository.
func NewTwinCityRepository(db *gorm.DB) repository.TwinCityRepository {
	return &twinCityRepository{
		db: db,
	}
}

// List returns all twin cities ordered by name.
func (repo *twinCityRepository) List(ctx context.Context) ([]*entity.TwinCity, error) {
	var cityModels []*model.TwinCityModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&cityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list twin cities")
	}

	cities := make([]*entity.TwinCity, 0, len(cityModels))
	for _, cityM := range cityModels {
		cities = append(cities, toTwinCityDomain(cityM))
	}

	return cities, nil
}

// FindByID retrieves a twin city by its unique ID.
func (repo *twinCityRepository) FindByID(ctx context.Context, id int64) (*entity.TwinCity, error) {
	var cityM model.TwinCityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTwinCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find twin city by id")
	}

	return toTwinCityDomain(&cityM), nil
}

// Create persists a new twin city.
func (repo *twinCityRepository) Create(ctx context.Context, city *entity.TwinCity) error {
	cityM := fromTwinCityDomain(city)

	if err := repo.db.WithContext(ctx).Create(cityM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required twin city information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create twin city")
	}

	city.ID = cityM.ID
	city.CreatedAt = cityM.CreatedAt
	city.UpdatedAt = cityM.UpdatedAt

	return nil
}

// Update modifies an existing twin city.
func (repo *twinCityRepository) Update(ctx context.Context, city *entity.TwinCity) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TwinCityModel{}).
		Where("id = ?", city.ID).
		Updates(fromTwinCityDomain(city))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update twin city")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTwinCityNotFound
	}

	return nil
}

// Delete removes a twin city by ID.
func (repo *twinCityRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TwinCityModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewValidationError("twin city is still referenced by documents")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete twin city")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTwinCityNotFound
	}

	return nil
}

func toTwinCityDomain(cityM *model.TwinCityModel) *entity.TwinCity {
	return &entity.TwinCity{
		ID:          cityM.ID,
		Name:        cityM.Name,
		Country:     cityM.Country,
		Description: cityM.Description,
		ImagePath:   cityM.ImagePath,
		CreatedAt:   cityM.CreatedAt,
		UpdatedAt:   cityM.UpdatedAt,
	}
}

func fromTwinCityDomain(city *entity.TwinCity) *model.TwinCityModel {
	return &model.TwinCityModel{
		ID:          city.ID,
		Name:        city.Name,
		Country:     city.Country,
		Description: city.Description,
		ImagePath:   city.ImagePath,
		CreatedAt:   city.CreatedAt,
		UpdatedAt:   city.UpdatedAt,
	}
}
