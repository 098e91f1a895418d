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

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// List returns locations, optionally filtered by category.
func (repo *locationRepository) List(ctx context.Context, category string) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	query := repo.db.WithContext(ctx).Order("name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// FindByID retrieves a location by its unique ID.
func (repo *locationRepository) FindByID(ctx context.Context, id int64) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// Create persists a new location.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// Update modifies an existing location.
func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", location.ID).
		Updates(fromLocationDomain(location))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// Delete removes a location by ID.
func (repo *locationRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LocationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

func toLocationDomain(locationM *model.LocationModel) *entity.Location {
	return &entity.Location{
		ID:          locationM.ID,
		Name:        locationM.Name,
		Description: locationM.Description,
		Address:     locationM.Address,
		Latitude:    locationM.Latitude,
		Longitude:   locationM.Longitude,
		Category:    locationM.Category,
		CreatedAt:   locationM.CreatedAt,
		UpdatedAt:   locationM.UpdatedAt,
	}
}

func fromLocationDomain(location *entity.Location) *model.LocationModel {
	return &model.LocationModel{
		ID:          location.ID,
		Name:        location.Name,
		Description: location.Description,
		Address:     location.Address,
		Latitude:    location.Latitude,
		Longitude:   location.Longitude,
		Category:    location.Category,
		CreatedAt:   location.CreatedAt,
		UpdatedAt:   location.UpdatedAt,
	}
}
