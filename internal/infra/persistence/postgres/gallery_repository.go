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

// galleryRepository implements the repository.GalleryRepository interface.
type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository is the constructor for galleryRepository.
func NewGalleryRepository(db *gorm.DB) repository.GalleryRepository {
	return &galleryRepository{
		db: db,
	}
}

// List returns all galleries with their images preloaded.
func (repo *galleryRepository) List(ctx context.Context) ([]*entity.Gallery, error) {
	var galleryModels []*model.GalleryModel

	if err := repo.db.WithContext(ctx).
		Preload("Images").
		Order("created_at DESC").
		Find(&galleryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list galleries")
	}

	galleries := make([]*entity.Gallery, 0, len(galleryModels))
	for _, galleryM := range galleryModels {
		galleries = append(galleries, toGalleryDomain(galleryM))
	}

	return galleries, nil
}

// FindByID retrieves a gallery with its images preloaded.
func (repo *galleryRepository) FindByID(ctx context.Context, id int64) (*entity.Gallery, error) {
	var galleryM model.GalleryModel

	if err := repo.db.WithContext(ctx).
		Preload("Images").
		Where("id = ?", id).
		First(&galleryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGalleryNotFound
		}

		return nil, errors.Wrap(err, "failed to find gallery by id")
	}

	return toGalleryDomain(&galleryM), nil
}

// Create persists a new gallery.
func (repo *galleryRepository) Create(ctx context.Context, gallery *entity.Gallery) error {
	galleryM := fromGalleryDomain(gallery)

	if err := repo.db.WithContext(ctx).Create(galleryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required gallery information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create gallery")
	}

	gallery.ID = galleryM.ID
	gallery.CreatedAt = galleryM.CreatedAt
	gallery.UpdatedAt = galleryM.UpdatedAt

	return nil
}

// Update modifies an existing gallery's title and description.
func (repo *galleryRepository) Update(ctx context.Context, gallery *entity.Gallery) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GalleryModel{}).
		Where("id = ?", gallery.ID).
		Updates(map[string]any{
			"title":       gallery.Title,
			"description": gallery.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update gallery")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGalleryNotFound
	}

	return nil
}

// Delete removes a gallery and its images.
func (repo *galleryRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("gallery_id = ?", id).
		Delete(&model.GalleryImageModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete gallery images")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GalleryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete gallery")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGalleryNotFound
	}

	return nil
}

// AddImage attaches a stored image to an existing gallery.
func (repo *galleryRepository) AddImage(ctx context.Context, image *entity.GalleryImage) error {
	imageM := &model.GalleryImageModel{
		GalleryID: image.GalleryID,
		ImagePath: image.ImagePath,
		Caption:   image.Caption,
	}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGalleryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add gallery image")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

// DeleteImage removes a single image from a gallery.
func (repo *galleryRepository) DeleteImage(ctx context.Context, galleryID, imageID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND gallery_id = ?", imageID, galleryID).
		Delete(&model.GalleryImageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete gallery image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGalleryNotFound
	}

	return nil
}

func toGalleryDomain(galleryM *model.GalleryModel) *entity.Gallery {
	gallery := &entity.Gallery{
		ID:          galleryM.ID,
		Title:       galleryM.Title,
		Description: galleryM.Description,
		CreatedAt:   galleryM.CreatedAt,
		UpdatedAt:   galleryM.UpdatedAt,
	}

	for _, imageM := range galleryM.Images {
		gallery.Images = append(gallery.Images, entity.GalleryImage{
			ID:        imageM.ID,
			GalleryID: imageM.GalleryID,
			ImagePath: imageM.ImagePath,
			Caption:   imageM.Caption,
			CreatedAt: imageM.CreatedAt,
		})
	}

	return gallery
}

func fromGalleryDomain(gallery *entity.Gallery) *model.GalleryModel {
	return &model.GalleryModel{
		ID:          gallery.ID,
		Title:       gallery.Title,
		Description: gallery.Description,
	}
}
