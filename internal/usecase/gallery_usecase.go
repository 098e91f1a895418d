package usecase

import (
	"context"
	"mime/multipart"

	"cityportal/internal/domain/entity"
)

// GalleryInput defines the data for creating or updating a gallery.
type GalleryInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// GalleryUsecase defines business operations for galleries and their images.
type GalleryUsecase interface {
	List(ctx context.Context) ([]*entity.Gallery, error)
	Get(ctx context.Context, id int64) (*entity.Gallery, error)
	Create(ctx context.Context, input *GalleryInput) (*entity.Gallery, error)
	Update(ctx context.Context, id int64, input *GalleryInput) (*entity.Gallery, error)
	Delete(ctx context.Context, id int64) error

	// AddImage validates and stores an uploaded image, then attaches it to
	// the gallery.
	AddImage(ctx context.Context, galleryID int64, file *multipart.FileHeader, caption string) (*entity.GalleryImage, error)

	// DeleteImage removes a single image and its stored file.
	DeleteImage(ctx context.Context, galleryID, imageID int64) error
}
