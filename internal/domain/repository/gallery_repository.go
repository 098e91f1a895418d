package repository

import (
	"context"
	"errors"

	"cityportal/internal/domain/entity"
)

// ErrGalleryNotFound is returned when a gallery does not exist.
var ErrGalleryNotFound = errors.New("gallery not found")

// GalleryRepository defines persistence operations for galleries and their images.
type GalleryRepository interface {
	List(ctx context.Context) ([]*entity.Gallery, error)

	// FindByID retrieves a gallery with its images preloaded.
	FindByID(ctx context.Context, id int64) (*entity.Gallery, error)

	Create(ctx context.Context, gallery *entity.Gallery) error
	Update(ctx context.Context, gallery *entity.Gallery) error
	Delete(ctx context.Context, id int64) error

	// AddImage attaches a stored image to an existing gallery.
	AddImage(ctx context.Context, image *entity.GalleryImage) error

	// DeleteImage removes a single image from a gallery.
	DeleteImage(ctx context.Context, galleryID, imageID int64) error
}
