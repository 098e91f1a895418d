package repository

import (
	"context"
	"errors"

	"cityportal/internal/domain/entity"
)

// ErrLocationNotFound is returned when a location does not exist.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines persistence operations for map locations.
type LocationRepository interface {
	// List returns locations, optionally filtered by category. An empty
	// category means no filter.
	List(ctx context.Context, category string) ([]*entity.Location, error)
	FindByID(ctx context.Context, id int64) (*entity.Location, error)
	Create(ctx context.Context, location *entity.Location) error
	Update(ctx context.Context, location *entity.Location) error
	Delete(ctx context.Context, id int64) error
}
