package repository

import (
	"context"
	"errors"

	"cityportal/internal/domain/entity"
)

// ErrTwinCityNotFound is returned when a twin city does not exist.
var ErrTwinCityNotFound = errors.New("twin city not found")

// TwinCityRepository defines persistence operations for twin-city pairings.
type TwinCityRepository interface {
	List(ctx context.Context) ([]*entity.TwinCity, error)
	FindByID(ctx context.Context, id int64) (*entity.TwinCity, error)
	Create(ctx context.Context, city *entity.TwinCity) error
	Update(ctx context.Context, city *entity.TwinCity) error
	Delete(ctx context.Context, id int64) error
}
