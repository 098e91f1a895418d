package repository

import (
	"context"
	"errors"

	"cityportal/internal/domain/entity"
)

// ErrIndicatorNotFound is returned when an indicator does not exist.
var ErrIndicatorNotFound = errors.New("indicator not found")

// IndicatorRepository defines persistence operations for city indicators.
type IndicatorRepository interface {
	// List returns indicators, optionally filtered by category and year.
	// Zero values mean no filter.
	List(ctx context.Context, category string, year int) ([]*entity.Indicator, error)
	FindByID(ctx context.Context, id int64) (*entity.Indicator, error)
	Create(ctx context.Context, indicator *entity.Indicator) error
	Update(ctx context.Context, indicator *entity.Indicator) error
	Delete(ctx context.Context, id int64) error
}
