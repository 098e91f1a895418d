package usecase

import (
	"context"

	"cityportal/internal/domain/entity"
)

// IndicatorInput defines the data for creating or updating a city indicator.
type IndicatorInput struct {
	Name     string  `json:"name" validate:"required"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	Year     int     `json:"year" validate:"required"`
	Source   string  `json:"source"`
	Category string  `json:"category"`
}

// IndicatorUsecase defines business operations for city indicators.
type IndicatorUsecase interface {
	// List returns indicators, optionally filtered by category and year.
	List(ctx context.Context, category string, year int) ([]*entity.Indicator, error)
	Get(ctx context.Context, id int64) (*entity.Indicator, error)
	Create(ctx context.Context, input *IndicatorInput) (*entity.Indicator, error)
	Update(ctx context.Context, id int64, input *IndicatorInput) (*entity.Indicator, error)
	Delete(ctx context.Context, id int64) error
}
