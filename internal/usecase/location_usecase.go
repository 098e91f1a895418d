package usecase

import (
	"context"

	"cityportal/internal/domain/entity"
)

// LocationInput defines the data for creating or updating a map location.
type LocationInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Category    string  `json:"category"`
}

// LocationUsecase defines business operations for map locations.
type LocationUsecase interface {
	// List returns locations, optionally filtered by category.
	List(ctx context.Context, category string) ([]*entity.Location, error)
	Get(ctx context.Context, id int64) (*entity.Location, error)
	Create(ctx context.Context, input *LocationInput) (*entity.Location, error)
	Update(ctx context.Context, id int64, input *LocationInput) (*entity.Location, error)
	Delete(ctx context.Context, id int64) error
}
