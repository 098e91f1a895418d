package usecase

import (
	"context"

	"cityportal/internal/domain/entity"
)

// TwinCityInput defines the data for creating or updating a twin city.
type TwinCityInput struct {
	Name        string `json:"name" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path"`
}

// TwinCityUsecase defines business operations for twin-city pairings.
type TwinCityUsecase interface {
	List(ctx context.Context) ([]*entity.TwinCity, error)
	Get(ctx context.Context, id int64) (*entity.TwinCity, error)
	Create(ctx context.Context, input *TwinCityInput) (*entity.TwinCity, error)
	Update(ctx context.Context, id int64, input *TwinCityInput) (*entity.TwinCity, error)
	Delete(ctx context.Context, id int64) error
}
