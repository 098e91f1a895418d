package impl

import (
	"context"
	"log/slog"

	deliverycontext "cityportal/internal/delivery/context"
	"cityportal/internal/domain/entity"
	domainerrors "cityportal/internal/domain/errors"
	"cityportal/internal/domain/repository"
	"cityportal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	repo   repository.LocationRepository
	logger *slog.Logger
}

// LocationServiceParams holds dependencies for locationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	Repo   repository.LocationRepository
	Logger *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		repo:   params.Repo,
		logger: params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *locationService) List(ctx context.Context, category string) ([]*entity.Location, error) {
	locations, err := srv.repo.List(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locations, nil
}

func (srv *locationService) Get(ctx context.Context, id int64) (*entity.Location, error) {
	location, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLocationNotFound, "location lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return location, nil
}

func (srv *locationService) Create(ctx context.Context, input *usecase.LocationInput) (*entity.Location, error) {
	location := &entity.Location{
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Category:    input.Category,
	}

	if err := srv.repo.Create(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to create location")
	}

	srv.log(ctx).Info("Location created", slog.Int64("id", location.ID), slog.String("name", location.Name))

	return location, nil
}

func (srv *locationService) Update(ctx context.Context, id int64, input *usecase.LocationInput) (*entity.Location, error) {
	location, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	location.Name = input.Name
	location.Description = input.Description
	location.Address = input.Address
	location.Latitude = input.Latitude
	location.Longitude = input.Longitude
	location.Category = input.Category

	if err := srv.repo.Update(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to update location")
	}

	return location, nil
}

func (srv *locationService) Delete(ctx context.Context, id int64) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return errors.Wrap(domainerrors.ErrLocationNotFound, "location delete failed")
		}

		return errors.Wrap(err, "failed to delete location")
	}

	srv.log(ctx).Info("Location deleted", slog.Int64("id", id))

	return nil
}
