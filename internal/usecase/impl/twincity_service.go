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

// twinCityService implements the TwinCityUsecase interface.
type twinCityService struct {
	repo   repository.TwinCityRepository
	logger *slog.Logger
}

// TwinCityServiceParams holds dependencies for twinCityService, injected by Fx.
type TwinCityServiceParams struct {
	fx.In

	Repo   repository.TwinCityRepository
	Logger *slog.Logger
}

// NewTwinCityService is the constructor for twinCityService.
func NewTwinCityService(params TwinCityServiceParams) usecase.TwinCityUsecase {
	return &twinCityService{
		repo:   params.Repo,
		logger: params.Logger,
	}
}

func (srv *twinCityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *twinCityService) List(ctx context.Context) ([]*entity.TwinCity, error) {
	cities, err := srv.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list twin cities")
	}

	return cities, nil
}

func (srv *twinCityService) Get(ctx context.Context, id int64) (*entity.TwinCity, error) {
	city, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTwinCityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTwinCityNotFound, "twin city lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find twin city")
	}

	return city, nil
}

func (srv *twinCityService) Create(ctx context.Context, input *usecase.TwinCityInput) (*entity.TwinCity, error) {
	city := &entity.TwinCity{
		Name:        input.Name,
		Country:     input.Country,
		Description: input.Description,
		ImagePath:   input.ImagePath,
	}

	if err := srv.repo.Create(ctx, city); err != nil {
		return nil, errors.Wrap(err, "failed to create twin city")
	}

	srv.log(ctx).Info("Twin city created", slog.Int64("id", city.ID), slog.String("name", city.Name))

	return city, nil
}

func (srv *twinCityService) Update(ctx context.Context, id int64, input *usecase.TwinCityInput) (*entity.TwinCity, error) {
	city, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	city.Name = input.Name
	city.Country = input.Country
	city.Description = input.Description
	if input.ImagePath != "" {
		city.ImagePath = input.ImagePath
	}

	if err := srv.repo.Update(ctx, city); err != nil {
		return nil, errors.Wrap(err, "failed to update twin city")
	}

	return city, nil
}

func (srv *twinCityService) Delete(ctx context.Context, id int64) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTwinCityNotFound) {
			return errors.Wrap(domainerrors.ErrTwinCityNotFound, "twin city delete failed")
		}

		return errors.Wrap(err, "failed to delete twin city")
	}

	srv.log(ctx).Info("Twin city deleted", slog.Int64("id", id))

	return nil
}
