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

// indicatorService implements the IndicatorUsecase interface.
type indicatorService struct {
	repo   repository.IndicatorRepository
	logger *slog.Logger
}

// IndicatorServiceParams holds dependencies for indicatorService, injected by Fx.
type IndicatorServiceParams struct {
	fx.In

	Repo   repository.IndicatorRepository
	Logger *slog.Logger
}

// NewIndicatorService is the constructor for indicatorService.
func NewIndicatorService(params IndicatorServiceParams) usecase.IndicatorUsecase {
	return &indicatorService{
		repo:   params.Repo,
		logger: params.Logger,
	}
}

func (srv *indicatorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *indicatorService) List(ctx context.Context, category string, year int) ([]*entity.Indicator, error) {
	indicators, err := srv.repo.List(ctx, category, year)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list indicators")
	}

	return indicators, nil
}

func (srv *indicatorService) Get(ctx context.Context, id int64) (*entity.Indicator, error) {
	indicator, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIndicatorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrIndicatorNotFound, "indicator lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find indicator")
	}

	return indicator, nil
}

func (srv *indicatorService) Create(ctx context.Context, input *usecase.IndicatorInput) (*entity.Indicator, error) {
	indicator := &entity.Indicator{
		Name:     input.Name,
		Value:    input.Value,
		Unit:     input.Unit,
		Year:     input.Year,
		Source:   input.Source,
		Category: input.Category,
	}

	if err := srv.repo.Create(ctx, indicator); err != nil {
		return nil, errors.Wrap(err, "failed to create indicator")
	}

	srv.log(ctx).Info("Indicator created", slog.Int64("id", indicator.ID), slog.String("name", indicator.Name))

	return indicator, nil
}

func (srv *indicatorService) Update(ctx context.Context, id int64, input *usecase.IndicatorInput) (*entity.Indicator, error) {
	indicator, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	indicator.Name = input.Name
	indicator.Value = input.Value
	indicator.Unit = input.Unit
	indicator.Year = input.Year
	indicator.Source = input.Source
	indicator.Category = input.Category

	if err := srv.repo.Update(ctx, indicator); err != nil {
		return nil, errors.Wrap(err, "failed to update indicator")
	}

	return indicator, nil
}

func (srv *indicatorService) Delete(ctx context.Context, id int64) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrIndicatorNotFound) {
			return errors.Wrap(domainerrors.ErrIndicatorNotFound, "indicator delete failed")
		}

		return errors.Wrap(err, "failed to delete indicator")
	}

	srv.log(ctx).Info("Indicator deleted", slog.Int64("id", id))

	return nil
}
