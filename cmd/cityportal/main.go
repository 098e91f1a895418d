package main

import (
	"context"
	"log/slog"
	"os"

	"cityportal/config"
	"cityportal/internal/delivery"
	"cityportal/internal/delivery/http"
	"cityportal/internal/delivery/http/middleware"
	"cityportal/internal/delivery/http/router/handler"
	"cityportal/internal/domain/repository"
	"cityportal/internal/domain/service"
	"cityportal/internal/infra/auth"
	logs "cityportal/internal/infra/log"
	"cityportal/internal/infra/persistence/migrate"
	"cityportal/internal/infra/persistence/postgres"
	"cityportal/internal/infra/storage"
	"cityportal/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			// Migrations and the administrator seed run to completion
			// before the server starts accepting traffic.
			runMigrations,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTwinCityRepository,
			postgres.NewLocationRepository,
			postgres.NewIndicatorRepository,
			postgres.NewGalleryRepository,
			postgres.NewDocumentRepository,
			postgres.NewCollaborationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewTwinCityService,
			impl.NewLocationService,
			impl.NewIndicatorService,
			impl.NewGalleryService,
			impl.NewDocumentService,
			impl.NewCollaborationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewTwinCityHandler,
			handler.NewLocationHandler,
			handler.NewIndicatorHandler,
			handler.NewGalleryHandler,
			handler.NewDocumentHandler,
			handler.NewCollaborationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func runMigrations(
	ctx context.Context,
	cfg *config.Config,
	db *gorm.DB,
	users repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "access underlying sql.DB")
	}

	return migrate.NewRunner(sqlDB, users, hasher, cfg.Seed, logger).Run(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
