package main

import (
	"context"
	"log/slog"
	"os"

	"truefans/config"
	"truefans/internal/delivery"
	"truefans/internal/delivery/api"
	"truefans/internal/delivery/api/middleware"
	"truefans/internal/delivery/api/router/handler"
	"truefans/internal/domain/constants"
	"truefans/internal/domain/repository"
	"truefans/internal/domain/service"
	"truefans/internal/errors"
	"truefans/internal/infra/auth"
	"truefans/internal/infra/cache"
	"truefans/internal/infra/imagesource"
	logs "truefans/internal/infra/log"
	"truefans/internal/infra/passid"
	"truefans/internal/infra/persistence/firestore"
	"truefans/internal/infra/persistence/memory"
	"truefans/internal/infra/persistence/postgres"
	"truefans/internal/infra/pkpass"
	"truefans/internal/infra/pubsub"
	"truefans/internal/infra/qrcode"
	"truefans/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type storeParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type storeResult struct {
	fx.Out

	Passes    repository.PassRepository
	Directory repository.RestaurantDirectory
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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStores,
		),
		fx.Decorate(
			decorateDirectory,
		),
	)
}

// newStores opens the configured backend and builds the pass store and restaurant directory on it
func newStores(params storeParams) (storeResult, error) {
	switch params.Config.Store.Driver {
	case constants.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return storeResult{}, err
		}

		return storeResult{
			Passes:    postgres.NewPassRepository(db),
			Directory: postgres.NewRestaurantRepository(db),
		}, nil

	case constants.StoreDriverFirestore:
		client, err := firestore.New(params.Ctx, firestore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return storeResult{}, err
		}

		return storeResult{
			Passes:    firestore.NewPassRepository(client),
			Directory: firestore.NewRestaurantRepository(client),
		}, nil

	case constants.StoreDriverMemory:
		params.Logger.Warn("Using in-memory pass store, records are lost on restart")

		directory := memory.NewRestaurantDirectory()
		if params.Config.Store.SeedPath != "" {
			var err error
			directory, err = memory.LoadRestaurantDirectory(params.Config.Store.SeedPath)
			if err != nil {
				return storeResult{}, err
			}
		}

		return storeResult{
			Passes:    memory.NewPassRepository(),
			Directory: directory,
		}, nil
	}

	return storeResult{}, errors.Errorf("unknown store driver: %s", params.Config.Store.Driver)
}

// decorateDirectory puts the Redis read-through cache in front of the directory when configured
func decorateDirectory(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, directory repository.RestaurantDirectory) repository.RestaurantDirectory {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return directory
	}

	client := cache.NewRedisClient(cache.Params{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    logger,
	})

	return cache.NewDirectoryCache(directory, client, cfg.Redis.TTL, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			passid.NewGenerator,
			newQRCodeService,
			imagesource.New,
			pkpass.NewUnsignedSigner,
			pkpass.New,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPassService,
			impl.NewRestaurantService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPassHandler,
			handler.NewRestaurantHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
