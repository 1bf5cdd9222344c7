package main

import (
	"context"
	"log/slog"
	"os"

	"standmatch/config"
	"standmatch/internal/delivery"
	"standmatch/internal/delivery/http"
	"standmatch/internal/delivery/http/middleware"
	"standmatch/internal/delivery/http/router/handler"
	"standmatch/internal/domain/repository"
	"standmatch/internal/domain/service"
	"standmatch/internal/importer"
	logs "standmatch/internal/infra/log"
	"standmatch/internal/infra/persistence/memory"
	"standmatch/internal/infra/persistence/postgres"
	"standmatch/internal/infra/pubsub"
	"standmatch/internal/infra/qrcode"
	"standmatch/internal/usecase/impl"

	"go.uber.org/fx"
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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newImportConfig,
			newTransformer,
		),
		pubsub.Module,
	)
}

type repositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newBuilderRepository picks the persistence backend. Postgres when
// configured, otherwise the in-memory store for local runs.
func newBuilderRepository(params repositoryParams) (repository.BuilderRepository, error) {
	if params.Config.Postgres == nil {
		params.Logger.Warn("Postgres not configured, using in-memory builder store")

		return memory.NewBuilderRepository(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewBuilderRepository(db), nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newBuilderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newImportConfig resolves the optional import section with its defaults.
func newImportConfig(cfg *config.Config) *config.ImportConfig {
	if cfg.Import == nil {
		return &config.ImportConfig{}
	}

	return cfg.Import
}

// newTransformer creates the import transformer with a time-based seed.
func newTransformer() *importer.Transformer {
	return importer.NewTransformer(nil)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "http://localhost:8080")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewImportService,
			impl.NewBuilderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewImportHandler,
			handler.NewBuilderHandler,
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
