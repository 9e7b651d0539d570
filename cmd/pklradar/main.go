package main

import (
	"context"
	"log/slog"
	"os"

	"pklradar/config"
	"pklradar/internal/delivery"
	"pklradar/internal/delivery/http"
	httpmiddleware "pklradar/internal/delivery/http/middleware"
	"pklradar/internal/delivery/http/router/handler"
	"pklradar/internal/delivery/middleware"
	"pklradar/internal/domain/service"
	logs "pklradar/internal/infra/log"
	"pklradar/internal/infra/persistence/postgres"
	"pklradar/internal/infra/pubsub"
	"pklradar/internal/infra/qris"
	"pklradar/internal/usecase/impl"

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
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVendorRepository,
			postgres.NewLocationRepository,
			postgres.NewFavoriteRepository,
			postgres.NewNotificationRepository,
			postgres.NewStatsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRISService,
		),
	)
}

// newQRISService creates a QRIS payment QR service with dependency injection
func newQRISService(cfg *config.Config) service.QRISService {
	if cfg.QRIS == nil {
		// Use default values if not configured
		return qris.NewQRISService(256, "M")
	}

	return qris.NewQRISService(cfg.QRIS.Size, cfg.QRIS.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewVendorService,
			impl.NewLocationService,
			impl.NewProximityService,
			impl.NewSearchService,
			impl.NewFavoriteService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewVendorHandler,
			handler.NewLocationHandler,
			handler.NewSearchHandler,
			handler.NewFavoriteHandler,
			handler.NewNotificationHandler,
			handler.NewTestHandler,
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
