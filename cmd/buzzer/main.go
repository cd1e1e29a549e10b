package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/46h1/buzzer/config"
	"github.com/46h1/buzzer/internal/delivery"
	"github.com/46h1/buzzer/internal/delivery/api"
	"github.com/46h1/buzzer/internal/delivery/api/router"
	"github.com/46h1/buzzer/internal/infra/auth"
	"github.com/46h1/buzzer/internal/infra/index"
	logs "github.com/46h1/buzzer/internal/infra/log"
	"github.com/46h1/buzzer/internal/infra/media"
	"github.com/46h1/buzzer/internal/infra/persistence/postgres"
	"github.com/46h1/buzzer/internal/infra/pubsub"
	"github.com/46h1/buzzer/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		router.Module,
		injectDelivery(),
		fx.Invoke(
			postgres.Migrate,
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
			postgres.NewBuzzRepository,
			postgres.NewChatRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
		index.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		auth.Module,
		media.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPendingHub,
			impl.NewChatListHub,
			impl.NewNearbyHub,
			impl.NewProximityService,
			impl.NewLocationService,
			impl.NewLocationSessionManager,
			impl.NewBuzzService,
			impl.NewChatService,
			impl.NewProfileService,
			impl.NewDeviceService,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
