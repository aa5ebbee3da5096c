package main

import (
	"context"
	"log/slog"
	"os"

	"gamehub/config"
	"gamehub/internal/delivery"
	"gamehub/internal/delivery/http"
	"gamehub/internal/delivery/http/middleware"
	"gamehub/internal/delivery/http/router/handler"
	"gamehub/internal/domain/service"
	"gamehub/internal/infra/activation"
	"gamehub/internal/infra/clock"
	logs "gamehub/internal/infra/log"
	"gamehub/internal/infra/persistence/postgres"
	"gamehub/internal/infra/pubsub"
	"gamehub/internal/usecase/impl"

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
			postgres.NewGameRepository,
			postgres.NewUserRepository,
			postgres.NewDiscountRepository,
			postgres.NewTransactionRepository,
			postgres.NewLibraryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clock.New,
			newActivationGenerator,
			pubsub.NewEventPublisher,
		),
	)
}

// newActivationGenerator creates an activation code generator with dependency injection
func newActivationGenerator(cfg *config.Config) service.ActivationCodeGenerator {
	if cfg.Purchase == nil {
		// Use default values if not configured
		return activation.NewGenerator(0)
	}

	return activation.NewGenerator(cfg.Purchase.ActivationRetryLimit)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewDiscountService,
			impl.NewLibraryService,
			impl.NewPurchaseService,
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
			handler.NewCatalogHandler,
			handler.NewPurchaseHandler,
			handler.NewLibraryHandler,
			handler.NewDiscountHandler,
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
