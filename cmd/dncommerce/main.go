package main

import (
	"context"
	"log/slog"
	"os"

	"dncommerce/config"
	"dncommerce/internal/delivery"
	"dncommerce/internal/delivery/api"
	"dncommerce/internal/delivery/api/router/handler"
	"dncommerce/internal/infra/cache"
	logs "dncommerce/internal/infra/log"
	"dncommerce/internal/infra/persistence/postgres"
	"dncommerce/internal/infra/pubsub"
	"dncommerce/internal/infra/qrcode"
	"dncommerce/internal/infra/tracing"
	"dncommerce/internal/usecase/impl"

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
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			tracing.Setup,
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
			postgres.NewTransactionManager,
			postgres.NewProductRepository,
			postgres.NewCustomerRepository,
			postgres.NewInventoryRepository,
			postgres.NewOrderRepository,
			postgres.NewSaleRepository,
			postgres.NewReportRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			cache.NewProductCache,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCustomerService,
			impl.NewInventoryService,
			impl.NewOrderService,
			impl.NewSalesService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewProductHandler,
			handler.NewCustomerHandler,
			handler.NewInventoryHandler,
			handler.NewOrderHandler,
			handler.NewSalesHandler,
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
