package main

import (
	"context"
	"log/slog"
	"os"

	"hbnb/config"
	"hbnb/internal/delivery"
	"hbnb/internal/delivery/http"
	"hbnb/internal/delivery/http/router/handler"
	"hbnb/internal/infra/auth"
	logs "hbnb/internal/infra/log"
	"hbnb/internal/infra/persistence/memory"
	"hbnb/internal/usecase"
	"hbnb/internal/usecase/impl"

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
			memory.NewUserRepository,
			memory.NewPlaceRepository,
			memory.NewReviewRepository,
			memory.NewAmenityRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
		),
	)
}

// injectUsecase provides the catalog once and exposes each resource view of
// it, so all handlers share the same lock and repositories.
func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			func(c usecase.CatalogUsecase) usecase.UserUsecase { return c },
			func(c usecase.CatalogUsecase) usecase.AmenityUsecase { return c },
			func(c usecase.CatalogUsecase) usecase.PlaceUsecase { return c },
			func(c usecase.CatalogUsecase) usecase.ReviewUsecase { return c },
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewAmenityHandler,
			handler.NewPlaceHandler,
			handler.NewReviewHandler,
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
