// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"hbnb/config"
	deliverycontext "hbnb/internal/delivery/context"
	"hbnb/internal/domain/entity"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/domain/repository"
	"hbnb/internal/domain/service"
	"hbnb/internal/usecase"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. One lock spans all
// four repositories for the duration of an operation, so every operation
// observes and leaves a consistent catalog.
type catalogService struct {
	mu sync.RWMutex

	userRepo    repository.UserRepository
	placeRepo   repository.PlaceRepository
	reviewRepo  repository.ReviewRepository
	amenityRepo repository.AmenityRepository

	hasher      service.PasswordHasher
	strictEmail bool
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	PlaceRepo   repository.PlaceRepository
	ReviewRepo  repository.ReviewRepository
	AmenityRepo repository.AmenityRepository
	Hasher      service.PasswordHasher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	strictEmail := false
	if params.Config != nil && params.Config.Catalog != nil {
		strictEmail = params.Config.Catalog.StrictEmailUniqueness
	}

	return &catalogService{
		userRepo:    params.UserRepo,
		placeRepo:   params.PlaceRepo,
		reviewRepo:  params.ReviewRepo,
		amenityRepo: params.AmenityRepo,
		hasher:      params.Hasher,
		strictEmail: strictEmail,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveUser fails with a ReferenceError when no user has the id. Callers hold the lock.
func (srv *catalogService) resolveUser(ctx context.Context, id string) (*entity.User, error) {
	user, ok := srv.userRepo.Get(ctx, id)
	if !ok {
		return nil, domainerrors.NewReferenceError(entity.KindUser, id)
	}

	return user, nil
}

// resolveAmenities fails on the first id that names no amenity. Callers hold the lock.
func (srv *catalogService) resolveAmenities(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, ok := srv.amenityRepo.Get(ctx, id); !ok {
			return domainerrors.NewReferenceError(entity.KindAmenity, id)
		}
	}

	return nil
}
