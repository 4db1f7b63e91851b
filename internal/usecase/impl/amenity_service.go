package impl

import (
	"context"
	"log/slog"

	"hbnb/internal/domain/entity"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/errors"
	"hbnb/internal/usecase"
)

// CreateAmenity stores a new amenity unless one with the exact same name exists.
func (srv *catalogService) CreateAmenity(ctx context.Context, input *usecase.CreateAmenityInput) (*entity.Amenity, error) {
	amenity, err := entity.NewAmenity(entity.AmenityParams{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, exists := srv.amenityRepo.GetByAttribute(ctx, "name", amenity.Name); exists {
		return nil, domainerrors.NewConflictError(entity.KindAmenity, "name", amenity.Name)
	}

	if err := srv.amenityRepo.Add(ctx, amenity); err != nil {
		return nil, errors.Wrap(err, "failed to add amenity")
	}

	srv.log(ctx).Info("Amenity created", slog.String("amenityID", amenity.ID), slog.String("name", amenity.Name))

	return amenity, nil
}

func (srv *catalogService) GetAmenity(ctx context.Context, id string) *entity.Amenity {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	amenity, _ := srv.amenityRepo.Get(ctx, id)

	return amenity
}

func (srv *catalogService) GetAmenityByName(ctx context.Context, name string) *entity.Amenity {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	amenity, _ := srv.amenityRepo.GetByAttribute(ctx, "name", name)

	return amenity
}

func (srv *catalogService) GetAllAmenities(ctx context.Context) []*entity.Amenity {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.amenityRepo.GetAll(ctx)
}

// UpdateAmenity applies a partial update. Renaming does not re-check name uniqueness.
func (srv *catalogService) UpdateAmenity(ctx context.Context, id string, input *usecase.UpdateAmenityInput) (*entity.Amenity, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, ok := srv.amenityRepo.Get(ctx, id); !ok {
		return nil, nil
	}

	amenity, err := srv.amenityRepo.Update(ctx, id, entity.AmenityPatch{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Amenity updated", slog.String("amenityID", id))

	return amenity, nil
}
