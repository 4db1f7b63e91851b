package impl

import (
	"context"
	"log/slog"

	"hbnb/internal/domain/entity"
	"hbnb/internal/errors"
	"hbnb/internal/usecase"
)

// CreatePlace validates the place, then resolves its owner and each amenity.
// Nothing is stored when any step fails.
func (srv *catalogService) CreatePlace(ctx context.Context, input *usecase.CreatePlaceInput) (*entity.Place, error) {
	place, err := entity.NewPlace(entity.PlaceParams{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		OwnerID:     input.OwnerID,
		AmenityIDs:  input.AmenityIDs,
	})
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, err := srv.resolveUser(ctx, place.OwnerID); err != nil {
		return nil, err
	}
	if err := srv.resolveAmenities(ctx, place.AmenityIDs); err != nil {
		return nil, err
	}

	if err := srv.placeRepo.Add(ctx, place); err != nil {
		return nil, errors.Wrap(err, "failed to add place")
	}

	srv.log(ctx).Info("Place created", slog.String("placeID", place.ID), slog.String("ownerID", place.OwnerID))

	return place, nil
}

func (srv *catalogService) GetPlace(ctx context.Context, id string) *entity.Place {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	place, _ := srv.placeRepo.Get(ctx, id)

	return place
}

func (srv *catalogService) GetPlaceDetails(ctx context.Context, id string) *usecase.PlaceDetails {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	place, ok := srv.placeRepo.Get(ctx, id)
	if !ok {
		return nil
	}

	details := &usecase.PlaceDetails{
		Place:     place,
		Owner:     srv.userSummary(ctx, place.OwnerID),
		Amenities: make([]usecase.AmenitySummary, 0, len(place.AmenityIDs)),
		Reviews:   make([]usecase.ReviewSummary, 0, len(place.ReviewIDs)),
	}

	for _, amenityID := range place.AmenityIDs {
		amenity, ok := srv.amenityRepo.Get(ctx, amenityID)
		if !ok {
			continue
		}
		details.Amenities = append(details.Amenities, usecase.AmenitySummary{ID: amenity.ID, Name: amenity.Name})
	}

	for _, review := range srv.placeReviews(ctx, place) {
		details.Reviews = append(details.Reviews, usecase.ReviewSummary{
			ID:     review.ID,
			Text:   review.Text,
			Rating: review.Rating,
			User:   srv.userSummary(ctx, review.UserID),
		})
	}

	return details
}

func (srv *catalogService) GetAllPlaces(ctx context.Context) []*entity.Place {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.placeRepo.GetAll(ctx)
}

// UpdatePlace validates the present scalar fields first, then re-resolves
// the owner and the full amenity list when they are present.
func (srv *catalogService) UpdatePlace(ctx context.Context, id string, input *usecase.UpdatePlaceInput) (*entity.Place, error) {
	patch := entity.PlacePatch{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		OwnerID:     input.OwnerID,
		AmenityIDs:  input.AmenityIDs,
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	current, ok := srv.placeRepo.Get(ctx, id)
	if !ok {
		return nil, nil
	}

	// Dry run on the copy handed out by the repository.
	if err := patch.Apply(current); err != nil {
		return nil, err
	}

	if input.OwnerID != nil {
		if _, err := srv.resolveUser(ctx, *input.OwnerID); err != nil {
			return nil, err
		}
	}
	if input.AmenityIDs != nil {
		if err := srv.resolveAmenities(ctx, *input.AmenityIDs); err != nil {
			return nil, err
		}
	}

	place, err := srv.placeRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Place updated", slog.String("placeID", id))

	return place, nil
}

// userSummary describes the user with the id, or only the id when it is unknown.
// Callers hold the lock.
func (srv *catalogService) userSummary(ctx context.Context, id string) usecase.UserSummary {
	user, ok := srv.userRepo.Get(ctx, id)
	if !ok {
		return usecase.UserSummary{ID: id}
	}

	return usecase.UserSummary{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}
