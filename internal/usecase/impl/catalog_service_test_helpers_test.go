package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hbnb/config"
	"hbnb/internal/domain/entity"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/domain/repository"
	"hbnb/internal/errors"
	"hbnb/internal/infra/persistence/memory"
	mockService "hbnb/internal/mocks/service"
	"hbnb/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogFixtures holds all test dependencies for catalog service tests.
type catalogFixtures struct {
	service   usecase.CatalogUsecase
	hasher    *mockService.MockPasswordHasher
	users     repository.UserRepository
	places    repository.PlaceRepository
	reviews   repository.ReviewRepository
	amenities repository.AmenityRepository
}

func createTestCatalogService(t *testing.T, strictEmail bool) catalogFixtures {
	t.Helper()

	f := catalogFixtures{
		hasher:    mockService.NewMockPasswordHasher(t),
		users:     memory.NewUserRepository(),
		places:    memory.NewPlaceRepository(),
		reviews:   memory.NewReviewRepository(),
		amenities: memory.NewAmenityRepository(),
	}

	f.service = NewCatalogService(CatalogServiceParams{
		UserRepo:    f.users,
		PlaceRepo:   f.places,
		ReviewRepo:  f.reviews,
		AmenityRepo: f.amenities,
		Hasher:      f.hasher,
		Config:      &config.Config{Catalog: &config.CatalogConfig{StrictEmailUniqueness: strictEmail}},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func (f catalogFixtures) mustCreateUser(t *testing.T, email string) *entity.User {
	t.Helper()

	user, err := f.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
	})
	require.NoError(t, err)

	return user
}

func (f catalogFixtures) mustCreateAmenity(t *testing.T, name string) *entity.Amenity {
	t.Helper()

	amenity, err := f.service.CreateAmenity(context.Background(), &usecase.CreateAmenityInput{Name: name})
	require.NoError(t, err)

	return amenity
}

func (f catalogFixtures) mustCreatePlace(t *testing.T, ownerID string, amenityIDs ...string) *entity.Place {
	t.Helper()

	place, err := f.service.CreatePlace(context.Background(), &usecase.CreatePlaceInput{
		Title:      "Cozy Cottage",
		Price:      100,
		Latitude:   37.77,
		Longitude:  -122.42,
		OwnerID:    ownerID,
		AmenityIDs: amenityIDs,
	})
	require.NoError(t, err)

	return place
}

func (f catalogFixtures) mustCreateReview(t *testing.T, userID, placeID string) *entity.Review {
	t.Helper()

	review, err := f.service.CreateReview(context.Background(), &usecase.CreateReviewInput{
		Text:    "Great stay",
		Rating:  5,
		UserID:  userID,
		PlaceID: placeID,
	})
	require.NoError(t, err)

	return review
}

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %v", err)
	assert.Equal(t, field, validationErr.Field)
}

func requireReferenceError(t *testing.T, err error, kind, id string) {
	t.Helper()

	var referenceErr *domainerrors.ReferenceError
	require.True(t, errors.As(err, &referenceErr), "expected ReferenceError, got %v", err)
	assert.Equal(t, kind, referenceErr.Entity)
	assert.Equal(t, id, referenceErr.ID)
}

func ptr[T any](v T) *T {
	return &v
}
