// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"hbnb/internal/domain/entity"
	"hbnb/internal/errors"
)

var (
	// ErrNotFound is returned when no entity is stored under the requested id.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateID is returned by Add when the id is already taken.
	ErrDuplicateID = errors.New("entity id already exists")
)

// Repository is a keyed store for one entity type. Implementations keep
// insertion order and never reference other repositories.
type Repository[T entity.Record[T]] interface {
	// Add stores record under its id.
	Add(ctx context.Context, record T) error

	// Get returns the record stored under id.
	Get(ctx context.Context, id string) (T, bool)

	// GetByAttribute returns the first record, in insertion order, whose
	// attribute name equals value.
	GetByAttribute(ctx context.Context, name string, value any) (T, bool)

	// GetAll returns every record in insertion order.
	GetAll(ctx context.Context) []T

	// Update applies patch to the record stored under id and returns the result.
	// Errors from the patch are returned unchanged and leave the record as it was.
	Update(ctx context.Context, id string, patch entity.Patch[T]) (T, error)

	// Delete removes the record stored under id and reports whether it existed.
	Delete(ctx context.Context, id string) bool
}

// Concrete repositories of the catalog.
type (
	UserRepository    = Repository[*entity.User]
	PlaceRepository   = Repository[*entity.Place]
	ReviewRepository  = Repository[*entity.Review]
	AmenityRepository = Repository[*entity.Amenity]
)
