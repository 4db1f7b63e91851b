// Package memory provides an in-process implementation of the repository contracts.
package memory

import (
	"context"
	"slices"
	"sync"

	"hbnb/internal/domain/entity"
	"hbnb/internal/domain/repository"
	"hbnb/internal/errors"
)

// Repository stores records of one type in memory. Records are cloned on the
// way in and out, so callers never share state with the store.
type Repository[T entity.Record[T]] struct {
	mu    sync.RWMutex
	store map[string]T
	order []string
}

var (
	_ repository.UserRepository    = (*Repository[*entity.User])(nil)
	_ repository.PlaceRepository   = (*Repository[*entity.Place])(nil)
	_ repository.ReviewRepository  = (*Repository[*entity.Review])(nil)
	_ repository.AmenityRepository = (*Repository[*entity.Amenity])(nil)
)

// NewRepository returns an empty repository.
func NewRepository[T entity.Record[T]]() *Repository[T] {
	return &Repository[T]{
		store: make(map[string]T),
	}
}

// NewUserRepository returns an empty user repository.
func NewUserRepository() repository.UserRepository {
	return NewRepository[*entity.User]()
}

// NewPlaceRepository returns an empty place repository.
func NewPlaceRepository() repository.PlaceRepository {
	return NewRepository[*entity.Place]()
}

// NewReviewRepository returns an empty review repository.
func NewReviewRepository() repository.ReviewRepository {
	return NewRepository[*entity.Review]()
}

// NewAmenityRepository returns an empty amenity repository.
func NewAmenityRepository() repository.AmenityRepository {
	return NewRepository[*entity.Amenity]()
}

func (r *Repository[T]) Add(ctx context.Context, record T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := record.Identifier()
	if _, ok := r.store[id]; ok {
		return errors.Wrapf(repository.ErrDuplicateID, "id %s", id)
	}

	r.store[id] = record.Clone()
	r.order = append(r.order, id)

	return nil
}

func (r *Repository[T]) Get(ctx context.Context, id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.store[id]
	if !ok {
		var zero T
		return zero, false
	}

	return record.Clone(), true
}

func (r *Repository[T]) GetByAttribute(ctx context.Context, name string, value any) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		record := r.store[id]
		if got, ok := record.Attribute(name); ok && got == value {
			return record.Clone(), true
		}
	}

	var zero T
	return zero, false
}

func (r *Repository[T]) GetAll(ctx context.Context) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]T, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.store[id].Clone())
	}

	return result
}

func (r *Repository[T]) Update(ctx context.Context, id string, patch entity.Patch[T]) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	record, ok := r.store[id]
	if !ok {
		return zero, errors.Wrapf(repository.ErrNotFound, "id %s", id)
	}

	next := record.Clone()
	if err := patch.Apply(next); err != nil {
		return zero, err
	}
	r.store[id] = next

	return next.Clone(), nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return false
	}

	delete(r.store, id)
	r.order = slices.DeleteFunc(r.order, func(existing string) bool {
		return existing == id
	})

	return true
}
