// Package entity contains the core business objects of the catalog: users,
// the places they own, the reviews written about places, and the amenities
// places offer. Every entity validates itself on construction and on partial
// update; cross-entity rules live in the catalog use case.
package entity

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Entity type names, used in error reports and logs.
const (
	KindUser    = "user"
	KindPlace   = "place"
	KindReview  = "review"
	KindAmenity = "amenity"
)

// Record is implemented by every stored entity. T is the pointer type of the
// entity itself so Clone can hand back an independent copy.
type Record[T any] interface {
	// Identifier returns the entity id.
	Identifier() string
	// Attribute returns the value of the field tagged with name.
	Attribute(name string) (any, bool)
	// Clone returns a deep copy.
	Clone() T
}

// Patch is a partial update of a T. Apply either mutates every field it
// carries and refreshes the update timestamp, or fails and mutates nothing.
type Patch[T any] interface {
	Apply(target T) error
}

// PatchFunc adapts a function to the Patch interface.
type PatchFunc[T any] func(target T) error

// Apply calls f(target).
func (f PatchFunc[T]) Apply(target T) error {
	return f(target)
}

// Base holds the identity fields shared by all entities.
type Base struct {
	ID        string    `attr:"id"`         // Random UUID v4, assigned at creation.
	CreatedAt time.Time `attr:"created_at"` // Set once at creation.
	UpdatedAt time.Time `attr:"updated_at"` // Refreshed on every successful mutation.
}

// now is swapped in tests that need to control the clock.
var now = time.Now

func newBase() Base {
	ts := now()

	return Base{
		ID:        uuid.NewString(),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// Identifier returns the entity id.
func (b *Base) Identifier() string {
	return b.ID
}

// touch advances UpdatedAt to the current time. It never moves backwards,
// even when the wall clock does.
func (b *Base) touch() {
	ts := now()
	if ts.Before(b.UpdatedAt) {
		ts = b.UpdatedAt
	}
	b.UpdatedAt = ts
}

// attribute looks up the field tagged `attr:"name"` on record, descending into
// embedded structs.
func attribute(record any, name string) (any, bool) {
	return lookupAttribute(reflect.Indirect(reflect.ValueOf(record)), name)
}

func lookupAttribute(v reflect.Value, name string) (any, bool) {
	if v.Kind() != reflect.Struct {
		return nil, false
	}

	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if value, ok := lookupAttribute(v.Field(i), name); ok {
				return value, true
			}

			continue
		}
		if field.Tag.Get("attr") == name {
			return v.Field(i).Interface(), true
		}
	}

	return nil, false
}
