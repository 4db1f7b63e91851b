package entity

import (
	"math"
	"slices"

	domainerrors "hbnb/internal/domain/errors"

	"github.com/paulmach/orb"
)

// worldBound is the valid range of a coordinate, longitude on X and latitude on Y.
var worldBound = orb.Bound{
	Min: orb.Point{-180, -90},
	Max: orb.Point{180, 90},
}

// Place is a listing owned by a user. Owner, amenities and reviews are held
// as ids; the catalog resolves each of them when it writes the place.
type Place struct {
	Base
	Title       string    `attr:"title" validate:"required,max=100"`
	Description string    `attr:"description"`
	Price       float64   `attr:"price" validate:"gte=0"`
	Location    orb.Point // Longitude, latitude.
	OwnerID     string    `attr:"owner_id" validate:"required"`
	AmenityIDs  []string  // Set semantics; replaced as a whole.
	ReviewIDs   []string  // Creation order; maintained by the catalog.
}

// PlaceParams carries the fields of a new place.
type PlaceParams struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	AmenityIDs  []string
}

// NewPlace validates params and returns a place with no reviews.
func NewPlace(params PlaceParams) (*Place, error) {
	place := &Place{
		Base:        newBase(),
		Title:       params.Title,
		Description: params.Description,
		Price:       params.Price,
		Location:    orb.Point{params.Longitude, params.Latitude},
		OwnerID:     params.OwnerID,
		AmenityIDs:  uniqueIDs(params.AmenityIDs),
		ReviewIDs:   []string{},
	}

	if err := place.validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Latitude returns the Y coordinate of the place.
func (p *Place) Latitude() float64 {
	return p.Location.Lat()
}

// Longitude returns the X coordinate of the place.
func (p *Place) Longitude() float64 {
	return p.Location.Lon()
}

// Attribute returns the value of the field tagged with name. The coordinates
// are exposed as latitude and longitude.
func (p *Place) Attribute(name string) (any, bool) {
	switch name {
	case "latitude":
		return p.Latitude(), true
	case "longitude":
		return p.Longitude(), true
	}

	return attribute(p, name)
}

// Clone returns a copy of the place that shares no slices with p.
func (p *Place) Clone() *Place {
	clone := *p
	clone.AmenityIDs = slices.Clone(p.AmenityIDs)
	clone.ReviewIDs = slices.Clone(p.ReviewIDs)

	return &clone
}

func (p *Place) validate() error {
	if err := check(p); err != nil {
		return err
	}

	return checkLocation(p.Location)
}

func checkLocation(pt orb.Point) error {
	if worldBound.Contains(pt) && !math.IsNaN(pt.Lat()) && !math.IsNaN(pt.Lon()) {
		return nil
	}

	lat := pt.Lat()
	if math.IsNaN(lat) || lat < worldBound.Min.Lat() || lat > worldBound.Max.Lat() {
		return domainerrors.NewValidationError("latitude", "range", "latitude must be between -90 and 90")
	}

	return domainerrors.NewValidationError("longitude", "range", "longitude must be between -180 and 180")
}

// uniqueIDs drops repeated ids, keeping first occurrences in order.
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}

	return out
}

// PlacePatch is a partial update of a place. Nil fields are left unchanged;
// a non-nil AmenityIDs replaces the whole set.
type PlacePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	OwnerID     *string
	AmenityIDs  *[]string
}

// Apply validates the present fields and applies them all, or none.
func (patch PlacePatch) Apply(p *Place) error {
	next := p.Clone()
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.Price != nil {
		next.Price = *patch.Price
	}
	if patch.Latitude != nil {
		next.Location[1] = *patch.Latitude
	}
	if patch.Longitude != nil {
		next.Location[0] = *patch.Longitude
	}
	if patch.OwnerID != nil {
		next.OwnerID = *patch.OwnerID
	}
	if patch.AmenityIDs != nil {
		next.AmenityIDs = uniqueIDs(*patch.AmenityIDs)
	}

	if err := next.validate(); err != nil {
		return err
	}

	next.touch()
	*p = *next

	return nil
}

// AppendReview returns a patch adding reviewID to the end of a place's reviews.
func AppendReview(reviewID string) PatchFunc[*Place] {
	return func(p *Place) error {
		if slices.Contains(p.ReviewIDs, reviewID) {
			return nil
		}
		p.ReviewIDs = append(slices.Clone(p.ReviewIDs), reviewID)
		p.touch()

		return nil
	}
}

// RemoveReview returns a patch dropping reviewID from a place's reviews.
func RemoveReview(reviewID string) PatchFunc[*Place] {
	return func(p *Place) error {
		if !slices.Contains(p.ReviewIDs, reviewID) {
			return nil
		}
		p.ReviewIDs = slices.DeleteFunc(slices.Clone(p.ReviewIDs), func(id string) bool {
			return id == reviewID
		})
		p.touch()

		return nil
	}
}
