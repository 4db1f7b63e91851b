package entity

// Amenity is a feature a place can offer, such as "Wi-Fi" or "Pool".
type Amenity struct {
	Base
	Name        string `attr:"name" validate:"required,max=50"`
	Description string `attr:"description"`
}

// AmenityParams carries the fields of a new amenity.
type AmenityParams struct {
	Name        string
	Description string
}

// NewAmenity validates params and returns an amenity with a fresh identity.
func NewAmenity(params AmenityParams) (*Amenity, error) {
	amenity := &Amenity{
		Base:        newBase(),
		Name:        params.Name,
		Description: params.Description,
	}

	if err := check(amenity); err != nil {
		return nil, err
	}

	return amenity, nil
}

// Attribute returns the value of the field tagged with name.
func (a *Amenity) Attribute(name string) (any, bool) {
	return attribute(a, name)
}

// Clone returns a copy of the amenity.
func (a *Amenity) Clone() *Amenity {
	clone := *a

	return &clone
}

// AmenityPatch is a partial update of an amenity.
type AmenityPatch struct {
	Name        *string
	Description *string
}

// Apply validates the present fields and applies them all, or none.
func (p AmenityPatch) Apply(a *Amenity) error {
	next := *a
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Description != nil {
		next.Description = *p.Description
	}

	if err := check(&next); err != nil {
		return err
	}

	next.touch()
	*a = next

	return nil
}
