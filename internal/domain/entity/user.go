package entity

import "strings"

// User is a person known to the catalog. Users own places and write reviews.
type User struct {
	Base
	FirstName string `attr:"first_name" validate:"required,max=50"`
	LastName  string `attr:"last_name" validate:"required,max=50"`
	Email     string `attr:"email" validate:"required,loose_email"` // Stored trimmed and lower-cased.
	Password  string `attr:"password" validate:"omitempty,notblank"` // Password hash; empty when the user has none.
	IsAdmin   bool   `attr:"is_admin"`
}

// UserParams carries the fields of a new user.
type UserParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// NewUser validates params and returns a user with a fresh identity.
func NewUser(params UserParams) (*User, error) {
	user := &User{
		Base:      newBase(),
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     NormalizeEmail(params.Email),
		Password:  params.Password,
		IsAdmin:   params.IsAdmin,
	}

	if err := check(user); err != nil {
		return nil, err
	}

	return user, nil
}

// NormalizeEmail trims and lower-cases an address so lookups are
// case-insensitive under exact comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword checks a plaintext password before it is hashed. An empty
// password means "no password" and is accepted.
func ValidatePassword(password string) error {
	return checkValue("password", password, "omitempty,notblank")
}

// Attribute returns the value of the field tagged with name.
func (u *User) Attribute(name string) (any, bool) {
	return attribute(u, name)
}

// Clone returns a copy of the user.
func (u *User) Clone() *User {
	clone := *u

	return &clone
}

// UserPatch is a partial update of a user. Nil fields are left unchanged.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string // Already hashed.
	IsAdmin   *bool
}

// Apply validates the present fields and applies them all, or none.
func (p UserPatch) Apply(u *User) error {
	next := *u
	if p.FirstName != nil {
		next.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		next.LastName = *p.LastName
	}
	if p.Email != nil {
		next.Email = NormalizeEmail(*p.Email)
	}
	if p.Password != nil {
		next.Password = *p.Password
	}
	if p.IsAdmin != nil {
		next.IsAdmin = *p.IsAdmin
	}

	if err := check(&next); err != nil {
		return err
	}

	next.touch()
	*u = next

	return nil
}
