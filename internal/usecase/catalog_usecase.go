// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"hbnb/internal/domain/entity"
)

// UserUsecase defines the user operations of the catalog.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id string) *entity.User
	GetUserByEmail(ctx context.Context, email string) *entity.User
	GetAllUsers(ctx context.Context) []*entity.User
	// UpdateUser returns nil, nil when no user has the id.
	UpdateUser(ctx context.Context, id string, input *UpdateUserInput) (*entity.User, error)
}

// AmenityUsecase defines the amenity operations of the catalog.
type AmenityUsecase interface {
	CreateAmenity(ctx context.Context, input *CreateAmenityInput) (*entity.Amenity, error)
	GetAmenity(ctx context.Context, id string) *entity.Amenity
	GetAmenityByName(ctx context.Context, name string) *entity.Amenity
	GetAllAmenities(ctx context.Context) []*entity.Amenity
	// UpdateAmenity returns nil, nil when no amenity has the id.
	UpdateAmenity(ctx context.Context, id string, input *UpdateAmenityInput) (*entity.Amenity, error)
}

// PlaceUsecase defines the place operations of the catalog.
type PlaceUsecase interface {
	CreatePlace(ctx context.Context, input *CreatePlaceInput) (*entity.Place, error)
	GetPlace(ctx context.Context, id string) *entity.Place
	// GetPlaceDetails returns the place with its owner, amenities and reviews resolved.
	GetPlaceDetails(ctx context.Context, id string) *PlaceDetails
	GetAllPlaces(ctx context.Context) []*entity.Place
	// UpdatePlace returns nil, nil when no place has the id.
	UpdatePlace(ctx context.Context, id string, input *UpdatePlaceInput) (*entity.Place, error)
}

// ReviewUsecase defines the review operations of the catalog.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
	GetReview(ctx context.Context, id string) *entity.Review
	GetAllReviews(ctx context.Context) []*entity.Review
	// GetReviewsForPlace reports false when the place does not exist, which
	// differs from a place with no reviews.
	GetReviewsForPlace(ctx context.Context, placeID string) ([]*entity.Review, bool)
	// UpdateReview returns nil, nil when no review has the id.
	UpdateReview(ctx context.Context, id string, input *UpdateReviewInput) (*entity.Review, error)
	// DeleteReview reports whether the review existed.
	DeleteReview(ctx context.Context, id string) bool
}

// CatalogUsecase is the single entry point to users, places, reviews and amenities.
type CatalogUsecase interface {
	UserUsecase
	AmenityUsecase
	PlaceUsecase
	ReviewUsecase
}

// --- Input DTOs ---

// CreateUserInput defines the data required to create a user.
type CreateUserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateUserInput defines a partial update of a user. Nil fields are left unchanged.
type UpdateUserInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	IsAdmin   *bool   `json:"is_admin,omitempty"`
}

// CreateAmenityInput defines the data required to create an amenity.
type CreateAmenityInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateAmenityInput defines a partial update of an amenity.
type UpdateAmenityInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreatePlaceInput defines the data required to create a place.
type CreatePlaceInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	AmenityIDs  []string `json:"amenity_ids"`
}

// UpdatePlaceInput defines a partial update of a place. A non-nil AmenityIDs
// replaces the whole set.
type UpdatePlaceInput struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	OwnerID     *string   `json:"owner_id,omitempty"`
	AmenityIDs  *[]string `json:"amenity_ids,omitempty"`
}

// CreateReviewInput defines the data required to create a review.
type CreateReviewInput struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
}

// UpdateReviewInput defines a partial update of a review. The user and place
// of a review never change.
type UpdateReviewInput struct {
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

// --- Output DTOs ---

// UserSummary is the short form of a user embedded in other views.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
}

// AmenitySummary is the short form of an amenity embedded in place details.
type AmenitySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ReviewSummary is a review with a summary of its author.
type ReviewSummary struct {
	ID     string      `json:"id"`
	Text   string      `json:"text"`
	Rating int         `json:"rating"`
	User   UserSummary `json:"user"`
}

// PlaceDetails is the expanded view of a place.
type PlaceDetails struct {
	Place     *entity.Place
	Owner     UserSummary
	Amenities []AmenitySummary
	Reviews   []ReviewSummary
}
