package handler

import (
	"time"

	"hbnb/internal/domain/entity"
	"hbnb/internal/usecase"
)

// UserResponse is the public form of a user. The password hash is never exposed.
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AmenityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PlaceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerID     string    `json:"owner_id"`
	AmenityIDs  []string  `json:"amenity_ids"`
	ReviewIDs   []string  `json:"review_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlaceDetailsResponse is a place with its references expanded.
type PlaceDetailsResponse struct {
	PlaceResponse
	Owner     usecase.UserSummary      `json:"owner"`
	Amenities []usecase.AmenitySummary `json:"amenities"`
	Reviews   []usecase.ReviewSummary  `json:"reviews"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	PlaceID   string    `json:"place_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAmenityResponse(a *entity.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toPlaceResponse(p *entity.Place) PlaceResponse {
	return PlaceResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude(),
		Longitude:   p.Longitude(),
		OwnerID:     p.OwnerID,
		AmenityIDs:  nonNil(p.AmenityIDs),
		ReviewIDs:   nonNil(p.ReviewIDs),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPlaceDetailsResponse(d *usecase.PlaceDetails) PlaceDetailsResponse {
	return PlaceDetailsResponse{
		PlaceResponse: toPlaceResponse(d.Place),
		Owner:         d.Owner,
		Amenities:     d.Amenities,
		Reviews:       d.Reviews,
	}
}

func toReviewResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		PlaceID:   r.PlaceID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// mapAll converts every item with fn. The result is never nil so lists
// serialize as [].
func mapAll[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}
