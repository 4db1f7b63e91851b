package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceHandler_CreatePlace(t *testing.T) {
	e := newTestEcho(t)
	owner := createUser(t, e, "owner@example.com")
	wifi := createAmenity(t, e, "Wi-Fi")

	place := createPlace(t, e, owner.ID, wifi.ID)
	assert.Equal(t, "Loft", place.Title)
	assert.Equal(t, 48.85, place.Latitude)
	assert.Equal(t, 2.35, place.Longitude)
	assert.Equal(t, owner.ID, place.OwnerID)
	assert.Equal(t, []string{wifi.ID}, place.AmenityIDs)
	assert.Empty(t, place.ReviewIDs)
}

func TestPlaceHandler_CreatePlace_Errors(t *testing.T) {
	e := newTestEcho(t)
	owner := createUser(t, e, "owner@example.com")

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{
			name:   "missing latitude",
			body:   `{"title":"Loft","price":10,"longitude":2,"owner_id":"` + owner.ID + `"}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "latitude out of range",
			body:   `{"title":"Loft","price":10,"latitude":91,"longitude":2,"owner_id":"` + owner.ID + `"}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "negative price",
			body:   `{"title":"Loft","price":-1,"latitude":0,"longitude":0,"owner_id":"` + owner.ID + `"}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "unknown owner",
			body:   `{"title":"Loft","price":10,"latitude":0,"longitude":0,"owner_id":"nobody"}`,
			status: http.StatusNotFound,
			code:   "USER_REFERENCE_NOT_FOUND",
		},
		{
			name:   "unknown amenity",
			body:   `{"title":"Loft","price":10,"latitude":0,"longitude":0,"owner_id":"` + owner.ID + `","amenity_ids":["nope"]}`,
			status: http.StatusNotFound,
			code:   "AMENITY_REFERENCE_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, e, http.MethodPost, "/places", tt.body)
			requireErrorCode(t, rec, tt.status, tt.code)
		})
	}

	rec := doRequest(t, e, http.MethodGet, "/places", "")
	var places []PlaceResponse
	decodeData(t, rec, &places)
	assert.Empty(t, places)
}

func TestPlaceHandler_GetPlace(t *testing.T) {
	e := newTestEcho(t)
	owner := createUser(t, e, "owner@example.com")
	guest := createUser(t, e, "guest@example.com")
	wifi := createAmenity(t, e, "Wi-Fi")
	place := createPlace(t, e, owner.ID, wifi.ID)
	review := createReview(t, e, place.ID, guest.ID, 4)

	rec := doRequest(t, e, http.MethodGet, "/places/"+place.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got PlaceResponse
	decodeData(t, rec, &got)
	assert.Equal(t, []string{review.ID}, got.ReviewIDs)

	t.Run("expanded", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/places/"+place.ID+"?expand=true", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var details PlaceDetailsResponse
		decodeData(t, rec, &details)
		assert.Equal(t, place.ID, details.ID)
		assert.Equal(t, owner.ID, details.Owner.ID)
		assert.Equal(t, owner.Email, details.Owner.Email)
		require.Len(t, details.Amenities, 1)
		assert.Equal(t, "Wi-Fi", details.Amenities[0].Name)
		require.Len(t, details.Reviews, 1)
		assert.Equal(t, review.ID, details.Reviews[0].ID)
		assert.Equal(t, guest.ID, details.Reviews[0].User.ID)
	})

	t.Run("missing", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/places/missing", "")
		requireErrorCode(t, rec, http.StatusNotFound, "PLACE_NOT_FOUND")

		rec = doRequest(t, e, http.MethodGet, "/places/missing?expand=true", "")
		requireErrorCode(t, rec, http.StatusNotFound, "PLACE_NOT_FOUND")
	})
}

func TestPlaceHandler_UpdatePlace(t *testing.T) {
	e := newTestEcho(t)
	owner := createUser(t, e, "owner@example.com")
	wifi := createAmenity(t, e, "Wi-Fi")
	place := createPlace(t, e, owner.ID, wifi.ID)

	t.Run("failed update changes nothing", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPut, "/places/"+place.ID, `{"title":"X","price":-5}`)
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")

		rec = doRequest(t, e, http.MethodGet, "/places/"+place.ID, "")
		var got PlaceResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "Loft", got.Title)
		assert.Equal(t, 120.0, got.Price)
	})

	t.Run("clear amenities", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPut, "/places/"+place.ID, `{"amenity_ids":[],"price":80}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got PlaceResponse
		decodeData(t, rec, &got)
		assert.Empty(t, got.AmenityIDs)
		assert.Equal(t, 80.0, got.Price)
		assert.Equal(t, "Loft", got.Title)
	})

	t.Run("unknown owner", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPut, "/places/"+place.ID, `{"owner_id":"nobody"}`)
		requireErrorCode(t, rec, http.StatusNotFound, "USER_REFERENCE_NOT_FOUND")
	})

	t.Run("missing place", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPut, "/places/missing", `{"title":"Y"}`)
		requireErrorCode(t, rec, http.StatusNotFound, "PLACE_NOT_FOUND")
	})
}
