package handler

import (
	"log/slog"
	"net/http"

	"hbnb/internal/delivery/http/response"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/errors"
	"hbnb/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	PlaceUC usecase.PlaceUsecase
	Logger  *slog.Logger
}

// PlaceHandler holds dependencies for place-related handlers.
type PlaceHandler struct {
	uc     usecase.PlaceUsecase
	logger *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler.
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{
		uc:     params.PlaceUC,
		logger: params.Logger,
	}
}

// CreatePlaceRequest represents the request body for creating a place.
// The numeric fields must be present since zero is a valid value for each.
type CreatePlaceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	OwnerID     string   `json:"owner_id"`
	AmenityIDs  []string `json:"amenity_ids"`
}

// CreatePlace handles creating a new place.
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	var req CreatePlaceRequest
	if err := bindFields(c, &req); err != nil {
		return err
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		OwnerID:     req.OwnerID,
		AmenityIDs:  req.AmenityIDs,
	}

	place, err := h.uc.CreatePlace(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPlaceResponse(place), "Place created successfully")
}

// ListPlaces handles listing every place.
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	places := h.uc.GetAllPlaces(c.Request().Context())

	return response.Success(c, http.StatusOK, mapAll(places, toPlaceResponse), "")
}

// GetPlace handles retrieving a place. With expand=true the owner,
// amenities and reviews are returned in place of their ids.
func (h *PlaceHandler) GetPlace(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if c.QueryParam("expand") == "true" {
		details := h.uc.GetPlaceDetails(ctx, id)
		if details == nil {
			return errors.WithStack(domainerrors.ErrPlaceNotFound)
		}

		return response.Success(c, http.StatusOK, toPlaceDetailsResponse(details), "")
	}

	place := h.uc.GetPlace(ctx, id)
	if place == nil {
		return errors.WithStack(domainerrors.ErrPlaceNotFound)
	}

	return response.Success(c, http.StatusOK, toPlaceResponse(place), "")
}

// UpdatePlace handles a partial update of a place.
func (h *PlaceHandler) UpdatePlace(c echo.Context) error {
	var input usecase.UpdatePlaceInput
	if err := bindFields(c, &input); err != nil {
		return err
	}

	place, err := h.uc.UpdatePlace(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}
	if place == nil {
		return errors.WithStack(domainerrors.ErrPlaceNotFound)
	}

	requestLogger(c, h.logger).Debug("place updated")

	return response.Success(c, http.StatusOK, toPlaceResponse(place), "Place updated successfully")
}
