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

// AmenityHandlerParams holds dependencies for AmenityHandler, injected by Fx.
type AmenityHandlerParams struct {
	fx.In

	AmenityUC usecase.AmenityUsecase
	Logger    *slog.Logger
}

// AmenityHandler holds dependencies for amenity-related handlers.
type AmenityHandler struct {
	uc     usecase.AmenityUsecase
	logger *slog.Logger
}

// NewAmenityHandler is the constructor for AmenityHandler.
func NewAmenityHandler(params AmenityHandlerParams) *AmenityHandler {
	return &AmenityHandler{
		uc:     params.AmenityUC,
		logger: params.Logger,
	}
}

func (h *AmenityHandler) CreateAmenity(c echo.Context) error {
	var input usecase.CreateAmenityInput
	if err := bindFields(c, &input); err != nil {
		return err
	}

	amenity, err := h.uc.CreateAmenity(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAmenityResponse(amenity), "Amenity created successfully")
}

func (h *AmenityHandler) ListAmenities(c echo.Context) error {
	amenities := h.uc.GetAllAmenities(c.Request().Context())

	return response.Success(c, http.StatusOK, mapAll(amenities, toAmenityResponse), "")
}

func (h *AmenityHandler) GetAmenity(c echo.Context) error {
	amenity := h.uc.GetAmenity(c.Request().Context(), c.Param("id"))
	if amenity == nil {
		return errors.WithStack(domainerrors.ErrAmenityNotFound)
	}

	return response.Success(c, http.StatusOK, toAmenityResponse(amenity), "")
}

func (h *AmenityHandler) UpdateAmenity(c echo.Context) error {
	var input usecase.UpdateAmenityInput
	if err := bindFields(c, &input); err != nil {
		return err
	}

	amenity, err := h.uc.UpdateAmenity(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}
	if amenity == nil {
		return errors.WithStack(domainerrors.ErrAmenityNotFound)
	}

	requestLogger(c, h.logger).Debug("amenity updated")

	return response.Success(c, http.StatusOK, toAmenityResponse(amenity), "Amenity updated successfully")
}
