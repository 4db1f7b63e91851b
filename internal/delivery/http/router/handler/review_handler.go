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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		uc:     params.ReviewUC,
		logger: params.Logger,
	}
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var input usecase.CreateReviewInput
	if err := bindFields(c, &input); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review), "Review created successfully")
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews := h.uc.GetAllReviews(c.Request().Context())

	return response.Success(c, http.StatusOK, mapAll(reviews, toReviewResponse), "")
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	review := h.uc.GetReview(c.Request().Context(), c.Param("id"))
	if review == nil {
		return errors.WithStack(domainerrors.ErrReviewNotFound)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review), "")
}

// ListPlaceReviews handles listing the reviews of one place. An unknown
// place is a 404, unlike a place with no reviews.
func (h *ReviewHandler) ListPlaceReviews(c echo.Context) error {
	reviews, ok := h.uc.GetReviewsForPlace(c.Request().Context(), c.Param("id"))
	if !ok {
		return errors.WithStack(domainerrors.ErrPlaceNotFound)
	}

	return response.Success(c, http.StatusOK, mapAll(reviews, toReviewResponse), "")
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	var input usecase.UpdateReviewInput
	if err := bindFields(c, &input); err != nil {
		return err
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}
	if review == nil {
		return errors.WithStack(domainerrors.ErrReviewNotFound)
	}

	requestLogger(c, h.logger).Debug("review updated")

	return response.Success(c, http.StatusOK, toReviewResponse(review), "Review updated successfully")
}

// DeleteReview handles deleting a review. It responds 204 with no body.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	if !h.uc.DeleteReview(c.Request().Context(), c.Param("id")) {
		return errors.WithStack(domainerrors.ErrReviewNotFound)
	}

	requestLogger(c, h.logger).Info("review deleted")

	return c.NoContent(http.StatusNoContent)
}
