// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hbnb/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AmenityHandler *handler.AmenityHandler
	PlaceHandler   *handler.PlaceHandler
	ReviewHandler  *handler.ReviewHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	amenityHandler *handler.AmenityHandler
	placeHandler   *handler.PlaceHandler
	reviewHandler  *handler.ReviewHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		amenityHandler: params.AmenityHandler,
		placeHandler:   params.PlaceHandler,
		reviewHandler:  params.ReviewHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	users := api.Group("/users")
	{
		users.POST("", r.userHandler.CreateUser)
		users.GET("", r.userHandler.ListUsers)
		users.GET("/:id", r.userHandler.GetUser)
		users.PUT("/:id", r.userHandler.UpdateUser)
	}

	amenities := api.Group("/amenities")
	{
		amenities.POST("", r.amenityHandler.CreateAmenity)
		amenities.GET("", r.amenityHandler.ListAmenities)
		amenities.GET("/:id", r.amenityHandler.GetAmenity)
		amenities.PUT("/:id", r.amenityHandler.UpdateAmenity)
	}

	places := api.Group("/places")
	{
		places.POST("", r.placeHandler.CreatePlace)
		places.GET("", r.placeHandler.ListPlaces)
		places.GET("/:id", r.placeHandler.GetPlace)
		places.PUT("/:id", r.placeHandler.UpdatePlace)
	}

	reviews := api.Group("/reviews")
	{
		reviews.POST("", r.reviewHandler.CreateReview)
		reviews.GET("", r.reviewHandler.ListReviews)
		reviews.GET("/:id", r.reviewHandler.GetReview)
		reviews.PUT("/:id", r.reviewHandler.UpdateReview)
		reviews.DELETE("/:id", r.reviewHandler.DeleteReview)
		reviews.GET("/place/:id", r.reviewHandler.ListPlaceReviews)
	}
}
