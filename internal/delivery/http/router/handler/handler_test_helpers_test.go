package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hbnb/config"
	"hbnb/internal/delivery/http/middleware"
	"hbnb/internal/delivery/http/validator"
	"hbnb/internal/infra/auth"
	"hbnb/internal/infra/persistence/memory"
	"hbnb/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

// newTestEcho wires every handler to a catalog backed by fresh memory
// repositories.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := impl.NewCatalogService(impl.CatalogServiceParams{
		UserRepo:    memory.NewUserRepository(),
		PlaceRepo:   memory.NewPlaceRepository(),
		ReviewRepo:  memory.NewReviewRepository(),
		AmenityRepo: memory.NewAmenityRepository(),
		Hasher:      auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Config:      &config.Config{Catalog: &config.CatalogConfig{}},
		Logger:      logger,
	})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	users := NewUserHandler(UserHandlerParams{UserUC: catalog, Logger: logger})
	amenities := NewAmenityHandler(AmenityHandlerParams{AmenityUC: catalog, Logger: logger})
	places := NewPlaceHandler(PlaceHandlerParams{PlaceUC: catalog, Logger: logger})
	reviews := NewReviewHandler(ReviewHandlerParams{ReviewUC: catalog, Logger: logger})

	e.GET("/health", HealthCheck)
	e.POST("/users", users.CreateUser)
	e.GET("/users", users.ListUsers)
	e.GET("/users/:id", users.GetUser)
	e.PUT("/users/:id", users.UpdateUser)
	e.POST("/amenities", amenities.CreateAmenity)
	e.GET("/amenities", amenities.ListAmenities)
	e.GET("/amenities/:id", amenities.GetAmenity)
	e.PUT("/amenities/:id", amenities.UpdateAmenity)
	e.POST("/places", places.CreatePlace)
	e.GET("/places", places.ListPlaces)
	e.GET("/places/:id", places.GetPlace)
	e.PUT("/places/:id", places.UpdatePlace)
	e.POST("/reviews", reviews.CreateReview)
	e.GET("/reviews", reviews.ListReviews)
	e.GET("/reviews/:id", reviews.GetReview)
	e.PUT("/reviews/:id", reviews.UpdateReview)
	e.DELETE("/reviews/:id", reviews.DeleteReview)
	e.GET("/reviews/place/:id", reviews.ListPlaceReviews)

	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

// decodeData decodes the data of a successful response into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success, rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// requireErrorCode asserts the status and business code of a failed response.
func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
}

func createUser(t *testing.T, e *echo.Echo, email string) UserResponse {
	t.Helper()

	rec := doRequest(t, e, http.MethodPost, "/users",
		`{"first_name":"Jane","last_name":"Doe","email":"`+email+`","password":"secret"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user UserResponse
	decodeData(t, rec, &user)

	return user
}

func createAmenity(t *testing.T, e *echo.Echo, name string) AmenityResponse {
	t.Helper()

	rec := doRequest(t, e, http.MethodPost, "/amenities", `{"name":"`+name+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var amenity AmenityResponse
	decodeData(t, rec, &amenity)

	return amenity
}

func createPlace(t *testing.T, e *echo.Echo, ownerID string, amenityIDs ...string) PlaceResponse {
	t.Helper()

	ids, err := json.Marshal(append([]string{}, amenityIDs...))
	require.NoError(t, err)

	rec := doRequest(t, e, http.MethodPost, "/places",
		`{"title":"Loft","price":120,"latitude":48.85,"longitude":2.35,"owner_id":"`+ownerID+`","amenity_ids":`+string(ids)+`}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var place PlaceResponse
	decodeData(t, rec, &place)

	return place
}

func createReview(t *testing.T, e *echo.Echo, placeID, userID string, rating int) ReviewResponse {
	t.Helper()

	body, err := json.Marshal(map[string]any{"text": "Great stay", "rating": rating, "place_id": placeID, "user_id": userID})
	require.NoError(t, err)

	rec := doRequest(t, e, http.MethodPost, "/reviews", string(body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var review ReviewResponse
	decodeData(t, rec, &review)

	return review
}
