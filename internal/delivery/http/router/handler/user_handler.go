package handler

import (
	"log/slog"
	"net/http"

	"hbnb/internal/delivery/http/response"
	"hbnb/internal/domain/entity"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/errors"
	"hbnb/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		uc:     params.UserUC,
		logger: params.Logger,
	}
}

// CreateUser handles registering a new user. An email that is already
// registered is rejected with 409.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := bindFields(c, &input); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if h.uc.GetUserByEmail(ctx, input.Email) != nil {
		return errors.WithStack(domainerrors.NewConflictError(entity.KindUser, "email", input.Email))
	}

	user, err := h.uc.CreateUser(ctx, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User created successfully")
}

// ListUsers handles listing every user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users := h.uc.GetAllUsers(c.Request().Context())

	return response.Success(c, http.StatusOK, mapAll(users, toUserResponse), "")
}

// GetUser handles retrieving a user by id.
func (h *UserHandler) GetUser(c echo.Context) error {
	user := h.uc.GetUser(c.Request().Context(), c.Param("id"))
	if user == nil {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// UpdateUser handles a partial update of a user.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var input usecase.UpdateUserInput
	if err := bindFields(c, &input); err != nil {
		return err
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	if input.Email != nil {
		if other := h.uc.GetUserByEmail(ctx, *input.Email); other != nil && other.ID != id {
			return errors.WithStack(domainerrors.NewConflictError(entity.KindUser, "email", *input.Email))
		}
	}

	user, err := h.uc.UpdateUser(ctx, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}

	requestLogger(c, h.logger).Debug("user updated")

	return response.Success(c, http.StatusOK, toUserResponse(user), "User updated successfully")
}
