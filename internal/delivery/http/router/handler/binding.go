// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "hbnb/internal/delivery/context"
	"hbnb/internal/delivery/http/response"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/errors"
	"hbnb/internal/usecase"

	"github.com/labstack/echo/v4"
)

var bodyBinder = &echo.DefaultBinder{}

// bindFields decodes the JSON body into out through a field mapping, so
// absent keys stay nil and unknown keys are dropped. Path and query
// parameters never reach out.
func bindFields(c echo.Context, out any) error {
	fields := usecase.Fields{}
	if err := bodyBinder.BindBody(c, &fields); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("request body must be a JSON object"))
	}

	return usecase.DecodeFields(fields, out)
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

func requestLogger(c echo.Context, logger *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).With(slog.String("path", c.Path()), slog.String("id", c.Param("id")))
}
