package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/amiantos/ursceal/pkg/cardparser"
	"github.com/amiantos/ursceal/pkg/chub"
	"github.com/amiantos/ursceal/pkg/generation"
	"github.com/amiantos/ursceal/pkg/provider"
	"github.com/amiantos/ursceal/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrInUse) {
		return echo.NewHTTPError(http.StatusConflict, "resource is still in use")
	}
	if errors.Is(err, services.ErrInvalidLorebook) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, cardparser.ErrInvalidCard) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, chub.ErrInvalidURL) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, generation.ErrInvalidType) ||
		errors.Is(err, generation.ErrEmptyInstruction) ||
		errors.Is(err, generation.ErrNoPreset) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Provider setup failures surface as 400 before any SSE bytes are
	// written; mid-stream failures travel as {error} records instead.
	var perr *provider.Error
	if errors.As(err, &perr) {
		return echo.NewHTTPError(http.StatusBadRequest, perr.Error())
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
