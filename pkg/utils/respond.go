package utils

import (
	"errors"
	"net/http"
	"strconv"

	"trip-planner/internal/models"

	"github.com/labstack/echo/v4"
)

// RespondWithError sends a JSON error body with the given status.
func RespondWithError(c echo.Context, status int, message string) error {
	return c.JSON(status, models.ErrorResponse{Message: message})
}

// RespondWithJSON sends any payload as JSON with the given status.
func RespondWithJSON(c echo.Context, status int, payload interface{}) error {
	return c.JSON(status, payload)
}

// HandleServiceError maps service-layer errors onto HTTP responses. Errors
// without a specific mapping collapse to a generic 500 so internals never
// leak to the client.
func HandleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrNoPlan):
		return RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrMissingDestination):
		return RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidAccessKey):
		return RespondWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrEmailUnavailable):
		return RespondWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		c.Logger().Errorf("unhandled service error: %v", err)
		return RespondWithError(c, http.StatusInternalServerError, "an unexpected error occurred")
	}
}

// GetPageLimit parses pagination query params with sane defaults.
func GetPageLimit(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
