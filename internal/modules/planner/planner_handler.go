package planner

import (
	"errors"
	"net/http"

	"trip-planner/internal/models"
	"trip-planner/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for trip generation.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new planner handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// GenerateTrip handles POST /trips/generate.
func (h *Handler) GenerateTrip(c echo.Context) error {
	var prefs models.TripPreferences
	if err := c.Bind(&prefs); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(prefs); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.GenerateTrip(c.Request().Context(), prefs)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrMissingDestination):
			return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, models.ErrSuperseded):
			return utils.RespondWithError(c, http.StatusConflict, "a newer trip request replaced this one")
		default:
			// Credential, transport, parse and schema failures all collapse
			// to one coarse client message; the precise kind stays in the
			// server log for diagnosis.
			c.Logger().Errorf("trip generation failed: %v", err)
			return utils.RespondWithError(c, http.StatusBadGateway, "failed to generate trip plan - check credentials and retry")
		}
	}

	return utils.RespondWithJSON(c, http.StatusOK, result)
}
