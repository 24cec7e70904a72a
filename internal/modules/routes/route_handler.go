package routes

import (
	"net/http"

	"trip-planner/internal/modules/itinerary"
	"trip-planner/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler serves route geometry derived from the current plan.
type Handler struct {
	session *itinerary.Session
}

// NewHandler creates a new route handler.
func NewHandler(session *itinerary.Session) *Handler {
	return &Handler{session: session}
}

// GetCurrentRoute handles GET /trips/current/route.
func (h *Handler) GetCurrentRoute(c echo.Context) error {
	plan, _, _, err := h.session.Current()
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, Aggregate(plan))
}
