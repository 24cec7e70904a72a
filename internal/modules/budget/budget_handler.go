package budget

import (
	"net/http"

	"trip-planner/internal/modules/itinerary"
	"trip-planner/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler serves the cost view of the current plan.
type Handler struct {
	session *itinerary.Session
}

// NewHandler creates a new budget handler.
func NewHandler(session *itinerary.Session) *Handler {
	return &Handler{session: session}
}

// GetCurrentCosts handles GET /trips/current/costs. It returns the
// breakdown exactly as generated plus the reconciliation warnings that
// were attached when the plan was installed.
func (h *Handler) GetCurrentCosts(c echo.Context) error {
	plan, warnings, _, err := h.session.Current()
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, map[string]interface{}{
		"costBreakdown": plan.CostBreakdown,
		"warnings":      warnings,
	})
}
