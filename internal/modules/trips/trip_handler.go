package trips

import (
	"net/http"

	"trip-planner/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the trip archive.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new trip handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// ShareTripRequest is the body of a share request.
type ShareTripRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ListTrips handles GET /trips.
func (h *Handler) ListTrips(c echo.Context) error {
	page, limit := utils.GetPageLimit(c)

	records, total, err := h.svc.ListTrips(c.Request().Context(), page, limit)
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve trips")
	}

	return utils.RespondWithJSON(c, http.StatusOK, map[string]interface{}{"trips": records, "total": total})
}

// GetTrip handles GET /trips/:tripId.
func (h *Handler) GetTrip(c echo.Context) error {
	rec, err := h.svc.GetTrip(c.Request().Context(), c.Param("tripId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, rec)
}

// ShareTrip handles POST /trips/:tripId/share.
func (h *Handler) ShareTrip(c echo.Context) error {
	var req ShareTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	if err := h.svc.ShareTrip(c.Request().Context(), c.Param("tripId"), req.Email); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}
