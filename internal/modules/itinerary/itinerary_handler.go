package itinerary

import (
	"net/http"

	"trip-planner/internal/models"
	"trip-planner/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler exposes the current plan and day selection over HTTP.
type Handler struct {
	session *Session
}

// NewHandler creates a new itinerary handler.
func NewHandler(session *Session) *Handler {
	return &Handler{session: session}
}

// SelectDayRequest is the body of a day-selection request.
type SelectDayRequest struct {
	Day int `json:"day" validate:"required,min=1"`
}

// GetCurrent handles GET /trips/current.
func (h *Handler) GetCurrent(c echo.Context) error {
	plan, warnings, activeDay, err := h.session.Current()
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, models.GenerationResult{
		Plan:      plan,
		Warnings:  warnings,
		ActiveDay: activeDay,
	})
}

// SelectDay handles PUT /trips/current/day.
func (h *Handler) SelectDay(c echo.Context) error {
	if _, _, _, err := h.session.Current(); err != nil {
		return utils.HandleServiceError(c, err)
	}

	var req SelectDayRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	active := h.session.SelectDay(req.Day)
	return utils.RespondWithJSON(c, http.StatusOK, map[string]int{"activeDay": active})
}

// Reset handles DELETE /trips/current.
func (h *Handler) Reset(c echo.Context) error {
	h.session.Reset()
	return c.NoContent(http.StatusNoContent)
}
