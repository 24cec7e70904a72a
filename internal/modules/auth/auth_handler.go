package auth

import (
	"net/http"

	"trip-planner/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for token issuance.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new auth handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// TokenRequest is the body of a token request.
type TokenRequest struct {
	AccessKey string `json:"accessKey" validate:"required"`
}

// IssueToken handles POST /auth/token.
func (h *Handler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	token, err := h.svc.IssueToken(c.Request().Context(), req.AccessKey)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, map[string]string{"token": token})
}
