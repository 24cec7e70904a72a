package api

import (
	"net/http"

	"trip-planner/internal/api/middleware"
	"trip-planner/internal/modules/auth"
	"trip-planner/internal/modules/budget"
	"trip-planner/internal/modules/itinerary"
	"trip-planner/internal/modules/planner"
	"trip-planner/internal/modules/routes"
	"trip-planner/internal/modules/trips"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all the API endpoints for the application.
func SetupRoutes(
	e *echo.Echo,
	jwtSecret string,
	authHandler *auth.Handler,
	plannerHandler *planner.Handler,
	itineraryHandler *itinerary.Handler,
	routeHandler *routes.Handler,
	budgetHandler *budget.Handler,
	tripHandler *trips.Handler,
) {
	// Initialize the JWT authentication middleware
	authMiddleware := middleware.JWTAuth(jwtSecret)

	// --- Public Routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the Trip Planner Engine!"})
	})
	e.POST("/auth/token", authHandler.IssueToken)

	// --- Trip Routes ---
	tripGroup := e.Group("/trips", authMiddleware)
	{
		// Generation pipeline and current-plan views
		tripGroup.POST("/generate", plannerHandler.GenerateTrip)
		tripGroup.GET("/current", itineraryHandler.GetCurrent)
		tripGroup.DELETE("/current", itineraryHandler.Reset)
		tripGroup.PUT("/current/day", itineraryHandler.SelectDay)
		tripGroup.GET("/current/route", routeHandler.GetCurrentRoute)
		tripGroup.GET("/current/costs", budgetHandler.GetCurrentCosts)

		// Archive
		tripGroup.GET("", tripHandler.ListTrips)
		tripGroup.GET("/:tripId", tripHandler.GetTrip)
		tripGroup.POST("/:tripId/share", tripHandler.ShareTrip)
	}
}
