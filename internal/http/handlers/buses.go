package handlers

import (
	"net/http"
	"strings"

	"busbook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /api/buses — public list, no auth.
func ListBuses(c *gin.Context) {
	buses, err := apiClient().AllBuses(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, buses)
}

// GET /api/buses/:id
func GetBus(c *gin.Context) {
	busID := strings.TrimSpace(c.Param("id"))
	if busID == "" {
		RespondError(c, http.StatusBadRequest, "bus id is required", nil)
		return
	}

	sess := middleware.GetSession(c)
	bus, err := apiClient().BusByID(c.Request.Context(), sess.Token, busID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// GET /api/buses/:id/stops
func GetBusStops(c *gin.Context) {
	busID := strings.TrimSpace(c.Param("id"))
	if busID == "" {
		RespondError(c, http.StatusBadRequest, "bus id is required", nil)
		return
	}

	sess := middleware.GetSession(c)
	stops, err := apiClient().BusStops(c.Request.Context(), sess.Token, busID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stops)
}
