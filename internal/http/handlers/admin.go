package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"busbook/internal/domain/models"
	"busbook/internal/http/middleware"
	"busbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// Admin CRUD is a thin pass-through to the upstream admin endpoints. Inputs
// are validated locally so obviously broken records never leave this side;
// persistence and authorization stay upstream.

type busRequest struct {
	BusID       string `json:"busId"`
	Route       string `json:"route"`
	StartPoint  string `json:"startPoint"`
	Destination string `json:"destination"`
	TotalFare   int64  `json:"totalFare"`
}

func (r busRequest) toModel() models.Bus {
	return models.Bus{
		BusID:       utils.TrimOrEmpty(r.BusID),
		Route:       utils.NormalizeSpace(r.Route),
		StartPoint:  utils.NormalizeSpace(r.StartPoint),
		Destination: utils.NormalizeSpace(r.Destination),
		TotalFare:   r.TotalFare,
	}
}

func (r busRequest) invalidReason() string {
	switch {
	case utils.TrimOrEmpty(r.BusID) == "":
		return "busId is required"
	case utils.TrimOrEmpty(r.StartPoint) == "" || utils.TrimOrEmpty(r.Destination) == "":
		return "startPoint and destination are required"
	case r.TotalFare < 0:
		return "totalFare cannot be negative"
	default:
		return ""
	}
}

// POST /api/admin/buses
func CreateBus(c *gin.Context) {
	var req busRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if reason := req.invalidReason(); reason != "" {
		RespondError(c, http.StatusBadRequest, reason, nil)
		return
	}

	sess := middleware.GetSession(c)
	if err := apiClient().AddBus(c.Request.Context(), sess.Token, req.toModel()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "bus created"})
}

// PUT /api/admin/buses/:id
func UpdateBus(c *gin.Context) {
	busID := strings.TrimSpace(c.Param("id"))
	if busID == "" {
		RespondError(c, http.StatusBadRequest, "bus id is required", nil)
		return
	}
	var req busRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.BusID == "" {
		req.BusID = busID
	}
	if reason := req.invalidReason(); reason != "" {
		RespondError(c, http.StatusBadRequest, reason, nil)
		return
	}

	sess := middleware.GetSession(c)
	if err := apiClient().UpdateBus(c.Request.Context(), sess.Token, busID, req.toModel()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus updated"})
}

// DELETE /api/admin/buses/:id
func DeleteBus(c *gin.Context) {
	busID := strings.TrimSpace(c.Param("id"))
	if busID == "" {
		RespondError(c, http.StatusBadRequest, "bus id is required", nil)
		return
	}

	sess := middleware.GetSession(c)
	if err := apiClient().DeleteBus(c.Request.Context(), sess.Token, busID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus deleted"})
}

type stopRequest struct {
	StopName      string `json:"stopName"`
	FareFromStart int64  `json:"fareFromStart"`
}

// POST /api/admin/buses/:id/stops
func CreateStop(c *gin.Context) {
	busID := strings.TrimSpace(c.Param("id"))
	if busID == "" {
		RespondError(c, http.StatusBadRequest, "bus id is required", nil)
		return
	}
	var req stopRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	name := utils.NormalizeSpace(req.StopName)
	if name == "" {
		RespondError(c, http.StatusBadRequest, "stopName is required", nil)
		return
	}
	if req.FareFromStart < 0 {
		RespondError(c, http.StatusBadRequest, "fareFromStart cannot be negative", nil)
		return
	}

	sess := middleware.GetSession(c)
	if err := apiClient().AddStop(c.Request.Context(), sess.Token, busID, name, req.FareFromStart); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "bus stop created"})
}

// PUT /api/admin/buses/:id/stops/:stopId
func UpdateStop(c *gin.Context) {
	busID := strings.TrimSpace(c.Param("id"))
	stopID, err := strconv.ParseInt(c.Param("stopId"), 10, 64)
	if err != nil || stopID <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid stop id", err)
		return
	}
	var req stopRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	name := utils.NormalizeSpace(req.StopName)
	if name == "" {
		RespondError(c, http.StatusBadRequest, "stopName is required", nil)
		return
	}
	if req.FareFromStart < 0 {
		RespondError(c, http.StatusBadRequest, "fareFromStart cannot be negative", nil)
		return
	}

	sess := middleware.GetSession(c)
	stop := models.Stop{StopID: stopID, StopName: name, FareFromStart: req.FareFromStart}
	if err := apiClient().UpdateStop(c.Request.Context(), sess.Token, stopID, busID, stop); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus stop updated"})
}

// DELETE /api/admin/stops/:stopId
func DeleteStop(c *gin.Context) {
	stopID, err := strconv.ParseInt(c.Param("stopId"), 10, 64)
	if err != nil || stopID <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid stop id", err)
		return
	}

	sess := middleware.GetSession(c)
	if err := apiClient().DeleteStop(c.Request.Context(), sess.Token, stopID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus stop deleted"})
}
