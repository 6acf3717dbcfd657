package handlers

import (
	"net/http"
	"strings"

	"busbook/internal/http/middleware"
	"busbook/internal/services"

	"github.com/gin-gonic/gin"
)

type quoteRequest struct {
	StartingPoint string `json:"startingPoint"`
	EndingPoint   string `json:"endingPoint"`
	Qty           int    `json:"qty"`
}

// POST /api/buses/:id/quote
// Recomputed on every selection change; the client calls this freely.
func QuoteFare(c *gin.Context) {
	busID := strings.TrimSpace(c.Param("id"))
	if busID == "" {
		RespondError(c, http.StatusBadRequest, "bus id is required", nil)
		return
	}

	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	sess := middleware.GetSession(c)
	stops, err := apiClient().BusStops(c.Request.Context(), sess.Token, busID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	quote, err := services.FareService{}.Quote(stops, req.StartingPoint, req.EndingPoint, req.Qty)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

type checkoutRequest struct {
	BusID         string `json:"busId"`
	StartingPoint string `json:"startingPoint"`
	EndingPoint   string `json:"endingPoint"`
	Qty           int    `json:"qty"`
	UserID        string `json:"userId"`
}

// POST /api/checkout
// Quotes the trip from the live stop list, then creates the payment session.
// The fare never comes from the client; only the selection does.
func Checkout(c *gin.Context) {
	var req checkoutRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	sess := middleware.GetSession(c)
	if sess.UserID == "" {
		sess.UserID = strings.TrimSpace(req.UserID)
	}

	stops, err := apiClient().BusStops(c.Request.Context(), sess.Token, req.BusID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	quote, err := services.FareService{}.Quote(stops, req.StartingPoint, req.EndingPoint, req.Qty)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.CheckoutService{
		Payments:    apiClient(),
		CheckoutURL: envConfig().CheckoutURL,
		RequestID:   middleware.GetRequestID(c),
	}
	session, err := svc.InitiateCheckout(c.Request.Context(), sess, quote, req.BusID, req.StartingPoint, req.EndingPoint)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
