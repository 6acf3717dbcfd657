package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"busbook/internal/domain/models"
	"busbook/internal/http/middleware"
	"busbook/internal/repositories"
	"busbook/internal/services"

	"github.com/gin-gonic/gin"
)

func ticketRequestFromQuery(c *gin.Context) models.TicketRequest {
	qty, _ := strconv.Atoi(strings.TrimSpace(c.Query("qty")))
	if qty < 1 {
		qty = 1
	}
	return models.TicketRequest{
		SessionID:   strings.TrimSpace(c.Param("sessionId")),
		BusID:       strings.TrimSpace(c.Query("busId")),
		StartPoint:  strings.TrimSpace(c.Query("startPoint")),
		Destination: strings.TrimSpace(c.Query("destination")),
		Qty:         qty,
	}
}

// GET /api/tickets/:sessionId
func GetTicket(c *gin.Context) {
	svc := services.TicketService{
		Cache:     repositories.TicketCacheRepo{},
		Bookings:  apiClient(),
		RequestID: middleware.GetRequestID(c),
	}

	ticket, err := svc.GetTicket(c.Request.Context(), middleware.GetSession(c), ticketRequestFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// GET /api/tickets/:sessionId/pdf
func GetTicketPDF(c *gin.Context) {
	reqID := middleware.GetRequestID(c)
	svc := services.TicketService{
		Cache:     repositories.TicketCacheRepo{},
		Bookings:  apiClient(),
		RequestID: reqID,
	}

	ticket, err := svc.GetTicket(c.Request.Context(), middleware.GetSession(c), ticketRequestFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	docs := services.DocsService{RequestID: reqID}
	pdfBytes, filename, err := docs.GenerateTicketPDF(ticket)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
