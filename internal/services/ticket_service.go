package services

import (
	"context"
	"strings"

	"busbook/internal/domain"
	"busbook/internal/domain/models"
	"busbook/internal/utils"
)

// TicketStore persists confirmed tickets keyed by payment session id.
type TicketStore interface {
	Get(sessionID string) (models.Ticket, bool, error)
	Put(sessionID string, t models.Ticket) error
}

// BookingConfirmer resolves a completed booking upstream.
type BookingConfirmer interface {
	ConfirmBooking(ctx context.Context, token, userID, busID, startPoint, destination string, qty int) (models.Ticket, error)
}

// TicketService fetches a booking confirmation at most once per session id.
// Repeated views of the same confirmation (a refresh, a back-navigation) come
// from the cache and never re-invoke the booking endpoint.
type TicketService struct {
	Cache     TicketStore
	Bookings  BookingConfirmer
	RequestID string
}

func (s TicketService) GetTicket(ctx context.Context, sess domain.Session, req models.TicketRequest) (models.Ticket, error) {
	if !sess.Authenticated() {
		return models.Ticket{}, domain.UnauthenticatedError{}
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		return models.Ticket{}, domain.MissingSessionError{}
	}

	if cached, ok, err := s.Cache.Get(sessionID); err != nil {
		utils.LogEvent(s.RequestID, "ticket", "cache_get", "lookup failed: "+err.Error())
	} else if ok {
		return cached, nil
	}

	ticket, err := s.Bookings.ConfirmBooking(ctx, sess.Token, sess.UserID, req.BusID, req.StartPoint, req.Destination, req.Qty)
	if err != nil {
		return models.Ticket{}, err
	}

	// Cache write is best-effort; a store hiccup must not hide a confirmed
	// booking from the user.
	if err := s.Cache.Put(sessionID, ticket); err != nil {
		utils.LogEvent(s.RequestID, "ticket", "cache_put", "store failed: "+err.Error())
	}

	utils.LogEvent(s.RequestID, "ticket", "confirm", "session="+sessionID+" booking="+ticket.BookingID)
	return ticket, nil
}
