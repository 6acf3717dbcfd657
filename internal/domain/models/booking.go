package models

// FareQuote is derived, never persisted; recomputed whenever source,
// destination or quantity change.
type FareQuote struct {
	PerPassengerFare int64 `json:"perPassengerFare"`
	Quantity         int   `json:"quantity"`
	TotalFare        int64 `json:"totalFare"`
}

// CheckoutSession is created once per checkout attempt and immutable after
// creation; the browser is sent to RedirectURL to complete payment.
type CheckoutSession struct {
	SessionID     string `json:"sessionId"`
	Amount        int64  `json:"amount"`
	Quantity      int    `json:"quantity"`
	BusID         string `json:"busId"`
	StartingPoint string `json:"startingPoint"`
	EndingPoint   string `json:"endingPoint"`
	UserID        string `json:"userId"`
	RedirectURL   string `json:"redirectUrl"`
}

// Ticket is the booking confirmation issued upstream after payment.
type Ticket struct {
	BookingID   string `json:"bookingId"`
	Name        string `json:"name"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
	Qty         int    `json:"qty"`
	Fare        int64  `json:"fare"`
}

// TicketRequest bundles the trip parameters the confirmation endpoint needs on
// a cache miss.
type TicketRequest struct {
	SessionID   string
	BusID       string
	StartPoint  string
	Destination string
	Qty         int
}
