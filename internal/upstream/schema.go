package upstream

import (
	"encoding/json"
	"fmt"
	"strings"

	"busbook/internal/domain/models"
)

// Wire payloads are validated before they cross into the domain so a broken
// upstream body surfaces as MalformedResponseError instead of zero values.

type loginPayload struct {
	Token    string      `json:"token"`
	Role     string      `json:"role"`
	UserID   json.Number `json:"userId"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
}

func (p loginPayload) validate() error {
	if strings.TrimSpace(p.Token) == "" {
		return fmt.Errorf("token is empty")
	}
	if strings.TrimSpace(p.Role) == "" {
		return fmt.Errorf("role is empty")
	}
	if strings.TrimSpace(p.UserID.String()) == "" {
		return fmt.Errorf("userId is empty")
	}
	return nil
}

type busPayload struct {
	BusID       string      `json:"busId"`
	Route       string      `json:"route"`
	StartPoint  string      `json:"startPoint"`
	Destination string      `json:"destination"`
	TotalFare   json.Number `json:"totalFare"`
}

func (p busPayload) validate() error {
	if strings.TrimSpace(p.BusID) == "" {
		return fmt.Errorf("busId is empty")
	}
	return nil
}

func (p busPayload) toModel() (models.Bus, error) {
	fare, err := numberToInt(p.TotalFare)
	if err != nil {
		return models.Bus{}, fmt.Errorf("totalFare: %w", err)
	}
	return models.Bus{
		BusID:       p.BusID,
		Route:       p.Route,
		StartPoint:  p.StartPoint,
		Destination: p.Destination,
		TotalFare:   fare,
	}, nil
}

type stopPayload struct {
	StopID        json.Number `json:"stopId"`
	StopName      string      `json:"stopName"`
	FareFromStart json.Number `json:"fareFromStart"`
}

func (p stopPayload) validate() error {
	if strings.TrimSpace(p.StopName) == "" {
		return fmt.Errorf("stopName is empty")
	}
	fare, err := numberToInt(p.FareFromStart)
	if err != nil {
		return fmt.Errorf("fareFromStart: %w", err)
	}
	if fare < 0 {
		return fmt.Errorf("fareFromStart is negative")
	}
	return nil
}

func (p stopPayload) toModel() (models.Stop, error) {
	if err := p.validate(); err != nil {
		return models.Stop{}, err
	}
	id, _ := p.StopID.Int64()
	fare, _ := numberToInt(p.FareFromStart)
	return models.Stop{
		StopID:        id,
		StopName:      p.StopName,
		FareFromStart: fare,
	}, nil
}

type sessionPayload struct {
	SessionID string `json:"sessionId"`
}

func (p sessionPayload) validate() error {
	if strings.TrimSpace(p.SessionID) == "" {
		return fmt.Errorf("sessionId is empty")
	}
	return nil
}

type ticketPayload struct {
	BookingID   json.Number `json:"bookingId"`
	Name        string      `json:"name"`
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
	BookingDate string      `json:"bookingDate"`
	BookingTime string      `json:"bookingTime"`
	Qty         json.Number `json:"qty"`
	Fare        json.Number `json:"fare"`
}

func (p ticketPayload) validate() error {
	if strings.TrimSpace(p.BookingID.String()) == "" {
		return fmt.Errorf("bookingId is empty")
	}
	if strings.TrimSpace(p.Source) == "" || strings.TrimSpace(p.Destination) == "" {
		return fmt.Errorf("trip endpoints are empty")
	}
	return nil
}

func (p ticketPayload) toModel() (models.Ticket, error) {
	if err := p.validate(); err != nil {
		return models.Ticket{}, err
	}
	qty64, _ := p.Qty.Int64()
	fare, err := numberToInt(p.Fare)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("fare: %w", err)
	}
	return models.Ticket{
		BookingID:   p.BookingID.String(),
		Name:        p.Name,
		Source:      p.Source,
		Destination: p.Destination,
		BookingDate: p.BookingDate,
		BookingTime: p.BookingTime,
		Qty:         int(qty64),
		Fare:        fare,
	}, nil
}

// numberToInt accepts integral amounts whether the upstream serializes them as
// numbers or quoted strings; empty means zero.
func numberToInt(n json.Number) (int64, error) {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return 0, nil
	}
	v, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil {
			return 0, err
		}
		return int64(f), nil
	}
	return v, nil
}
