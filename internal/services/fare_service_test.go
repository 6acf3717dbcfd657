package services

import (
	"testing"

	"busbook/internal/domain"
	"busbook/internal/domain/models"
)

func routeStops() []models.Stop {
	return []models.Stop{
		{StopID: 1, StopName: "A", FareFromStart: 0},
		{StopID: 2, StopName: "B", FareFromStart: 50},
		{StopID: 3, StopName: "C", FareFromStart: 120},
	}
}

func TestQuoteComputesTotalFromCumulativeFares(t *testing.T) {
	quote, err := FareService{}.Quote(routeStops(), "A", "C", 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if quote.PerPassengerFare != 120 {
		t.Fatalf("per-passenger fare wrong: got %d want 120", quote.PerPassengerFare)
	}
	if quote.TotalFare != 240 {
		t.Fatalf("total fare wrong: got %d want 240", quote.TotalFare)
	}
	if quote.TotalFare != quote.PerPassengerFare*int64(quote.Quantity) {
		t.Fatalf("total != per-passenger * quantity: %+v", quote)
	}
}

func TestQuoteSameStopIsZeroNotError(t *testing.T) {
	quote, err := FareService{}.Quote(routeStops(), "B", "B", 3)
	if err != nil {
		t.Fatalf("same-stop trip must not error, got %v", err)
	}
	if quote.PerPassengerFare != 0 || quote.TotalFare != 0 {
		t.Fatalf("same-stop trip must cost zero, got %+v", quote)
	}
}

func TestQuoteIsOrderIndependent(t *testing.T) {
	stops := routeStops()
	forward, err := FareService{}.Quote(stops, "A", "C", 1)
	if err != nil {
		t.Fatalf("forward quote error: %v", err)
	}
	backward, err := FareService{}.Quote(stops, "C", "A", 1)
	if err != nil {
		t.Fatalf("backward quote error: %v", err)
	}
	if forward.PerPassengerFare != backward.PerPassengerFare {
		t.Fatalf("fare depends on direction: %d vs %d", forward.PerPassengerFare, backward.PerPassengerFare)
	}
}

func TestQuoteUnknownStop(t *testing.T) {
	_, err := FareService{}.Quote(routeStops(), "A", "Z", 1)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound for unknown stop, got %v", err)
	}
	_, err = FareService{}.Quote(routeStops(), "Z", "A", 1)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound for unknown source, got %v", err)
	}
}

func TestQuoteRejectsBadQuantityAndBlankNames(t *testing.T) {
	if _, err := (FareService{}).Quote(routeStops(), "A", "B", 0); !domain.IsValidation(err) {
		t.Fatalf("quantity 0 should be a validation error, got %v", err)
	}
	if _, err := (FareService{}).Quote(routeStops(), "", "B", 1); !domain.IsValidation(err) {
		t.Fatalf("blank source should be a validation error, got %v", err)
	}
}

func TestQuoteUsesFirstMatchOnDuplicateNames(t *testing.T) {
	stops := []models.Stop{
		{StopID: 1, StopName: "A", FareFromStart: 0},
		{StopID: 2, StopName: "B", FareFromStart: 40},
		{StopID: 3, StopName: "B", FareFromStart: 90},
	}
	quote, err := FareService{}.Quote(stops, "A", "B", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if quote.PerPassengerFare != 40 {
		t.Fatalf("duplicate stop names must resolve to the first match: got %d want 40", quote.PerPassengerFare)
	}
}
