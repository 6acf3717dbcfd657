package services

import (
	"strings"

	"busbook/internal/domain"
	"busbook/internal/domain/models"
)

// FareService computes fare quotes from a bus's stop list. Pure and
// deterministic; safe to call on every input change.
type FareService struct{}

// Quote prices a trip as quantity times the absolute difference of the two
// stops' cumulative fares. A trip from a stop to itself is a zero quote, not
// an error. Duplicate stop names resolve to the first match.
func (FareService) Quote(stops []models.Stop, sourceName, destName string, quantity int) (models.FareQuote, error) {
	if quantity < 1 {
		return models.FareQuote{}, domain.ValidationError{Field: "quantity", Msg: "must be at least 1"}
	}
	source := strings.TrimSpace(sourceName)
	dest := strings.TrimSpace(destName)
	if source == "" || dest == "" {
		return models.FareQuote{}, domain.ValidationError{Field: "selection", Msg: "source and destination are required"}
	}

	if source == dest {
		return models.FareQuote{Quantity: quantity}, nil
	}

	sourceStop, ok := findStop(stops, source)
	if !ok {
		return models.FareQuote{}, domain.NotFoundError{Resource: "source stop"}
	}
	destStop, ok := findStop(stops, dest)
	if !ok {
		return models.FareQuote{}, domain.NotFoundError{Resource: "destination stop"}
	}

	perPassenger := destStop.FareFromStart - sourceStop.FareFromStart
	if perPassenger < 0 {
		perPassenger = -perPassenger
	}

	return models.FareQuote{
		PerPassengerFare: perPassenger,
		Quantity:         quantity,
		TotalFare:        perPassenger * int64(quantity),
	}, nil
}

func findStop(stops []models.Stop, name string) (models.Stop, bool) {
	for _, s := range stops {
		if s.StopName == name {
			return s, true
		}
	}
	return models.Stop{}, false
}
