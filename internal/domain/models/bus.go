package models

// Bus mirrors the upstream bus record shown on the booking and admin pages.
type Bus struct {
	BusID       string `json:"busId"`
	Route       string `json:"route"`
	StartPoint  string `json:"startPoint"`
	Destination string `json:"destination"`
	TotalFare   int64  `json:"totalFare"`
}

// Stop carries the cumulative fare from the route origin. Fare between two
// stops is the absolute difference of their FareFromStart values.
type Stop struct {
	StopID        int64  `json:"stopId"`
	StopName      string `json:"stopName"`
	FareFromStart int64  `json:"fareFromStart"`
}
