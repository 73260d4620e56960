// Package flights is the award-inventory boundary. The real inventory API
// lives behind Provider; the shipped implementation is an offline mock so
// the rest of the app can be built and tested without network access.
package flights

import "context"

// Query describes one award search.
type Query struct {
	Origin        string
	Destination   string
	DepartureDate string // YYYY-MM-DD
	CabinClass    string // economy, premium_economy, business, first
	Passengers    int
}

// AwardFlight is one bookable award result.
type AwardFlight struct {
	ID             string
	ProgramID      string
	Origin         string
	Destination    string
	DepartureDate  string
	DepartureTime  string
	ArrivalTime    string
	Airline        string
	FlightNumber   string
	Aircraft       string
	CabinClass     string
	PointsRequired int
	TaxesFees      int
	SeatsAvailable int
	Duration       string
	Stops          int
	ValueCpp       float64
	Source         string
}

// Provider searches award inventory.
type Provider interface {
	SearchAwards(ctx context.Context, q Query) ([]AwardFlight, error)
}
