package flights

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/flywithpoints/flywithpoints/internal/catalog"
)

// MockProvider fabricates plausible award results from the program
// catalog. Output is deterministic for a given query so tests and demos
// are repeatable.
type MockProvider struct {
	Catalog *catalog.Catalog
}

type mockTemplate struct {
	airline      string
	flightNumber string
	depart       string
	arrive       string
	duration     string
	stops        int
	aircraft     string
}

var mockTemplates = []mockTemplate{
	{"United Airlines", "UA 123", "08:30", "16:45", "8h 15m", 0, "Boeing 777-300ER"},
	{"American Airlines", "AA 456", "10:15", "19:30", "9h 15m", 1, "Boeing 787-9"},
	{"Delta Air Lines", "DL 789", "14:00", "22:15", "8h 15m", 0, "Airbus A350-900"},
	{"British Airways", "BA 178", "19:00", "07:15+1", "7h 15m", 0, "Boeing 777-200"},
	{"Air France", "AF 012", "21:30", "10:45+1", "8h 15m", 1, "Airbus A380"},
}

var basePoints = map[string]int{
	"economy":         35000,
	"premium_economy": 55000,
	"business":        90000,
	"first":           150000,
}

var cashMultiplier = map[string]int{
	"economy":         1,
	"premium_economy": 2,
	"business":        5,
	"first":           12,
}

const baseCashPrice = 600

// SearchAwards returns one result per template, cycling through the
// airline programs in catalog order.
func (m *MockProvider) SearchAwards(_ context.Context, q Query) ([]AwardFlight, error) {
	cabin := strings.ToLower(strings.TrimSpace(q.CabinClass))
	base, ok := basePoints[cabin]
	if !ok {
		cabin = "economy"
		base = basePoints[cabin]
	}

	programs := m.Catalog.AirlinePrograms()
	if len(programs) == 0 {
		return []AwardFlight{}, nil
	}

	typicalCash := baseCashPrice * cashMultiplier[cabin]
	out := make([]AwardFlight, 0, len(mockTemplates))
	for i, tpl := range mockTemplates {
		program := programs[i%len(programs)]
		// deterministic spread of 80%-120% around the cabin base
		points := base * (80 + i*10) / 100
		cpp := math.Round(float64(typicalCash)/float64(points)*100*10) / 10

		out = append(out, AwardFlight{
			ID:             fmt.Sprintf("mock-%s-%s-%d", q.Origin, q.Destination, i),
			ProgramID:      program.ID,
			Origin:         q.Origin,
			Destination:    q.Destination,
			DepartureDate:  q.DepartureDate,
			DepartureTime:  tpl.depart,
			ArrivalTime:    tpl.arrive,
			Airline:        tpl.airline,
			FlightNumber:   tpl.flightNumber,
			Aircraft:       tpl.aircraft,
			CabinClass:     cabin,
			PointsRequired: points,
			TaxesFees:      50 + i*40,
			SeatsAvailable: 1 + i%5,
			Duration:       tpl.duration,
			Stops:          tpl.stops,
			ValueCpp:       cpp,
			Source:         "mock",
		})
	}
	return out, nil
}
