package engine

import (
	"fmt"
	"sort"
	"strings"
)

const (
	maxPositioningOpportunities = 3 // affordable opportunities considered
	maxPositioningHubs          = 2 // hubs per opportunity
	maxPositioningOptions       = 4 // returned overall
)

// PositioningOptions proposes alternate departure hubs for the top
// affordable opportunities when the home airport is not already one of the
// best hubs for the target region. Both inputs are required: an empty home
// airport or an unresolvable destination yields no suggestions. Results
// are sorted by net value and capped at four.
func (e *Engine) PositioningOptions(homeAirport string, opportunities []AwardOpportunity, destinationFilter string) []PositioningOption {
	options := []PositioningOption{}

	home := strings.ToUpper(strings.TrimSpace(homeAirport))
	if home == "" {
		return options
	}
	region, ok := e.cat.ResolveRegion(destinationFilter)
	if !ok {
		return options
	}

	bestHubs := e.cat.BestHubs(region.ID)
	for _, code := range bestHubs {
		if code == home {
			// direct access already near-optimal
			return options
		}
	}

	hubs := bestHubs
	if len(hubs) > maxPositioningHubs {
		hubs = hubs[:maxPositioningHubs]
	}

	considered := 0
	for _, opp := range opportunities {
		if !opp.CanAfford {
			continue
		}
		if considered == maxPositioningOpportunities {
			break
		}
		considered++

		for _, code := range hubs {
			hub, ok := e.cat.HubByCode(code)
			if !ok {
				continue
			}
			cost := e.cat.PositioningCost(home, code)
			options = append(options, PositioningOption{
				ID:                       "pos-" + opp.ID + "-" + code,
				AlternateOrigin:          code,
				AlternateOriginCity:      hub.City,
				Opportunity:              opp,
				EstimatedPositioningCost: cost,
				TotalValue:               opp.EstimatedValue - cost,
				Reasoning: fmt.Sprintf(
					"%s has better award availability for %s. Fly there for ~$%d, then use your points for the main flight.",
					hub.City, opp.SweetSpot.DestinationRegion, cost),
			})
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].TotalValue > options[j].TotalValue
	})
	if len(options) > maxPositioningOptions {
		options = options[:maxPositioningOptions]
	}
	return options
}
