package engine

import (
	"math"
	"sort"
)

// AwardOpportunities intersects the sweet-spot catalog with the programs
// the balances can reach, applying the destination filter, and returns the
// list sorted: affordable first (best value first within them), then
// unaffordable by closeness to affording. Catalog order breaks all ties,
// so identical inputs always produce identical output. Never returns nil.
func (e *Engine) AwardOpportunities(balances []PointBalance, destinationFilter string) []AwardOpportunity {
	access := e.AccessiblePrograms(balances)
	byProgram := map[string]AccessibleProgram{}
	for _, ap := range access {
		if _, ok := byProgram[ap.ProgramID]; !ok {
			byProgram[ap.ProgramID] = ap
		}
	}

	opportunities := []AwardOpportunity{}
	for _, spot := range e.cat.SweetSpots() {
		if !e.cat.MatchesDestination(spot, destinationFilter) {
			continue
		}
		ap, ok := byProgram[spot.ProgramID]
		if !ok {
			continue
		}

		canAfford := ap.Balance >= spot.PointsRequired
		shortfall := 0
		if !canAfford {
			shortfall = spot.PointsRequired - ap.Balance
		}

		opp := AwardOpportunity{
			ID:              "opp-" + spot.ID,
			SweetSpot:       spot,
			Program:         ap.Program,
			UserBalance:     ap.Balance,
			PointsRequired:  spot.PointsRequired,
			CanAfford:       canAfford,
			PointsShortfall: shortfall,
			PercentageOwned: percentageOwned(ap.Balance, spot.PointsRequired),
			EstimatedValue:  spot.TypicalCashPrice,
		}
		if ap.Source == SourceTransfer {
			opp.TransferSource = ap.TransferFrom
		}
		opportunities = append(opportunities, opp)
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		a, b := opportunities[i], opportunities[j]
		if a.CanAfford != b.CanAfford {
			return a.CanAfford
		}
		if a.CanAfford {
			return a.SweetSpot.ValueCpp > b.SweetSpot.ValueCpp
		}
		return a.PercentageOwned > b.PercentageOwned
	})
	return opportunities
}

// percentageOwned clamps to 100 so overfunded balances never overflow the
// progress display.
func percentageOwned(balance, required int) int {
	if required <= 0 {
		return 100
	}
	pct := int(math.Round(float64(balance) / float64(required) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
