package engine

// Summarize reduces an opportunity list to its top-line counts. BestValue
// and ClosestToAffording are nil when their groups are empty; ties keep
// the earlier entry, which is catalog order for sorted input.
func (e *Engine) Summarize(opportunities []AwardOpportunity) Summary {
	s := Summary{Total: len(opportunities)}

	for i := range opportunities {
		opp := &opportunities[i]
		if opp.CanAfford {
			s.Affordable++
			s.TotalPotentialValue += opp.EstimatedValue
			if s.BestValue == nil || opp.SweetSpot.ValueCpp > s.BestValue.SweetSpot.ValueCpp {
				s.BestValue = opp
			}
			continue
		}
		if opp.PercentageOwned >= 75 {
			s.AlmostAffordable++
		}
		if s.ClosestToAffording == nil || opp.PercentageOwned > s.ClosestToAffording.PercentageOwned {
			s.ClosestToAffording = opp
		}
	}
	return s
}
