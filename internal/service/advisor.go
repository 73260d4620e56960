package service

import (
	"context"

	"github.com/flywithpoints/flywithpoints/internal/engine"
	"github.com/flywithpoints/flywithpoints/internal/llm"
)

// maxAdviceOpportunities bounds the prompt size.
const maxAdviceOpportunities = 5

// AdvisorService turns engine output into redemption advice via the
// configured provider, with a static fallback so the UI never blocks on a
// provider failure.
type AdvisorService struct {
	Provider llm.AdviceProvider
}

// Advise builds the provider request from the top opportunities and the
// summary. Provider errors degrade to fallback advice, never propagate.
func (s *AdvisorService) Advise(ctx context.Context, destination, homeAirport string, opportunities []engine.AwardOpportunity, summary engine.Summary) llm.AdviceResponse {
	req := llm.AdviceRequest{
		Destination: destination,
		HomeAirport: homeAirport,
		Affordable:  summary.Affordable,
		TotalValue:  summary.TotalPotentialValue,
	}
	for _, opp := range opportunities {
		if len(req.Opportunities) == maxAdviceOpportunities {
			break
		}
		in := llm.OpportunityInput{
			Title:             opp.SweetSpot.Title,
			Program:           opp.Program.Name,
			DestinationRegion: opp.SweetSpot.DestinationRegion,
			CabinClass:        opp.SweetSpot.CabinClass,
			PointsRequired:    opp.PointsRequired,
			UserBalance:       opp.UserBalance,
			CanAfford:         opp.CanAfford,
			PointsShortfall:   opp.PointsShortfall,
			ValueCpp:          opp.SweetSpot.ValueCpp,
			EstimatedValue:    opp.EstimatedValue,
		}
		if opp.TransferSource != nil {
			in.TransferFrom = opp.TransferSource.ProgramName
		}
		req.Opportunities = append(req.Opportunities, in)
	}

	resp, err := s.Provider.RedemptionAdvice(ctx, req)
	if err != nil {
		return fallbackAdvice(summary)
	}
	return resp
}

func fallbackAdvice(summary engine.Summary) llm.AdviceResponse {
	resp := llm.AdviceResponse{
		Title:      "Review your opportunities",
		Summary:    "Advice is unavailable right now. The opportunity list below is still ranked by value.",
		Confidence: 0,
	}
	if summary.BestValue != nil {
		resp.NextSteps = append(resp.NextSteps,
			"Best value today: "+summary.BestValue.SweetSpot.Title+" via "+summary.BestValue.Program.Name)
	}
	if summary.ClosestToAffording != nil {
		resp.NextSteps = append(resp.NextSteps,
			"Closest to affording: "+summary.ClosestToAffording.SweetSpot.Title)
	}
	return resp
}
