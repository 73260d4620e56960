package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// GeminiProvider is a lightweight, offline-friendly heuristic
// implementation. It mimics the interface and behavior (timeouts,
// deterministic output) so the rest of the app can remain non-blocking
// while real API wiring is added later.
type GeminiProvider struct {
	apiKey string
	model  string
}

func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	return &GeminiProvider{apiKey: apiKey, model: model}
}

// RedemptionAdvice composes advice from the ranked opportunity list using
// simple rules: lead with the best affordable redemption, then the
// cheapest path to the nearest miss. Timeout: 8s.
func (g *GeminiProvider) RedemptionAdvice(ctx context.Context, req AdviceRequest) (AdviceResponse, error) {
	_, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	var best *OpportunityInput
	var nearest *OpportunityInput
	for i := range req.Opportunities {
		o := &req.Opportunities[i]
		if o.CanAfford {
			if best == nil || o.ValueCpp > best.ValueCpp {
				best = o
			}
			continue
		}
		if nearest == nil || o.PointsShortfall < nearest.PointsShortfall {
			nearest = o
		}
	}

	if best == nil && nearest == nil {
		return AdviceResponse{
			Title:      "Start earning transferable points",
			Summary:    "No redemptions are in reach yet. Transferable credit-card currencies unlock the most award programs per point earned.",
			NextSteps:  []string{"Add your current point balances", "Prioritize transferable currencies over airline-specific earning"},
			Confidence: 0.5,
		}, nil
	}

	var steps []string
	var summary strings.Builder
	title := "Your best redemption right now"

	if best != nil {
		fmt.Fprintf(&summary, "Book %s through %s: %d points for roughly $%d of travel (%.1f cpp).",
			best.Title, best.Program, best.PointsRequired, best.EstimatedValue, best.ValueCpp)
		if best.TransferFrom != "" {
			steps = append(steps, fmt.Sprintf("Transfer %d points from %s to %s (transfers are usually instant but irreversible, confirm space first)",
				best.PointsRequired, best.TransferFrom, best.Program))
		}
		steps = append(steps, fmt.Sprintf("Search %s award space in %s before transferring anything", best.Program, best.CabinClass))
	} else {
		title = "Close the gap on your next redemption"
	}

	if nearest != nil {
		if summary.Len() > 0 {
			summary.WriteString(" ")
		}
		fmt.Fprintf(&summary, "You are %d points short of %s via %s.",
			nearest.PointsShortfall, nearest.Title, nearest.Program)
		steps = append(steps, fmt.Sprintf("Earn or transfer %d more points toward %s", nearest.PointsShortfall, nearest.Program))
	}

	if req.Affordable > 1 {
		fmt.Fprintf(&summary, " %d redemptions are affordable today, worth about $%d combined.", req.Affordable, req.TotalValue)
	}

	return AdviceResponse{
		Title:      title,
		Summary:    summary.String(),
		NextSteps:  steps,
		Confidence: 0.8,
	}, nil
}
