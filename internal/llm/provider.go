package llm

import "context"

// AdviceProvider produces redemption advice from evaluated opportunities.
type AdviceProvider interface {
	RedemptionAdvice(ctx context.Context, req AdviceRequest) (AdviceResponse, error)
}

// AdviceRequest carries everything the prompt needs: the user's situation
// and the already-ranked opportunities.
type AdviceRequest struct {
	Destination   string             `json:"destination"`
	HomeAirport   string             `json:"home_airport"`
	Opportunities []OpportunityInput `json:"opportunities"`
	Affordable    int                `json:"affordable"`
	TotalValue    int                `json:"total_value"`
}

// OpportunityInput is the prompt-facing shape of one opportunity.
type OpportunityInput struct {
	Title             string  `json:"title"`
	Program           string  `json:"program"`
	DestinationRegion string  `json:"destination_region"`
	CabinClass        string  `json:"cabin_class"`
	PointsRequired    int     `json:"points_required"`
	UserBalance       int     `json:"user_balance"`
	CanAfford         bool    `json:"can_afford"`
	PointsShortfall   int     `json:"points_shortfall"`
	ValueCpp          float64 `json:"value_cpp"`
	EstimatedValue    int     `json:"estimated_value"`
	TransferFrom      string  `json:"transfer_from,omitempty"`
}

// AdviceResponse is the parsed advice.
type AdviceResponse struct {
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	NextSteps  []string `json:"next_steps"`
	Confidence float64  `json:"confidence"`
}
