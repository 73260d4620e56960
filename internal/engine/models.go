package engine

import (
	"time"

	"github.com/flywithpoints/flywithpoints/internal/catalog"
)

// PointBalance is the engine's inbound snapshot of one program balance.
// The balance store owns the rows; the engine only ever reads copies.
type PointBalance struct {
	ProgramID   string
	Balance     int
	LastUpdated time.Time
}

// Source says how a program became reachable.
type Source string

const (
	SourceDirect   Source = "direct"
	SourceTransfer Source = "transfer"
)

// TransferSource records the credit card a transfer-reachable balance
// would come from.
type TransferSource struct {
	ProgramID   string
	ProgramName string
	Balance     int
}

// AccessibleProgram is a program the user can redeem through, with the
// best balance reachable for it. Recomputed from scratch on every input
// change; never persisted.
type AccessibleProgram struct {
	ProgramID    string
	Program      catalog.LoyaltyProgram
	Balance      int
	Source       Source
	TransferFrom *TransferSource // set only when Source == SourceTransfer
}

// AwardOpportunity pairs a sweet spot with the user's access to its
// booking program.
type AwardOpportunity struct {
	ID              string
	SweetSpot       catalog.SweetSpot
	Program         catalog.LoyaltyProgram
	UserBalance     int
	PointsRequired  int
	CanAfford       bool
	PointsShortfall int // 0 when affordable
	PercentageOwned int // clamped to [0,100]
	TransferSource  *TransferSource
	EstimatedValue  int // USD, the spot's typical cash price
}

// PositioningOption proposes departing from an alternate hub instead of
// the user's home airport.
type PositioningOption struct {
	ID                       string
	AlternateOrigin          string
	AlternateOriginCity      string
	Opportunity              AwardOpportunity
	EstimatedPositioningCost int // flat USD estimate, not live pricing
	TotalValue               int // opportunity value minus positioning cost
	Reasoning                string
}

// Summary is the top-line reduction of an opportunity list.
type Summary struct {
	Total               int
	Affordable          int
	AlmostAffordable    int // unaffordable but >= 75% owned
	TotalPotentialValue int // USD over the affordable set
	BestValue           *AwardOpportunity
	ClosestToAffording  *AwardOpportunity
}
