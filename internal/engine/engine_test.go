package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flywithpoints/flywithpoints/internal/catalog"
)

// fixtureCatalog is a small deterministic catalog covering direct access,
// transfers, both destination regions and the positioning tables.
func fixtureCatalog() *catalog.Catalog {
	return catalog.New(catalog.Tables{
		Programs: []catalog.LoyaltyProgram{
			{ID: "aeroplan", Name: "Air Canada Aeroplan", Type: catalog.TypeAirline, BaseValueCpp: 1.5},
			{ID: "krisflyer", Name: "Singapore KrisFlyer", Type: catalog.TypeAirline, BaseValueCpp: 1.6},
			{ID: "united-mileageplus", Name: "United MileagePlus", Type: catalog.TypeAirline, BaseValueCpp: 1.2},
			{ID: "chase-ur", Name: "Chase Ultimate Rewards", Type: catalog.TypeCreditCard, BaseValueCpp: 1.5,
				TransferPartners: []string{"aeroplan", "krisflyer", "united-mileageplus"}},
			{ID: "amex-mr", Name: "Amex Membership Rewards", Type: catalog.TypeCreditCard, BaseValueCpp: 1.6,
				TransferPartners: []string{"aeroplan", "krisflyer"}},
		},
		SweetSpots: []catalog.SweetSpot{
			{ID: "aeroplan-asia", Title: "Aeroplan to Asia", ProgramID: "aeroplan",
				OriginRegion: "North America", DestinationRegion: "Asia", CabinClass: "business",
				PointsRequired: 70000, TypicalCashPrice: 3500},
			{ID: "krisflyer-asia", Title: "KrisFlyer to Asia", ProgramID: "krisflyer",
				OriginRegion: "North America", DestinationRegion: "Asia", CabinClass: "business",
				PointsRequired: 95000, TypicalCashPrice: 5200},
			{ID: "united-europe", Title: "United to Europe", ProgramID: "united-mileageplus",
				OriginRegion: "North America", DestinationRegion: "Europe", CabinClass: "business",
				PointsRequired: 60000, TypicalCashPrice: 3000},
			{ID: "avios-anywhere", Title: "Short hops anywhere", ProgramID: "aeroplan",
				OriginRegion: "North America", DestinationRegion: "Various", CabinClass: "economy",
				PointsRequired: 9000, TypicalCashPrice: 250},
		},
		Regions: []catalog.Region{
			{ID: "asia", Name: "Asia", Countries: []string{"Japan", "Thailand"}, Airports: []string{"NRT", "BKK"}},
			{ID: "europe", Name: "Europe", Countries: []string{"France", "Germany"}, Airports: []string{"CDG", "FRA"}},
		},
		Hubs: []catalog.HubAirport{
			{Code: "LAX", City: "Los Angeles", Area: "West Coast"},
			{Code: "SFO", City: "San Francisco", Area: "West Coast"},
			{Code: "SEA", City: "Seattle", Area: "West Coast"},
			{Code: "JFK", City: "New York", Area: "Northeast"},
			{Code: "BOS", City: "Boston", Area: "Northeast"},
		},
		PositioningCosts: map[string]map[string]int{
			"BOS": {"LAX": 350, "JFK": 100},
			"LAX": {"SFO": 100},
		},
		FallbackCost: 250,
		BestHubs: map[string][]string{
			"asia":   {"LAX", "SFO", "SEA", "JFK"},
			"europe": {"JFK", "BOS"},
		},
		AnyHubs: []string{"JFK", "LAX"},
	})
}

func testEngine() *Engine {
	return New(fixtureCatalog())
}

func TestAffordableOpportunityViaTransfer(t *testing.T) {
	t.Parallel()
	e := testEngine()

	opps := e.AwardOpportunities([]PointBalance{{ProgramID: "chase-ur", Balance: 80000}}, "")

	var found *AwardOpportunity
	for i := range opps {
		if opps[i].SweetSpot.ID == "aeroplan-asia" {
			found = &opps[i]
		}
	}
	require.NotNil(t, found)
	require.True(t, found.CanAfford)
	require.Equal(t, 0, found.PointsShortfall)
	require.Equal(t, 100, found.PercentageOwned)
	require.InDelta(t, 5.0, found.SweetSpot.ValueCpp, 0.001)
	require.Equal(t, 3500, found.EstimatedValue)
	require.NotNil(t, found.TransferSource)
	require.Equal(t, "chase-ur", found.TransferSource.ProgramID)
}

func TestShortfallArithmetic(t *testing.T) {
	t.Parallel()
	e := testEngine()

	opps := e.AwardOpportunities([]PointBalance{{ProgramID: "chase-ur", Balance: 30000}}, "Asia")

	require.NotEmpty(t, opps)
	var found *AwardOpportunity
	for i := range opps {
		if opps[i].SweetSpot.ID == "aeroplan-asia" {
			found = &opps[i]
		}
	}
	require.NotNil(t, found)
	require.False(t, found.CanAfford)
	require.Equal(t, 40000, found.PointsShortfall)
	require.Equal(t, 43, found.PercentageOwned)
}

func TestAffordabilityInvariant(t *testing.T) {
	t.Parallel()
	e := testEngine()

	balances := []PointBalance{
		{ProgramID: "chase-ur", Balance: 71000},
		{ProgramID: "united-mileageplus", Balance: 10000},
	}
	for _, opp := range e.AwardOpportunities(balances, "") {
		require.Equal(t, opp.UserBalance >= opp.PointsRequired, opp.CanAfford, opp.ID)
		if opp.CanAfford {
			require.Equal(t, 0, opp.PointsShortfall, opp.ID)
		} else {
			require.Equal(t, opp.PointsRequired-opp.UserBalance, opp.PointsShortfall, opp.ID)
		}
		require.GreaterOrEqual(t, opp.PercentageOwned, 0, opp.ID)
		require.LessOrEqual(t, opp.PercentageOwned, 100, opp.ID)
	}
}

func TestPercentageClampsWhenOverfunded(t *testing.T) {
	t.Parallel()
	e := testEngine()

	opps := e.AwardOpportunities([]PointBalance{{ProgramID: "chase-ur", Balance: 5000000}}, "")
	require.NotEmpty(t, opps)
	for _, opp := range opps {
		require.Equal(t, 100, opp.PercentageOwned)
	}
}

func TestSortShape(t *testing.T) {
	t.Parallel()
	e := testEngine()

	// a spread that leaves both the affordable and unaffordable groups
	// populated
	balances := []PointBalance{
		{ProgramID: "chase-ur", Balance: 50000},
		{ProgramID: "aeroplan", Balance: 80000},
	}
	opps := e.AwardOpportunities(balances, "")
	require.NotEmpty(t, opps)

	for i := 1; i < len(opps); i++ {
		prev, cur := opps[i-1], opps[i]
		if prev.CanAfford && !cur.CanAfford {
			continue // the one allowed transition
		}
		require.Equal(t, prev.CanAfford, cur.CanAfford, "affordable block must be contiguous")
		if prev.CanAfford {
			require.GreaterOrEqual(t, prev.SweetSpot.ValueCpp, cur.SweetSpot.ValueCpp)
		} else {
			require.GreaterOrEqual(t, prev.PercentageOwned, cur.PercentageOwned)
		}
	}
}

func TestDeterminism(t *testing.T) {
	t.Parallel()
	e := testEngine()

	balances := []PointBalance{
		{ProgramID: "chase-ur", Balance: 50000},
		{ProgramID: "amex-mr", Balance: 90000},
		{ProgramID: "aeroplan", Balance: 12000},
	}
	first := e.AwardOpportunities(balances, "asia")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, e.AwardOpportunities(balances, "asia"))
	}
}

func TestDestinationFilterCountryMatch(t *testing.T) {
	t.Parallel()
	e := testEngine()
	balances := []PointBalance{{ProgramID: "chase-ur", Balance: 80000}}

	japan := e.AwardOpportunities(balances, "Japan")
	ids := map[string]bool{}
	for _, o := range japan {
		ids[o.SweetSpot.ID] = true
	}
	require.True(t, ids["aeroplan-asia"], "Japan belongs to Asia")
	require.True(t, ids["avios-anywhere"], "Various passes every filter")
	require.False(t, ids["united-europe"])
}

func TestUnknownFilterKeepsOnlyVariousSpots(t *testing.T) {
	t.Parallel()
	e := testEngine()

	opps := e.AwardOpportunities([]PointBalance{{ProgramID: "chase-ur", Balance: 80000}}, "xyzzy")
	require.NotNil(t, opps)
	for _, o := range opps {
		require.Equal(t, "Various", o.SweetSpot.DestinationRegion)
	}
	require.Len(t, opps, 1)
}

func TestNoBalancesYieldsEmptySlice(t *testing.T) {
	t.Parallel()
	e := testEngine()

	opps := e.AwardOpportunities(nil, "")
	require.NotNil(t, opps)
	require.Empty(t, opps)
}
