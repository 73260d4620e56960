package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()
	e := testEngine()

	s := e.Summarize(nil)
	require.Equal(t, 0, s.Total)
	require.Equal(t, 0, s.Affordable)
	require.Equal(t, 0, s.AlmostAffordable)
	require.Equal(t, 0, s.TotalPotentialValue)
	require.Nil(t, s.BestValue)
	require.Nil(t, s.ClosestToAffording)
}

func TestSummarizeCounts(t *testing.T) {
	t.Parallel()
	e := testEngine()

	balances := []PointBalance{
		{ProgramID: "chase-ur", Balance: 80000}, // affords aeroplan-asia, avios, united-europe
		{ProgramID: "amex-mr", Balance: 76000},  // krisflyer stays short at 84%
	}
	opps := e.AwardOpportunities(balances, "")
	s := e.Summarize(opps)

	require.Equal(t, len(opps), s.Total)

	unaffordable := 0
	wantValue := 0
	for _, o := range opps {
		if o.CanAfford {
			wantValue += o.EstimatedValue
		} else {
			unaffordable++
		}
	}
	require.Equal(t, s.Total, s.Affordable+unaffordable)
	require.Equal(t, wantValue, s.TotalPotentialValue)

	require.NotNil(t, s.BestValue)
	require.True(t, s.BestValue.CanAfford)
	for _, o := range opps {
		if o.CanAfford {
			require.GreaterOrEqual(t, s.BestValue.SweetSpot.ValueCpp, o.SweetSpot.ValueCpp)
		}
	}

	require.NotNil(t, s.ClosestToAffording)
	require.False(t, s.ClosestToAffording.CanAfford)
	require.Equal(t, "krisflyer-asia", s.ClosestToAffording.SweetSpot.ID)
	require.Equal(t, 1, s.AlmostAffordable)
}

func TestAlmostAffordableBoundary(t *testing.T) {
	t.Parallel()
	e := testEngine()

	// 71250/95000 = 75% exactly: counts; 70000/95000 = 74%: does not
	at := e.Summarize(e.AwardOpportunities([]PointBalance{{ProgramID: "amex-mr", Balance: 71250}}, "Asia"))
	require.Equal(t, 1, at.AlmostAffordable)

	below := e.Summarize(e.AwardOpportunities([]PointBalance{{ProgramID: "amex-mr", Balance: 70000}}, "Asia"))
	require.Equal(t, 0, below.AlmostAffordable)
}
