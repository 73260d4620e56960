package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func findAccess(t *testing.T, access []AccessibleProgram, programID string) AccessibleProgram {
	t.Helper()
	for _, ap := range access {
		if ap.ProgramID == programID {
			return ap
		}
	}
	t.Fatalf("program %s not accessible", programID)
	return AccessibleProgram{}
}

func TestTransferReachability(t *testing.T) {
	t.Parallel()
	e := testEngine()

	access := e.AccessiblePrograms([]PointBalance{{ProgramID: "chase-ur", Balance: 100000}})

	ap := findAccess(t, access, "aeroplan")
	require.Equal(t, SourceTransfer, ap.Source)
	require.Equal(t, 100000, ap.Balance)
	require.NotNil(t, ap.TransferFrom)
	require.Equal(t, "chase-ur", ap.TransferFrom.ProgramID)
	require.Equal(t, "Chase Ultimate Rewards", ap.TransferFrom.ProgramName)
	require.Equal(t, 100000, ap.TransferFrom.Balance)

	// chase-ur has three partners in the fixture
	require.Len(t, access, 3)
}

func TestUnknownProgramIDSkipped(t *testing.T) {
	t.Parallel()
	e := testEngine()

	access := e.AccessiblePrograms([]PointBalance{
		{ProgramID: "not-a-program", Balance: 50000},
		{ProgramID: "aeroplan", Balance: 20000},
	})
	require.Len(t, access, 1)
	require.Equal(t, "aeroplan", access[0].ProgramID)
}

func TestEmptyBalancesEmptyResult(t *testing.T) {
	t.Parallel()
	e := testEngine()
	require.Empty(t, e.AccessiblePrograms(nil))
	require.Empty(t, e.AccessiblePrograms([]PointBalance{}))
}

func TestLargerTransferBalanceWins(t *testing.T) {
	t.Parallel()
	e := testEngine()

	access := e.AccessiblePrograms([]PointBalance{
		{ProgramID: "chase-ur", Balance: 40000},
		{ProgramID: "amex-mr", Balance: 90000},
	})

	ap := findAccess(t, access, "aeroplan")
	require.Equal(t, 90000, ap.Balance)
	require.Equal(t, "amex-mr", ap.TransferFrom.ProgramID)

	// balances are never summed across cards
	require.NotEqual(t, 130000, ap.Balance)
}

func TestExactTieKeepsFirstSeen(t *testing.T) {
	t.Parallel()
	e := testEngine()

	access := e.AccessiblePrograms([]PointBalance{
		{ProgramID: "chase-ur", Balance: 60000},
		{ProgramID: "amex-mr", Balance: 60000},
	})

	ap := findAccess(t, access, "aeroplan")
	require.Equal(t, "chase-ur", ap.TransferFrom.ProgramID)
}

func TestDirectAccessNeverDisplacedByTransfer(t *testing.T) {
	t.Parallel()
	e := testEngine()

	access := e.AccessiblePrograms([]PointBalance{
		{ProgramID: "aeroplan", Balance: 10000},
		{ProgramID: "chase-ur", Balance: 500000},
	})

	ap := findAccess(t, access, "aeroplan")
	require.Equal(t, SourceDirect, ap.Source)
	require.Equal(t, 10000, ap.Balance)
	require.Nil(t, ap.TransferFrom)
}

func TestDirectDuplicatesDeduplicated(t *testing.T) {
	t.Parallel()
	e := testEngine()

	access := e.AccessiblePrograms([]PointBalance{
		{ProgramID: "aeroplan", Balance: 10000},
		{ProgramID: "aeroplan", Balance: 99999},
	})
	require.Len(t, access, 1)
	require.Equal(t, 10000, access[0].Balance, "first direct entry wins")
}
