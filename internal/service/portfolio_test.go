package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flywithpoints/flywithpoints/internal/catalog"
	"github.com/flywithpoints/flywithpoints/internal/database"
	"github.com/flywithpoints/flywithpoints/internal/database/repository"
)

func newPortfolio(t *testing.T) (*PortfolioService, context.Context) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &PortfolioService{
		Balances: repository.NewBalanceRepo(db),
		Catalog:  catalog.Default(),
	}, ctx
}

func TestSetBalanceRoundTrip(t *testing.T) {
	t.Parallel()
	svc, ctx := newPortfolio(t)

	require.NoError(t, svc.SetBalance(ctx, "chase-ur", 80000))
	require.NoError(t, svc.SetBalance(ctx, "aeroplan", 12000))

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 2)

	byProgram := map[string]int{}
	for _, b := range snap {
		byProgram[b.ProgramID] = b.Balance
		require.False(t, b.LastUpdated.IsZero())
	}
	require.Equal(t, 80000, byProgram["chase-ur"])
	require.Equal(t, 12000, byProgram["aeroplan"])
}

func TestSetBalanceUpdatesInPlace(t *testing.T) {
	t.Parallel()
	svc, ctx := newPortfolio(t)

	require.NoError(t, svc.SetBalance(ctx, "chase-ur", 80000))
	require.NoError(t, svc.SetBalance(ctx, "chase-ur", 95000))

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 1, "one row per program")
	require.Equal(t, 95000, snap[0].Balance)
}

func TestSetBalanceValidation(t *testing.T) {
	t.Parallel()
	svc, ctx := newPortfolio(t)

	err := svc.SetBalance(ctx, "monopoly-money", 100)
	require.ErrorIs(t, err, ErrUnknownProgram)

	err = svc.SetBalance(ctx, "chase-ur", -1)
	require.ErrorIs(t, err, ErrNegativeBalance)

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Empty(t, snap, "rejected writes must not land")
}

func TestImportReplacesBalanceSet(t *testing.T) {
	t.Parallel()
	svc, ctx := newPortfolio(t)

	require.NoError(t, svc.SetBalance(ctx, "united-mileageplus", 5000))

	err := svc.Import(ctx, []BalanceImport{
		{ProgramID: "chase-ur", Balance: 82000},
		{ProgramID: "aeroplan", Balance: 24000},
	})
	require.NoError(t, err)

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 2, "import replaces, not appends")
	for _, b := range snap {
		require.NotEqual(t, "united-mileageplus", b.ProgramID)
	}
}

func TestImportRejectsBadEntriesWholesale(t *testing.T) {
	t.Parallel()
	svc, ctx := newPortfolio(t)

	require.NoError(t, svc.SetBalance(ctx, "united-mileageplus", 5000))

	err := svc.Import(ctx, []BalanceImport{
		{ProgramID: "chase-ur", Balance: 82000},
		{ProgramID: "virgin-atlantic", Balance: 46000}, // catalog id is virginatlantic
	})
	require.ErrorIs(t, err, ErrUnknownProgram)

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 1, "failed import must leave prior state intact")
	require.Equal(t, "united-mileageplus", snap[0].ProgramID)
}

func TestRemove(t *testing.T) {
	t.Parallel()
	svc, ctx := newPortfolio(t)

	require.NoError(t, svc.SetBalance(ctx, "chase-ur", 80000))
	require.NoError(t, svc.Remove(ctx, "chase-ur"))
	require.NoError(t, svc.Remove(ctx, "chase-ur"), "removing twice is fine")

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Empty(t, snap)
}
