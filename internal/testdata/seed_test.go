package testdata

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flywithpoints/flywithpoints/internal/catalog"
	"github.com/flywithpoints/flywithpoints/internal/database"
	"github.com/flywithpoints/flywithpoints/internal/database/repository"
	"github.com/flywithpoints/flywithpoints/internal/service"
)

func TestSeedLoadsOnlyKnownPrograms(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cat := catalog.Default()
	svc := &service.PortfolioService{
		Balances: repository.NewBalanceRepo(db),
		Catalog:  cat,
	}

	require.NoError(t, Seed(ctx, svc))

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, len(demoPortfolio))
	byProgram := map[string]int{}
	for _, b := range snap {
		_, ok := cat.ProgramByID(b.ProgramID)
		require.True(t, ok, "seeded id %s not in catalog", b.ProgramID)
		byProgram[b.ProgramID] = b.Balance
	}
	require.Equal(t, 46000, byProgram["virginatlantic"])
}
