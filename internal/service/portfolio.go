package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/flywithpoints/flywithpoints/internal/catalog"
	"github.com/flywithpoints/flywithpoints/internal/database"
	"github.com/flywithpoints/flywithpoints/internal/database/repository"
	"github.com/flywithpoints/flywithpoints/internal/engine"
)

var (
	ErrUnknownProgram  = errors.New("unknown loyalty program")
	ErrNegativeBalance = errors.New("balance must be non-negative")
)

// PortfolioService owns the user's point balances. It is the validation
// boundary in front of the engine: unknown program ids and negative
// balances are rejected here so the engine only ever sees well-typed
// input.
type PortfolioService struct {
	Balances *repository.BalanceRepo
	Catalog  *catalog.Catalog
}

// SetBalance creates or updates the balance for a program.
func (s *PortfolioService) SetBalance(ctx context.Context, programID string, balance int) error {
	if _, ok := s.Catalog.ProgramByID(programID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProgram, programID)
	}
	if balance < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeBalance, balance)
	}
	return s.Balances.Upsert(ctx, repository.PointBalance{
		ID:        uuid.NewString(),
		ProgramID: programID,
		Balance:   balance,
		UpdatedAt: database.Now(),
	})
}

// BalanceImport is one entry of a bulk balance load.
type BalanceImport struct {
	ProgramID string
	Balance   int
}

// Import validates every entry, then replaces the stored balance set in a
// single transaction. One bad entry rejects the whole import.
func (s *PortfolioService) Import(ctx context.Context, entries []BalanceImport) error {
	rows := make([]repository.PointBalance, 0, len(entries))
	for _, e := range entries {
		if _, ok := s.Catalog.ProgramByID(e.ProgramID); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownProgram, e.ProgramID)
		}
		if e.Balance < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeBalance, e.Balance)
		}
		rows = append(rows, repository.PointBalance{
			ID:        uuid.NewString(),
			ProgramID: e.ProgramID,
			Balance:   e.Balance,
			UpdatedAt: database.Now(),
		})
	}
	return s.Balances.ReplaceAll(ctx, rows)
}

// Remove deletes a program's balance.
func (s *PortfolioService) Remove(ctx context.Context, programID string) error {
	return s.Balances.Delete(ctx, programID)
}

// Snapshot returns the stored balances as engine input.
func (s *PortfolioService) Snapshot(ctx context.Context) ([]engine.PointBalance, error) {
	rows, err := s.Balances.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]engine.PointBalance, 0, len(rows))
	for _, r := range rows {
		out = append(out, engine.PointBalance{
			ProgramID:   r.ProgramID,
			Balance:     r.Balance,
			LastUpdated: r.UpdatedAt,
		})
	}
	return out, nil
}
