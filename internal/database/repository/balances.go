package repository

import (
	"context"
	"database/sql"

	"github.com/flywithpoints/flywithpoints/internal/database"
)

// BalanceRepo handles point-balance rows.
type BalanceRepo struct {
	db *sql.DB
}

func NewBalanceRepo(db *sql.DB) *BalanceRepo {
	return &BalanceRepo{db: db}
}

// Upsert inserts or replaces the balance for a program. The program_id
// unique constraint keeps one row per program.
func (r *BalanceRepo) Upsert(ctx context.Context, b PointBalance) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO balances(id, program_id, balance, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(program_id) DO UPDATE SET
	 balance=excluded.balance,
	 updated_at=excluded.updated_at;
	`, b.ID, b.ProgramID, b.Balance, b.UpdatedAt)
	return err
}

// List returns all balances ordered by program id.
func (r *BalanceRepo) List(ctx context.Context) ([]PointBalance, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, program_id, balance, updated_at FROM balances ORDER BY program_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PointBalance
	for rows.Next() {
		var b PointBalance
		if err := rows.Scan(&b.ID, &b.ProgramID, &b.Balance, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Get returns the balance for a program, or nil when absent.
func (r *BalanceRepo) Get(ctx context.Context, programID string) (*PointBalance, error) {
	var b PointBalance
	err := r.db.QueryRowContext(ctx,
		`SELECT id, program_id, balance, updated_at FROM balances WHERE program_id = ?`,
		programID).Scan(&b.ID, &b.ProgramID, &b.Balance, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Delete removes a program's balance row.
func (r *BalanceRepo) Delete(ctx context.Context, programID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM balances WHERE program_id = ?`, programID)
	return err
}

// ReplaceAll swaps the entire balance set in one transaction. Either all
// rows land or none do.
func (r *BalanceRepo) ReplaceAll(ctx context.Context, rows []PointBalance) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM balances`); err != nil {
			return err
		}
		for _, b := range rows {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO balances(id, program_id, balance, updated_at)
			VALUES (?, ?, ?, ?)`, b.ID, b.ProgramID, b.Balance, b.UpdatedAt)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
