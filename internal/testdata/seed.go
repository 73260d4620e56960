package testdata

import (
	"context"

	"github.com/flywithpoints/flywithpoints/internal/service"
)

// demoPortfolio is shaped to produce a mix of affordable and
// almost-affordable redemptions.
var demoPortfolio = []service.BalanceImport{
	{ProgramID: "chase-ur", Balance: 82000},
	{ProgramID: "amex-mr", Balance: 61000},
	{ProgramID: "aeroplan", Balance: 24000},
	{ProgramID: "virginatlantic", Balance: 46000},
	{ProgramID: "avios", Balance: 18500},
	{ProgramID: "lifemiles", Balance: 72000},
}

// Seed loads the demo points portfolio so a fresh install has something
// to explore. Goes through the portfolio service so every id is checked
// against the catalog.
func Seed(ctx context.Context, portfolio *service.PortfolioService) error {
	return portfolio.Import(ctx, demoPortfolio)
}
