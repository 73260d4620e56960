// Package engine implements the award-opportunity matching and valuation
// core: resolving which loyalty programs a set of balances can reach,
// intersecting them with the sweet-spot catalog, recommending positioning
// flights and reducing the result to summary stats. Every method is a pure
// function of its inputs and the catalog; nothing here does I/O, blocks or
// returns errors.
package engine

import "github.com/flywithpoints/flywithpoints/internal/catalog"

// Engine evaluates award opportunities against a fixed reference catalog.
type Engine struct {
	cat *catalog.Catalog
}

// New returns an engine bound to the given catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}
