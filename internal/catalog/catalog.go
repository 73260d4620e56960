// Package catalog holds the static award-travel reference data: loyalty
// programs, curated sweet-spot redemptions, destination regions and the
// hub/positioning-cost tables. A Catalog is built once at startup and is
// immutable afterwards; all engine lookups go through it.
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Tables is the raw input to New. Tests pass fixture tables; production
// code uses Default.
type Tables struct {
	Programs         []LoyaltyProgram
	SweetSpots       []SweetSpot
	Regions          []Region
	Hubs             []HubAirport
	PositioningCosts map[string]map[string]int
	FallbackCost     int
	BestHubs         map[string][]string
	AnyHubs          []string
}

// Catalog is the loaded, indexed reference data.
type Catalog struct {
	programs   []LoyaltyProgram
	programIdx map[string]int
	sweetSpots []SweetSpot
	regions    []Region
	regionIdx  map[string]int
	hubs       []HubAirport
	hubIdx     map[string]int
	costs      map[string]map[string]int
	fallback   int
	bestHubs   map[string][]string
	anyHubs    []string
}

// New builds an indexed catalog from explicit tables. SweetSpot.ValueCpp is
// derived from price and points here so data literals never carry it.
func New(t Tables) *Catalog {
	c := &Catalog{
		programs:   t.Programs,
		programIdx: make(map[string]int, len(t.Programs)),
		sweetSpots: make([]SweetSpot, len(t.SweetSpots)),
		regions:    t.Regions,
		regionIdx:  make(map[string]int, len(t.Regions)),
		hubs:       t.Hubs,
		hubIdx:     make(map[string]int, len(t.Hubs)),
		costs:      t.PositioningCosts,
		fallback:   t.FallbackCost,
		bestHubs:   t.BestHubs,
		anyHubs:    t.AnyHubs,
	}
	for i, p := range t.Programs {
		c.programIdx[p.ID] = i
	}
	for i, s := range t.SweetSpots {
		if s.PointsRequired > 0 {
			s.ValueCpp = math.Round(float64(s.TypicalCashPrice)/float64(s.PointsRequired)*100*100) / 100
		}
		c.sweetSpots[i] = s
	}
	for i, r := range t.Regions {
		c.regionIdx[r.ID] = i
	}
	for i, h := range t.Hubs {
		c.hubIdx[h.Code] = i
	}
	return c
}

// Default returns the catalog built from the shipped tables.
func Default() *Catalog {
	return New(Tables{
		Programs:         defaultPrograms,
		SweetSpots:       defaultSweetSpots,
		Regions:          defaultRegions,
		Hubs:             defaultHubs,
		PositioningCosts: defaultPositioningCosts,
		FallbackCost:     defaultFallbackCost,
		BestHubs:         defaultBestHubs,
		AnyHubs:          defaultAnyHubs,
	})
}

// ProgramByID returns the program and whether it exists.
func (c *Catalog) ProgramByID(id string) (LoyaltyProgram, bool) {
	i, ok := c.programIdx[id]
	if !ok {
		return LoyaltyProgram{}, false
	}
	return c.programs[i], true
}

// Programs returns all programs in table order.
func (c *Catalog) Programs() []LoyaltyProgram {
	out := make([]LoyaltyProgram, len(c.programs))
	copy(out, c.programs)
	return out
}

// AirlinePrograms returns programs redeemable directly.
func (c *Catalog) AirlinePrograms() []LoyaltyProgram {
	return c.programsOfType(TypeAirline)
}

// CreditCardPrograms returns transferable card currencies.
func (c *Catalog) CreditCardPrograms() []LoyaltyProgram {
	return c.programsOfType(TypeCreditCard)
}

func (c *Catalog) programsOfType(t ProgramType) []LoyaltyProgram {
	var out []LoyaltyProgram
	for _, p := range c.programs {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// TransferPartners resolves a program's partner ids to programs. Unknown
// ids in the partner list drop silently.
func (c *Catalog) TransferPartners(id string) []LoyaltyProgram {
	p, ok := c.ProgramByID(id)
	if !ok {
		return nil
	}
	var out []LoyaltyProgram
	for _, pid := range p.TransferPartners {
		if partner, ok := c.ProgramByID(pid); ok {
			out = append(out, partner)
		}
	}
	return out
}

// SweetSpots returns the curated redemption table in catalog order.
func (c *Catalog) SweetSpots() []SweetSpot {
	out := make([]SweetSpot, len(c.sweetSpots))
	copy(out, c.sweetSpots)
	return out
}

// Regions returns the destination regions in table order.
func (c *Catalog) Regions() []Region {
	out := make([]Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// RegionByID returns a region by id.
func (c *Catalog) RegionByID(id string) (Region, bool) {
	i, ok := c.regionIdx[id]
	if !ok {
		return Region{}, false
	}
	return c.regions[i], true
}

// ResolveRegion maps free destination text to a canonical region. Stages:
// exact name match, then name/country substring, then bounded edit distance
// against names and countries for typo tolerance. Empty input resolves to
// nothing.
func (c *Catalog) ResolveRegion(query string) (Region, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Region{}, false
	}
	for _, r := range c.regions {
		if strings.ToLower(r.Name) == q {
			return r, true
		}
	}
	for _, r := range c.regions {
		if strings.Contains(strings.ToLower(r.Name), q) {
			return r, true
		}
		for _, country := range r.Countries {
			if strings.Contains(strings.ToLower(country), q) {
				return r, true
			}
		}
	}
	// typo tolerance: at most two edits against any name or country
	const maxDistance = 2
	best, bestDist := -1, maxDistance+1
	for i, r := range c.regions {
		if d := levenshtein.ComputeDistance(q, strings.ToLower(r.Name)); d < bestDist {
			best, bestDist = i, d
		}
		for _, country := range r.Countries {
			if d := levenshtein.ComputeDistance(q, strings.ToLower(country)); d < bestDist {
				best, bestDist = i, d
			}
		}
	}
	if best >= 0 {
		return c.regions[best], true
	}
	return Region{}, false
}

// MatchesDestination reports whether a sweet spot survives the destination
// filter. An empty filter matches everything; the literal region "Various"
// matches any filter. Otherwise the filter must be a case-insensitive
// substring of the spot's destination region, or of a country belonging to
// the region named by the spot.
func (c *Catalog) MatchesDestination(spot SweetSpot, filter string) bool {
	f := strings.ToLower(strings.TrimSpace(filter))
	if f == "" {
		return true
	}
	if spot.DestinationRegion == "Various" {
		return true
	}
	if strings.Contains(strings.ToLower(spot.DestinationRegion), f) {
		return true
	}
	for _, r := range c.regions {
		if !strings.EqualFold(r.Name, spot.DestinationRegion) {
			continue
		}
		for _, country := range r.Countries {
			if strings.Contains(strings.ToLower(country), f) {
				return true
			}
		}
	}
	return false
}

// HubByCode returns a hub airport by IATA code.
func (c *Catalog) HubByCode(code string) (HubAirport, bool) {
	i, ok := c.hubIdx[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return HubAirport{}, false
	}
	return c.hubs[i], true
}

// BestHubs returns the ranked departure hubs for a region id, or the
// generic major-hub list when the region has no entry.
func (c *Catalog) BestHubs(regionID string) []string {
	if hubs, ok := c.bestHubs[regionID]; ok {
		out := make([]string, len(hubs))
		copy(out, hubs)
		return out
	}
	out := make([]string, len(c.anyHubs))
	copy(out, c.anyHubs)
	return out
}

// PositioningCost estimates the USD cost of a positioning leg between two
// hubs. The matrix is treated as symmetric; untabulated pairs fall back to
// a flat estimate.
func (c *Catalog) PositioningCost(from, to string) int {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if v, ok := c.costs[from][to]; ok {
		return v
	}
	if v, ok := c.costs[to][from]; ok {
		return v
	}
	return c.fallback
}

// DestinationMatch is one hit from SearchDestinations.
type DestinationMatch struct {
	Value  string // region or country name
	Kind   string // "region" or "country"
	Region Region
}

// SearchDestinations returns regions and countries whose names contain the
// query, in region table order, regions before their countries.
func (c *Catalog) SearchDestinations(query string) []DestinationMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []DestinationMatch
	for _, r := range c.regions {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, DestinationMatch{Value: r.Name, Kind: "region", Region: r})
		}
		for _, country := range r.Countries {
			if strings.Contains(strings.ToLower(country), q) {
				out = append(out, DestinationMatch{Value: country, Kind: "country", Region: r})
			}
		}
	}
	return out
}

// DestinationsWithSweetSpots returns the sorted set of concrete destination
// regions among spots bookable through any of the given program ids.
func (c *Catalog) DestinationsWithSweetSpots(programIDs map[string]bool) []string {
	seen := map[string]bool{}
	for _, s := range c.sweetSpots {
		if programIDs[s.ProgramID] && s.DestinationRegion != "Various" {
			seen[s.DestinationRegion] = true
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
