package catalog

// defaultRegions mirrors the destination taxonomy used by the sweet-spot
// table. Region names, not ids, appear in SweetSpot.DestinationRegion.
var defaultRegions = []Region{
	{
		ID: "asia", Name: "Asia",
		Countries: []string{"Japan", "South Korea", "China", "Thailand", "Singapore", "Hong Kong", "Taiwan", "India", "Vietnam", "Indonesia", "Malaysia", "Philippines"},
		Airports:  []string{"NRT", "HND", "ICN", "PVG", "PEK", "BKK", "SIN", "HKG", "TPE", "DEL", "BOM", "SGN", "CGK", "KUL", "MNL"},
	},
	{
		ID: "europe", Name: "Europe",
		Countries: []string{"United Kingdom", "France", "Germany", "Italy", "Spain", "Netherlands", "Switzerland", "Portugal", "Greece", "Ireland", "Austria", "Belgium"},
		Airports:  []string{"LHR", "LGW", "CDG", "FRA", "MUC", "FCO", "MXP", "MAD", "BCN", "AMS", "ZRH", "LIS", "ATH", "DUB", "VIE", "BRU"},
	},
	{
		ID: "middle-east", Name: "Middle East",
		Countries: []string{"UAE", "Qatar", "Israel", "Jordan", "Saudi Arabia", "Oman", "Bahrain", "Kuwait"},
		Airports:  []string{"DXB", "AUH", "DOH", "TLV", "AMM", "RUH", "JED", "MCT", "BAH", "KWI"},
	},
	{
		ID: "oceania", Name: "Oceania",
		Countries: []string{"Australia", "New Zealand", "Fiji", "French Polynesia"},
		Airports:  []string{"SYD", "MEL", "BNE", "PER", "AKL", "CHC", "NAN", "PPT"},
	},
	{
		ID: "south-america", Name: "South America",
		Countries: []string{"Brazil", "Argentina", "Chile", "Peru", "Colombia", "Ecuador"},
		Airports:  []string{"GRU", "GIG", "EZE", "SCL", "LIM", "BOG", "UIO"},
	},
	{
		ID: "central-america-caribbean", Name: "Central America & Caribbean",
		Countries: []string{"Mexico", "Costa Rica", "Panama", "Jamaica", "Dominican Republic", "Bahamas", "Cuba", "Puerto Rico"},
		Airports:  []string{"MEX", "CUN", "SJO", "PTY", "MBJ", "PUJ", "NAS", "HAV", "SJU"},
	},
	{
		ID: "africa", Name: "Africa",
		Countries: []string{"South Africa", "Morocco", "Egypt", "Kenya", "Tanzania", "Ethiopia"},
		Airports:  []string{"JNB", "CPT", "CMN", "CAI", "NBO", "DAR", "ADD"},
	},
	{
		ID: "canada", Name: "Canada",
		Countries: []string{"Canada"},
		Airports:  []string{"YYZ", "YVR", "YUL", "YYC", "YOW"},
	},
	{
		ID: "north-america", Name: "North America",
		Countries: []string{"United States", "Canada", "Mexico"},
		Airports:  []string{"JFK", "LAX", "ORD", "DFW", "DEN", "SFO", "SEA", "ATL", "BOS", "MIA", "IAD", "IAH", "PHX", "LAS", "MSP", "DTW", "PHL", "CLT", "YYZ", "YVR", "YUL", "MEX", "CUN"},
	},
}

// defaultHubs are the US hubs considered for positioning flights.
var defaultHubs = []HubAirport{
	{Code: "JFK", City: "New York", Area: "Northeast"},
	{Code: "EWR", City: "Newark", Area: "Northeast"},
	{Code: "LAX", City: "Los Angeles", Area: "West Coast"},
	{Code: "SFO", City: "San Francisco", Area: "West Coast"},
	{Code: "ORD", City: "Chicago", Area: "Midwest"},
	{Code: "DFW", City: "Dallas", Area: "South"},
	{Code: "DEN", City: "Denver", Area: "Mountain"},
	{Code: "MIA", City: "Miami", Area: "Southeast"},
	{Code: "ATL", City: "Atlanta", Area: "Southeast"},
	{Code: "IAD", City: "Washington DC", Area: "Northeast"},
	{Code: "SEA", City: "Seattle", Area: "West Coast"},
	{Code: "BOS", City: "Boston", Area: "Northeast"},
	{Code: "IAH", City: "Houston", Area: "South"},
}

// defaultPositioningCosts holds flat USD point-estimates for domestic
// positioning legs. Lookups treat the matrix as symmetric.
var defaultPositioningCosts = map[string]map[string]int{
	"JFK": {"LAX": 300, "SFO": 350, "ORD": 200, "MIA": 200, "DFW": 250, "SEA": 350},
	"BOS": {"LAX": 350, "SFO": 350, "ORD": 200, "MIA": 200, "JFK": 100, "DFW": 250},
	"IAD": {"LAX": 300, "SFO": 350, "ORD": 180, "MIA": 180, "JFK": 150, "DFW": 220},
	"LAX": {"JFK": 300, "SFO": 100, "ORD": 250, "MIA": 300, "DFW": 200, "SEA": 150},
	"SFO": {"JFK": 350, "LAX": 100, "ORD": 280, "MIA": 350, "DFW": 250, "SEA": 150},
	"SEA": {"JFK": 350, "LAX": 150, "SFO": 150, "ORD": 280, "DFW": 280},
	"ORD": {"JFK": 200, "LAX": 250, "SFO": 280, "MIA": 200, "DFW": 180},
	"DFW": {"JFK": 250, "LAX": 200, "SFO": 250, "ORD": 180, "MIA": 200},
	"MIA": {"JFK": 200, "LAX": 300, "ORD": 200, "DFW": 200},
	"ATL": {"JFK": 200, "LAX": 280, "ORD": 180, "MIA": 150, "DFW": 180},
	"IAH": {"JFK": 280, "LAX": 220, "ORD": 200, "MIA": 200, "DFW": 150},
}

// defaultFallbackCost is used when neither direction of a hub pair is
// tabulated. A typical domestic one-way.
const defaultFallbackCost = 250

// defaultBestHubs ranks departure hubs per destination region id.
var defaultBestHubs = map[string][]string{
	"asia":                      {"LAX", "SFO", "SEA", "JFK"},
	"europe":                    {"JFK", "BOS", "IAD", "ORD"},
	"middle-east":               {"JFK", "IAD", "ORD"},
	"oceania":                   {"LAX", "SFO", "DFW"},
	"south-america":             {"MIA", "IAH", "DFW", "ATL"},
	"central-america-caribbean": {"MIA", "IAH", "DFW", "ATL"},
	"africa":                    {"JFK", "IAD", "ATL"},
	"canada":                    {"SEA", "ORD", "BOS", "JFK"},
	"north-america":             {"ORD", "DFW", "ATL", "DEN"},
}

// defaultAnyHubs is returned for region ids missing from defaultBestHubs.
var defaultAnyHubs = []string{"JFK", "LAX", "ORD"}
