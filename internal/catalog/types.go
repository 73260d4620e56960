package catalog

// ProgramType distinguishes redeemable airline programs from credit-card
// currencies that reach them through transfers.
type ProgramType string

const (
	TypeAirline    ProgramType = "airline"
	TypeCreditCard ProgramType = "credit_card"
)

// LoyaltyProgram is a points currency. Reference data; never mutated.
type LoyaltyProgram struct {
	ID               string
	Name             string
	Type             ProgramType
	Alliance         string // "" for unaligned programs and cards
	BaseValueCpp     float64
	TransferPartners []string // program ids reachable at an assumed 1:1
	AwardBookingURL  string
}

// SweetSpot is a curated fixed-cost redemption bookable through one program.
type SweetSpot struct {
	ID                string
	Title             string
	Description       string
	ProgramID         string
	OriginRegion      string
	DestinationRegion string // "Various" matches any destination filter
	CabinClass        string
	PointsRequired    int
	TypicalCashPrice  int // USD
	ValueCpp          float64
	BookingTips       string
}

// Region groups countries and gateway airports under a destination name.
type Region struct {
	ID        string
	Name      string
	Countries []string
	Airports  []string
}

// HubAirport is a US departure hub usable for positioning flights.
type HubAirport struct {
	Code string
	City string
	Area string
}
