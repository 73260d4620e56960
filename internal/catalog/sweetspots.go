package catalog

// defaultSweetSpots is the curated redemption table. ValueCpp is left zero
// here and derived from price/points when the catalog is built.
var defaultSweetSpots = []SweetSpot{
	{
		ID:    "aeroplan-asia-biz",
		Title: "Aeroplan business class to Asia",
		Description: "Star Alliance partners (EVA, ANA via partners) from North America " +
			"to Northeast Asia in business for a flat 70k.",
		ProgramID: "aeroplan", OriginRegion: "North America", DestinationRegion: "Asia",
		CabinClass: "business", PointsRequired: 70000, TypicalCashPrice: 3500,
		BookingTips: "Search partner space on the Aeroplan site; avoid dynamic-priced Air Canada metal.",
	},
	{
		ID:    "virgin-ana-first",
		Title: "ANA First Class via Virgin Atlantic",
		Description: "The famous one: ANA first class from the US West Coast to Japan " +
			"for 72.5k Virgin points round trip... when space exists.",
		ProgramID: "virginatlantic", OriginRegion: "North America", DestinationRegion: "Asia",
		CabinClass: "first", PointsRequired: 72500, TypicalCashPrice: 11000,
		BookingTips: "Space is released close-in; call Virgin to book, round trip only.",
	},
	{
		ID:    "virgin-ana-biz",
		Title: "ANA business class via Virgin Atlantic",
		Description: "ANA business to Japan for 45k-47.5k Virgin points one way equivalent.",
		ProgramID: "virginatlantic", OriginRegion: "North America", DestinationRegion: "Asia",
		CabinClass: "business", PointsRequired: 47500, TypicalCashPrice: 4500,
		BookingTips: "Round-trip pricing; West Coast departures price lower.",
	},
	{
		ID:    "lifemiles-star-biz-europe",
		Title: "LifeMiles to Europe in business",
		Description: "Star Alliance business to Europe for 63k with no fuel surcharges.",
		ProgramID: "lifemiles", OriginRegion: "North America", DestinationRegion: "Europe",
		CabinClass: "business", PointsRequired: 63000, TypicalCashPrice: 3200,
		BookingTips: "LifeMiles sells miles cheaply in promos; watch for mixed-cabin itineraries.",
	},
	{
		ID:    "flyingblue-promo-europe",
		Title: "Flying Blue Promo Rewards to Europe",
		Description: "Monthly promo awards cut economy and premium cabins to Europe by 25-50%.",
		ProgramID: "flying-blue", OriginRegion: "North America", DestinationRegion: "Europe",
		CabinClass: "economy", PointsRequired: 17500, TypicalCashPrice: 700,
		BookingTips: "Promo Rewards rotate monthly by origin city; transfer only after finding space.",
	},
	{
		ID:    "flyingblue-biz-europe",
		Title: "Flying Blue business to Europe",
		Description: "AF/KLM business class to Paris or Amsterdam from 50k one way on sale dates.",
		ProgramID: "flying-blue", OriginRegion: "North America", DestinationRegion: "Europe",
		CabinClass: "business", PointsRequired: 50000, TypicalCashPrice: 2800,
		BookingTips: "Surcharges run $200-300; still strong value on sale dates.",
	},
	{
		ID:    "avios-shorthaul",
		Title: "Avios short-haul partner flights",
		Description: "Distance-based pricing makes sub-1,151-mile AA and Alaska segments 9k-13.5k Avios.",
		ProgramID: "avios", OriginRegion: "North America", DestinationRegion: "Various",
		CabinClass: "economy", PointsRequired: 9000, TypicalCashPrice: 250,
		BookingTips: "Price by segment distance; avoid connections, each leg prices separately.",
	},
	{
		ID:    "avios-japan-jal",
		Title: "JAL West Coast to Japan via Avios",
		Description: "JAL business on BA's distance chart from the West Coast.",
		ProgramID: "avios", OriginRegion: "North America", DestinationRegion: "Asia",
		CabinClass: "business", PointsRequired: 77250, TypicalCashPrice: 4200,
		BookingTips: "Book on ba.com; JAL releases two business seats per flight well in advance.",
	},
	{
		ID:    "alaska-cathay-biz",
		Title: "Cathay Pacific business via Alaska",
		Description: "Alaska's partner chart: US to Hong Kong and beyond in business for 85k one way.",
		ProgramID: "alaska-mileageplan", OriginRegion: "North America", DestinationRegion: "Asia",
		CabinClass: "business", PointsRequired: 85000, TypicalCashPrice: 4800,
		BookingTips: "Stopover allowed on a one-way; pair Hong Kong with Southeast Asia.",
	},
	{
		ID:    "alaska-jal-biz",
		Title: "JAL business via Alaska",
		Description: "60k one way to Japan in business, with a free stopover.",
		ProgramID: "alaska-mileageplan", OriginRegion: "North America", DestinationRegion: "Asia",
		CabinClass: "business", PointsRequired: 60000, TypicalCashPrice: 4200,
		BookingTips: "Transfer from Bilt or credit Alaska flying; miles are hard to buy otherwise.",
	},
	{
		ID:    "krisflyer-suites",
		Title: "Singapore Suites on the A380",
		Description: "KrisFlyer saver suites from the US to Singapore via Frankfurt or Tokyo.",
		ProgramID: "krisflyer", OriginRegion: "North America", DestinationRegion: "Asia",
		CabinClass: "first", PointsRequired: 107000, TypicalCashPrice: 9500,
		BookingTips: "Saver space opens ~355 days out for KrisFlyer members only.",
	},
	{
		ID:    "krisflyer-biz-asia",
		Title: "Singapore business to Asia",
		Description: "Saver business awards US to Singapore, often wide open midweek.",
		ProgramID: "krisflyer", OriginRegion: "North America", DestinationRegion: "Asia",
		CabinClass: "business", PointsRequired: 95000, TypicalCashPrice: 5200,
		BookingTips: "Waitlist clears frequently; book saver and waitlist the better flight.",
	},
	{
		ID:    "united-excursionist",
		Title: "United Excursionist Perk",
		Description: "A free one-way within a region on a multi-region round trip.",
		ProgramID: "united-mileageplus", OriginRegion: "North America", DestinationRegion: "Various",
		CabinClass: "economy", PointsRequired: 35000, TypicalCashPrice: 1100,
		BookingTips: "Build the itinerary in one booking; the intra-region leg prices at zero.",
	},
	{
		ID:    "united-polaris-europe",
		Title: "United Polaris to Europe",
		Description: "Saver business to Europe on United or Star partners.",
		ProgramID: "united-mileageplus", OriginRegion: "North America", DestinationRegion: "Europe",
		CabinClass: "business", PointsRequired: 80000, TypicalCashPrice: 3000,
		BookingTips: "Partner saver space beats United metal pricing; check LOT, TAP, SAS.",
	},
	{
		ID:    "aa-etihad-first",
		Title: "Etihad Apartment via AAdvantage",
		Description: "AA partner chart to the Middle East in Etihad first.",
		ProgramID: "american-aadvantage", OriginRegion: "North America", DestinationRegion: "Middle East",
		CabinClass: "first", PointsRequired: 115000, TypicalCashPrice: 12000,
		BookingTips: "Space must be phoned in; check Etihad's own site for availability first.",
	},
	{
		ID:    "aa-qatar-qsuite",
		Title: "Qsuite to the Middle East via AAdvantage",
		Description: "Qatar Qsuite business for 70k AA miles one way.",
		ProgramID: "american-aadvantage", OriginRegion: "North America", DestinationRegion: "Middle East",
		CabinClass: "business", PointsRequired: 70000, TypicalCashPrice: 5500,
		BookingTips: "Doha transit opens all of Asia and Africa for the same price band.",
	},
	{
		ID:    "delta-skyteam-europe",
		Title: "Delta SkyTeam partner awards to Europe",
		Description: "Flash sales bring business to Europe down to 75k on AF/KLM/Virgin.",
		ProgramID: "delta-skymiles", OriginRegion: "North America", DestinationRegion: "Europe",
		CabinClass: "business", PointsRequired: 75000, TypicalCashPrice: 2900,
		BookingTips: "Dynamic pricing; only book during published flash sales.",
	},
	{
		ID:    "emirates-first-dxb",
		Title: "Emirates First to Dubai",
		Description: "A380 first with shower spa, US gateways to Dubai.",
		ProgramID: "emirates-skywards", OriginRegion: "North America", DestinationRegion: "Middle East",
		CabinClass: "first", PointsRequired: 136250, TypicalCashPrice: 13000,
		BookingTips: "Surcharges are heavy; value still clears 9 cpp on nonstops.",
	},
	{
		ID:    "qantas-oneworld-oceania",
		Title: "Qantas classic rewards to Australia",
		Description: "Classic reward business US to Sydney or Melbourne.",
		ProgramID: "qantas", OriginRegion: "North America", DestinationRegion: "Oceania",
		CabinClass: "business", PointsRequired: 108400, TypicalCashPrice: 6000,
		BookingTips: "Release patterns favor booking the moment the calendar opens.",
	},
	{
		ID:    "smiles-south-america",
		Title: "GOL Smiles to South America",
		Description: "Smiles promos to Brazil undercut cash fares badly in economy and business.",
		ProgramID: "smiles", OriginRegion: "North America", DestinationRegion: "South America",
		CabinClass: "business", PointsRequired: 65000, TypicalCashPrice: 2400,
		BookingTips: "Watch the Smiles clube promos; transfers from Amex are instant.",
	},
	{
		ID:    "etihad-royal-caribbean",
		Title: "Etihad Guest to the Caribbean",
		Description: "Underpriced partner awards into the Caribbean on AA metal.",
		ProgramID: "etihad", OriginRegion: "North America", DestinationRegion: "Central America & Caribbean",
		CabinClass: "economy", PointsRequired: 12500, TypicalCashPrice: 380,
		BookingTips: "Uses Etihad's legacy AA partner chart; email bookings only.",
	},
	{
		ID:    "aeroplan-africa",
		Title: "Aeroplan to Africa via Europe",
		Description: "Ethiopian or Star partners to Africa with a Europe stopover for 5k extra.",
		ProgramID: "aeroplan", OriginRegion: "North America", DestinationRegion: "Africa",
		CabinClass: "business", PointsRequired: 85000, TypicalCashPrice: 4400,
		BookingTips: "Add the stopover online; zone pricing makes long routings free upside.",
	},
}
