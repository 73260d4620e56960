package catalog

// defaultPrograms is the shipped loyalty-program table: 18 airline programs
// and the 5 transferable credit-card currencies that feed them.
var defaultPrograms = []LoyaltyProgram{
	{
		ID: "united-mileageplus", Name: "United MileagePlus", Type: TypeAirline,
		Alliance: "star_alliance", BaseValueCpp: 1.2,
		TransferPartners: []string{"chase-ur", "bilt"},
		AwardBookingURL:  "https://www.united.com/en/us/book-flight/mileageplus-awards",
	},
	{
		ID: "american-aadvantage", Name: "American AAdvantage", Type: TypeAirline,
		Alliance: "oneworld", BaseValueCpp: 1.4,
		TransferPartners: []string{"citi-typ", "bilt"},
		AwardBookingURL:  "https://www.aa.com/booking/find-flights",
	},
	{
		ID: "delta-skymiles", Name: "Delta SkyMiles", Type: TypeAirline,
		Alliance: "skyteam", BaseValueCpp: 1.1,
		TransferPartners: []string{"amex-mr"},
		AwardBookingURL:  "https://www.delta.com/flight-search/book-a-flight",
	},
	{
		ID: "southwest-rr", Name: "Southwest Rapid Rewards", Type: TypeAirline,
		BaseValueCpp:     1.4,
		TransferPartners: []string{"chase-ur"},
		AwardBookingURL:  "https://www.southwest.com/air/booking/",
	},
	{
		ID: "alaska-mileageplan", Name: "Alaska Mileage Plan", Type: TypeAirline,
		Alliance: "oneworld", BaseValueCpp: 1.8,
		TransferPartners: []string{"bilt"},
		AwardBookingURL:  "https://www.alaskaair.com/planbook",
	},
	{
		ID: "jetblue-trueblue", Name: "JetBlue TrueBlue", Type: TypeAirline,
		BaseValueCpp:     1.3,
		TransferPartners: []string{"chase-ur", "citi-typ", "bilt"},
		AwardBookingURL:  "https://www.jetblue.com/booking/flights",
	},
	{
		ID: "aeroplan", Name: "Air Canada Aeroplan", Type: TypeAirline,
		Alliance: "star_alliance", BaseValueCpp: 1.5,
		TransferPartners: []string{"chase-ur", "amex-mr", "capital-one", "bilt"},
		AwardBookingURL:  "https://www.aircanada.com/aeroplan/redeem/availability/outbound",
	},
	{
		ID: "avios", Name: "British Airways Avios", Type: TypeAirline,
		Alliance: "oneworld", BaseValueCpp: 1.5,
		TransferPartners: []string{"chase-ur", "amex-mr", "capital-one", "bilt"},
		AwardBookingURL:  "https://www.britishairways.com/travel/redeem/execclub/_gf/en_us",
	},
	{
		ID: "flying-blue", Name: "Air France/KLM Flying Blue", Type: TypeAirline,
		Alliance: "skyteam", BaseValueCpp: 1.4,
		TransferPartners: []string{"chase-ur", "amex-mr", "citi-typ", "capital-one", "bilt"},
		AwardBookingURL:  "https://www.flyingblue.com/en/spend/flights/reward-tickets",
	},
	{
		ID: "krisflyer", Name: "Singapore KrisFlyer", Type: TypeAirline,
		Alliance: "star_alliance", BaseValueCpp: 1.6,
		TransferPartners: []string{"chase-ur", "amex-mr", "citi-typ", "capital-one", "bilt"},
		AwardBookingURL:  "https://www.singaporeair.com/en_UK/ppsclub-krisflyer/use-miles/redeem-flights/",
	},
	{
		ID: "virginatlantic", Name: "Virgin Atlantic Flying Club", Type: TypeAirline,
		BaseValueCpp:     1.5,
		TransferPartners: []string{"chase-ur", "amex-mr", "citi-typ", "capital-one", "bilt"},
		AwardBookingURL:  "https://www.virginatlantic.com/flight-search/reward-flights",
	},
	{
		ID: "emirates-skywards", Name: "Emirates Skywards", Type: TypeAirline,
		BaseValueCpp:     1.0,
		TransferPartners: []string{"amex-mr", "capital-one", "citi-typ", "bilt"},
		AwardBookingURL:  "https://www.emirates.com/us/english/book/",
	},
	{
		ID: "lifemiles", Name: "Avianca LifeMiles", Type: TypeAirline,
		Alliance: "star_alliance", BaseValueCpp: 1.4,
		TransferPartners: []string{"amex-mr", "capital-one", "citi-typ", "bilt"},
		AwardBookingURL:  "https://www.lifemiles.com/flight/search",
	},
	{
		ID: "smiles", Name: "GOL Smiles", Type: TypeAirline,
		BaseValueCpp:     1.2,
		TransferPartners: []string{"amex-mr"},
		AwardBookingURL:  "https://www.smiles.com.br/emissao-com-milhas",
	},
	{
		ID: "velocity", Name: "Velocity Frequent Flyer", Type: TypeAirline,
		BaseValueCpp:     1.3,
		TransferPartners: []string{"amex-mr"},
		AwardBookingURL:  "https://experience.velocity.virginaustralia.com/member/booking/search",
	},
	{
		ID: "eurobonus", Name: "SAS EuroBonus", Type: TypeAirline,
		Alliance: "star_alliance", BaseValueCpp: 1.2,
		TransferPartners: []string{"amex-mr", "chase-ur"},
		AwardBookingURL:  "https://www.sas.se/eurobonus/use-points/travel/",
	},
	{
		ID: "qantas", Name: "Qantas Frequent Flyer", Type: TypeAirline,
		Alliance: "oneworld", BaseValueCpp: 1.4,
		AwardBookingURL: "https://www.qantas.com/au/en/book-a-trip/flights/classic-flight-rewards.html",
	},
	{
		ID: "aerlingus", Name: "Aer Lingus AerClub", Type: TypeAirline,
		BaseValueCpp:     1.5,
		TransferPartners: []string{"chase-ur", "amex-mr"},
		AwardBookingURL:  "https://www.aerlingus.com/booking/avios-booking/",
	},
	{
		ID: "etihad", Name: "Etihad Guest", Type: TypeAirline,
		BaseValueCpp:     1.2,
		TransferPartners: []string{"amex-mr", "citi-typ"},
		AwardBookingURL:  "https://www.etihad.com/en-us/guest/redeem-miles",
	},

	// Credit-card currencies. TransferPartners here drive the resolver's
	// one-hop fan-out.
	{
		ID: "chase-ur", Name: "Chase Ultimate Rewards", Type: TypeCreditCard,
		BaseValueCpp: 1.5,
		TransferPartners: []string{
			"united-mileageplus", "southwest-rr", "jetblue-trueblue",
			"aeroplan", "avios", "flying-blue", "krisflyer", "virginatlantic",
		},
	},
	{
		ID: "amex-mr", Name: "Amex Membership Rewards", Type: TypeCreditCard,
		BaseValueCpp: 1.6,
		TransferPartners: []string{
			"delta-skymiles", "aeroplan", "avios", "flying-blue",
			"krisflyer", "virginatlantic", "emirates-skywards",
		},
	},
	{
		ID: "citi-typ", Name: "Citi ThankYou Points", Type: TypeCreditCard,
		BaseValueCpp: 1.4,
		TransferPartners: []string{
			"american-aadvantage", "jetblue-trueblue", "flying-blue",
			"krisflyer", "virginatlantic", "emirates-skywards",
		},
	},
	{
		ID: "capital-one", Name: "Capital One Miles", Type: TypeCreditCard,
		BaseValueCpp: 1.4,
		TransferPartners: []string{
			"aeroplan", "avios", "flying-blue", "krisflyer",
			"virginatlantic", "emirates-skywards",
		},
	},
	{
		ID: "bilt", Name: "Bilt Rewards", Type: TypeCreditCard,
		BaseValueCpp: 1.6,
		TransferPartners: []string{
			"united-mileageplus", "american-aadvantage", "alaska-mileageplan",
			"jetblue-trueblue", "aeroplan", "avios", "flying-blue",
			"krisflyer", "virginatlantic", "emirates-skywards",
		},
	},
}
