package query

// Schedule is the canonical schedule query surface. The routing/validation
// layer above fills it from the flat request parameters; each carrier source
// only reads the fields its sub-APIs understand and validates them at its
// router boundary.
type Schedule struct {
	// Carrier-common
	VesselIMONumber     string
	CarrierServiceCode  string
	CarrierVoyageNumber string
	UNLocationCode      string
	StartDate           string
	EndDate             string
	Limit               int
	Cursor              string

	// CMA CGM
	PlaceOfLoading           string
	UNLocodePlaceOfLoading   string
	PlaceOfDischarge         string
	UNLocodePlaceOfDischarge string
	VoyageCode               string
	ServiceCode              string
	LineCode                 string
	ZoneFromCode             string
	ZoneToCode               string
	PortCode                 string
	CountryCode              string

	// HMM
	FromLocationCode string
	ToLocationCode   string
	PeriodDate       string

	// Maersk
	PlaceOfReceipt  string
	PlaceOfDelivery string

	// ZIM
	OriginCode      string
	DestinationCode string
}
