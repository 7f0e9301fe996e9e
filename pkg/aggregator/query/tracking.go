package query

// Tracking is the canonical Track & Trace query surface. At least one of the
// three reference fields is guaranteed present by the validation layer above.
type Tracking struct {
	CarrierBookingReference    string
	TransportDocumentReference string
	EquipmentReference         string

	EventType               []string
	EventCreatedDateTimeGte string
	EventCreatedDateTimeLte string

	Limit  int
	Cursor string
}
