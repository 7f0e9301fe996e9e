package dcsa

// ServiceSchedule is the canonical representation of a carrier liner service,
// following the DCSA Commercial Schedules data model. Every vendor payload is
// mapped into this shape before leaving a carrier source.
type ServiceSchedule struct {
	CarrierServiceCode        string `json:"carrierServiceCode" groups:"basic,detailed"`
	CarrierServiceName        string `json:"carrierServiceName,omitempty" groups:"basic,detailed"`
	UniversalServiceReference string `json:"universalServiceReference,omitempty" groups:"detailed"`

	VesselSchedules []*VesselSchedule `json:"vesselSchedules" groups:"basic,detailed"`
}

type VesselSchedule struct {
	Vessel        *Vessel `json:"vessel,omitempty" groups:"basic,detailed"`
	IsDummyVessel bool    `json:"isDummyVessel" groups:"basic,detailed"`

	TransportCalls []*TransportCall `json:"transportCalls,omitempty" groups:"basic,detailed"`
}

type Vessel struct {
	VesselIMONumber           string `json:"vesselIMONumber" groups:"basic,detailed"`
	VesselName                string `json:"vesselName,omitempty" groups:"basic,detailed"`
	VesselFlag                string `json:"vesselFlag,omitempty" groups:"detailed"`
	VesselCallSign            string `json:"vesselCallSign,omitempty" groups:"detailed"`
	VesselOperatorCarrierCode string `json:"vesselOperatorCarrierCode,omitempty" groups:"detailed"`
}

// DummyIMONumber is the sentinel used when a vendor never resolved a vessel
// identity for a schedule entry.
const DummyIMONumber = "0000000"

type TransportCall struct {
	TransportCallReference    string `json:"transportCallReference" groups:"basic,detailed"`
	CarrierImportVoyageNumber string `json:"carrierImportVoyageNumber" groups:"basic,detailed"`
	CarrierExportVoyageNumber string `json:"carrierExportVoyageNumber,omitempty" groups:"basic,detailed"`

	PortVisitReference string `json:"portVisitReference,omitempty" groups:"detailed"`

	Location *Location `json:"location,omitempty" groups:"basic,detailed"`

	Timestamps  []*Timestamp  `json:"timestamps" groups:"basic,detailed"`
	CutOffTimes []*CutOffTime `json:"cutOffTimes,omitempty" groups:"detailed"`
}

type Location struct {
	LocationName     string `json:"locationName,omitempty" groups:"basic,detailed"`
	UNLocationCode   string `json:"UNLocationCode,omitempty" groups:"basic,detailed"`
	FacilitySMDGCode string `json:"facilitySMDGCode,omitempty" groups:"detailed"`
}

type Timestamp struct {
	EventTypeCode       EventTypeCode       `json:"eventTypeCode" groups:"basic,detailed"`
	EventClassifierCode EventClassifierCode `json:"eventClassifierCode" groups:"basic,detailed"`
	EventDateTime       string              `json:"eventDateTime" groups:"basic,detailed"`

	DelayReasonCode string `json:"delayReasonCode,omitempty" groups:"detailed"`
	ChangeRemark    string `json:"changeRemark,omitempty" groups:"detailed"`
}

type CutOffTime struct {
	CutOffDateTimeCode string `json:"cutOffDateTimeCode" groups:"detailed"`
	CutOffDateTime     string `json:"cutOffDateTime" groups:"detailed"`
}

type EventTypeCode string

const (
	EventTypeArrival   EventTypeCode = "ARRI"
	EventTypeDeparture EventTypeCode = "DEPA"
)

type EventClassifierCode string

const (
	EventClassifierActual    EventClassifierCode = "ACT"
	EventClassifierEstimated EventClassifierCode = "EST"
	EventClassifierPlanned   EventClassifierCode = "PLN"
)

// HasTransportCalls reports whether any vessel schedule carries at least one
// transport call.
func (s *ServiceSchedule) HasTransportCalls() bool {
	for _, vesselSchedule := range s.VesselSchedules {
		if len(vesselSchedule.TransportCalls) > 0 {
			return true
		}
	}

	return false
}

// FilterEmptySchedules drops every ServiceSchedule that has no vessel schedule
// with at least one transport call. Vendors regularly return service headers
// with no sailings in the requested window.
func FilterEmptySchedules(schedules []*ServiceSchedule) []*ServiceSchedule {
	var filtered []*ServiceSchedule

	for _, schedule := range schedules {
		if schedule.HasTransportCalls() {
			filtered = append(filtered, schedule)
		}
	}

	return filtered
}
