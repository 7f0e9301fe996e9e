package cmacgm

// Vendor payload shapes for the CMA CGM schedule APIs.

type cmacgmService struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type cmacgmVoyage struct {
	Code      string `json:"code"`
	Direction string `json:"direction"`
}

type cmacgmVessel struct {
	IMONumber string `json:"imo"`
	Name      string `json:"name"`
	Flag      string `json:"flag"`
	CallSign  string `json:"callSign"`
}

type cmacgmPort struct {
	Locode       string `json:"locode"`
	Name         string `json:"name"`
	FacilityCode string `json:"facilityCode"`
}

// cmacgmCallTime carries up to three datetimes for one movement; any of them
// may be empty.
type cmacgmCallTime struct {
	Actual    string `json:"actual"`
	Estimated string `json:"estimated"`
	Planned   string `json:"planned"`
}

type cmacgmPortCall struct {
	CallReference  string          `json:"callReference"`
	SequenceNumber int             `json:"sequenceNumber"`
	Port           cmacgmPort      `json:"port"`
	Arrival        *cmacgmCallTime `json:"arrival"`
	Departure      *cmacgmCallTime `json:"departure"`
}

type cmacgmVoyageSchedule struct {
	Service   cmacgmService    `json:"service"`
	Voyage    cmacgmVoyage     `json:"voyage"`
	Vessel    *cmacgmVessel    `json:"vessel"`
	PortCalls []cmacgmPortCall `json:"portCalls"`
}

type cmacgmRoutingPoint struct {
	Location      cmacgmPort `json:"location"`
	CallReference string     `json:"callReference"`
	Arrival       string     `json:"arrival"`
	Departure     string     `json:"departure"`
}

type cmacgmRoutingLeg struct {
	Service   cmacgmService      `json:"service"`
	Voyage    cmacgmVoyage       `json:"voyage"`
	Vessel    *cmacgmVessel      `json:"vessel"`
	PointFrom cmacgmRoutingPoint `json:"pointFrom"`
	PointTo   cmacgmRoutingPoint `json:"pointTo"`
}

type cmacgmRouting struct {
	TransitTime    int                `json:"transitTime"`
	RoutingDetails []cmacgmRoutingLeg `json:"routingDetails"`
}

type cmacgmProformaCall struct {
	SequenceNumber int        `json:"sequenceNumber"`
	Port           cmacgmPort `json:"port"`
	Arrival        string     `json:"arrival"`
	Departure      string     `json:"departure"`
}

type cmacgmProforma struct {
	Service cmacgmService        `json:"service"`
	Voyage  cmacgmVoyage         `json:"voyage"`
	Calls   []cmacgmProformaCall `json:"calls"`
}

// cmacgmCommercialSchedule is the DCSA-compliant commercial schedule payload;
// field names already follow the canonical model.
type cmacgmCommercialSchedule struct {
	CarrierServiceCode        string `json:"carrierServiceCode"`
	CarrierServiceName        string `json:"carrierServiceName"`
	UniversalServiceReference string `json:"universalServiceReference"`

	VesselSchedules []struct {
		Vessel        *cmacgmDCSAVessel `json:"vessel"`
		IsDummyVessel bool              `json:"isDummyVessel"`

		TransportCalls []struct {
			TransportCallReference    string `json:"transportCallReference"`
			CarrierImportVoyageNumber string `json:"carrierImportVoyageNumber"`
			CarrierExportVoyageNumber string `json:"carrierExportVoyageNumber"`

			Location struct {
				LocationName     string `json:"locationName"`
				UNLocationCode   string `json:"UNLocationCode"`
				FacilitySMDGCode string `json:"facilitySMDGCode"`
			} `json:"location"`

			Timestamps []struct {
				EventTypeCode       string `json:"eventTypeCode"`
				EventClassifierCode string `json:"eventClassifierCode"`
				EventDateTime       string `json:"eventDateTime"`
			} `json:"timestamps"`

			CutOffTimes []struct {
				CutOffDateTimeCode string `json:"cutOffDateTimeCode"`
				CutOffDateTime     string `json:"cutOffDateTime"`
			} `json:"cutOffTimes"`
		} `json:"transportCalls"`
	} `json:"vesselSchedules"`
}

type cmacgmDCSAVessel struct {
	VesselIMONumber string `json:"vesselIMONumber"`
	VesselName      string `json:"vesselName"`
	VesselFlag      string `json:"vesselFlag"`
	VesselCallSign  string `json:"vesselCallSign"`
}
