package maersk

// Vendor payload shapes for the Maersk APIs.

type maerskVessel struct {
	VesselIMONumber   string `json:"vesselIMONumber"`
	CarrierVesselCode string `json:"carrierVesselCode"`
	VesselName        string `json:"vesselName"`
	VesselFlag        string `json:"vesselFlagCode"`
	VesselCallSign    string `json:"vesselCallSign"`
}

type maerskFacility struct {
	CityName         string `json:"cityName"`
	LocationName     string `json:"locationName"`
	UNLocationCode   string `json:"UNLocationCode"`
	CarrierSiteGeoID string `json:"carrierSiteGeoID"`
}

// Ocean products (point-to-point)

type maerskOceanProductsResponse struct {
	OceanProducts []maerskOceanProduct `json:"oceanProducts"`
}

type maerskOceanProduct struct {
	CarrierProductID   string                    `json:"carrierProductId"`
	TransportSchedules []maerskTransportSchedule `json:"transportSchedules"`
}

type maerskTransportSchedule struct {
	DepartureDateTime string               `json:"departureDateTime"`
	ArrivalDateTime   string               `json:"arrivalDateTime"`
	TransportLegs     []maerskTransportLeg `json:"transportLegs"`
}

type maerskTransportLeg struct {
	DepartureDateTime string `json:"departureDateTime"`
	ArrivalDateTime   string `json:"arrivalDateTime"`

	Transport struct {
		TransportMode       string       `json:"transportMode"`
		Vessel              maerskVessel `json:"vessel"`
		CarrierServiceCode  string       `json:"carrierServiceCode"`
		CarrierServiceName  string       `json:"carrierServiceName"`
		CarrierVoyageNumber string       `json:"carrierDepartureVoyageNumber"`
	} `json:"transport"`

	Facilities struct {
		StartLocation maerskFacility `json:"startLocation"`
		EndLocation   maerskFacility `json:"endLocation"`
	} `json:"facilities"`
}

// Port calls

type maerskPortCallsResponse struct {
	PortCalls []maerskPortCall `json:"portCalls"`
}

type maerskPortCall struct {
	CarrierServiceCode  string `json:"carrierServiceCode"`
	CarrierServiceName  string `json:"carrierServiceName"`
	CarrierVoyageNumber string `json:"carrierVoyageNumber"`

	Vessel   maerskVessel   `json:"vessel"`
	Facility maerskFacility `json:"facility"`

	CallSchedules []maerskCallSchedule `json:"callSchedules"`
}

// Vessel schedules

type maerskVesselSchedule struct {
	CarrierServiceCode string       `json:"carrierServiceCode"`
	CarrierServiceName string       `json:"carrierServiceName"`
	Vessel             maerskVessel `json:"vessel"`

	VesselCalls []maerskVesselCall `json:"vesselCalls"`
}

type maerskVesselCall struct {
	TransportCallReference    string `json:"transportCallReference"`
	CarrierImportVoyageNumber string `json:"carrierImportVoyageNumber"`
	CarrierExportVoyageNumber string `json:"carrierExportVoyageNumber"`

	Facility maerskFacility `json:"facility"`

	CallSchedules []maerskCallSchedule `json:"callSchedules"`
}

type maerskCallSchedule struct {
	TransportEventTypeCode string `json:"transportEventTypeCode"`
	EventClassifierCode    string `json:"eventClassifierCode"`
	ClassifierDateTime     string `json:"classifierDateTime"`
}
