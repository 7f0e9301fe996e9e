package maersk

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/linertrack/linertrack/pkg/aggregator/source"
	"github.com/linertrack/linertrack/pkg/dcsa"
)

// oceanLegModes are the transport modes that produce transport calls. RAIL
// and TRUCK legs are inland carriage and are skipped entirely.
var oceanLegModes = []string{"VESSEL", "BARGE"}

// mapOceanProducts groups each route under the service code of its first
// ocean leg. Routes with no ocean leg at all produce nothing.
func mapOceanProducts(products []maerskOceanProduct) ([]*dcsa.ServiceSchedule, error) {
	var serviceCodes []string
	services := map[string]*dcsa.ServiceSchedule{}
	vessels := map[string]*dcsa.VesselSchedule{}

	for _, product := range products {
		for _, transportSchedule := range product.TransportSchedules {
			serviceCode := ""
			serviceName := ""
			for _, leg := range transportSchedule.TransportLegs {
				if slices.Contains(oceanLegModes, leg.Transport.TransportMode) {
					serviceCode = leg.Transport.CarrierServiceCode
					serviceName = leg.Transport.CarrierServiceName
					break
				}
			}
			if serviceCode == "" {
				continue
			}

			serviceSchedule := services[serviceCode]
			if serviceSchedule == nil {
				serviceSchedule = &dcsa.ServiceSchedule{
					CarrierServiceCode: serviceCode,
					CarrierServiceName: serviceName,
				}
				services[serviceCode] = serviceSchedule
				serviceCodes = append(serviceCodes, serviceCode)
			}

			for _, leg := range transportSchedule.TransportLegs {
				if !slices.Contains(oceanLegModes, leg.Transport.TransportMode) {
					continue
				}

				vessel, dummy := mapVesselIdentity(leg.Transport.Vessel)

				vesselKey := fmt.Sprintf("%s/%s", serviceCode, vessel.VesselIMONumber)
				vesselSchedule := vessels[vesselKey]
				if vesselSchedule == nil {
					vesselSchedule = &dcsa.VesselSchedule{
						Vessel:        vessel,
						IsDummyVessel: dummy,
					}
					vessels[vesselKey] = vesselSchedule
					serviceSchedule.VesselSchedules = append(serviceSchedule.VesselSchedules, vesselSchedule)
				}

				departureCall, err := mapLegEnd(leg, leg.Facilities.StartLocation, dcsa.EventTypeDeparture, leg.DepartureDateTime)
				if err != nil {
					return nil, err
				}
				arrivalCall, err := mapLegEnd(leg, leg.Facilities.EndLocation, dcsa.EventTypeArrival, leg.ArrivalDateTime)
				if err != nil {
					return nil, err
				}

				vesselSchedule.TransportCalls = append(vesselSchedule.TransportCalls, departureCall, arrivalCall)
			}
		}
	}

	var schedules []*dcsa.ServiceSchedule
	for _, serviceCode := range serviceCodes {
		schedules = append(schedules, services[serviceCode])
	}

	return dcsa.FilterEmptySchedules(schedules), nil
}

func mapLegEnd(leg maerskTransportLeg, facility maerskFacility, eventType dcsa.EventTypeCode, dateTime string) (*dcsa.TransportCall, error) {
	var timestamps []*dcsa.Timestamp

	if dateTime != "" {
		normalized, err := dcsa.NormalizeDateTime(dateTime)
		if err != nil {
			return nil, &source.MalformedTimestampError{
				Carrier: source.CarrierMaersk,
				Field:   "transport leg datetime",
				Value:   dateTime,
			}
		}

		timestamps = append(timestamps, &dcsa.Timestamp{
			EventTypeCode:       eventType,
			EventClassifierCode: dcsa.EventClassifierEstimated,
			EventDateTime:       normalized,
		})
	}

	return &dcsa.TransportCall{
		TransportCallReference:    fmt.Sprintf("%s-%s-%s", leg.Transport.CarrierVoyageNumber, facility.UNLocationCode, eventType),
		CarrierImportVoyageNumber: leg.Transport.CarrierVoyageNumber,
		Location:                  mapFacility(facility),
		Timestamps:                timestamps,
	}, nil
}

func mapPortCalls(portCalls []maerskPortCall) ([]*dcsa.ServiceSchedule, error) {
	var serviceCodes []string
	services := map[string]*dcsa.ServiceSchedule{}
	vessels := map[string]*dcsa.VesselSchedule{}

	for _, portCall := range portCalls {
		serviceSchedule := services[portCall.CarrierServiceCode]
		if serviceSchedule == nil {
			serviceSchedule = &dcsa.ServiceSchedule{
				CarrierServiceCode: portCall.CarrierServiceCode,
				CarrierServiceName: portCall.CarrierServiceName,
			}
			services[portCall.CarrierServiceCode] = serviceSchedule
			serviceCodes = append(serviceCodes, portCall.CarrierServiceCode)
		}

		vessel, dummy := mapVesselIdentity(portCall.Vessel)

		vesselKey := fmt.Sprintf("%s/%s", portCall.CarrierServiceCode, vessel.VesselIMONumber)
		vesselSchedule := vessels[vesselKey]
		if vesselSchedule == nil {
			vesselSchedule = &dcsa.VesselSchedule{
				Vessel:        vessel,
				IsDummyVessel: dummy,
			}
			vessels[vesselKey] = vesselSchedule
			serviceSchedule.VesselSchedules = append(serviceSchedule.VesselSchedules, vesselSchedule)
		}

		timestamps, err := mapCallSchedules(portCall.CallSchedules)
		if err != nil {
			return nil, err
		}

		vesselSchedule.TransportCalls = append(vesselSchedule.TransportCalls, &dcsa.TransportCall{
			TransportCallReference:    fmt.Sprintf("%s-%s", portCall.CarrierVoyageNumber, portCall.Facility.UNLocationCode),
			CarrierImportVoyageNumber: portCall.CarrierVoyageNumber,
			Location:                  mapFacility(portCall.Facility),
			Timestamps:                timestamps,
		})
	}

	var schedules []*dcsa.ServiceSchedule
	for _, serviceCode := range serviceCodes {
		schedules = append(schedules, services[serviceCode])
	}

	return dcsa.FilterEmptySchedules(schedules), nil
}

func mapVesselSchedules(vesselSchedules []maerskVesselSchedule) ([]*dcsa.ServiceSchedule, error) {
	var serviceCodes []string
	services := map[string]*dcsa.ServiceSchedule{}

	for _, vendorVesselSchedule := range vesselSchedules {
		serviceSchedule := services[vendorVesselSchedule.CarrierServiceCode]
		if serviceSchedule == nil {
			serviceSchedule = &dcsa.ServiceSchedule{
				CarrierServiceCode: vendorVesselSchedule.CarrierServiceCode,
				CarrierServiceName: vendorVesselSchedule.CarrierServiceName,
			}
			services[vendorVesselSchedule.CarrierServiceCode] = serviceSchedule
			serviceCodes = append(serviceCodes, vendorVesselSchedule.CarrierServiceCode)
		}

		vessel, dummy := mapVesselIdentity(vendorVesselSchedule.Vessel)
		vesselSchedule := &dcsa.VesselSchedule{
			Vessel:        vessel,
			IsDummyVessel: dummy,
		}

		for _, vesselCall := range vendorVesselSchedule.VesselCalls {
			timestamps, err := mapCallSchedules(vesselCall.CallSchedules)
			if err != nil {
				return nil, err
			}

			reference := vesselCall.TransportCallReference
			if reference == "" {
				reference = fmt.Sprintf("%s-%s", vesselCall.CarrierImportVoyageNumber, vesselCall.Facility.UNLocationCode)
			}

			vesselSchedule.TransportCalls = append(vesselSchedule.TransportCalls, &dcsa.TransportCall{
				TransportCallReference:    reference,
				CarrierImportVoyageNumber: vesselCall.CarrierImportVoyageNumber,
				CarrierExportVoyageNumber: vesselCall.CarrierExportVoyageNumber,
				Location:                  mapFacility(vesselCall.Facility),
				Timestamps:                timestamps,
			})
		}

		serviceSchedule.VesselSchedules = append(serviceSchedule.VesselSchedules, vesselSchedule)
	}

	var schedules []*dcsa.ServiceSchedule
	for _, serviceCode := range serviceCodes {
		schedules = append(schedules, services[serviceCode])
	}

	return dcsa.FilterEmptySchedules(schedules), nil
}

func mapCallSchedules(callSchedules []maerskCallSchedule) ([]*dcsa.Timestamp, error) {
	var timestamps []*dcsa.Timestamp

	for _, callSchedule := range callSchedules {
		normalized, err := dcsa.NormalizeDateTime(callSchedule.ClassifierDateTime)
		if err != nil {
			return nil, &source.MalformedTimestampError{
				Carrier: source.CarrierMaersk,
				Field:   "classifierDateTime",
				Value:   callSchedule.ClassifierDateTime,
			}
		}

		classifier := dcsa.EventClassifierCode(callSchedule.EventClassifierCode)
		if classifier == "" {
			classifier = dcsa.EventClassifierEstimated
		}

		timestamps = append(timestamps, &dcsa.Timestamp{
			EventTypeCode:       dcsa.EventTypeCode(callSchedule.TransportEventTypeCode),
			EventClassifierCode: classifier,
			EventDateTime:       normalized,
		})
	}

	return timestamps, nil
}

func mapVesselIdentity(vessel maerskVessel) (*dcsa.Vessel, bool) {
	if vessel.VesselIMONumber == "" {
		return &dcsa.Vessel{
			VesselIMONumber: dcsa.DummyIMONumber,
			VesselName:      vessel.VesselName,
		}, true
	}

	return &dcsa.Vessel{
		VesselIMONumber:           vessel.VesselIMONumber,
		VesselName:                vessel.VesselName,
		VesselFlag:                vessel.VesselFlag,
		VesselCallSign:            vessel.VesselCallSign,
		VesselOperatorCarrierCode: vessel.CarrierVesselCode,
	}, false
}

func mapFacility(facility maerskFacility) *dcsa.Location {
	locationName := facility.LocationName
	if locationName == "" {
		locationName = facility.CityName
	}

	return &dcsa.Location{
		LocationName:   locationName,
		UNLocationCode: facility.UNLocationCode,
	}
}
